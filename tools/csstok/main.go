// csstok tokenizes css selectors and at-rule preludes.
//
//	$ csstok 'div > span' '@media screen and (min-width: 768px)'
//	$ echo '.a,.b' | csstok -mode string
//	$ csstok -html index.html 'ul li:first-child'
//
// Env: CSSTOK_Workers, CSSTOK_LogLevel, CSSTOK_Mode
package main

import (
	"bufio"
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/niklasfasching/csstok/util"
)

func main() {
	log.SetFlags(0)
	c := DefaultConfig
	if err := util.LoadConfig(&c, "CSSTOK_", false); err != nil {
		log.Fatal(err)
	}
	flag.StringVar(&c.Mode, "mode", c.Mode, "output mode: tokens|string|json")
	flag.BoolVar(&c.AtRule, "at", c.AtRule, "always use the at-rule tokenizer")
	flag.StringVar(&c.HTML, "html", c.HTML, "html file to apply selectors to")
	flag.IntVar(&c.Workers, "workers", c.Workers, "max inputs processed concurrently")
	flag.Parse()

	ctx := util.WithLogger(context.Background(), util.WithLvl(util.ParseLvl(c.LogLevel), util.Writer(os.Stderr)))
	inputs := flag.Args()
	if len(inputs) == 0 {
		lines, err := readLines(bufio.NewScanner(os.Stdin))
		if err != nil {
			log.Fatal(err)
		}
		inputs = lines
	}
	if err := Run(ctx, c, inputs, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func readLines(s *bufio.Scanner) ([]string, error) {
	lines := []string{}
	for s.Scan() {
		if line := strings.TrimSpace(s.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, s.Err()
}
