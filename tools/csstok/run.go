package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/niklasfasching/csstok/css"
	"github.com/niklasfasching/csstok/match"
	"github.com/niklasfasching/csstok/util"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	Mode     string
	AtRule   bool
	HTML     string
	Workers  int
	LogLevel string
}

var DefaultConfig = Config{
	Mode:     "tokens",
	Workers:  8,
	LogLevel: "WARN",
}

// Run processes inputs concurrently and writes the results to w in input order.
func Run(ctx context.Context, c Config, inputs []string, w io.Writer) error {
	format, ok := formats[c.Mode]
	if !ok {
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	var doc *html.Node
	if c.HTML != "" {
		f, err := os.Open(c.HTML)
		if err != nil {
			return err
		}
		defer f.Close()
		if doc, err = html.Parse(f); err != nil {
			return fmt.Errorf("failed to parse %s: %w", c.HTML, err)
		}
	}
	results := make([]string, len(inputs))
	g := errgroup.Group{}
	g.SetLimit(max(c.Workers, 1))
	for i, input := range inputs {
		g.Go(func() error {
			ts := css.Tokenize(input)
			if c.AtRule {
				ts = css.TokenizeAtRule(input)
			}
			util.Debugf(ctx, "%q: %d tokens", input, len(ts))
			out, err := format(c, ts)
			if err != nil {
				return fmt.Errorf("%q: %w", input, err)
			}
			if doc != nil {
				matches, err := selectAll(doc, ts)
				if err != nil {
					return fmt.Errorf("%q: %w", input, err)
				}
				util.Infof(ctx, "%q: %d matches", input, len(matches))
				out += "\n" + strings.Join(matches, "\n")
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		util.Errorf(ctx, "%s", err)
		return err
	}
	for _, r := range results {
		if _, err := fmt.Fprintln(w, r); err != nil {
			return err
		}
	}
	return nil
}

var formats = map[string]func(Config, css.Tokens) (string, error){
	"string": func(c Config, ts css.Tokens) (string, error) {
		if c.AtRule {
			return css.StringifyAtRule(ts), nil
		}
		return css.Stringify(ts), nil
	},
	"json": func(_ Config, ts css.Tokens) (string, error) {
		bs, err := json.Marshal(ts)
		return string(bs), err
	},
	"tokens": func(_ Config, ts css.Tokens) (string, error) {
		lines := make([]string, len(ts))
		for i, t := range ts {
			lines[i] = fmt.Sprintf("%-14s %q", t.Kind(), t.Text())
		}
		return strings.Join(lines, "\n"), nil
	},
}

func selectAll(doc *html.Node, ts css.Tokens) ([]string, error) {
	if len(ts) > 0 && ts[0].Kind() == css.KindAtRuleName {
		return nil, fmt.Errorf("cannot match at-rule against html")
	}
	s, err := match.Compile(ts)
	if err != nil {
		return nil, err
	}
	out := []string{}
	for _, n := range match.All(s, doc) {
		var sb strings.Builder
		if err := html.Render(&sb, n); err != nil {
			return nil, err
		}
		out = append(out, sb.String())
	}
	return out, nil
}
