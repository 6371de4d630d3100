package css

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseNth parses the An+B argument of :nth-child and friends, e.g. "odd",
// "even", "3", "-n+3" or "2n + 1". Whitespace is only allowed around the sign of B.
func ParseNth(argument string) (a, b int, err error) {
	s := &scanner{input: strings.ToLower(strings.TrimSpace(argument))}
	switch s.input {
	case "odd":
		return 2, 1, nil
	case "even":
		return 2, 0, nil
	}
	if c := s.peek(0); c == '+' || c == '-' {
		s.pos++
	}
	s.acceptDigits()
	if s.peek(0) != 'n' {
		s.pos = 0
		if b, err = strconv.Atoi(s.readNumber()); err != nil || !s.done() {
			return 0, 0, fmt.Errorf("bad nth argument: %q", argument)
		}
		return 0, b, nil
	}
	if a, err = nthCoefficient(s.input[:s.pos]); err != nil {
		return 0, 0, fmt.Errorf("bad nth argument: %q: %w", argument, err)
	}
	s.pos++
	if s.skipWhitespace(); s.done() {
		return a, 0, nil
	}
	sign := s.peek(0)
	if sign != '+' && sign != '-' {
		return 0, 0, fmt.Errorf("bad nth argument: %q", argument)
	}
	s.pos++
	s.skipWhitespace()
	start := s.pos
	s.acceptDigits()
	if b, err = strconv.Atoi(s.input[start:s.pos]); err != nil || !s.done() {
		return 0, 0, fmt.Errorf("bad nth argument: %q", argument)
	}
	if sign == '-' {
		b = -b
	}
	return a, b, nil
}

func nthCoefficient(s string) (int, error) {
	switch s {
	case "", "+":
		return 1, nil
	case "-":
		return -1, nil
	}
	return strconv.Atoi(s)
}
