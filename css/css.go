// Package css tokenizes css selectors and at-rule preludes and turns token
// sequences back into canonical strings.
//
// All functions are pure and safe for concurrent use. Tokenization is lenient:
// it never fails, unknown characters are skipped.
package css

import "strings"

// Tokenize uses TokenizeAtRule for input starting with "@" (ignoring leading
// whitespace) and TokenizeSelector otherwise.
func Tokenize(input string) Tokens {
	if strings.HasPrefix(strings.TrimLeft(input, " \t\f\r\n"), "@") {
		return TokenizeAtRule(input)
	}
	return TokenizeSelector(input)
}

// Stringify uses StringifyAtRule for sequences starting with an at-rule name
// and StringifySelector otherwise.
func Stringify(ts Tokens) string {
	if len(ts) > 0 && ts[0].Kind() == KindAtRuleName {
		return StringifyAtRule(ts)
	}
	return StringifySelector(ts)
}
