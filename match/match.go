// Package match compiles css selector token sequences into matchers for the net/html dom.
package match

import (
	"golang.org/x/net/html"
)

// First returns the first element in document order below and including n that matches s.
func First(s Selector, n *html.Node) (match *html.Node) {
	walk(n, func(n *html.Node) bool {
		if s.Match(n) {
			match = n
		}
		return match == nil
	})
	return match
}

func All(s Selector, n *html.Node) (matches []*html.Node) {
	walk(n, func(n *html.Node) bool {
		if s.Match(n) {
			matches = append(matches, n)
		}
		return true
	})
	return matches
}

// walk calls f for n and its element descendants in document order until f returns false.
func walk(n *html.Node, f func(*html.Node) bool) bool {
	if n.Type == html.ElementNode && !f(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, f) {
			return false
		}
	}
	return true
}
