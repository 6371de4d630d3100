package match

import (
	"fmt"
	"strings"

	"github.com/niklasfasching/csstok/css"
	"golang.org/x/exp/slices"
	"golang.org/x/net/html"
)

var formElements = []string{"input", "textarea", "select", "button"}

var pseudoClasses = map[string]func(*html.Node) bool{
	"root":          func(n *html.Node) bool { return n.Parent != nil && n.Parent.Type == html.DocumentNode },
	"empty":         isEmpty,
	"checked":       func(n *html.Node) bool { return n.Data == "input" && hasAttribute(n, "checked") },
	"disabled":      func(n *html.Node) bool { return isFormElement(n) && hasAttribute(n, "disabled") },
	"enabled":       func(n *html.Node) bool { return isFormElement(n) && !hasAttribute(n, "disabled") },
	"required":      func(n *html.Node) bool { return isFormElement(n) && hasAttribute(n, "required") },
	"optional":      func(n *html.Node) bool { return isFormElement(n) && !hasAttribute(n, "required") },
	"first-child":   func(n *html.Node) bool { return siblingIndex(n, false, false) == 1 },
	"last-child":    func(n *html.Node) bool { return siblingIndex(n, true, false) == 1 },
	"only-child":    func(n *html.Node) bool { return siblingIndex(n, false, false)+siblingIndex(n, true, false) == 2 },
	"first-of-type": func(n *html.Node) bool { return siblingIndex(n, false, true) == 1 },
	"last-of-type":  func(n *html.Node) bool { return siblingIndex(n, true, true) == 1 },
	"only-of-type":  func(n *html.Node) bool { return siblingIndex(n, false, true)+siblingIndex(n, true, true) == 2 },
}

func compilePseudoFunction(name, argument string) (func(*html.Node) bool, error) {
	switch name {
	case "not":
		s, err := CompileString(argument)
		if err != nil {
			return nil, err
		}
		return func(n *html.Node) bool { return !s.Match(n) }, nil
	case "nth-child":
		return nth(argument, false, false)
	case "nth-last-child":
		return nth(argument, true, false)
	case "nth-of-type":
		return nth(argument, false, true)
	case "nth-last-of-type":
		return nth(argument, true, true)
	case "contains":
		return contains(argument), nil
	}
	return nil, fmt.Errorf("unsupported pseudo function: :%s()", name)
}

func nth(argument string, fromLast, ofType bool) (func(*html.Node) bool, error) {
	a, b, err := css.ParseNth(argument)
	if err != nil {
		return nil, err
	}
	return func(n *html.Node) bool { return isNth(a, b, siblingIndex(n, fromLast, ofType)) }, nil
}

// isNth reports whether i = a*k + b for some k >= 0.
func isNth(a, b, i int) bool {
	if a == 0 {
		return i == b
	}
	return (i-b)/a >= 0 && (i-b)%a == 0
}

// siblingIndex returns the 1-based position of n among its element siblings,
// counted from the end if fromLast is set.
func siblingIndex(n *html.Node, fromLast, ofType bool) int {
	next := func(n *html.Node) *html.Node { return n.PrevSibling }
	if fromLast {
		next = func(n *html.Node) *html.Node { return n.NextSibling }
	}
	i := 1
	for s := next(n); s != nil; s = next(s) {
		if s.Type == html.ElementNode && (!ofType || s.Data == n.Data) {
			i++
		}
	}
	return i
}

// contains matches elements whose rendered html contains the (optionally quoted) argument.
func contains(argument string) func(*html.Node) bool {
	text := strings.TrimSpace(argument)
	if ts := css.TokenizeAtRule(text); len(ts) == 1 && ts[0].Kind() == css.KindString && ts[0].Text() == text {
		text = css.Unescape(ts[0].(css.String).Value)
	}
	return func(n *html.Node) bool {
		var sb strings.Builder
		if err := html.Render(&sb, n); err != nil {
			return false
		}
		return strings.Contains(sb.String(), text)
	}
}

func isEmpty(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode || c.Type == html.TextNode {
			return false
		}
	}
	return true
}

func isFormElement(n *html.Node) bool { return slices.Contains(formElements, n.Data) }

func hasAttribute(n *html.Node, key string) bool {
	_, ok := attribute(n, key)
	return ok
}
