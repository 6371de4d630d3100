package match

import (
	"strings"

	"github.com/niklasfasching/csstok/css"
	"golang.org/x/net/html"
)

// Selector matches element nodes. Tokens converts it back into the css token
// sequence it represents, with names unescaped and then re-escaped canonically.
type Selector interface {
	Match(*html.Node) bool
	Tokens() css.Tokens
}

type (
	TypeSelector struct {
		Name      string
		Namespace string
	}
	UniversalSelector struct {
		Namespace string
	}
	ClassSelector struct {
		Name string
	}
	IDSelector struct {
		ID string
	}
	AttributeSelector struct {
		Name            string
		Namespace       string
		Operator        string
		Value           string
		CaseInsensitive bool
	}
	PseudoSelector struct {
		Name     string
		Argument *string
		match    func(*html.Node) bool
	}
	// CompoundSelector matches if all of its selectors match, e.g. "li.a:first-child".
	CompoundSelector []Selector
	// ComplexSelector matches Right nodes that relate to a Left node via Combinator.
	ComplexSelector struct {
		Left       Selector
		Combinator string
		Right      Selector
	}
	// GroupSelector matches if any of its selectors matches, e.g. "ul li, ol li".
	GroupSelector []Selector
)

var operators = map[string]func(actual, expected string) bool{
	"":   func(string, string) bool { return true },
	"=":  func(av, sv string) bool { return av == sv },
	"~=": containsWord,
	"|=": func(av, sv string) bool { return av == sv || strings.HasPrefix(av, sv+"-") },
	"^=": func(av, sv string) bool { return sv != "" && strings.HasPrefix(av, sv) },
	"$=": func(av, sv string) bool { return sv != "" && strings.HasSuffix(av, sv) },
	"*=": func(av, sv string) bool { return sv != "" && strings.Contains(av, sv) },
}

var combinators = map[string]bool{" ": true, ">": true, "+": true, "~": true}

// String returns the canonical selector string of s.
func String(s Selector) string { return css.Stringify(s.Tokens()) }

func (s TypeSelector) Match(n *html.Node) bool {
	return n.Data == s.Name && inNamespace(n.Namespace, s.Namespace)
}

func (s UniversalSelector) Match(n *html.Node) bool { return inNamespace(n.Namespace, s.Namespace) }

func (s ClassSelector) Match(n *html.Node) bool {
	class, ok := attribute(n, "class")
	return ok && containsWord(class, s.Name)
}

func (s IDSelector) Match(n *html.Node) bool {
	id, ok := attribute(n, "id")
	return ok && id == s.ID
}

func (s AttributeSelector) Match(n *html.Node) bool {
	for _, a := range n.Attr {
		if a.Key != s.Name || !inNamespace(a.Namespace, s.Namespace) {
			continue
		} else if s.CaseInsensitive {
			return operators[s.Operator](strings.ToLower(a.Val), strings.ToLower(s.Value))
		}
		return operators[s.Operator](a.Val, s.Value)
	}
	return false
}

func (s PseudoSelector) Match(n *html.Node) bool { return s.match(n) }

func (s CompoundSelector) Match(n *html.Node) bool {
	for _, s := range s {
		if !s.Match(n) {
			return false
		}
	}
	return true
}

func (s GroupSelector) Match(n *html.Node) bool {
	for _, s := range s {
		if s.Match(n) {
			return true
		}
	}
	return false
}

func (s *ComplexSelector) Match(n *html.Node) bool {
	if !s.Right.Match(n) {
		return false
	}
	switch s.Combinator {
	case " ":
		for p := n.Parent; isElement(p); p = p.Parent {
			if s.Left.Match(p) {
				return true
			}
		}
	case ">":
		return isElement(n.Parent) && s.Left.Match(n.Parent)
	case "+":
		p := previousElement(n)
		return p != nil && s.Left.Match(p)
	case "~":
		for p := previousElement(n); p != nil; p = previousElement(p) {
			if s.Left.Match(p) {
				return true
			}
		}
	}
	return false
}

func (s TypeSelector) Tokens() css.Tokens {
	return css.Tokens{css.NewType(s.Name).InNamespace(s.Namespace)}
}

func (s UniversalSelector) Tokens() css.Tokens {
	return css.Tokens{css.NewUniversal().InNamespace(s.Namespace)}
}

func (s ClassSelector) Tokens() css.Tokens { return css.Tokens{css.NewClass(s.Name)} }
func (s IDSelector) Tokens() css.Tokens    { return css.Tokens{css.NewID(s.ID)} }

func (s AttributeSelector) Tokens() css.Tokens {
	a := css.NewAttribute(s.Name, s.Operator, s.Value).InNamespace(s.Namespace)
	if s.CaseInsensitive {
		a = a.WithCaseFlag("i")
	}
	return css.Tokens{a}
}

func (s PseudoSelector) Tokens() css.Tokens {
	if s.Argument == nil {
		return css.Tokens{css.NewPseudoClass(s.Name)}
	}
	return css.Tokens{css.NewPseudoClass(s.Name, *s.Argument)}
}

func (s CompoundSelector) Tokens() (ts css.Tokens) {
	for _, s := range s {
		ts = ts.Append(s.Tokens()...)
	}
	return ts
}

func (s *ComplexSelector) Tokens() css.Tokens {
	return s.Left.Tokens().Append(css.NewCombinator(s.Combinator)).Append(s.Right.Tokens()...)
}

func (s GroupSelector) Tokens() (ts css.Tokens) {
	for i, s := range s {
		if i > 0 {
			ts = ts.Append(css.NewComma())
		}
		ts = ts.Append(s.Tokens()...)
	}
	return ts
}

func inNamespace(actual, expected string) bool {
	return expected == "" || expected == "*" || actual == expected
}

func attribute(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// containsWord reports whether the whitespace separated list s contains word.
func containsWord(s, word string) bool {
	if word == "" || strings.ContainsAny(word, " \t\r\n\f") {
		return false
	}
	for _, w := range strings.Fields(s) {
		if w == word {
			return true
		}
	}
	return false
}

func isElement(n *html.Node) bool { return n != nil && n.Type == html.ElementNode }

func previousElement(n *html.Node) *html.Node {
	for n = n.PrevSibling; n != nil; n = n.PrevSibling {
		if n.Type == html.ElementNode {
			return n
		}
	}
	return nil
}
