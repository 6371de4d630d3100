package match

import (
	"errors"
	"fmt"
	"strings"

	"github.com/niklasfasching/csstok/css"
)

type parser struct {
	tokens css.Tokens
	index  int
}

func (p *parser) peek() css.Token {
	if p.index == len(p.tokens) {
		return nil
	}
	return p.tokens[p.index]
}

// Compile turns a selector token sequence into a Selector. Unlike tokenization
// compilation is strict: unsupported pseudo classes, pseudo elements and the
// column combinator are errors. A leading descendant combinator (leading
// whitespace) is ignored.
func Compile(ts css.Tokens) (Selector, error) {
	p := &parser{tokens: ts}
	if c, ok := p.peek().(css.Combinator); ok && c.Content == " " {
		p.index++
	}
	group := GroupSelector{}
	for {
		s, err := p.parseComplex()
		if err != nil {
			return nil, err
		}
		group = append(group, s)
		if t := p.peek(); t == nil {
			break
		} else if _, ok := t.(css.Comma); !ok {
			return nil, fmt.Errorf("unexpected %s token: %q", t.Kind(), t.Text())
		}
		p.index++
	}
	if len(group) == 1 {
		return group[0], nil
	}
	return group, nil
}

func CompileString(selector string) (Selector, error) {
	return Compile(css.TokenizeSelector(selector))
}

func MustCompile(selector string) Selector {
	s, err := CompileString(selector)
	if err != nil {
		panic(err)
	}
	return s
}

func (p *parser) parseComplex() (Selector, error) {
	s, err := p.parseCompound()
	if err != nil {
		return nil, err
	}
	for {
		c, ok := p.peek().(css.Combinator)
		if !ok {
			return s, nil
		} else if !combinators[c.Content] {
			return nil, fmt.Errorf("unsupported combinator: %q", c.Content)
		}
		p.index++
		right, err := p.parseCompound()
		if err != nil {
			return nil, err
		}
		s = &ComplexSelector{s, c.Content, right}
	}
}

func (p *parser) parseCompound() (Selector, error) {
	s := CompoundSelector{}
	for t := p.peek(); t != nil; t = p.peek() {
		simple, err := compileSimple(t)
		if err != nil {
			return nil, err
		} else if simple == nil {
			break
		}
		s = append(s, simple)
		p.index++
	}
	switch len(s) {
	case 0:
		if t := p.peek(); t != nil {
			return nil, fmt.Errorf("expected simple selector before %q", t.Text())
		}
		return nil, errors.New("expected simple selector")
	case 1:
		return s[0], nil
	}
	return s, nil
}

// compileSimple returns nil for tokens that do not belong to a compound selector.
func compileSimple(t css.Token) (Selector, error) {
	switch t := t.(type) {
	case css.TypeSelector:
		return TypeSelector{strings.ToLower(css.Unescape(t.Name)), css.Unescape(t.Namespace)}, nil
	case css.Universal:
		return UniversalSelector{css.Unescape(t.Namespace)}, nil
	case css.Class:
		return ClassSelector{css.Unescape(t.Name)}, nil
	case css.ID:
		return IDSelector{css.Unescape(t.Name)}, nil
	case css.Attribute:
		return compileAttribute(t)
	case css.PseudoClass:
		return compilePseudoClass(t)
	case css.PseudoElement:
		return nil, errors.New("unsupported pseudo element: " + t.Content)
	}
	return nil, nil
}

func compileAttribute(t css.Attribute) (Selector, error) {
	if t.Name == "" {
		return nil, fmt.Errorf("invalid attribute selector: missing name in %q", t.Content)
	} else if !strings.HasSuffix(t.Content, "]") {
		return nil, fmt.Errorf("invalid attribute selector: expected ] in %q", t.Content)
	} else if operators[t.Operator] == nil {
		return nil, fmt.Errorf("invalid attribute selector: bad operator %q", t.Operator)
	}
	value := t.Value
	if value != "" && (value[0] == '"' || value[0] == '\'') {
		if len(value) < 2 || value[len(value)-1] != value[0] {
			return nil, fmt.Errorf("invalid attribute selector: unterminated string in %q", t.Content)
		}
		value = value[1 : len(value)-1]
	}
	return AttributeSelector{
		Name:            strings.ToLower(css.Unescape(t.Name)),
		Namespace:       css.Unescape(t.Namespace),
		Operator:        t.Operator,
		Value:           css.Unescape(value),
		CaseInsensitive: t.CaseSensitive == "i" || t.CaseSensitive == "I",
	}, nil
}

func compilePseudoClass(t css.PseudoClass) (Selector, error) {
	name := strings.ToLower(css.Unescape(t.Name))
	if t.Argument == nil {
		match := pseudoClasses[name]
		if match == nil {
			return nil, errors.New("unsupported pseudo class: :" + name)
		}
		return PseudoSelector{name, nil, match}, nil
	}
	match, err := compilePseudoFunction(name, *t.Argument)
	if err != nil {
		return nil, fmt.Errorf(":%s(%s): %w", name, *t.Argument, err)
	}
	return PseudoSelector{name, t.Argument, match}, nil
}
