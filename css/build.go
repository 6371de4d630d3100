package css

import "strings"

// Constructors for tokens from unescaped names, e.g. for appending to an
// existing sequence without re-tokenizing:
//
//	ts := TokenizeSelector(".btn").Append(NewPseudoClass("hover"))

func NewType(name string) TypeSelector {
	name = EscapeIdentifier(name)
	return TypeSelector{Content: name, Name: name}
}

// InNamespace returns t prefixed with ns, "*" for any namespace.
func (t TypeSelector) InNamespace(ns string) TypeSelector {
	t.Namespace = escapeNamespace(ns)
	t.Content = namespacePrefix(t.Namespace) + t.Name
	return t
}

func NewUniversal() Universal { return Universal{Content: "*"} }

func (t Universal) InNamespace(ns string) Universal {
	t.Namespace = escapeNamespace(ns)
	t.Content = namespacePrefix(t.Namespace) + "*"
	return t
}

func NewID(name string) ID {
	name = EscapeIdentifier(name)
	return ID{Content: "#" + name, Name: name}
}

func NewClass(name string) Class {
	name = EscapeIdentifier(name)
	return Class{Content: "." + name, Name: name}
}

// NewAttribute returns [name] for an empty op and [name op "value"] otherwise.
func NewAttribute(name, op, value string) Attribute {
	a := Attribute{Name: EscapeIdentifier(name)}
	if op != "" {
		a.Operator, a.Value = op, `"`+EscapeString(value)+`"`
	}
	return a.withContent()
}

func (a Attribute) InNamespace(ns string) Attribute {
	a.Namespace = escapeNamespace(ns)
	return a.withContent()
}

// WithCaseFlag sets the trailing i or s flag. Attributes without operator take no flag.
func (a Attribute) WithCaseFlag(flag string) Attribute {
	if a.Operator != "" {
		a.CaseSensitive = flag
	}
	return a.withContent()
}

func (a Attribute) withContent() Attribute {
	var sb strings.Builder
	sb.WriteString("[" + namespacePrefix(a.Namespace) + a.Name + a.Operator + a.Value)
	if a.CaseSensitive != "" {
		sb.WriteString(" " + a.CaseSensitive)
	}
	sb.WriteString("]")
	a.Content = sb.String()
	return a
}

// NewPseudoClass returns :name, or :name(arguments) with the arguments joined
// by ", " if any are given. Arguments are used verbatim.
func NewPseudoClass(name string, arguments ...string) PseudoClass {
	name = EscapeIdentifier(name)
	argument, wrapped := joinArguments(arguments)
	return PseudoClass{Content: ":" + name + wrapped, Name: name, Argument: argument}
}

func NewPseudoElement(name string, arguments ...string) PseudoElement {
	name = EscapeIdentifier(name)
	argument, wrapped := joinArguments(arguments)
	return PseudoElement{Content: "::" + name + wrapped, Name: name, Argument: argument}
}

// NewCombinator returns a combinator for one of " ", ">", "+", "~", "||".
func NewCombinator(op string) Combinator { return Combinator{Content: op} }

func NewComma() Comma { return Comma{Content: ","} }

func joinArguments(arguments []string) (*string, string) {
	if arguments == nil {
		return nil, ""
	}
	argument := strings.Join(arguments, ", ")
	return &argument, "(" + argument + ")"
}

func escapeNamespace(ns string) string {
	if ns == "*" {
		return ns
	}
	return EscapeIdentifier(ns)
}

func namespacePrefix(ns string) string {
	if ns == "" {
		return ""
	}
	return ns + "|"
}
