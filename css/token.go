package css

import (
	"bytes"
	"encoding/json"
	"fmt"

	"golang.org/x/exp/slices"
)

// Token is one element of a tokenized selector or at-rule prelude.
// Text returns the source equivalent text of the token.
type Token interface {
	Kind() Kind
	Text() string
}

// Tokens is an immutable, append-only token sequence in source order.
type Tokens []Token

type Kind int

const (
	KindTypeSelector Kind = iota
	KindUniversal
	KindID
	KindClass
	KindAttribute
	KindPseudoClass
	KindPseudoElement
	KindCombinator
	KindComma
	KindAtRuleName
	KindIdentifier
	KindString
	KindHash
	KindNumber
	KindDimension
	KindPercentage
	KindFunction
	KindURL
	KindOperator
	KindDelimiter
)

var kindNames = [...]string{
	KindTypeSelector:  "type-selector",
	KindUniversal:     "universal",
	KindID:            "id",
	KindClass:         "class",
	KindAttribute:     "attribute",
	KindPseudoClass:   "pseudo-class",
	KindPseudoElement: "pseudo-element",
	KindCombinator:    "combinator",
	KindComma:         "comma",
	KindAtRuleName:    "at-rule-name",
	KindIdentifier:    "identifier",
	KindString:        "string",
	KindHash:          "hash",
	KindNumber:        "number",
	KindDimension:     "dimension",
	KindPercentage:    "percentage",
	KindFunction:      "function",
	KindURL:           "url",
	KindOperator:      "operator",
	KindDelimiter:     "delimiter",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Optional string fields are empty when the corresponding syntax did not occur,
// none of them can be empty when present. Argument is a pointer because
// ":x()" has an empty argument and ":x" has none.
type (
	TypeSelector struct {
		Content   string `json:"content"`
		Name      string `json:"name"`
		Namespace string `json:"namespace,omitempty"`
	}
	Universal struct {
		Content   string `json:"content"`
		Namespace string `json:"namespace,omitempty"`
	}
	ID struct {
		Content string `json:"content"`
		Name    string `json:"name"`
	}
	Class struct {
		Content string `json:"content"`
		Name    string `json:"name"`
	}
	Attribute struct {
		Content       string `json:"content"`
		Name          string `json:"name"`
		Namespace     string `json:"namespace,omitempty"`
		Operator      string `json:"operator,omitempty"`
		Value         string `json:"value,omitempty"`
		CaseSensitive string `json:"caseSensitive,omitempty"`
	}
	PseudoClass struct {
		Content  string  `json:"content"`
		Name     string  `json:"name"`
		Argument *string `json:"argument,omitempty"`
	}
	PseudoElement struct {
		Content  string  `json:"content"`
		Name     string  `json:"name"`
		Argument *string `json:"argument,omitempty"`
	}
	Combinator struct {
		Content string `json:"content"`
	}
	Comma struct {
		Content string `json:"content"`
	}
)

type (
	AtRuleName struct {
		Content string `json:"content"`
		Name    string `json:"name"`
	}
	Identifier struct {
		Content string `json:"content"`
		Value   string `json:"value"`
	}
	String struct {
		Content string `json:"content"`
		Value   string `json:"value"`
	}
	Hash struct {
		Content string `json:"content"`
		Value   string `json:"value"`
	}
	Number struct {
		Content string `json:"content"`
		Value   string `json:"value"`
	}
	Dimension struct {
		Content string `json:"content"`
		Value   string `json:"value"`
		Unit    string `json:"unit"`
	}
	Percentage struct {
		Content string `json:"content"`
		Value   string `json:"value"`
	}
	Function struct {
		Content  string `json:"content"`
		Name     string `json:"name"`
		Argument string `json:"argument"`
	}
	URL struct {
		Content string `json:"content"`
		Value   string `json:"value"`
	}
	Operator struct {
		Content  string `json:"content"`
		Operator string `json:"operator"`
	}
	Delimiter struct {
		Content   string `json:"content"`
		Delimiter string `json:"delimiter"`
	}
)

func (t TypeSelector) Kind() Kind  { return KindTypeSelector }
func (t Universal) Kind() Kind     { return KindUniversal }
func (t ID) Kind() Kind            { return KindID }
func (t Class) Kind() Kind         { return KindClass }
func (t Attribute) Kind() Kind     { return KindAttribute }
func (t PseudoClass) Kind() Kind   { return KindPseudoClass }
func (t PseudoElement) Kind() Kind { return KindPseudoElement }
func (t Combinator) Kind() Kind    { return KindCombinator }
func (t Comma) Kind() Kind         { return KindComma }
func (t AtRuleName) Kind() Kind    { return KindAtRuleName }
func (t Identifier) Kind() Kind    { return KindIdentifier }
func (t String) Kind() Kind        { return KindString }
func (t Hash) Kind() Kind          { return KindHash }
func (t Number) Kind() Kind        { return KindNumber }
func (t Dimension) Kind() Kind     { return KindDimension }
func (t Percentage) Kind() Kind    { return KindPercentage }
func (t Function) Kind() Kind      { return KindFunction }
func (t URL) Kind() Kind           { return KindURL }
func (t Operator) Kind() Kind      { return KindOperator }
func (t Delimiter) Kind() Kind     { return KindDelimiter }

func (t TypeSelector) Text() string  { return t.Content }
func (t Universal) Text() string     { return t.Content }
func (t ID) Text() string            { return t.Content }
func (t Class) Text() string         { return t.Content }
func (t Attribute) Text() string     { return t.Content }
func (t PseudoClass) Text() string   { return t.Content }
func (t PseudoElement) Text() string { return t.Content }
func (t Combinator) Text() string    { return t.Content }
func (t Comma) Text() string         { return t.Content }
func (t AtRuleName) Text() string    { return t.Content }
func (t Identifier) Text() string    { return t.Content }
func (t String) Text() string        { return t.Content }
func (t Hash) Text() string          { return t.Content }
func (t Number) Text() string        { return t.Content }
func (t Dimension) Text() string     { return t.Content }
func (t Percentage) Text() string    { return t.Content }
func (t Function) Text() string      { return t.Content }
func (t URL) Text() string           { return t.Content }
func (t Operator) Text() string      { return t.Content }
func (t Delimiter) Text() string     { return t.Content }

// Append returns a new sequence consisting of ts followed by more.
// ts itself is never modified and the result never shares its backing array,
// so independent chains may branch off the same prefix.
func (ts Tokens) Append(more ...Token) Tokens {
	if len(ts)+len(more) == 0 {
		return nil
	}
	return append(slices.Clone(ts), more...)
}

func (ts Tokens) String() string { return Stringify(ts) }

func (ts Tokens) MarshalJSON() ([]byte, error) {
	b := &bytes.Buffer{}
	b.WriteByte('[')
	for i, t := range ts {
		if i > 0 {
			b.WriteByte(',')
		}
		kind, err := json.Marshal(t.Kind())
		if err != nil {
			return nil, err
		}
		fields, err := json.Marshal(t)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s token: %w", t.Kind(), err)
		}
		b.WriteString(`{"kind":`)
		b.Write(kind)
		if len(fields) > 2 {
			b.WriteByte(',')
		}
		b.Write(fields[1:])
	}
	b.WriteByte(']')
	return b.Bytes(), nil
}
