package css

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/andybalholm/cascadia"
	ericchiang "github.com/ericchiang/css"
)

type tokenizeTest struct {
	input    string
	expected Tokens
}

var selectorTests = []tokenizeTest{
	{"", nil},
	{"   ", nil},
	{".a.b", Tokens{Class{".a", "a"}, Class{".b", "b"}}},
	{"div > span", Tokens{TypeSelector{Content: "div", Name: "div"}, Combinator{">"}, TypeSelector{Content: "span", Name: "span"}}},
	{"div>span", Tokens{TypeSelector{Content: "div", Name: "div"}, Combinator{">"}, TypeSelector{Content: "span", Name: "span"}}},
	{"ul li", Tokens{TypeSelector{Content: "ul", Name: "ul"}, Combinator{" "}, TypeSelector{Content: "li", Name: "li"}}},
	{"  div  ", Tokens{Combinator{" "}, TypeSelector{Content: "div", Name: "div"}}},
	{" div", Tokens{Combinator{" "}, TypeSelector{Content: "div", Name: "div"}}},
	{"a\n\t> b", Tokens{TypeSelector{Content: "a", Name: "a"}, Combinator{">"}, TypeSelector{Content: "b", Name: "b"}}},
	{"h1+p ~ span", Tokens{
		TypeSelector{Content: "h1", Name: "h1"}, Combinator{"+"},
		TypeSelector{Content: "p", Name: "p"}, Combinator{"~"},
		TypeSelector{Content: "span", Name: "span"},
	}},
	{"col || td", Tokens{TypeSelector{Content: "col", Name: "col"}, Combinator{"||"}, TypeSelector{Content: "td", Name: "td"}}},
	{"a ,  b", Tokens{TypeSelector{Content: "a", Name: "a"}, Comma{","}, TypeSelector{Content: "b", Name: "b"}}},
	{"div.card#main", Tokens{TypeSelector{Content: "div", Name: "div"}, Class{".card", "card"}, ID{"#main", "main"}}},
	{`.a\:b`, Tokens{Class{`.a\:b`, `a\:b`}}},
	{"*", Tokens{Universal{Content: "*"}}},
	{"*|*", Tokens{Universal{Content: "*|*", Namespace: "*"}}},
	{"*|svg", Tokens{TypeSelector{Content: "*|svg", Name: "svg", Namespace: "*"}}},
	{"svg|*", Tokens{Universal{Content: "svg|*", Namespace: "svg"}}},
	{"svg|rect", Tokens{TypeSelector{Content: "svg|rect", Name: "rect", Namespace: "svg"}}},
	{"[disabled]", Tokens{Attribute{Content: "[disabled]", Name: "disabled"}}},
	{`[data-x="y" i]`, Tokens{Attribute{Content: `[data-x="y" i]`, Name: "data-x", Operator: "=", Value: `"y"`, CaseSensitive: "i"}}},
	{"[ns|attr]", Tokens{Attribute{Content: "[ns|attr]", Name: "attr", Namespace: "ns"}}},
	{"[attr|=val]", Tokens{Attribute{Content: "[attr|=val]", Name: "attr", Operator: "|=", Value: "val"}}},
	{"[*|lang]", Tokens{Attribute{Content: "[*|lang]", Name: "lang", Namespace: "*"}}},
	{`a[href^='http']`, Tokens{TypeSelector{Content: "a", Name: "a"}, Attribute{Content: `[href^='http']`, Name: "href", Operator: "^=", Value: `'http'`}}},
	{`[ title ~= "x y" S ]`, Tokens{Attribute{Content: `[ title ~= "x y" S ]`, Name: "title", Operator: "~=", Value: `"x y"`, CaseSensitive: "S"}}},
	{"[lang=in]", Tokens{Attribute{Content: "[lang=in]", Name: "lang", Operator: "=", Value: "in"}}},
	{"[a", Tokens{Attribute{Content: "[a", Name: "a"}}},
	{":hover", Tokens{PseudoClass{Content: ":hover", Name: "hover"}}},
	{":x()", Tokens{PseudoClass{Content: ":x()", Name: "x", Argument: argument("")}}},
	{"::x()", Tokens{PseudoElement{Content: "::x()", Name: "x", Argument: argument("")}}},
	{":not(.a, .b)", Tokens{PseudoClass{Content: ":not(.a, .b)", Name: "not", Argument: argument(".a, .b")}}},
	{"li:nth-child(2n+1)", Tokens{TypeSelector{Content: "li", Name: "li"}, PseudoClass{Content: ":nth-child(2n+1)", Name: "nth-child", Argument: argument("2n+1")}}},
	{`:is("a)", :not(.b))`, Tokens{PseudoClass{Content: `:is("a)", :not(.b))`, Name: "is", Argument: argument(`"a)", :not(.b)`)}}},
	{"a::before", Tokens{TypeSelector{Content: "a", Name: "a"}, PseudoElement{Content: "::before", Name: "before"}}},
	{"::part(label)", Tokens{PseudoElement{Content: "::part(label)", Name: "part", Argument: argument("label")}}},
	{":not(.a", Tokens{PseudoClass{Content: ":not(.a", Name: "not", Argument: argument(".a")}}},
	{"a > > b", Tokens{TypeSelector{Content: "a", Name: "a"}, Combinator{">"}, Combinator{">"}, TypeSelector{Content: "b", Name: "b"}}},
}

var atRuleTests = []tokenizeTest{
	{"@media screen and (min-width: 768px)", Tokens{
		AtRuleName{"@media", "media"}, Identifier{"screen", "screen"}, Operator{"and", "and"},
		Delimiter{"(", "("}, Identifier{"min-width", "min-width"}, Delimiter{":", ":"},
		Dimension{"768px", "768", "px"}, Delimiter{")", ")"},
	}},
	{"@supports not (display: grid)", Tokens{
		AtRuleName{"@supports", "supports"}, Operator{"not", "not"}, Delimiter{"(", "("},
		Identifier{"display", "display"}, Delimiter{":", ":"}, Identifier{"grid", "grid"}, Delimiter{")", ")"},
	}},
	{"@supports not(display: grid)", Tokens{
		AtRuleName{"@supports", "supports"}, Operator{"not", "not"}, Delimiter{"(", "("},
		Identifier{"display", "display"}, Delimiter{":", ":"}, Identifier{"grid", "grid"}, Delimiter{")", ")"},
	}},
	{"@media (400px <= width < 50em)", Tokens{
		AtRuleName{"@media", "media"}, Delimiter{"(", "("}, Dimension{"400px", "400", "px"},
		Operator{"<=", "<="}, Identifier{"width", "width"}, Operator{"<", "<"},
		Dimension{"50em", "50", "em"}, Delimiter{")", ")"},
	}},
	{"@media (aspect-ratio: 16/9)", Tokens{
		AtRuleName{"@media", "media"}, Delimiter{"(", "("}, Identifier{"aspect-ratio", "aspect-ratio"},
		Delimiter{":", ":"}, Number{"16", "16"}, Delimiter{"/", "/"}, Number{"9", "9"}, Delimiter{")", ")"},
	}},
	{`@charset "UTF-8";`, Tokens{AtRuleName{"@charset", "charset"}, String{`"UTF-8"`, "UTF-8"}}},
	{`@import url("theme.css") layer(base) print`, Tokens{
		AtRuleName{"@import", "import"}, URL{`url("theme.css")`, `"theme.css"`},
		Function{"layer(base)", "layer", "base"}, Identifier{"print", "print"},
	}},
	{"@namespace svg url(http://www.w3.org/2000/svg)", Tokens{
		AtRuleName{"@namespace", "namespace"}, Identifier{"svg", "svg"},
		URL{"url(http://www.w3.org/2000/svg)", "http://www.w3.org/2000/svg"},
	}},
	{"@layer base, components", Tokens{
		AtRuleName{"@layer", "layer"}, Identifier{"base", "base"}, Delimiter{",", ","}, Identifier{"components", "components"},
	}},
	{"@page :first", Tokens{AtRuleName{"@page", "page"}, Delimiter{":", ":"}, Identifier{"first", "first"}}},
	{"@property --brand-color", Tokens{AtRuleName{"@property", "property"}, Identifier{"--brand-color", "--brand-color"}}},
	{"@keyframes x 0% -1.5 .5 +2 1e3 #fff", Tokens{
		AtRuleName{"@keyframes", "keyframes"}, Identifier{"x", "x"}, Percentage{"0%", "0"},
		Number{"-1.5", "-1.5"}, Number{".5", ".5"}, Number{"+2", "+2"}, Number{"1e3", "1e3"}, Hash{"#fff", "fff"},
	}},
	{"@container card (min-width: calc(10px + 2em))", Tokens{
		AtRuleName{"@container", "container"},
		Function{"card (min-width: calc(10px + 2em))", "card", "min-width: calc(10px + 2em)"},
	}},
	{"@media screen and (color) or print", Tokens{
		AtRuleName{"@media", "media"}, Identifier{"screen", "screen"}, Operator{"and", "and"},
		Delimiter{"(", "("}, Identifier{"color", "color"}, Delimiter{")", ")"},
		Operator{"or", "or"}, Identifier{"print", "print"},
	}},
	{"@media ! ; { }", Tokens{AtRuleName{"@media", "media"}}},
	{"@import URL(a.css)", Tokens{AtRuleName{"@import", "import"}, Function{"URL(a.css)", "URL", "a.css"}}},
}

var stringifyTests = []struct{ input, expected string }{
	{"", ""},
	{"div>span", "div > span"},
	{"div > span", "div > span"},
	{"a,b", "a, b"},
	{"a , b", "a, b"},
	{"h1 +p~ span", "h1 + p ~ span"},
	{"ul   li", "ul li"},
	{"col||td", "col || td"},
	{":not(.a, .b)", ":not(.a, .b)"},
	{`[data-x="y" i]`, `[data-x="y" i]`},
	{"div.card#main::after", "div.card#main::after"},
	{"@media screen and (min-width: 768px)", "@media screen and ( min-width : 768px )"},
	{"  @media print", "@media print"},
	{"@supports (display:grid) and (not (display:inline-grid))", "@supports ( display : grid ) and ( not ( display : inline-grid ) )"},
}

func TestTokenizeSelector(t *testing.T) {
	for _, test := range selectorTests {
		if actual := TokenizeSelector(test.input); !reflect.DeepEqual(actual, test.expected) {
			t.Errorf("%s\ngot:\n\t'%#v'\n\nexpected:\n\t'%#v'", test.input, actual, test.expected)
		}
	}
}

func TestTokenizeAtRule(t *testing.T) {
	for _, test := range atRuleTests {
		if actual := TokenizeAtRule(test.input); !reflect.DeepEqual(actual, test.expected) {
			t.Errorf("%s\ngot:\n\t'%#v'\n\nexpected:\n\t'%#v'", test.input, actual, test.expected)
		}
	}
}

func TestStringify(t *testing.T) {
	for _, test := range stringifyTests {
		if actual := Stringify(Tokenize(test.input)); actual != test.expected {
			t.Errorf("%q\ngot:\n\t'%s'\n\nexpected:\n\t'%s'", test.input, actual, test.expected)
		}
	}
}

func TestEmpty(t *testing.T) {
	if ts := Tokenize(""); len(ts) != 0 {
		t.Errorf("expected no tokens but got %#v", ts)
	}
	if s := Stringify(nil); s != "" {
		t.Errorf("expected empty string but got %q", s)
	}
	if s := Stringify(Tokens{}); s != "" {
		t.Errorf("expected empty string but got %q", s)
	}
}

func TestIdempotence(t *testing.T) {
	inputs := []string{}
	for _, test := range selectorTests {
		inputs = append(inputs, test.input)
	}
	for _, test := range atRuleTests {
		inputs = append(inputs, test.input)
	}
	for _, test := range stringifyTests {
		inputs = append(inputs, test.input)
	}
	for _, input := range inputs {
		once := Stringify(Tokenize(input))
		if twice := Stringify(Tokenize(once)); once != twice {
			t.Errorf("%q\ngot:\n\t'%s'\n\nexpected:\n\t'%s'", input, twice, once)
		}
	}
}

func TestAtRuleValueRoundTrip(t *testing.T) {
	for _, value := range []string{`"str"`, `'it\'s'`, "12", "-0.5", "12px", "1.5rem", "50%", "#abc", "calc(1px + (2px * 3))", "url(a.png)", `url("a b.png")`} {
		input := "@x " + value
		ts := TokenizeAtRule(input)
		if len(ts) != 2 || ts[1].Text() != value {
			t.Errorf("%s: expected a single value token but got %#v", value, ts)
		} else if actual := StringifyAtRule(ts); actual != input {
			t.Errorf("%s\ngot:\n\t'%s'\n\nexpected:\n\t'%s'", value, actual, input)
		}
	}
}

func TestDispatch(t *testing.T) {
	if k := Tokenize(" \n@media print")[0].Kind(); k != KindAtRuleName {
		t.Errorf("expected at-rule-name but got %s", k)
	}
	if k := Tokenize(".media")[0].Kind(); k != KindClass {
		t.Errorf("expected class but got %s", k)
	}
	// an at-rule token that is not first does not switch to at-rule stringification
	ts := Tokens{Identifier{"a", "a"}, AtRuleName{"@b", "b"}}
	if s := Stringify(ts); s != "a@b" {
		t.Errorf("expected selector stringification but got %q", s)
	}
}

func TestAppend(t *testing.T) {
	base := make(Tokens, 1, 8)
	base[0] = NewClass("btn")
	hover, focus := base.Append(NewPseudoClass("hover")), base.Append(NewPseudoClass("focus"))
	if s := hover.String(); s != ".btn:hover" {
		t.Errorf("expected .btn:hover but got %q", s)
	}
	if s := focus.String(); s != ".btn:focus" {
		t.Errorf("expected .btn:focus but got %q", s)
	}
	if len(base) != 1 {
		t.Errorf("expected base to be unchanged but got %#v", base)
	}
	joined := hover.Append(NewComma()).Append(focus...)
	if s := joined.String(); s != ".btn:hover, .btn:focus" {
		t.Errorf("expected joined selector but got %q", s)
	}
	if ts := (Tokens{}).Append(); ts != nil {
		t.Errorf("expected nil but got %#v", ts)
	}
}

func TestConstructors(t *testing.T) {
	ts := Tokens{
		NewType("div"), NewClass("a.b"), NewID("1st"), NewAttribute("data-x", "=", `say "hi"`),
		NewCombinator(">"), NewUniversal(), NewPseudoElement("before"),
		NewComma(), NewAttribute("hidden", "", ""), NewPseudoClass("not", ".x"),
	}
	expected := `div.a\.b#\31 st[data-x="say \"hi\""] > *::before, [hidden]:not(.x)`
	if actual := ts.String(); actual != expected {
		t.Errorf("got:\n\t'%s'\n\nexpected:\n\t'%s'", actual, expected)
	}
	if actual := Tokenize(expected); !reflect.DeepEqual(actual, ts) {
		t.Errorf("got:\n\t'%#v'\n\nexpected:\n\t'%#v'", actual, ts)
	}
	if name := Unescape(NewClass("a.b").Name); name != "a.b" {
		t.Errorf("expected a.b but got %q", name)
	}
}

func TestNamespacedConstructors(t *testing.T) {
	ts := Tokens{
		NewType("rect").InNamespace("svg"), NewComma(), NewUniversal().InNamespace("*"),
		NewAttribute("lang", "|=", "en").InNamespace("*").WithCaseFlag("i"),
	}
	expected := `svg|rect, *|*[*|lang|="en" i]`
	if actual := ts.String(); actual != expected {
		t.Errorf("got:\n\t'%s'\n\nexpected:\n\t'%s'", actual, expected)
	}
	if actual := Tokenize(expected); !reflect.DeepEqual(actual, ts) {
		t.Errorf("got:\n\t'%#v'\n\nexpected:\n\t'%#v'", actual, ts)
	}
	if a := NewAttribute("hidden", "", "").WithCaseFlag("i"); a.Content != "[hidden]" {
		t.Errorf("expected flag to be dropped without operator but got %q", a.Content)
	}
}

func TestPseudoArgumentPresence(t *testing.T) {
	empty, none := TokenizeSelector(":x()")[0].(PseudoClass), TokenizeSelector(":x")[0].(PseudoClass)
	if empty.Argument == nil || *empty.Argument != "" {
		t.Errorf("expected empty argument for :x() but got %#v", empty.Argument)
	}
	if none.Argument != nil {
		t.Errorf("expected no argument for :x but got %q", *none.Argument)
	}
	for _, test := range []struct {
		token    Token
		expected string
	}{
		{NewPseudoClass("x"), `[{"kind":"pseudo-class","content":":x","name":"x"}]`},
		{NewPseudoClass("x", ""), `[{"kind":"pseudo-class","content":":x()","name":"x","argument":""}]`},
		{NewPseudoClass("is", ".a", ".b"), `[{"kind":"pseudo-class","content":":is(.a, .b)","name":"is","argument":".a, .b"}]`},
	} {
		bs, err := json.Marshal(Tokens{test.token})
		if err != nil {
			t.Fatal(err)
		} else if string(bs) != test.expected {
			t.Errorf("got:\n\t'%s'\n\nexpected:\n\t'%s'", string(bs), test.expected)
		}
	}
}

func TestSkippedCharacters(t *testing.T) {
	// every whitespace run in front of a compound emits a descendant combinator,
	// even if the character before it was skipped
	expected := Tokens{TypeSelector{Content: "a", Name: "a"}, Combinator{" "}, Combinator{" "}, TypeSelector{Content: "b", Name: "b"}}
	if actual := TokenizeSelector("a $ b"); !reflect.DeepEqual(actual, expected) {
		t.Errorf("got:\n\t'%#v'\n\nexpected:\n\t'%#v'", actual, expected)
	}
	if actual := TokenizeSelector("$ !"); !reflect.DeepEqual(actual, Tokens{Combinator{" "}}) {
		t.Errorf("expected only a combinator but got %#v", actual)
	}
}

func TestMarshalJSON(t *testing.T) {
	bs, err := json.Marshal(Tokenize(`.a [x|=y]`))
	if err != nil {
		t.Fatal(err)
	}
	expected := `[{"kind":"class","content":".a","name":"a"},{"kind":"combinator","content":" "},` +
		`{"kind":"attribute","content":"[x|=y]","name":"x","operator":"|=","value":"y"}]`
	if string(bs) != expected {
		t.Errorf("got:\n\t'%s'\n\nexpected:\n\t'%s'", string(bs), expected)
	}
	if bs, _ := json.Marshal(Tokens(nil)); string(bs) != "[]" {
		t.Errorf("expected [] but got %s", bs)
	}
}

func TestKindString(t *testing.T) {
	for k, expected := range map[Kind]string{KindTypeSelector: "type-selector", KindAtRuleName: "at-rule-name", KindDelimiter: "delimiter", Kind(99): "kind(99)"} {
		if actual := k.String(); actual != expected {
			t.Errorf("got %q expected %q", actual, expected)
		}
	}
}

var crossCheckSelectors = []string{"div>span", "ul   li", ".a.b", "div.card#main", `a[href="x"]`, "h1+p~span", "li:first-child"}

func TestCascadiaAcceptsStringified(t *testing.T) {
	selectors := append([]string{":not(.a, .b)", "a,b", "li:nth-child(2n+1)", `input[type='text']`, "[lang|=en]"}, crossCheckSelectors...)
	for _, selector := range selectors {
		s := Stringify(Tokenize(selector))
		if _, err := cascadia.ParseGroup(s); err != nil {
			t.Errorf("%s: cascadia rejected %q: %s", selector, s, err)
		}
	}
}

func TestEricChiangAcceptsStringified(t *testing.T) {
	for _, selector := range crossCheckSelectors {
		s := Stringify(Tokenize(selector))
		if _, err := ericchiang.Parse(s); err != nil {
			t.Errorf("%s: ericchiang/css rejected %q: %s", selector, s, err)
		}
	}
}

const benchmarkSelector = `div.card#main > ul li:nth-child(2n+1) a[href^="http" i]:not(.external, .x), col || td`

func BenchmarkTokenize(b *testing.B) {
	for n := 0; n < b.N; n++ {
		Stringify(Tokenize(benchmarkSelector))
	}
}

func BenchmarkCascadiaParse(b *testing.B) {
	for n := 0; n < b.N; n++ {
		cascadia.ParseGroup(`div.card#main > ul li:nth-child(2n+1) a[href^="http"]:not(.external, .x)`)
	}
}

func BenchmarkEricChiangParse(b *testing.B) {
	for n := 0; n < b.N; n++ {
		ericchiang.Parse(`div.card#main > ul li a[href^="http"]`)
	}
}

func argument(s string) *string { return &s }
