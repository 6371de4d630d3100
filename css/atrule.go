package css

import "strings"

var logicalOperators = map[string]bool{"and": true, "or": true, "not": true}

// TokenizeAtRule splits an at-rule prelude such as "@media screen and (min-width: 768px)"
// into tokens. Like TokenizeSelector it never fails and skips unknown characters.
func TokenizeAtRule(input string) Tokens {
	s := &scanner{input: input}
	for !s.done() {
		switch c := s.input[s.pos]; {
		case isWhitespace(c):
			s.skipWhitespace()
		case c == '@':
			s.pos++
			if name := s.readName(); name != "" {
				s.emit(AtRuleName{Content: "@" + name, Name: name})
			}
		case isQuote(c):
			str := s.readString()
			s.emit(String{Content: str, Value: unquote(str)})
		case c == '#':
			s.pos++
			if v := s.readName(); v != "" {
				s.emit(Hash{Content: "#" + v, Value: v})
			}
		case s.startsNumber():
			s.lexNumeric()
		case isNameStart(c):
			s.lexIdentifier()
		case c == '>' || c == '<' || c == '=':
			op := s.input[s.pos : s.pos+1]
			if c != '=' && s.peek(1) == '=' {
				op = s.input[s.pos : s.pos+2]
			}
			s.pos += len(op)
			s.emit(Operator{Content: op, Operator: op})
		case strings.IndexByte("(),:/", c) != -1:
			d := s.input[s.pos : s.pos+1]
			s.pos++
			s.emit(Delimiter{Content: d, Delimiter: d})
		default:
			s.pos++
		}
	}
	return s.tokens
}

func (s *scanner) lexNumeric() {
	v := s.readNumber()
	if isNameStart(s.peek(0)) {
		unit := s.readName()
		s.emit(Dimension{Content: v + unit, Value: v, Unit: unit})
	} else if s.peek(0) == '%' {
		s.pos++
		s.emit(Percentage{Content: v + "%", Value: v})
	} else {
		s.emit(Number{Content: v, Value: v})
	}
}

// lexIdentifier emits logical operators, functions, urls and plain identifiers.
// and/or/not are operators even when followed by "(" - "not (color)" is not a function call.
func (s *scanner) lexIdentifier() {
	start := s.pos
	name := s.readName()
	if logicalOperators[name] {
		s.emit(Operator{Content: name, Operator: name})
		return
	}
	end := s.pos
	s.skipWhitespace()
	if s.peek(0) != '(' {
		s.pos = end
		s.emit(Identifier{Content: name, Value: name})
		return
	}
	argument := s.readArgument()
	if content := s.input[start:s.pos]; name == "url" {
		s.emit(URL{Content: content, Value: argument})
	} else {
		s.emit(Function{Content: content, Name: name, Argument: argument})
	}
}

func unquote(s string) string {
	if len(s) < 2 || s[len(s)-1] != s[0] {
		return s[1:]
	}
	return s[1 : len(s)-1]
}

// StringifyAtRule joins the token contents with single spaces, e.g.
// "@media screen and ( min-width : 768px )".
func StringifyAtRule(ts Tokens) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.Text()
	}
	return strings.Join(parts, " ")
}
