package css

import "strings"

// TokenizeSelector splits a selector into tokens in a single left-to-right scan.
// It never fails: unknown characters are skipped and unterminated constructs
// run until the end of the input.
func TokenizeSelector(input string) Tokens {
	s := &scanner{input: input}
	for !s.done() {
		switch c := s.input[s.pos]; {
		case isWhitespace(c):
			s.lexSpace()
		case c == ',':
			s.pos++
			s.emit(Comma{Content: ","})
			s.skipWhitespace()
		case isCombinatorStart(c, s.peek(1)):
			s.lexCombinator()
		case c == '#':
			s.pos++
			if name := s.readName(); name != "" {
				s.emit(ID{Content: "#" + name, Name: name})
			}
		case c == '.':
			s.pos++
			if name := s.readName(); name != "" {
				s.emit(Class{Content: "." + name, Name: name})
			}
		case c == '[':
			s.lexAttribute()
		case c == ':':
			s.lexPseudo()
		case c == '*' || isNameStart(c):
			s.lexTypeOrUniversal()
		default:
			s.pos++
		}
	}
	return s.tokens
}

func isCombinatorStart(c, next byte) bool {
	return c == '>' || c == '+' || c == '~' || c == '|' && next == '|'
}

// lexSpace absorbs whitespace into a following explicit combinator, or emits a
// descendant combinator unless the input ends or a comma follows.
func (s *scanner) lexSpace() {
	s.skipWhitespace()
	if s.done() || s.peek(0) == ',' {
		return
	} else if isCombinatorStart(s.peek(0), s.peek(1)) {
		s.lexCombinator()
	} else {
		s.emit(Combinator{Content: " "})
	}
}

func (s *scanner) lexCombinator() {
	op := s.input[s.pos : s.pos+1]
	if op == "|" {
		op = "||"
	}
	s.pos += len(op)
	s.emit(Combinator{Content: op})
	s.skipWhitespace()
}

func (s *scanner) lexAttribute() {
	start := s.pos
	s.pos++
	s.skipWhitespace()
	a := Attribute{}
	if ns, ok := s.readNamespace(); ok {
		a.Namespace = ns
	}
	a.Name = s.readName()
	s.skipWhitespace()
	if c := s.peek(0); strings.IndexByte("~|^$*", c) != -1 && s.peek(1) == '=' {
		a.Operator = s.input[s.pos : s.pos+2]
	} else if c == '=' {
		a.Operator = "="
	}
	if a.Operator != "" {
		s.pos += len(a.Operator)
		s.skipWhitespace()
		if isQuote(s.peek(0)) {
			a.Value = s.readString()
		} else {
			a.Value = s.readBareValue()
		}
		s.skipWhitespace()
		if c := s.peek(0); strings.IndexByte("iIsS", c) != -1 && !isNameChar(s.peek(1)) {
			a.CaseSensitive = string(c)
			s.pos++
			s.skipWhitespace()
		}
	}
	if s.peek(0) == ']' {
		s.pos++
	}
	a.Content = s.input[start:s.pos]
	s.emit(a)
}

func (s *scanner) readBareValue() string {
	start := s.pos
	for c := s.peek(0); c != eof && c != ']' && !isWhitespace(c); c = s.peek(0) {
		if c == '\\' {
			s.pos++
		}
		s.pos++
	}
	if s.pos > len(s.input) {
		s.pos = len(s.input)
	}
	return s.input[start:s.pos]
}

func (s *scanner) lexPseudo() {
	start, element := s.pos, s.peek(1) == ':'
	if s.pos++; element {
		s.pos++
	}
	name := s.readName()
	if name == "" {
		return
	}
	var argument *string
	if s.peek(0) == '(' {
		a := s.readArgument()
		argument = &a
	}
	if content := s.input[start:s.pos]; element {
		s.emit(PseudoElement{Content: content, Name: name, Argument: argument})
	} else {
		s.emit(PseudoClass{Content: content, Name: name, Argument: argument})
	}
}

func (s *scanner) lexTypeOrUniversal() {
	start := s.pos
	ns, _ := s.readNamespace()
	if s.peek(0) == '*' {
		s.pos++
		s.emit(Universal{Content: s.input[start:s.pos], Namespace: ns})
		return
	}
	name := s.readName()
	s.emit(TypeSelector{Content: s.input[start:s.pos], Name: name, Namespace: ns})
}

// StringifySelector returns the normalized selector for ts: explicit combinators
// are surrounded by single spaces, commas are followed by one.
func StringifySelector(ts Tokens) string {
	var sb strings.Builder
	for _, t := range ts {
		switch t := t.(type) {
		case Combinator:
			if op := strings.TrimSpace(t.Content); op == "" {
				sb.WriteString(" ")
			} else {
				sb.WriteString(" " + op + " ")
			}
		case Comma:
			sb.WriteString(", ")
		default:
			sb.WriteString(t.Text())
		}
	}
	return sb.String()
}
