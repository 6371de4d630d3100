package css

import "strings"

const eof = 0

// scanner is a byte cursor over a selector or at-rule prelude.
// Multi-byte UTF-8 sequences consist of bytes >= 0x80, which are all name
// chars, so there is no need to decode runes.
type scanner struct {
	input  string
	pos    int
	tokens Tokens
}

func (s *scanner) peek(offset int) byte {
	if i := s.pos + offset; i < len(s.input) {
		return s.input[i]
	}
	return eof
}

func (s *scanner) done() bool { return s.pos >= len(s.input) }

func (s *scanner) emit(t Token) { s.tokens = append(s.tokens, t) }

func (s *scanner) skipWhitespace() {
	for !s.done() && isWhitespace(s.input[s.pos]) {
		s.pos++
	}
}

// isNameStart checks whether c is a valid character as the start of a name
// [_a-z-]|{nonascii}|{escape}
func isNameStart(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_' || c == '-' || c == '\\' || c >= 0x80
}

// isNameChar checks whether c is a valid character as a part of a name
// [_a-z0-9-]|{nonascii}|{escape}
func isNameChar(c byte) bool { return isNameStart(c) || isDigit(c) }

func isHexDigit(c byte) bool {
	return 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F' || '0' <= c && c <= '9'
}

func isWhitespace(c byte) bool { return c != eof && strings.IndexByte(" \t\f\r\n", c) != -1 }
func isDigit(c byte) bool      { return '0' <= c && c <= '9' }
func isQuote(c byte) bool      { return c == '"' || c == '\'' }

// readName consumes name chars including escapes and returns the raw (still escaped) name.
func (s *scanner) readName() string {
	start := s.pos
	for !s.done() {
		switch c := s.input[s.pos]; {
		case c == '\\':
			s.pos++
			if s.done() {
				return s.input[start:s.pos]
			} else if !isHexDigit(s.input[s.pos]) {
				s.pos++
				continue
			}
			for i := 0; i < 6 && isHexDigit(s.peek(0)); i++ {
				s.pos++
			}
			if isWhitespace(s.peek(0)) {
				s.pos++
			}
		case isNameChar(c):
			s.pos++
		default:
			return s.input[start:s.pos]
		}
	}
	return s.input[start:s.pos]
}

// readString consumes a quoted string and returns it including the quotes.
// An unterminated string runs until the end of the input.
func (s *scanner) readString() string {
	start, quote := s.pos, s.input[s.pos]
	for s.pos++; !s.done(); s.pos++ {
		switch s.input[s.pos] {
		case '\\':
			s.pos++
		case quote:
			s.pos++
			return s.input[start:s.pos]
		}
	}
	s.pos = len(s.input)
	return s.input[start:]
}

// startsNumber reports whether a number starts at the cursor: [+-]?\.?[0-9]
func (s *scanner) startsNumber() bool {
	i := 0
	if c := s.peek(0); c == '+' || c == '-' {
		i++
	}
	if s.peek(i) == '.' {
		i++
	}
	return isDigit(s.peek(i))
}

// readNumber consumes [+-]?[0-9]*(\.[0-9]+)?([eE][+-]?[0-9]+)?
// The exponent is only consumed if it is followed by a digit, "2em" is a dimension.
func (s *scanner) readNumber() string {
	start := s.pos
	if c := s.peek(0); c == '+' || c == '-' {
		s.pos++
	}
	s.acceptDigits()
	if s.peek(0) == '.' && isDigit(s.peek(1)) {
		s.pos++
		s.acceptDigits()
	}
	if c := s.peek(0); c == 'e' || c == 'E' {
		i := 1
		if c := s.peek(1); c == '+' || c == '-' {
			i++
		}
		if isDigit(s.peek(i)) {
			s.pos += i
			s.acceptDigits()
		}
	}
	return s.input[start:s.pos]
}

func (s *scanner) acceptDigits() {
	for isDigit(s.peek(0)) {
		s.pos++
	}
}

// readNamespace consumes a namespace prefix "ns|" or "*|" and returns the prefix.
// The "|" must be followed by a name or "*": "|=" is an attribute operator and "||" a combinator.
func (s *scanner) readNamespace() (string, bool) {
	start := s.pos
	var ns string
	if s.peek(0) == '*' {
		s.pos++
		ns = "*"
	} else {
		ns = s.readName()
	}
	if c := s.peek(1); ns != "" && s.peek(0) == '|' && (c == '*' || isNameStart(c)) {
		s.pos++
		return ns, true
	}
	s.pos = start
	return "", false
}

// readArgument consumes a parenthesized argument starting at "(" and returns its inner text.
// Nested parens are balanced and parens inside quoted strings are ignored.
// Unbalanced input runs until the end of the input.
func (s *scanner) readArgument() string {
	s.pos++
	start, lvl := s.pos, 1
	for !s.done() {
		switch c := s.input[s.pos]; {
		case c == '(':
			lvl++
		case c == ')':
			if lvl--; lvl == 0 {
				s.pos++
				return s.input[start : s.pos-1]
			}
		case c == '\\':
			s.pos++
		case isQuote(c):
			s.readString()
			continue
		}
		s.pos++
	}
	s.pos = len(s.input)
	return s.input[start:]
}
