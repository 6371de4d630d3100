// https://drafts.csswg.org/cssom/#common-serializing-idioms
package css

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// EscapeIdentifier escapes unescaped so it can be used as the name of an
// id, class, type or pseudo selector.
func EscapeIdentifier(unescaped string) string {
	var sb strings.Builder
	for i := 0; i < len(unescaped); {
		r, w := utf8.DecodeRuneInString(unescaped[i:])
		switch {
		case r == '\u0000':
			sb.WriteRune('\uFFFD')
		case r >= '\u0001' && r <= '\u001F', r == '\u007F',
			i == 0 && r >= '0' && r <= '9',
			i == 1 && r >= '0' && r <= '9' && unescaped[0] == '-':
			sb.WriteString(`\` + strconv.FormatInt(int64(r), 16) + " ")
		case i == 0 && len(unescaped) == 1 && r == '-':
			sb.WriteString(`\-`)
		case r == '-' || r == '_' || r >= '\u0080' ||
			r >= '0' && r <= '9' ||
			r >= 'A' && r <= 'Z' ||
			r >= 'a' && r <= 'z':
			sb.WriteRune(r)
		default:
			sb.WriteString(`\` + string(r))
		}
		i += w
	}
	return sb.String()
}

// EscapeString escapes unescaped for use inside a double quoted string.
func EscapeString(unescaped string) string {
	var sb strings.Builder
	for i := 0; i < len(unescaped); {
		r, w := utf8.DecodeRuneInString(unescaped[i:])
		switch {
		case r == '\u0000':
			sb.WriteRune('\uFFFD')
		case r >= '\u0001' && r <= '\u001F', r == '\u007F':
			sb.WriteString(`\` + strconv.FormatInt(int64(r), 16) + " ")
		case r == '"' || r == '\\':
			sb.WriteString(`\` + string(r))
		default:
			sb.WriteRune(r)
		}
		i += w
	}
	return sb.String()
}

// Unescape resolves backslash escapes in names and string contents.
// Tokens keep their names escaped, consumers comparing names against
// document values need to unescape them first.
func Unescape(escaped string) string {
	var sb strings.Builder
	for i := 0; i < len(escaped); {
		r, w := utf8.DecodeRuneInString(escaped[i:])
		i += w
		switch {
		case r == '\uFFFD':
			sb.WriteRune('\u0000')
		case r == '\\' && i < len(escaped) && !isHexDigit(escaped[i]):
			r, w := utf8.DecodeRuneInString(escaped[i:])
			sb.WriteRune(r)
			i += w
		case r == '\\' && i < len(escaped):
			j := i
			for ; j < i+6 && j < len(escaped) && isHexDigit(escaped[j]); j++ {
			}
			cp, _ := strconv.ParseUint(escaped[i:j], 16, 32)
			if cp == 0 || cp > utf8.MaxRune {
				cp = utf8.RuneError
			}
			sb.WriteRune(rune(cp))
			if i = j; i < len(escaped) && isWhitespace(escaped[i]) {
				i++
			}
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
