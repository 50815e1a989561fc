package lexer

import (
	"strings"

	"saffron/internal/diag"
	"saffron/internal/token"
)

// scanString consumes a string literal opened by end ('"' or '\'').
// Only the same quote that opened the literal closes it, so single-quoted
// strings may contain unescaped double quotes and vice versa. Escapes are
// decoded into the lexeme here; an unrecognized escape passes the following
// character through unchanged rather than failing.
func (lx *Lexer) scanString(end rune) error {
	var value strings.Builder
	escaped := false

	for !lx.atEnd() {
		c := lx.peek()

		if escaped {
			switch c {
			case 'n':
				value.WriteRune('\n')
			case 't':
				value.WriteRune('\t')
			case 'r':
				value.WriteRune('\r')
			default:
				// covers \\, both quotes, and the lenient passthrough
				value.WriteRune(c)
			}
			escaped = false
		} else if c == '\\' {
			escaped = true
		} else if c == end {
			break
		} else {
			value.WriteRune(c)
		}

		if c == '\n' {
			lx.line++
			lx.column = 0
		}

		lx.bump()
	}

	if lx.atEnd() {
		return diag.Errorf("Unterminated string at line %d.", lx.line)
	}

	lx.bump() // closing quote

	lx.emitWithLexeme(token.String, value.String())
	return nil
}
