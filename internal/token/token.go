package token

import "fmt"

// Span is a half-open [Start, End) range of rune offsets in the source.
type Span struct {
	Start uint32
	End   uint32
}

// Token represents a single document token with its location.
// Lexeme holds the decoded text: string escapes are already resolved.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
	Column int
	Span   Span
}

// IsLiteral reports whether the token is a string, numeric, boolean, or null literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case String, Number, Boolean, Null:
		return true
	default:
		return false
	}
}

func (t Token) String() string {
	return fmt.Sprintf("%s: %q", t.Kind, t.Lexeme)
}

// eof is the sentinel returned by Stream accessors on an empty token slice.
func eof() Token {
	return Token{Kind: EOF, Lexeme: "\x00"}
}
