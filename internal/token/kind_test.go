package token_test

import (
	"testing"

	"saffron/internal/token"
)

func TestKindString(t *testing.T) {
	cases := []struct {
		kind token.Kind
		want string
	}{
		{token.EOF, "EndOfFile"},
		{token.String, "String"},
		{token.Number, "Number"},
		{token.Boolean, "Boolean"},
		{token.Null, "Null"},
		{token.LeftBrace, "LeftBrace"},
		{token.RightBrace, "RightBrace"},
		{token.LeftBracket, "LeftBracket"},
		{token.RightBracket, "RightBracket"},
		{token.Comma, "Comma"},
		{token.Colon, "Colon"},
		{token.Identifier, "Identifier"},
	}

	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestIsLiteral(t *testing.T) {
	literals := []token.Kind{token.String, token.Number, token.Boolean, token.Null}
	for _, k := range literals {
		if !(token.Token{Kind: k}).IsLiteral() {
			t.Errorf("expected %s to be a literal", k)
		}
	}

	others := []token.Kind{token.EOF, token.LeftBrace, token.Comma, token.Colon, token.Identifier}
	for _, k := range others {
		if (token.Token{Kind: k}).IsLiteral() {
			t.Errorf("expected %s not to be a literal", k)
		}
	}
}
