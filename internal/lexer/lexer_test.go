package lexer_test

import (
	"strings"
	"testing"

	"saffron/internal/lexer"
	"saffron/internal/token"
)

// scanAll tokenizes input and fails the test on a lexical error.
func scanAll(t *testing.T, input string) []token.Token {
	t.Helper()
	stream, err := lexer.New(input).ScanTokens()
	if err != nil {
		t.Fatalf("ScanTokens(%q) failed: %v", input, err)
	}
	return stream.Tokens()
}

// expectKinds checks the token kind sequence, excluding the trailing EOF.
func expectKinds(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	tokens := scanAll(t, input)

	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		t.Fatalf("token sequence for %q does not end with EOF: %v", input, tokens)
	}
	tokens = tokens[:len(tokens)-1]

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens for %q, got %d: %v", len(expected), input, len(tokens), tokens)
	}
	for i, k := range expected {
		if tokens[i].Kind != k {
			t.Errorf("token %d of %q: got %s, want %s", i, input, tokens[i].Kind, k)
		}
	}
}

// expectError checks that tokenization fails and the message mentions want.
func expectError(t *testing.T, input, want string) {
	t.Helper()
	_, err := lexer.New(input).ScanTokens()
	if err == nil {
		t.Fatalf("ScanTokens(%q) succeeded, want error containing %q", input, want)
	}
	if !strings.Contains(err.Error(), want) {
		t.Fatalf("ScanTokens(%q) error = %q, want it to contain %q", input, err, want)
	}
}

func TestStructuralTokens(t *testing.T) {
	expectKinds(t, "[]{},:", []token.Kind{
		token.LeftBracket, token.RightBracket,
		token.LeftBrace, token.RightBrace,
		token.Comma, token.Colon,
	})
}

func TestEmptyInput(t *testing.T) {
	tokens := scanAll(t, "")
	if len(tokens) != 1 || tokens[0].Kind != token.EOF {
		t.Fatalf("expected a single EOF token, got %v", tokens)
	}
}

func TestWhitespaceEmitsNoTokens(t *testing.T) {
	tokens := scanAll(t, " \t\r\n \n")
	if len(tokens) != 1 || tokens[0].Kind != token.EOF {
		t.Fatalf("expected a single EOF token, got %v", tokens)
	}
}

func TestNumbers(t *testing.T) {
	cases := []struct {
		input  string
		lexeme string
	}{
		{"42", "42"},
		{"3.14159", "3.14159"},
		{"-42.5", "-42.5"},
		{"0", "0"},
		{"1000000", "1000000"},
	}

	for _, tc := range cases {
		tokens := scanAll(t, tc.input)
		if tokens[0].Kind != token.Number {
			t.Fatalf("%q: got %s, want Number", tc.input, tokens[0].Kind)
		}
		if tokens[0].Lexeme != tc.lexeme {
			t.Errorf("%q: lexeme %q, want %q", tc.input, tokens[0].Lexeme, tc.lexeme)
		}
	}
}

func TestNumberStopsBeforeBareDot(t *testing.T) {
	// The decimal point is only part of the number when a digit follows,
	// so the second dot of "123.456.789" falls out as an invalid character.
	expectError(t, "123.456.789", "Invalid character '.'")
}

func TestLoneMinus(t *testing.T) {
	expectError(t, "-", "Invalid character '-'")
	expectError(t, "-x", "Invalid character '-'")
}

func TestInvalidCharacter(t *testing.T) {
	expectError(t, "@", "Invalid character '@'")
	expectError(t, "[1, #]", "Invalid character '#'")
}

func TestKeywords(t *testing.T) {
	expectKinds(t, "true false null", []token.Kind{token.Boolean, token.Boolean, token.Null})

	tokens := scanAll(t, "nullable")
	if tokens[0].Kind != token.Identifier || tokens[0].Lexeme != "nullable" {
		t.Fatalf("expected Identifier 'nullable', got %v", tokens[0])
	}
}

func TestStringEscapes(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{`"line1\nline2\ttab"`, "line1\nline2\ttab"},
		{`"quote \" inside"`, `quote " inside`},
		{`"back\\slash"`, `back\slash`},
		{`"return\r"`, "return\r"},
		// Unknown escapes pass the following character through unchanged.
		{`"pass\zthrough"`, "passzthrough"},
	}

	for _, tc := range cases {
		tokens := scanAll(t, tc.input)
		if tokens[0].Kind != token.String {
			t.Fatalf("%q: got %s, want String", tc.input, tokens[0].Kind)
		}
		if tokens[0].Lexeme != tc.want {
			t.Errorf("%q: decoded %q, want %q", tc.input, tokens[0].Lexeme, tc.want)
		}
	}
}

func TestSingleQuoteDialect(t *testing.T) {
	tokens := scanAll(t, `'hello'`)
	if tokens[0].Kind != token.String || tokens[0].Lexeme != "hello" {
		t.Fatalf("expected String 'hello', got %v", tokens[0])
	}

	// The opening quote is the only closer; the other quote needs no escape.
	tokens = scanAll(t, `'he said "hi"'`)
	if tokens[0].Lexeme != `he said "hi"` {
		t.Fatalf("expected embedded double quotes, got %q", tokens[0].Lexeme)
	}
	tokens = scanAll(t, `"it's fine"`)
	if tokens[0].Lexeme != "it's fine" {
		t.Fatalf("expected embedded single quote, got %q", tokens[0].Lexeme)
	}
}

func TestUnterminatedString(t *testing.T) {
	expectError(t, `"unclosed`, "Unterminated string at line 1")
	expectError(t, `'unclosed`, "Unterminated string at line 1")
	expectError(t, `"trailing escape\`, "Unterminated string")
}

func TestLineTracking(t *testing.T) {
	tokens := scanAll(t, "[\n1,\n2\n]")

	wantLines := map[int]int{0: 1, 1: 2, 2: 2, 3: 3, 4: 4}
	for i, want := range wantLines {
		if tokens[i].Line != want {
			t.Errorf("token %d (%s): line %d, want %d", i, tokens[i].Kind, tokens[i].Line, want)
		}
	}
}

func TestUnterminatedStringReportsCurrentLine(t *testing.T) {
	expectError(t, "[\n\n\"open", "Unterminated string at line 3")
}

func TestDocumentTokenSequence(t *testing.T) {
	expectKinds(t, `{"a": [1, true, null]}`, []token.Kind{
		token.LeftBrace,
		token.String, token.Colon,
		token.LeftBracket,
		token.Number, token.Comma,
		token.Boolean, token.Comma,
		token.Null,
		token.RightBracket,
		token.RightBrace,
	})
}

func TestSpans(t *testing.T) {
	tokens := scanAll(t, `[42]`)

	want := []token.Span{
		{Start: 0, End: 1},
		{Start: 1, End: 3},
		{Start: 3, End: 4},
	}
	for i, sp := range want {
		if tokens[i].Span != sp {
			t.Errorf("token %d: span %+v, want %+v", i, tokens[i].Span, sp)
		}
	}
}

func TestIndependentScans(t *testing.T) {
	// Separate lexers share no state; the same input yields the same tokens.
	first := scanAll(t, `{"k": 1}`)
	second := scanAll(t, `{"k": 1}`)

	if len(first) != len(second) {
		t.Fatalf("token counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("token %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}
