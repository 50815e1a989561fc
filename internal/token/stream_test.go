package token_test

import (
	"testing"

	"saffron/internal/token"
)

func makeStream(kinds ...token.Kind) *token.Stream {
	tokens := make([]token.Token, 0, len(kinds)+1)
	for i, k := range kinds {
		tokens = append(tokens, token.Token{Kind: k, Line: 1, Column: i + 1})
	}
	tokens = append(tokens, token.Token{Kind: token.EOF})
	return token.NewStream(tokens)
}

func TestStreamCurrentAndAdvance(t *testing.T) {
	s := makeStream(token.LeftBracket, token.Number, token.RightBracket)

	if got := s.Current().Kind; got != token.LeftBracket {
		t.Fatalf("Current() = %s, want LeftBracket", got)
	}

	// Advance returns the token that was just consumed, not the new current.
	if got := s.Advance().Kind; got != token.LeftBracket {
		t.Fatalf("Advance() = %s, want LeftBracket", got)
	}
	if got := s.Current().Kind; got != token.Number {
		t.Fatalf("Current() after advance = %s, want Number", got)
	}
}

func TestStreamPreviousClamps(t *testing.T) {
	s := makeStream(token.Null)

	// At position 0 Previous clamps to the first token.
	if got := s.Previous().Kind; got != token.Null {
		t.Fatalf("Previous() at start = %s, want Null", got)
	}

	s.Advance()
	s.Advance()
	s.Advance() // position is now past the end

	if got := s.Previous().Kind; got != token.EOF {
		t.Fatalf("Previous() past end = %s, want EndOfFile", got)
	}
}

func TestStreamPastEndIsStable(t *testing.T) {
	s := makeStream(token.Boolean)
	for i := 0; i < 10; i++ {
		s.Advance()
	}
	for i := 0; i < 3; i++ {
		if got := s.Current().Kind; got != token.EOF {
			t.Fatalf("Current() past end = %s, want EndOfFile", got)
		}
	}
}

func TestStreamLookAhead(t *testing.T) {
	s := makeStream(token.LeftBrace, token.String, token.Colon, token.Number)

	if got := s.LookAhead(1).Kind; got != token.String {
		t.Fatalf("LookAhead(1) = %s, want String", got)
	}
	if got := s.LookAhead(3).Kind; got != token.Number {
		t.Fatalf("LookAhead(3) = %s, want Number", got)
	}
	// Beyond the end the lookahead clamps to the final token.
	if got := s.LookAhead(100).Kind; got != token.EOF {
		t.Fatalf("LookAhead(100) = %s, want EndOfFile", got)
	}
	// Lookahead must not move the cursor.
	if got := s.Current().Kind; got != token.LeftBrace {
		t.Fatalf("Current() after LookAhead = %s, want LeftBrace", got)
	}
}

func TestStreamBacktrack(t *testing.T) {
	s := makeStream(token.Comma, token.Colon)

	s.Advance()
	s.Backtrack()

	if got := s.Current().Kind; got != token.Comma {
		t.Fatalf("Current() after backtrack = %s, want Comma", got)
	}
}

func TestStreamEmpty(t *testing.T) {
	s := token.NewStream(nil)

	if got := s.Current().Kind; got != token.EOF {
		t.Fatalf("Current() on empty stream = %s, want EndOfFile", got)
	}
	if got := s.Advance().Kind; got != token.EOF {
		t.Fatalf("Advance() on empty stream = %s, want EndOfFile", got)
	}
	if got := s.LookAhead(5).Kind; got != token.EOF {
		t.Fatalf("LookAhead(5) on empty stream = %s, want EndOfFile", got)
	}
}
