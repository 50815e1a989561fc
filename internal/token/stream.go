package token

// Stream is a replayable read cursor over a fixed token slice.
// It never mutates the tokens, only its own position; the position may run
// past the end, in which case every accessor clamps to the final token
// (always EOF), so repeated reads past the end are safe.
type Stream struct {
	tokens   []Token
	position int
}

// NewStream creates a stream positioned at the first token.
func NewStream(tokens []Token) *Stream {
	return &Stream{tokens: tokens}
}

// Current returns the token at the cursor position, clamped to the final token.
func (s *Stream) Current() Token {
	if len(s.tokens) == 0 {
		return eof()
	}
	if s.position >= len(s.tokens) {
		return s.tokens[len(s.tokens)-1]
	}
	return s.tokens[s.position]
}

// Advance moves the cursor forward one position and returns the token that
// was just consumed, not the new current token.
func (s *Stream) Advance() Token {
	s.position++
	return s.Previous()
}

// Previous returns the token immediately before the cursor position,
// clamped to the first token at position 0 and to the last token past the end.
func (s *Stream) Previous() Token {
	if len(s.tokens) == 0 {
		return eof()
	}
	if s.position == 0 {
		return s.tokens[0]
	}
	pos := s.position - 1
	if s.position > len(s.tokens) {
		pos = len(s.tokens) - 1
	}
	return s.tokens[pos]
}

// LookAhead returns the token k positions beyond current, clamped to the last token.
func (s *Stream) LookAhead(k int) Token {
	if len(s.tokens) == 0 {
		return eof()
	}
	if s.position+k >= len(s.tokens) {
		return s.tokens[len(s.tokens)-1]
	}
	return s.tokens[s.position+k]
}

// Backtrack moves the cursor back one position, undoing a speculative Advance.
// Callers must pair it with a prior Advance; there is no underflow protection.
func (s *Stream) Backtrack() {
	s.position--
}

// Tokens returns the underlying token slice.
func (s *Stream) Tokens() []Token {
	return s.tokens
}
