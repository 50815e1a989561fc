package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"saffron/internal/diag"
	"saffron/internal/token"
)

// Lexer converts a source string into a flat token slice in a single
// left-to-right scan. Each call to New starts from a fresh state; nothing is
// shared between lex operations.
type Lexer struct {
	source []rune
	line   int
	column int
	start  int
	length int
	tokens []token.Token
}

// New creates a lexer over an owned copy of the source text.
func New(source string) *Lexer {
	return &Lexer{
		source: []rune(source),
		line:   1,
		column: 1,
	}
}

// ScanTokens tokenizes the whole source and returns a replayable stream
// terminated by exactly one EOF token, or the first lexical error.
func (lx *Lexer) ScanTokens() (*token.Stream, error) {
	for !lx.atEnd() {
		if err := lx.scanToken(); err != nil {
			return nil, err
		}
	}
	lx.emitWithLexeme(token.EOF, "\x00")
	return token.NewStream(lx.tokens), nil
}

func (lx *Lexer) scanToken() error {
	lx.syncCursors()

	c := lx.bump()

	switch c {
	case '\n':
		lx.column = 1
		lx.line++
	case ' ', '\t', '\r':
		// insignificant, no token
	case '[':
		lx.emit(token.LeftBracket)
	case ']':
		lx.emit(token.RightBracket)
	case '{':
		lx.emit(token.LeftBrace)
	case '}':
		lx.emit(token.RightBrace)
	case ',':
		lx.emit(token.Comma)
	case ':':
		lx.emit(token.Colon)
	case '"', '\'':
		return lx.scanString(c)
	case '-':
		if isDigit(lx.peek()) {
			return lx.scanNumber()
		}
		return diag.Errorf("Invalid character '%c' at line %d", c, lx.line)
	default:
		switch {
		case isDigit(c):
			return lx.scanNumber()
		case isAlpha(c):
			lx.scanIdentOrKeyword()
		default:
			return diag.Errorf("Invalid character '%c' at line %d", c, lx.line)
		}
	}
	return nil
}

// syncCursors moves the start cursor past the token just produced.
func (lx *Lexer) syncCursors() {
	lx.start += lx.length
	lx.length = 0
}

func (lx *Lexer) lexeme() string {
	return string(lx.source[lx.start : lx.start+lx.length])
}

func (lx *Lexer) emit(kind token.Kind) {
	lx.emitWithLexeme(kind, lx.lexeme())
}

func (lx *Lexer) emitWithLexeme(kind token.Kind, lexeme string) {
	lx.tokens = append(lx.tokens, token.Token{
		Kind:   kind,
		Lexeme: lexeme,
		Line:   lx.line,
		Column: lx.column,
		Span:   lx.span(),
	})
}

func (lx *Lexer) span() token.Span {
	start, err := safecast.Conv[uint32](lx.start)
	if err != nil {
		panic(fmt.Errorf("token span start overflow: %w", err))
	}
	end, err := safecast.Conv[uint32](lx.start + lx.length)
	if err != nil {
		panic(fmt.Errorf("token span end overflow: %w", err))
	}
	return token.Span{Start: start, End: end}
}

// bump consumes the next rune, or NUL at end of input.
func (lx *Lexer) bump() rune {
	if lx.atEnd() {
		return 0
	}
	c := lx.source[lx.start+lx.length]
	lx.length++
	lx.column++
	return c
}

func (lx *Lexer) peek() rune {
	if lx.atEnd() {
		return 0
	}
	return lx.source[lx.start+lx.length]
}

func (lx *Lexer) peekNext() rune {
	if lx.start+lx.length+1 >= len(lx.source) {
		return 0
	}
	return lx.source[lx.start+lx.length+1]
}

func (lx *Lexer) check(c rune) bool {
	return !lx.atEnd() && lx.peek() == c
}

func (lx *Lexer) atEnd() bool {
	return lx.start+lx.length >= len(lx.source)
}
