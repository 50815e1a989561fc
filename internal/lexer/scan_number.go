package lexer

import (
	"strconv"

	"saffron/internal/diag"
	"saffron/internal/token"
)

// scanNumber consumes a decimal numeral: digits, optionally followed by a dot
// and at least one more digit. A dot without a trailing digit is left for the
// next scan step. Exponent notation is not part of the dialect.
func (lx *Lexer) scanNumber() error {
	for isDigit(lx.peek()) {
		lx.bump()
	}

	if lx.check('.') && isDigit(lx.peekNext()) {
		lx.bump()
		for isDigit(lx.peek()) {
			lx.bump()
		}
	}

	lexeme := lx.lexeme()

	// Defensive: the scan above only admits ParseFloat-able lexemes.
	if _, err := strconv.ParseFloat(lexeme, 64); err != nil {
		return diag.Errorf("Invalid number '%s' at line %d", lexeme, lx.line)
	}

	lx.emitWithLexeme(token.Number, lexeme)
	return nil
}
