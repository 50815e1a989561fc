package lexer

import "saffron/internal/token"

// scanIdentOrKeyword consumes a run of ASCII letters and digits and classifies
// it: 'true'/'false' become Boolean, 'null' becomes Null, anything else is a
// bare Identifier that the parser will reject in value position.
func (lx *Lexer) scanIdentOrKeyword() {
	for isAlphaNumeric(lx.peek()) {
		lx.bump()
	}

	lexeme := lx.lexeme()

	switch lexeme {
	case "true", "false":
		lx.emitWithLexeme(token.Boolean, lexeme)
	case "null":
		lx.emitWithLexeme(token.Null, lexeme)
	default:
		lx.emitWithLexeme(token.Identifier, lexeme)
	}
}
