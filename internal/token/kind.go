package token

// Kind represents the category of a document token.
type Kind uint8

const (
	// EOF marks the end of the source input.
	EOF Kind = iota

	// String represents a string literal with escapes already decoded.
	String
	// Number represents a numeric literal.
	Number
	// Boolean represents a 'true' or 'false' literal.
	Boolean
	// Null represents the 'null' literal.
	Null

	// LeftBrace represents the left brace token.
	LeftBrace // {
	// RightBrace represents the right brace token.
	RightBrace // }
	// LeftBracket represents the left bracket token.
	LeftBracket // [
	// RightBracket represents the right bracket token.
	RightBracket // ]
	// Comma represents the comma token.
	Comma // ,
	// Colon represents the colon token.
	Colon // :

	// Identifier represents a bare word that matched no keyword.
	// It is never valid in value position and always ends in a syntax error.
	Identifier
)

var kindNames = [...]string{
	EOF:          "EndOfFile",
	String:       "String",
	Number:       "Number",
	Boolean:      "Boolean",
	Null:         "Null",
	LeftBrace:    "LeftBrace",
	RightBrace:   "RightBrace",
	LeftBracket:  "LeftBracket",
	RightBracket: "RightBracket",
	Comma:        "Comma",
	Colon:        "Colon",
	Identifier:   "Identifier",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}
