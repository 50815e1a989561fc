package diag

import "fmt"

// ParseError is the single error type produced by the lexer and the parser.
// Message is meant for direct display to the user; there are no error codes.
type ParseError struct {
	Message string
}

// New creates a ParseError with the given message.
func New(msg string) *ParseError {
	return &ParseError{Message: msg}
}

// Errorf creates a ParseError from a format string.
func Errorf(format string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...)}
}

func (e *ParseError) Error() string {
	return e.Message
}
