// Package importer converts third-party export files into saffron
// collections. Export files are parsed with the in-repo document parser and
// mapped through field lookups on the value tree; the parser itself knows
// nothing about the schemas.
package importer

import (
	"errors"

	"saffron/internal/domain"
)

// ErrUnknownFormat reports an export file no importer recognizes.
var ErrUnknownFormat = errors.New("unknown format, supported: Insomnia v4")

// Collection is a format-agnostic imported collection.
type Collection struct {
	Name        string
	Description string
	Requests    []Request
}

// Request is a format-agnostic imported request.
type Request struct {
	ID          string
	Name        string
	Description string
	Method      string
	URL         string
	Headers     []domain.Header
	Body        string
}

// Result is everything recovered from one export file.
type Result struct {
	Collections  []Collection
	Environments []domain.Environment
}

// AutoImport detects the export format and runs the matching importer.
func AutoImport(content string) (*Result, error) {
	if CanImportInsomnia(content) {
		return ImportInsomnia(content)
	}
	return nil, ErrUnknownFormat
}
