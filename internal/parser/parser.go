// Package parser builds document trees from source text by recursive descent
// over the token stream. The first error anywhere in the descent aborts the
// whole parse; there is no recovery and no partial result.
package parser

import (
	"strconv"

	"saffron/internal/diag"
	"saffron/internal/lexer"
	"saffron/internal/token"
	"saffron/internal/value"
)

// Parser consumes a token stream and produces one root value.
type Parser struct {
	tokens *token.Stream
}

// Parse tokenizes the whole source and builds its document tree.
// Each call owns its state; concurrent parses need no coordination.
func Parse(source string) (value.Value, error) {
	tokens, err := lexer.New(source).ScanTokens()
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens)
}

// ParseTokens builds the document tree from an already-tokenized stream.
func ParseTokens(tokens *token.Stream) (value.Value, error) {
	p := &Parser{tokens: tokens}
	return p.parseValue()
}

// parseValue dispatches purely on the current token's kind.
func (p *Parser) parseValue() (value.Value, error) {
	tk := p.tokens.Current()

	switch tk.Kind {
	case token.String:
		t := p.tokens.Advance()
		return value.String(t.Lexeme), nil
	case token.Number:
		t := p.tokens.Advance()
		n, err := strconv.ParseFloat(t.Lexeme, 64)
		if err != nil {
			return nil, diag.Errorf("Invalid number '%s'", t.Lexeme)
		}
		return value.Number(n), nil
	case token.Boolean:
		t := p.tokens.Advance()
		switch t.Lexeme {
		case "true":
			return value.Bool(true), nil
		case "false":
			return value.Bool(false), nil
		default:
			return nil, diag.Errorf("Invalid boolean literal '%s'", t.Lexeme)
		}
	case token.Null:
		p.tokens.Advance()
		return value.Null{}, nil
	case token.LeftBrace:
		return p.parseObject()
	case token.LeftBracket:
		return p.parseArray()
	default:
		return nil, diag.Errorf("Unexpected token: %s", tk.Kind)
	}
}

func (p *Parser) parseObject() (value.Value, error) {
	if p.tokens.Current().Kind != token.LeftBrace {
		return nil, diag.New("Expected '{' at start of object")
	}
	p.tokens.Advance()

	obj := value.Object{}

	if p.tokens.Current().Kind == token.RightBrace {
		p.tokens.Advance()
		return obj, nil
	}

	for {
		keyToken := p.tokens.Current()
		if keyToken.Kind != token.String {
			return nil, diag.Errorf("Expected string key in object, found %s", keyToken.Kind)
		}
		key := p.tokens.Advance().Lexeme

		if p.tokens.Current().Kind != token.Colon {
			return nil, diag.New("Expected ':' after object key")
		}
		p.tokens.Advance()

		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		// last write wins on duplicate keys
		obj[key] = v

		switch next := p.tokens.Current(); next.Kind {
		case token.Comma:
			p.tokens.Advance()
		case token.RightBrace:
			p.tokens.Advance()
			return obj, nil
		default:
			return nil, diag.Errorf("Expected ',' or '}' in object, found %s", next.Kind)
		}
	}
}

func (p *Parser) parseArray() (value.Value, error) {
	if p.tokens.Current().Kind != token.LeftBracket {
		return nil, diag.New("Expected '[' at start of array")
	}
	p.tokens.Advance()

	items := value.Array{}

	if p.tokens.Current().Kind == token.RightBracket {
		p.tokens.Advance()
		return items, nil
	}

	for {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		items = append(items, v)

		switch next := p.tokens.Current(); next.Kind {
		case token.Comma:
			p.tokens.Advance()
		case token.RightBracket:
			p.tokens.Advance()
			return items, nil
		default:
			return nil, diag.Errorf("Expected ',' or ']' in array, found %s", next.Kind)
		}
	}
}
