// Package reader turns Lisp surface syntax into value.Value trees. It
// lives outside the evaluator core as an external collaborator, but a
// minimal reader is still needed to drive a REPL or load a source file.
package reader

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/arborlang/arbor/pkg/value"
)

// Parser consumes a token stream and builds value.Value trees one
// expression at a time, grounded on leinonen-go-lisp's pkg/parser.
type Parser struct {
	tokens   []Token
	position int
	current  Token
}

func NewParser(tokens []Token) *Parser {
	p := &Parser{tokens: tokens}
	p.readToken()
	return p
}

func (p *Parser) readToken() {
	if p.position >= len(p.tokens) {
		p.current = Token{Type: EOF}
	} else {
		p.current = p.tokens[p.position]
	}
	p.position++
}

// AtEOF reports whether every token has been consumed.
func (p *Parser) AtEOF() bool { return p.current.Type == EOF }

// ReadAll parses every top-level expression in source.
func ReadAll(source string) ([]value.Value, error) {
	tokens, err := NewTokenizer(source).TokenizeWithError()
	if err != nil {
		return nil, fmt.Errorf("reader: %w", err)
	}
	p := NewParser(tokens)
	var out []value.Value
	for !p.AtEOF() {
		expr, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		out = append(out, expr)
	}
	return out, nil
}

// ParseExpr reads a single expression from the front of the stream.
func (p *Parser) ParseExpr() (value.Value, error) {
	switch p.current.Type {
	case NUMBER:
		return p.parseNumber()
	case STRING:
		return p.parseString()
	case BOOLEAN:
		return p.parseBoolean()
	case SYMBOL:
		return p.parseSymbol()
	case LPAREN:
		return p.parseList()
	case QUOTE:
		return p.parseAbbrev("quote")
	case QUASIQUOTE:
		return p.parseAbbrev("quasiquote")
	case UNQUOTE:
		return p.parseAbbrev("unquote")
	case UNQUOTE_SPLICE:
		return p.parseAbbrev("unquote-splicing")
	case RPAREN:
		return nil, parseErrorf(p.current, "unexpected closing parenthesis")
	case DOT:
		return nil, parseErrorf(p.current, "unexpected .")
	default:
		return nil, parseErrorf(p.current, "unexpected end of input")
	}
}

func (p *Parser) parseNumber() (value.Value, error) {
	tok := p.current
	if i, ok := new(big.Int).SetString(tok.Value, 10); ok {
		p.readToken()
		return value.NewIntegerFromBig(i), nil
	}
	f, err := strconv.ParseFloat(tok.Value, 64)
	if err != nil {
		return nil, parseErrorf(tok, "invalid number: %s", tok.Value)
	}
	p.readToken()
	return value.Real(f), nil
}

func (p *Parser) parseString() (value.Value, error) {
	s := value.String("\"" + p.current.Value + "\"")
	p.readToken()
	return s, nil
}

func (p *Parser) parseBoolean() (value.Value, error) {
	b := p.current.Value == "#t"
	p.readToken()
	return value.Boolean(b), nil
}

func (p *Parser) parseSymbol() (value.Value, error) {
	s := value.Symbol(p.current.Value)
	p.readToken()
	return s, nil
}

func (p *Parser) parseAbbrev(head string) (value.Value, error) {
	p.readToken()
	inner, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	return value.NewPair(value.Symbol(head), value.NewPair(inner, value.NilValue)), nil
}

func (p *Parser) parseList() (value.Value, error) {
	p.readToken() // consume '('
	var items []value.Value
	var tail value.Value = value.NilValue

	for {
		switch p.current.Type {
		case RPAREN:
			p.readToken()
			result := tail
			for i := len(items) - 1; i >= 0; i-- {
				result = value.NewPair(items[i], result)
			}
			return result, nil
		case DOT:
			p.readToken()
			t, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			tail = t
			if p.current.Type != RPAREN {
				return nil, parseErrorf(p.current, "malformed dotted list")
			}
			p.readToken()
			result := tail
			for i := len(items) - 1; i >= 0; i-- {
				result = value.NewPair(items[i], result)
			}
			return result, nil
		case EOF:
			return nil, fmt.Errorf("reader: unexpected end of input inside list")
		default:
			item, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
	}
}

func parseErrorf(tok Token, format string, args ...any) error {
	prefix := fmt.Sprintf("line %d, column %d: ", tok.Position.Line, tok.Position.Column)
	return fmt.Errorf("reader: %s%s", prefix, fmt.Sprintf(format, args...))
}
