package parser

import (
	"strconv"
	"strings"

	"github.com/sexpgo/sexp/ast"
	"github.com/sexpgo/sexp/lexer"
)

// Parser consumes a token sequence left to right, building expression trees
// by recursive descent. Parsing depth equals the nesting depth of the
// source; no explicit recursion limit is enforced, so a pathologically deep
// input can exhaust the stack.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New creates a parser over the given token sequence
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) next() (lexer.Token, bool) {
	if p.pos >= len(p.tokens) {
		return lexer.Token{}, false
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok, true
}

func (p *Parser) peek() (lexer.Token, bool) {
	if p.pos >= len(p.tokens) {
		return lexer.Token{}, false
	}
	return p.tokens[p.pos], true
}

// Remaining returns the number of tokens not yet consumed.
func (p *Parser) Remaining() int {
	return len(p.tokens) - p.pos
}

// Parse consumes exactly one expression from the sequence. Tokens after it
// are left unconsumed.
func (p *Parser) Parse() (*ast.Expr, error) {
	tok, ok := p.next()
	if !ok {
		return nil, ErrUnexpectedEOF
	}

	switch tok.Type() {
	case lexer.TokenOpenList:
		children := []*ast.Expr{}
		for {
			next, ok := p.peek()
			if !ok {
				return nil, ErrMissingClosingParen
			}
			if next.Is(lexer.TokenCloseList) {
				p.next()
				return ast.NewList(children...), nil
			}

			child, err := p.Parse()
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}

	case lexer.TokenCloseList:
		return nil, ErrUnexpectedClosingParen

	default:
		// The quote token is not interpreted; it classifies like any
		// other atom.
		return Atom(tok.Text()), nil
	}
}

// Parse builds the first expression in tokens. Tokens after a complete
// top-level expression are ignored; use ParseAll when the whole sequence
// must be consumed.
func Parse(tokens []lexer.Token) (*ast.Expr, error) {
	return New(tokens).Parse()
}

// ParseAll builds every top-level expression in tokens, in order, consuming
// the whole sequence. An empty sequence yields no expressions and no error.
func ParseAll(tokens []lexer.Token) ([]*ast.Expr, error) {
	p := New(tokens)

	exprs := []*ast.Expr{}
	for p.Remaining() > 0 {
		e, err := p.Parse()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return exprs, nil
}

// Atom classifies a single non-structural token. It never fails: anything
// unrecognized is a symbol.
//
// Numbers are classified parse-first: a token whose first byte is an ASCII
// digit, "+" or "-" is tried as a 64-bit float regardless of length, so "5"
// is a number while a lone "+" falls back to symbol.
func Atom(text string) *ast.Expr {
	if len(text) > 0 {
		if c := text[0]; c == '+' || c == '-' || (c >= '0' && c <= '9') {
			if n, err := strconv.ParseFloat(text, 64); err == nil {
				return ast.NewNumber(n)
			}
		}
	}

	switch text {
	case "true":
		return ast.NewBool(true)
	case "false":
		return ast.NewBool(false)
	case "null":
		return ast.Null
	}

	if len(text) >= 2 && strings.HasPrefix(text, `"`) && strings.HasSuffix(text, `"`) {
		return ast.NewString(text[1 : len(text)-1])
	}

	return ast.NewSymbol(text)
}
