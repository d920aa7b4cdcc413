package sexp

import (
	"github.com/sexpgo/sexp/ast"
	"github.com/sexpgo/sexp/lexer"
	"github.com/sexpgo/sexp/parser"
)

// Expr is the zero-copy expression tree produced by Read.
type Expr = ast.Expr

// ExprType identifies the variant held by a node.
type ExprType = ast.ExprType

// Expression types
const (
	TypeNumber = ast.TypeNumber
	TypeBool   = ast.TypeBool
	TypeString = ast.TypeString
	TypeSymbol = ast.TypeSymbol
	TypeNull   = ast.TypeNull
	TypeList   = ast.TypeList
)

// Parse failures returned by Read and ReadAll
var (
	ErrUnexpectedEOF          = parser.ErrUnexpectedEOF
	ErrMissingClosingParen    = parser.ErrMissingClosingParen
	ErrUnexpectedClosingParen = parser.ErrUnexpectedClosingParen
)

// Read tokenizes and parses src, returning its first expression. Tokens
// after a complete top-level expression are silently ignored; use ReadAll
// when the whole input must be consumed.
func Read(src string) (*Expr, error) {
	return parser.Parse(lexer.Tokenize(src))
}

// ReadAll tokenizes and parses src, returning every top-level expression in
// source order. Unlike Read it fails unless the whole input is consumed. An
// empty source yields no expressions and no error.
func ReadAll(src string) ([]*Expr, error) {
	return parser.ParseAll(lexer.Tokenize(src))
}

// MustRead is Read for trusted input: it panics on a parse error. Reserve it
// for tests and sources known to be well formed.
func MustRead(src string) *Expr {
	e, err := Read(src)
	if err != nil {
		panic(err)
	}
	return e
}

// ToOwned deep-copies e into a tree whose text payloads are independently
// allocated, detached from the source string e was parsed from. See
// ast.ToOwnedSymbol for custom symbol representations.
func ToOwned(e *Expr) *ast.OwnedExpr[ast.TextSymbol] {
	return ast.ToOwned(e)
}
