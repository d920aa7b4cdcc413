// Package sexp reads S-expressions: parenthesized list notation turned into
// a tree of typed atoms and lists. It is meant as a front-end building block
// for interpreters and compilers that want fast, low-allocation parsing of
// nested list syntax.
//
// Reading happens in a strict pipeline: the lexer splits the source into
// tokens, the parser builds the tree by recursive descent, and every
// non-structural token is classified into a number, bool, string, symbol or
// null atom.
//
//	expr, err := sexp.Read(`(define x 42)`)
//	if err != nil {
//	    // err is one of the parser.Err* values
//	}
//
// Trees returned by Read are zero-copy: string and symbol payloads are spans
// of the source string, valid only while it is reachable and unchanged. Use
// ToOwned (or ast.ToOwnedSymbol for a custom symbol representation) for a
// tree with independently-owned text.
//
// The grammar is deliberately small:
//
//	<expr>   :: <atom> | "(" <expr>* ")" ;
//	<atom>   :: <number> | "true" | "false" | "null" | <string> | <symbol> ;
//	<number> :: token starting with a digit, "+" or "-" that parses as a
//	            64-bit float ;
//	<string> :: token of length >= 2 both starting and ending with '"' ;
//	<symbol> :: any other token ;
//
// Tokens are cut at whitespace and at the structural characters "(", ")"
// and "'", which always stand alone. The quote character is tokenized but
// not interpreted. There is no escape handling, so a double-quoted string
// containing whitespace or parentheses does not survive tokenization; this
// is a documented limitation, not a bug.
//
// Parsing is synchronous and touches no global state, so concurrent reads
// need no synchronization.
package sexp
