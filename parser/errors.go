package parser

import (
	"errors"
)

// Parse failures form a closed set and carry no position information; match
// them with errors.Is.
var (
	// ErrUnexpectedEOF means the tokens ran out while an expression was
	// expected, including an empty source.
	ErrUnexpectedEOF = errors.New("unexpected EOF")

	// ErrMissingClosingParen means a "(" was opened but the tokens ended
	// before its matching ")".
	ErrMissingClosingParen = errors.New("missing closing parenthesis")

	// ErrUnexpectedClosingParen means a ")" appeared with no matching "("
	// open at that point.
	ErrUnexpectedClosingParen = errors.New("unexpected closing parenthesis")
)
