package lexer

import (
	"unicode/utf8"
)

// Tokenize splits src into its lexical units in source order. Structural
// characters are standalone tokens even with no whitespace around them, so
// "(foo)" yields "(", "foo", ")". Atoms run until the next whitespace or
// structural character; there is no escape handling, so a double-quoted
// string containing whitespace splits like any other text.
//
// Tokenize never fails and never produces empty tokens. The returned tokens
// reference spans of src.
func Tokenize(src string) []Token {
	// Capacity is a performance hint only.
	tokens := make([]Token, 0, len(src)/2)

	line, col := 1, 1

	start := -1 // byte offset of the atom being scanned, -1 when none
	startLine, startCol := 0, 0

	flush := func(end int) {
		if start < 0 {
			return
		}
		tokens = append(tokens, NewToken(TokenAtom, src[start:end], startLine, startCol))
		start = -1
	}

	for i := 0; i < len(src); {
		r, w := utf8.DecodeRuneInString(src[i:])

		switch {
		case isWhitespace(r):
			flush(i)

		case isStructural(r):
			flush(i)
			tokens = append(tokens, NewToken(structuralType(r), src[i:i+w], line, col))

		default:
			if start < 0 {
				start = i
				startLine, startCol = line, col
			}
		}

		i += w
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	flush(len(src))

	return tokens
}
