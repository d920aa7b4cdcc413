package lexer

import (
	"unicode"
)

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid   TokenType = iota
	TokenOpenList            // Open parenthesis: "("
	TokenCloseList           // Close parenthesis: ")"
	TokenQuote               // Quote: "'"
	TokenAtom                // Any delimiter-free run of characters
)

var tokenValues = map[TokenType][]rune{
	TokenOpenList:  {'('},
	TokenCloseList: {')'},
	TokenQuote:     {'\''},
}

var tokenNames = map[TokenType]string{
	TokenInvalid:   "invalid",
	TokenOpenList:  "open_list",
	TokenCloseList: "close_list",
	TokenQuote:     "quote",
	TokenAtom:      "atom",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

var (
	isOpenList  = isTokenType(TokenOpenList)
	isCloseList = isTokenType(TokenCloseList)
	isQuote     = isTokenType(TokenQuote)
)

func isStructural(r rune) bool {
	return isOpenList(r) || isCloseList(r) || isQuote(r)
}

func isWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

func structuralType(r rune) TokenType {
	switch {
	case isOpenList(r):
		return TokenOpenList
	case isCloseList(r):
		return TokenCloseList
	case isQuote(r):
		return TokenQuote
	}
	return TokenInvalid
}
