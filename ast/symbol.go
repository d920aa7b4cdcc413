package ast

// Symbol is the capability an owned symbol representation must provide:
// rendering itself back to text. The other half of the capability, building
// the representation from raw token text, is the constructor function given
// to ToOwnedSymbol; Go interfaces cannot carry constructors.
type Symbol interface {
	String() string
}

// TextSymbol is the default symbol representation: a plain text passthrough.
type TextSymbol string

// NewTextSymbol builds a TextSymbol from raw token text
func NewTextSymbol(text string) TextSymbol {
	return TextSymbol(text)
}

func (s TextSymbol) String() string {
	return string(s)
}

var _ = Symbol(TextSymbol(""))
