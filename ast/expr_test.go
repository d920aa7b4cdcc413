package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	testCases := []struct {
		In  *Expr
		Out string
	}{
		{
			In:  NewNumber(42),
			Out: `42`,
		},
		{
			In:  NewNumber(-3.14),
			Out: `-3.14`,
		},
		{
			In:  NewBool(true),
			Out: `true`,
		},
		{
			In:  NewBool(false),
			Out: `false`,
		},
		{
			In:  Null,
			Out: `null`,
		},
		{
			In:  NewString("hello"),
			Out: `"hello"`,
		},
		{
			In:  NewSymbol("define"),
			Out: `define`,
		},
		{
			In:  NewList(),
			Out: `()`,
		},
		{
			In: NewList(
				NewSymbol("define"),
				NewSymbol("x"),
				NewNumber(42),
			),
			Out: `(define x 42)`,
		},
		{
			In: NewList(
				NewNumber(1),
				NewList(NewNumber(2), NewList()),
				Null,
			),
			Out: `(1 (2 ()) null)`,
		},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, string(Encode(testCases[i].In)), "case %d", i)
	}
}

func TestEqual(t *testing.T) {
	a := NewList(NewSymbol("x"), NewNumber(1), NewList(NewBool(true), Null))
	b := NewList(NewSymbol("x"), NewNumber(1), NewList(NewBool(true), Null))

	assert.True(t, Equal(a, b))
	assert.True(t, Equal(nil, nil))

	assert.False(t, Equal(a, nil))
	assert.False(t, Equal(a, NewList(NewSymbol("x"), NewNumber(1))))
	assert.False(t, Equal(NewNumber(1), NewNumber(2)))
	assert.False(t, Equal(NewSymbol("1"), NewNumber(1)))
	assert.False(t, Equal(NewString("a"), NewSymbol("a")))
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, NewNumber(1).IsValue())
	assert.True(t, Null.IsValue())
	assert.False(t, NewList().IsValue())

	assert.True(t, NewList().IsVector())
	assert.False(t, NewSymbol("a").IsVector())
}
