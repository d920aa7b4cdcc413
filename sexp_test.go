package sexp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
		Err error
	}{
		{
			In:  `(define x 42)`,
			Out: `(define x 42)`,
		},
		{
			In:  `-3.14`,
			Out: `-3.14`,
		},
		{
			In:  `true`,
			Out: `true`,
		},
		{
			In:  `null`,
			Out: `null`,
		},
		{
			In:  `(1 symbol "string" true null (1.5))`,
			Out: `(1 symbol "string" true null (1.5))`,
		},
		{
			In:  `(unclosed`,
			Err: ErrMissingClosingParen,
		},
		{
			In:  `)unexpected`,
			Err: ErrUnexpectedClosingParen,
		},
		{
			In:  ``,
			Err: ErrUnexpectedEOF,
		},
	}

	for i := range testCases {
		expr, err := Read(testCases[i].In)

		if testCases[i].Err != nil {
			assert.Nil(t, expr, "case %d: %q", i, testCases[i].In)
			assert.ErrorIs(t, err, testCases[i].Err, "case %d: %q", i, testCases[i].In)
			continue
		}

		require.NoError(t, err, "case %d: %q", i, testCases[i].In)
		assert.Equal(t, testCases[i].Out, expr.String())
	}
}

func TestReadTypes(t *testing.T) {
	expr := MustRead(`(define x 42)`)
	require.Equal(t, TypeList, expr.Type())

	items := expr.List()
	require.Len(t, items, 3)

	assert.Equal(t, TypeSymbol, items[0].Type())
	assert.Equal(t, "define", items[0].Text())
	assert.Equal(t, TypeSymbol, items[1].Type())
	assert.Equal(t, "x", items[1].Text())
	assert.Equal(t, TypeNumber, items[2].Type())
	assert.Equal(t, 42.0, items[2].Number())
}

func TestReadQuotedStringLimitation(t *testing.T) {
	// The tokenizer is whitespace-delimited with no escape handling, so a
	// quoted string containing a space is NOT one string literal: Read
	// returns the first of the two atoms it splits into.
	expr, err := Read(`"hello world"`)
	require.NoError(t, err)

	assert.Equal(t, TypeSymbol, expr.Type())
	assert.Equal(t, `"hello`, expr.Text())
}

func TestReadAll(t *testing.T) {
	exprs, err := ReadAll("(a b)\n(c d)\n42")
	require.NoError(t, err)

	require.Len(t, exprs, 3)
	assert.Equal(t, `(a b)`, exprs[0].String())
	assert.Equal(t, `(c d)`, exprs[1].String())
	assert.Equal(t, `42`, exprs[2].String())

	exprs, err = ReadAll(``)
	require.NoError(t, err)
	assert.Len(t, exprs, 0)

	_, err = ReadAll(`(a) )`)
	assert.ErrorIs(t, err, ErrUnexpectedClosingParen)
}

func TestMustRead(t *testing.T) {
	assert.NotPanics(t, func() {
		expr := MustRead(`(hello world)`)
		assert.Equal(t, `(hello world)`, expr.String())
	})

	assert.Panics(t, func() {
		MustRead(`(unclosed`)
	})
}

func TestReadToOwned(t *testing.T) {
	expr := MustRead(`(define (square n) (* n n))`)

	owned := ToOwned(expr)
	assert.True(t, owned.EqualExpr(expr))
	assert.Equal(t, expr.String(), owned.String())
}
