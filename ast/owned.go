package ast

import (
	"fmt"
	"strings"
)

// OwnedExpr mirrors Expr, but its text payloads are independently allocated:
// an owned tree keeps no reference into the source string it was parsed
// from, so it may outlive it. The symbol representation is pluggable
// through S.
type OwnedExpr[S Symbol] struct {
	t ExprType
	v interface{}
}

// ToOwned deep-copies e into an owned tree with plain text symbols.
func ToOwned(e *Expr) *OwnedExpr[TextSymbol] {
	return ToOwnedSymbol(e, NewTextSymbol)
}

// ToOwnedSymbol deep-copies e, building every symbol through fromText. The
// conversion is total: any well-formed tree converts, preserving child order
// and nesting. The text handed to fromText is already detached from the
// source buffer.
func ToOwnedSymbol[S Symbol](e *Expr, fromText func(string) S) *OwnedExpr[S] {
	if e == nil {
		return nil
	}

	switch e.Type() {
	case TypeNumber:
		return &OwnedExpr[S]{t: TypeNumber, v: e.Number()}

	case TypeBool:
		return &OwnedExpr[S]{t: TypeBool, v: e.Bool()}

	case TypeString:
		return &OwnedExpr[S]{t: TypeString, v: strings.Clone(e.Text())}

	case TypeSymbol:
		return &OwnedExpr[S]{t: TypeSymbol, v: fromText(strings.Clone(e.Text()))}

	case TypeList:
		children := make([]*OwnedExpr[S], 0, len(e.List()))
		for _, c := range e.List() {
			children = append(children, ToOwnedSymbol(c, fromText))
		}
		return &OwnedExpr[S]{t: TypeList, v: children}

	default:
		return &OwnedExpr[S]{t: TypeNull}
	}
}

// Type returns the type of the node
func (o *OwnedExpr[S]) Type() ExprType {
	return o.t
}

// Number returns the payload of a number node
func (o *OwnedExpr[S]) Number() float64 {
	v, _ := o.v.(float64)
	return v
}

// Bool returns the payload of a bool node
func (o *OwnedExpr[S]) Bool() bool {
	v, _ := o.v.(bool)
	return v
}

// Text returns the payload of a string node
func (o *OwnedExpr[S]) Text() string {
	v, _ := o.v.(string)
	return v
}

// Symbol returns the payload of a symbol node
func (o *OwnedExpr[S]) Symbol() S {
	v, _ := o.v.(S)
	return v
}

// List returns the children of a list node
func (o *OwnedExpr[S]) List() []*OwnedExpr[S] {
	v, _ := o.v.([]*OwnedExpr[S])
	return v
}

func (o *OwnedExpr[S]) String() string {
	if o == nil {
		return "null"
	}

	switch o.t {
	case TypeList:
		nodes := []string{}
		for _, c := range o.List() {
			nodes = append(nodes, c.String())
		}
		return fmt.Sprintf("(%s)", strings.Join(nodes, " "))

	case TypeString:
		return fmt.Sprintf("%q", o.Text())

	case TypeSymbol:
		return o.Symbol().String()

	case TypeNull:
		return "null"

	default:
		return fmt.Sprintf("%v", o.v)
	}
}

// Equal reports whether o and other are structurally identical. Symbols
// compare by their rendered text.
func (o *OwnedExpr[S]) Equal(other *OwnedExpr[S]) bool {
	if o == nil || other == nil {
		return o == other
	}
	if o.t != other.t {
		return false
	}

	switch o.t {
	case TypeList:
		ol, xl := o.List(), other.List()
		if len(ol) != len(xl) {
			return false
		}
		for i := range ol {
			if !ol[i].Equal(xl[i]) {
				return false
			}
		}
		return true

	case TypeSymbol:
		return o.Symbol().String() == other.Symbol().String()

	case TypeNull:
		return true

	default:
		return o.v == other.v
	}
}

// EqualExpr reports whether o is structurally identical to the borrowed tree
// e: same type at every node, same values, same child order and length.
func (o *OwnedExpr[S]) EqualExpr(e *Expr) bool {
	if o == nil || e == nil {
		return o == nil && e == nil
	}
	if o.t != e.t {
		return false
	}

	switch o.t {
	case TypeList:
		ol, el := o.List(), e.List()
		if len(ol) != len(el) {
			return false
		}
		for i := range ol {
			if !ol[i].EqualExpr(el[i]) {
				return false
			}
		}
		return true

	case TypeSymbol:
		return o.Symbol().String() == e.Text()

	case TypeNull:
		return true

	default:
		return o.v == e.v
	}
}
