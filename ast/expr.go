package ast

// Expr represents one node of a parsed expression tree. Trees are built once
// by the parser and not mutated afterwards.
//
// String and symbol payloads are spans of the source the tree was parsed
// from: they stay valid only while that source string is reachable and
// unchanged. Use ToOwned for a tree that outlives its source.
type Expr struct {
	t ExprType
	v interface{}
}

// Null is the null literal.
var Null = &Expr{t: TypeNull}

func newExpr(t ExprType, v interface{}) *Expr {
	return &Expr{t: t, v: v}
}

// NewNumber creates a node of type number and sets it to the given value
func NewNumber(v float64) *Expr {
	return newExpr(TypeNumber, v)
}

// NewBool creates a node of type bool and sets it to the given value
func NewBool(v bool) *Expr {
	return newExpr(TypeBool, v)
}

// NewString creates a node of type string and sets it to the given value
func NewString(v string) *Expr {
	return newExpr(TypeString, v)
}

// NewSymbol creates a node of type symbol and sets it to the given value
func NewSymbol(v string) *Expr {
	return newExpr(TypeSymbol, v)
}

// NewList creates a node of type list holding the given children, in order
func NewList(children ...*Expr) *Expr {
	return newExpr(TypeList, children)
}

// Type returns the type of the node
func (e *Expr) Type() ExprType {
	return e.t
}

// IsValue returns true if the node is an atom
func (e *Expr) IsValue() bool {
	return e.t&exprTypeValue > 0
}

// IsVector returns true if the node may hold children
func (e *Expr) IsVector() bool {
	return e.t&exprTypeVector > 0
}

// Value returns the raw payload of the node
func (e *Expr) Value() interface{} {
	return e.v
}

// Number returns the payload of a number node
func (e *Expr) Number() float64 {
	v, _ := e.v.(float64)
	return v
}

// Bool returns the payload of a bool node
func (e *Expr) Bool() bool {
	v, _ := e.v.(bool)
	return v
}

// Text returns the payload of a string or symbol node
func (e *Expr) Text() string {
	v, _ := e.v.(string)
	return v
}

// List returns the children of a list node
func (e *Expr) List() []*Expr {
	v, _ := e.v.([]*Expr)
	return v
}

func (e *Expr) String() string {
	return string(Encode(e))
}

// Equal reports whether a and b are structurally identical: same type at
// every node, same payloads, same child order and length.
func Equal(a, b *Expr) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.t != b.t {
		return false
	}

	switch a.t {
	case TypeList:
		al, bl := a.List(), b.List()
		if len(al) != len(bl) {
			return false
		}
		for i := range al {
			if !Equal(al[i], bl[i]) {
				return false
			}
		}
		return true

	case TypeNull:
		return true

	default:
		return a.v == b.v
	}
}
