package ast

// ExprType represents the type of an expression node
type ExprType uint16

// Expression types
const (
	exprTypeValue  ExprType = 128
	exprTypeVector ExprType = 256

	TypeNumber ExprType = exprTypeValue | 1
	TypeBool   ExprType = exprTypeValue | 2
	TypeString ExprType = exprTypeValue | 4
	TypeSymbol ExprType = exprTypeValue | 8
	TypeNull   ExprType = exprTypeValue | 16

	TypeList ExprType = exprTypeVector | 1
)

var exprTypeNames = map[ExprType]string{
	TypeNumber: "number",
	TypeBool:   "bool",
	TypeString: "string",
	TypeSymbol: "symbol",
	TypeNull:   "null",
	TypeList:   "list",
}

func (t ExprType) String() string {
	if s, ok := exprTypeNames[t]; ok {
		return s
	}
	return ""
}
