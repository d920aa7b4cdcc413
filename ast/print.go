package ast

import (
	"fmt"
	"strings"
)

// Encode transforms a node into its text representation
func Encode(e *Expr) []byte {
	if e == nil {
		return []byte("null")
	}

	switch e.Type() {
	case TypeList:
		nodes := []string{}
		for _, c := range e.List() {
			nodes = append(nodes, string(Encode(c)))
		}
		return []byte(fmt.Sprintf("(%s)", strings.Join(nodes, " ")))

	case TypeString:
		return []byte(fmt.Sprintf("%q", e.Text()))

	case TypeSymbol:
		return []byte(e.Text())

	case TypeNull:
		return []byte("null")

	default:
		return []byte(fmt.Sprintf("%v", e.Value()))
	}
}

// Print displays a human-readable representation of a node
func Print(e *Expr) {
	printLevel(e, 0)
}

func printLevel(e *Expr, level int) {
	if e == nil {
		fmt.Printf(":nil\n")
		return
	}
	indent := strings.Repeat("    ", level)

	switch e.Type() {
	case TypeList:
		fmt.Printf("%s(%s)[%d]:\n", indent, e.Type(), len(e.List()))
		for _, c := range e.List() {
			printLevel(c, level+1)
		}

	default:
		fmt.Printf("%s(%s): %s\n", indent, e.Type(), Encode(e))
	}
}
