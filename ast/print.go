package ast

import (
	"fmt"
	"strings"
)

// encodeContext tells a node where it sits relative to its parent, which is
// all the canonical form needs to decide parenthesization.
type encodeContext uint8

const (
	ctxTop         encodeContext = iota
	ctxApplication               // item of an enclosing application
	ctxBody                      // direct body of an enclosing function
)

// Encode transforms a term into its canonical text representation, using the
// minimal parenthesization that still re-parses to the same tree: nested
// applications are parenthesized, functions are parenthesized everywhere
// except as the direct body of an enclosing function.
func Encode(n Node) string {
	return encodeNode(n, ctxTop)
}

func encodeNode(n Node, ctx encodeContext) string {
	switch n := n.(type) {
	case Atom:
		return n.Name

	case Function:
		s := fmt.Sprintf("\\%s.%s", strings.Join(n.Params, " "), encodeNode(n.Body, ctxBody))
		if ctx == ctxBody {
			return s
		}
		return "(" + s + ")"

	case Application:
		items := make([]string, len(n.Items))
		for i := range n.Items {
			items[i] = encodeNode(n.Items[i], ctxApplication)
		}
		s := strings.Join(items, " ")
		if ctx == ctxApplication {
			return "(" + s + ")"
		}
		return s
	}

	panic("unknown node type")
}

// Print displays a human-readable representation of a term tree
func Print(n Node) {
	printLevel(n, 0)
}

func printLevel(n Node, level int) {
	indent := strings.Repeat("    ", level)

	switch n := n.(type) {
	case Atom:
		fmt.Printf("%s(atom): %s\n", indent, n.Name)

	case Function:
		fmt.Printf("%s(function): [%s]\n", indent, strings.Join(n.Params, " "))
		printLevel(n.Body, level+1)

	case Application:
		fmt.Printf("%s(application)[%d]\n", indent, len(n.Items))
		for i := range n.Items {
			printLevel(n.Items[i], level+1)
		}

	default:
		panic("unknown node type")
	}
}
