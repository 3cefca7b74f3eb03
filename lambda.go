// Package lambda evaluates untyped lambda calculus expressions with
// multi-argument binders. Source text is tokenized and parsed into a term
// tree, then reduced step by step under a leftmost-outermost strategy until
// it reaches normal form or is proven stuck.
package lambda

import (
	"github.com/xiam/lambda/ast"
	"github.com/xiam/lambda/parser"
)

// Evaluator drives the reduction of a single term. Every committed step
// snapshots the new tree into an append-only history, so a caller can move
// back and forth over past states without re-deriving them.
type Evaluator struct {
	root    ast.Node
	message string
	history []ast.Node
}

// New parses the given source text and wraps the resulting term in an
// Evaluator. Lexer and parser errors are returned unchanged.
func New(src string) (*Evaluator, error) {
	root, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	return &Evaluator{
		root:    root,
		history: []ast.Node{root},
	}, nil
}

// AST returns the current term.
func (e *Evaluator) AST() ast.Node {
	return e.root
}

// SetAST replaces the current term, typically with a snapshot taken earlier.
// The history is left untouched.
func (e *Evaluator) SetAST(n ast.Node) {
	e.root = n
}

// ReduceOnce performs one reduction step and commits it. It returns false
// when the term is already in normal form.
func (e *Evaluator) ReduceOnce() (bool, error) {
	next, msg, changed, err := step(e.root)
	if err != nil {
		return false, err
	}
	if !changed {
		return false, nil
	}

	e.root = next
	e.message = msg
	e.history = append(e.history, next)
	return true, nil
}

// ReduceAll keeps stepping until the term reaches normal form and returns
// it. The number of steps is unbounded: a non-terminating term makes
// ReduceAll run forever.
func (e *Evaluator) ReduceAll() (ast.Node, error) {
	for {
		changed, err := e.ReduceOnce()
		if err != nil {
			return nil, err
		}
		if !changed {
			return e.root, nil
		}
	}
}

// Message returns a human-readable description of the most recent beta
// firing: the head term, the consumed arguments and the result.
func (e *Evaluator) Message() string {
	return e.message
}

// History returns the committed snapshots in order, index 0 being the
// initial term. The returned slice is a copy; the snapshots themselves are
// immutable.
func (e *Evaluator) History() []ast.Node {
	history := make([]ast.Node, len(e.history))
	copy(history, e.history)
	return history
}

// Snapshot returns the i-th committed snapshot.
func (e *Evaluator) Snapshot(i int) ast.Node {
	return e.history[i]
}

// PrettyPrint renders the current term in canonical syntax.
func (e *Evaluator) PrettyPrint() string {
	return ast.Encode(e.root)
}
