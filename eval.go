package lambda

import (
	"fmt"
	"strings"

	"github.com/xiam/lambda/ast"
)

// EvalErrorKind enumerates the ways a reduction step can fail.
type EvalErrorKind uint8

const (
	// KindTooFewApplicationItems means an Application node carried fewer
	// than two items. Unreachable from any parsed tree.
	KindTooFewApplicationItems EvalErrorKind = iota

	// KindInsufficientArguments means a function was applied to fewer
	// arguments than it has parameters. A function never partially
	// reduces; this is a hard error, not a stuck state.
	KindInsufficientArguments

	// KindUnknownNodeKind means a term was not an Atom, Function or
	// Application. Unreachable through this package's own types.
	KindUnknownNodeKind
)

// EvalError reports a failed reduction step. Expected and Got are set only
// for KindInsufficientArguments.
type EvalError struct {
	Kind     EvalErrorKind
	Expected int
	Got      int
}

func (e *EvalError) Error() string {
	switch e.Kind {
	case KindTooFewApplicationItems:
		return "eval error: application must hold at least two items"
	case KindInsufficientArguments:
		return fmt.Sprintf("eval error: function expects %d arguments, got %d", e.Expected, e.Got)
	}
	return "eval error: unknown node kind"
}

// Step performs at most one leftmost-outermost reduction on the term and
// returns the resulting tree along with whether anything changed. The input
// tree is never mutated; an unchanged result is the input itself.
func Step(n ast.Node) (ast.Node, bool, error) {
	next, _, changed, err := step(n)
	return next, changed, err
}

// step is Step plus a human-readable description of the beta firing that
// happened, if any, for display by interactive drivers.
func step(n ast.Node) (ast.Node, string, bool, error) {
	switch n := n.(type) {
	case ast.Atom:
		return n, "", false, nil

	case ast.Function:
		body, msg, changed, err := step(n.Body)
		if err != nil {
			return nil, "", false, err
		}
		if !changed {
			return n, "", false, nil
		}
		return ast.Function{Params: n.Params, Body: body}, msg, true, nil

	case ast.Application:
		return stepApplication(n)
	}

	return nil, "", false, &EvalError{Kind: KindUnknownNodeKind}
}

func stepApplication(n ast.Application) (ast.Node, string, bool, error) {
	if len(n.Items) < 2 {
		return nil, "", false, &EvalError{Kind: KindTooFewApplicationItems}
	}

	// Leftmost reducible item goes first, the head included.
	for i := range n.Items {
		item, msg, changed, err := step(n.Items[i])
		if err != nil {
			return nil, "", false, err
		}
		if changed {
			items := make([]ast.Node, len(n.Items))
			copy(items, n.Items)
			items[i] = item
			return ast.Application{Items: items}, msg, true, nil
		}
	}

	// Every item is in normal form. A non-function head makes the whole
	// application stuck.
	fn, ok := n.Items[0].(ast.Function)
	if !ok {
		return n, "", false, nil
	}

	k := len(fn.Params)
	if len(n.Items)-1 < k {
		return nil, "", false, &EvalError{
			Kind:     KindInsufficientArguments,
			Expected: k,
			Got:      len(n.Items) - 1,
		}
	}

	args := n.Items[1 : 1+k]
	result := substitute(fn.Body, fn.Params, args)
	msg := betaMessage(fn, args, result)

	// Surplus arguments stay juxtaposed after the result.
	rest := n.Items[1+k:]
	if len(rest) == 0 {
		return result, msg, true, nil
	}

	items := make([]ast.Node, 0, 1+len(rest))
	items = append(items, result)
	items = append(items, rest...)
	return ast.Application{Items: items}, msg, true, nil
}

// substitute replaces every free occurrence of params[i] in the body with
// args[i], all at once. The only capture guard is shadowing at the
// immediately nested binder: a parameter re-bound by an inner function is
// excluded from the substitution entering that function's body. No
// alpha-renaming happens beyond that, matching the surface semantics of the
// calculus implemented here.
func substitute(body ast.Node, params []string, args []ast.Node) ast.Node {
	switch body := body.(type) {
	case ast.Atom:
		for i := range params {
			if params[i] == body.Name {
				return args[i]
			}
		}
		return body

	case ast.Function:
		keepParams := make([]string, 0, len(params))
		keepArgs := make([]ast.Node, 0, len(args))
		for i := range params {
			if !rebinds(body.Params, params[i]) {
				keepParams = append(keepParams, params[i])
				keepArgs = append(keepArgs, args[i])
			}
		}
		if len(keepParams) == 0 {
			return body
		}
		return ast.Function{
			Params: body.Params,
			Body:   substitute(body.Body, keepParams, keepArgs),
		}

	case ast.Application:
		items := make([]ast.Node, len(body.Items))
		for i := range body.Items {
			items[i] = substitute(body.Items[i], params, args)
		}
		return ast.Application{Items: items}
	}

	panic("unknown node type")
}

func rebinds(params []string, name string) bool {
	for i := range params {
		if params[i] == name {
			return true
		}
	}
	return false
}

func betaMessage(fn ast.Function, args []ast.Node, result ast.Node) string {
	encoded := make([]string, len(args))
	for i := range args {
		encoded[i] = ast.Encode(args[i])
	}
	return fmt.Sprintf("applied %s to %s, producing %s",
		ast.Encode(fn), strings.Join(encoded, " "), ast.Encode(result))
}
