package ast

// Node represents a term of the lambda calculus. It is a closed sum: the
// only implementations are Atom, Function and Application. Trees are never
// mutated after construction; transformations allocate new nodes and share
// nothing with the input.
type Node interface {
	node()
}

// Atom is a variable reference.
type Atom struct {
	Name string
}

// Function is a multi-binder abstraction. Params is non-empty; the grammar
// guarantees at least one bound name.
type Function struct {
	Params []string
	Body   Node
}

// Application is a left-to-right juxtaposition of two or more terms. Every
// live Application holds at least two items.
type Application struct {
	Items []Node
}

func (Atom) node()        {}
func (Function) node()    {}
func (Application) node() {}

// Equal reports whether two terms are structurally identical.
func Equal(a, b Node) bool {
	switch a := a.(type) {
	case Atom:
		b, ok := b.(Atom)
		return ok && a.Name == b.Name

	case Function:
		b, ok := b.(Function)
		if !ok || len(a.Params) != len(b.Params) {
			return false
		}
		for i := range a.Params {
			if a.Params[i] != b.Params[i] {
				return false
			}
		}
		return Equal(a.Body, b.Body)

	case Application:
		b, ok := b.(Application)
		if !ok || len(a.Items) != len(b.Items) {
			return false
		}
		for i := range a.Items {
			if !Equal(a.Items[i], b.Items[i]) {
				return false
			}
		}
		return true
	}

	return false
}
