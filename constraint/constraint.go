package constraint

import (
	"cmp"
	"fmt"

	"github.com/solvergeo/rigidcore/geom"
)

// Constraint is a pure predicate over a point assignment. Concrete
// constraints are immutable; ID identifies a constraint for graph
// indexing and idempotent add/remove the way the source relies on
// object identity.
type Constraint[V cmp.Ordered] interface {
	Variables() []V
	Satisfied(assignment map[V]geom.Vector) bool
	ID() string
	fmt.Stringer
}

// PlusConstraint is a testing constraint unrelated to the selection
// predicates below: it holds iff the X components of a and b sum to
// the X component of c. It exists to exercise ConstraintGraph wiring
// without dragging in orientation geometry.
type PlusConstraint[V cmp.Ordered] struct {
	A, B, C V
}

func NewPlusConstraint[V cmp.Ordered](a, b, c V) PlusConstraint[V] {
	return PlusConstraint[V]{A: a, B: b, C: c}
}

func (p PlusConstraint[V]) Variables() []V { return []V{p.A, p.B, p.C} }

func (p PlusConstraint[V]) Satisfied(assignment map[V]geom.Vector) bool {
	a, aok := assignment[p.A]
	b, bok := assignment[p.B]
	c, cok := assignment[p.C]
	if !aok || !bok || !cok {
		return false
	}
	return geom.ToleranceZero(a.X + b.X - c.X)
}

func (p PlusConstraint[V]) ID() string {
	return fmt.Sprintf("plus(%v,%v,%v)", p.A, p.B, p.C)
}

func (p PlusConstraint[V]) String() string {
	return fmt.Sprintf("PlusConstraint(%v, %v, %v)", p.A, p.B, p.C)
}
