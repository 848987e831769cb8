package constraint

import (
	"cmp"
	"fmt"

	"github.com/solvergeo/rigidcore/geom"
)

// selectionKind names the four concrete orientation/angle predicates
// plus the generic custom case, for String() and ID() rendering.
type selectionKind int

const (
	kindCustom selectionKind = iota
	kindNotClockwise
	kindNotCounterClockwise
	kindNotObtuse
	kindNotAcute
)

func (k selectionKind) String() string {
	switch k {
	case kindNotClockwise:
		return "NotClockwise"
	case kindNotCounterClockwise:
		return "NotCounterClockwise"
	case kindNotObtuse:
		return "NotObtuse"
	case kindNotAcute:
		return "NotAcute"
	case kindCustom:
		return "FunctionConstraint"
	default:
		return "Unknown"
	}
}

// SelectionConstraint is the common shape of the four concrete
// orientation/angle-class predicates: three ordered point variables and
// the geometric test applied to their coordinates. It is built via
// NewFunctionConstraint, which accepts an arbitrary predicate over the
// three points so callers are not limited to the four named cases.
type SelectionConstraint[V cmp.Ordered] struct {
	kind    selectionKind
	A, B, C V
	pred    func(a, b, c geom.Vector) bool
}

// NewFunctionConstraint builds a SelectionConstraint over (a, b, c) from
// an arbitrary predicate on their coordinates. The four named
// constructors below are thin wrappers over this one.
func NewFunctionConstraint[V cmp.Ordered](a, b, c V, fn func(a, b, c geom.Vector) bool) SelectionConstraint[V] {
	return SelectionConstraint[V]{kind: kindCustom, A: a, B: b, C: c, pred: fn}
}

func (s SelectionConstraint[V]) Variables() []V { return []V{s.A, s.B, s.C} }

func (s SelectionConstraint[V]) Satisfied(assignment map[V]geom.Vector) bool {
	a, aok := assignment[s.A]
	b, bok := assignment[s.B]
	c, cok := assignment[s.C]
	if !aok || !bok || !cok {
		return false
	}
	return s.pred(a, b, c)
}

func (s SelectionConstraint[V]) ID() string {
	return fmt.Sprintf("%s(%v,%v,%v)", s.kind, s.A, s.B, s.C)
}

func (s SelectionConstraint[V]) String() string {
	return fmt.Sprintf("%s(%v, %v, %v)", s.kind, s.A, s.B, s.C)
}

// NewNotClockwise forbids a, b, c from being in clockwise order.
func NewNotClockwise[V cmp.Ordered](a, b, c V) SelectionConstraint[V] {
	s := NewFunctionConstraint(a, b, c, func(a, b, c geom.Vector) bool { return !geom.IsClockwise(a, b, c) })
	s.kind = kindNotClockwise
	return s
}

// NewNotCounterClockwise forbids a, b, c from being in counter-clockwise order.
func NewNotCounterClockwise[V cmp.Ordered](a, b, c V) SelectionConstraint[V] {
	s := NewFunctionConstraint(a, b, c, func(a, b, c geom.Vector) bool { return !geom.IsCounterClockwise(a, b, c) })
	s.kind = kindNotCounterClockwise
	return s
}

// NewNotObtuse forbids the angle at b from being obtuse.
func NewNotObtuse[V cmp.Ordered](a, b, c V) SelectionConstraint[V] {
	s := NewFunctionConstraint(a, b, c, func(a, b, c geom.Vector) bool { return !geom.IsObtuse(a, b, c) })
	s.kind = kindNotObtuse
	return s
}

// NewNotAcute forbids the angle at b from being acute.
func NewNotAcute[V cmp.Ordered](a, b, c V) SelectionConstraint[V] {
	s := NewFunctionConstraint(a, b, c, func(a, b, c geom.Vector) bool { return !geom.IsAcute(a, b, c) })
	s.kind = kindNotAcute
	return s
}
