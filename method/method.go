package method

import (
	"cmp"
	"fmt"
)

// Method is an immutable, hashable-by-identity dataflow node: given the
// current values of its inputs (and outputs, for methods that need
// them), it produces new values for some or all of its outputs. A
// method unable to produce outputs returns an empty map rather than an
// error — MethodGraph's propagation is never interrupted by a method
// that cannot fire.
type Method[V cmp.Ordered] interface {
	Inputs() []V
	Outputs() []V
	Execute(in map[V]Value) map[V]Value
	ID() string
	fmt.Stringer
}

// AddMethod computes C = A + B.
type AddMethod[V cmp.Ordered] struct{ A, B, C V }

func NewAddMethod[V cmp.Ordered](a, b, c V) *AddMethod[V] { return &AddMethod[V]{A: a, B: b, C: c} }

func (m *AddMethod[V]) Inputs() []V  { return []V{m.A, m.B} }
func (m *AddMethod[V]) Outputs() []V { return []V{m.C} }
func (m *AddMethod[V]) ID() string   { return fmt.Sprintf("add(%v,%v->%v)", m.A, m.B, m.C) }
func (m *AddMethod[V]) String() string {
	return fmt.Sprintf("AddMethod(%v + %v = %v)", m.A, m.B, m.C)
}
func (m *AddMethod[V]) Execute(in map[V]Value) map[V]Value {
	a, aok := asFloat(in[m.A])
	b, bok := asFloat(in[m.B])
	if !aok || !bok {
		return map[V]Value{}
	}
	return map[V]Value{m.C: a + b}
}

// SubMethod computes C = A - B.
type SubMethod[V cmp.Ordered] struct{ A, B, C V }

func NewSubMethod[V cmp.Ordered](a, b, c V) *SubMethod[V] { return &SubMethod[V]{A: a, B: b, C: c} }

func (m *SubMethod[V]) Inputs() []V  { return []V{m.A, m.B} }
func (m *SubMethod[V]) Outputs() []V { return []V{m.C} }
func (m *SubMethod[V]) ID() string   { return fmt.Sprintf("sub(%v,%v->%v)", m.A, m.B, m.C) }
func (m *SubMethod[V]) String() string {
	return fmt.Sprintf("SubMethod(%v - %v = %v)", m.A, m.B, m.C)
}
func (m *SubMethod[V]) Execute(in map[V]Value) map[V]Value {
	a, aok := asFloat(in[m.A])
	b, bok := asFloat(in[m.B])
	if !aok || !bok {
		return map[V]Value{}
	}
	return map[V]Value{m.C: a - b}
}

// SetMethod has no inputs: it pins V to a constant value whenever it
// fires.
type SetMethod[V cmp.Ordered] struct {
	V     V
	Value Value
}

func NewSetMethod[V cmp.Ordered](v V, value Value) *SetMethod[V] {
	return &SetMethod[V]{V: v, Value: value}
}

func (m *SetMethod[V]) Inputs() []V  { return nil }
func (m *SetMethod[V]) Outputs() []V { return []V{m.V} }
func (m *SetMethod[V]) ID() string   { return fmt.Sprintf("set(%v)", m.V) }
func (m *SetMethod[V]) String() string {
	return fmt.Sprintf("SetMethod(%v = %v)", m.V, m.Value)
}
func (m *SetMethod[V]) Execute(map[V]Value) map[V]Value {
	return map[V]Value{m.V: m.Value}
}

// AssignMethod passes B's value through to A unchanged: out[A] =
// in[B], or empty if B is unknown. This is the corrected form of the
// source's AssignMethod, which referenced attributes it never set.
type AssignMethod[V cmp.Ordered] struct{ A, B V }

func NewAssignMethod[V cmp.Ordered](a, b V) *AssignMethod[V] { return &AssignMethod[V]{A: a, B: b} }

func (m *AssignMethod[V]) Inputs() []V  { return []V{m.B} }
func (m *AssignMethod[V]) Outputs() []V { return []V{m.A} }
func (m *AssignMethod[V]) ID() string   { return fmt.Sprintf("assign(%v<-%v)", m.A, m.B) }
func (m *AssignMethod[V]) String() string {
	return fmt.Sprintf("AssignMethod(%v <- %v)", m.A, m.B)
}
func (m *AssignMethod[V]) Execute(in map[V]Value) map[V]Value {
	v, ok := in[m.B]
	if !ok || IsUnknown(v) {
		return map[V]Value{}
	}
	return map[V]Value{m.A: v}
}

// SumProdMethod takes two scalar inputs and produces a single
// MultiVariable output holding both their sum and their product.
// Unlike MultiMethod it has no multi-valued inputs to fan out over, so
// it needs no Cartesian-product machinery — it just emits the
// two-element alternative set directly.
type SumProdMethod[V cmp.Ordered] struct{ A, B, Out V }

func NewSumProdMethod[V cmp.Ordered](a, b, out V) *SumProdMethod[V] {
	return &SumProdMethod[V]{A: a, B: b, Out: out}
}

func (m *SumProdMethod[V]) Inputs() []V  { return []V{m.A, m.B} }
func (m *SumProdMethod[V]) Outputs() []V { return []V{m.Out} }
func (m *SumProdMethod[V]) ID() string   { return fmt.Sprintf("sumprod(%v,%v->%v)", m.A, m.B, m.Out) }
func (m *SumProdMethod[V]) String() string {
	return fmt.Sprintf("SumProdMethod(%v, %v -> %v)", m.A, m.B, m.Out)
}
func (m *SumProdMethod[V]) Execute(in map[V]Value) map[V]Value {
	a, aok := asFloat(in[m.A])
	b, bok := asFloat(in[m.B])
	if !aok || !bok {
		return map[V]Value{}
	}
	return map[V]Value{m.Out: []Value{a + b, a * b}}
}
