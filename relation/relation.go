// Package relation provides the value objects used to describe
// implied/over-constrained geometric facts: a distance between two
// points, or an angle at a vertex between two rays.
//
// Point variables are constrained to cmp.Ordered rather than bare
// comparable: normalizing an unordered pair or leg set needs a
// canonical order to pick a winner. Ordering the variable type once,
// here, lets every relation normalize itself on construction and get
// correct equality AND hashing for free from Go's native
// comparable-struct map keys, with no separate Hash method needed.
package relation

import (
	"cmp"
	"fmt"
)

// Distance is the unordered pair {A, B}. Two Distances over the same
// pair of points are equal regardless of construction order.
type Distance[V cmp.Ordered] struct {
	A, B V
}

// NewDistance returns the Distance between a and b, normalized so that
// Distance(a, b) == Distance(b, a) holds for Go's native == and for use
// as a map key.
func NewDistance[V cmp.Ordered](a, b V) Distance[V] {
	if a > b {
		a, b = b, a
	}
	return Distance[V]{A: a, B: b}
}

// String renders the distance as "Distance(a, b)".
func (d Distance[V]) String() string {
	return fmt.Sprintf("Distance(%v, %v)", d.A, d.B)
}

// Angle is an angle at apex Apex between rays to L1 and L2. The legs are
// unordered: Angle(a, b, c) == Angle(c, b, a), but Angle(a, b, c) !=
// Angle(b, a, c) since the apex differs.
type Angle[V cmp.Ordered] struct {
	Apex V
	L1   V
	L2   V
}

// NewAngle returns the angle at vertex b between legs a and c,
// normalized so that Angle(a, b, c) == Angle(c, b, a).
func NewAngle[V cmp.Ordered](a, b, c V) Angle[V] {
	if a > c {
		a, c = c, a
	}
	return Angle[V]{Apex: b, L1: a, L2: c}
}

// String renders the angle as "Angle(l1, apex, l2)".
func (a Angle[V]) String() string {
	return fmt.Sprintf("Angle(%v, %v, %v)", a.L1, a.Apex, a.L2)
}
