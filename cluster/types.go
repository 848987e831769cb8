package cluster

import (
	"cmp"
	"fmt"
	"sort"
	"strings"
)

// Kind tags the three cluster variants for tagged-match dispatch.
type Kind int

const (
	KindRigid Kind = iota
	KindHedgehog
	KindBalloon
)

func (k Kind) String() string {
	switch k {
	case KindRigid:
		return "Rigid"
	case KindHedgehog:
		return "Hedgehog"
	case KindBalloon:
		return "Balloon"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Cluster is a partial-solution descriptor over a set of point
// variables: Rigid, Hedgehog or Balloon.
type Cluster[V cmp.Ordered] interface {
	// Kind reports which variant this is, for tagged-match dispatch.
	Kind() Kind
	// Vars returns the cluster's variables in sorted order.
	Vars() []V
	// HasVar reports whether v is one of the cluster's variables.
	HasVar(v V) bool
	// Overconstrained reports the planner-set over-constraint flag.
	Overconstrained() bool
	// SetOverconstrained marks the cluster as over-constrained. Write-once
	// by convention: only the planner calls this, and only ever to true.
	SetOverconstrained()
	// NDistances is the number of distances this cluster implies.
	NDistances() int
	// NAngles is the number of angles this cluster implies.
	NAngles() int
	fmt.Stringer
}

// varSet is the shared storage for a sorted, deduplicated variable set.
type varSet[V cmp.Ordered] struct {
	set map[V]bool
}

func newVarSet[V cmp.Ordered](vars []V) varSet[V] {
	s := make(map[V]bool, len(vars))
	for _, v := range vars {
		s[v] = true
	}
	return varSet[V]{set: s}
}

func (vs varSet[V]) sorted() []V {
	out := make([]V, 0, len(vs.set))
	for v := range vs.set {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (vs varSet[V]) has(v V) bool { return vs.set[v] }

func (vs varSet[V]) intersect(other varSet[V]) varSet[V] {
	out := make(map[V]bool)
	for v := range vs.set {
		if other.set[v] {
			out[v] = true
		}
	}
	return varSet[V]{set: out}
}

func (vs varSet[V]) minus(v V) varSet[V] {
	out := make(map[V]bool, len(vs.set))
	for k := range vs.set {
		if k != v {
			out[k] = true
		}
	}
	return varSet[V]{set: out}
}

func (vs varSet[V]) len() int { return len(vs.set) }

func joinVars[V cmp.Ordered](vs []V) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return strings.Join(parts, ", ")
}

// Rigid represents a set of points whose relative positions are fully
// fixed: every pairwise distance and every oriented angle is implied.
type Rigid[V cmp.Ordered] struct {
	vars            varSet[V]
	overconstrained bool
}

// NewRigid returns a Rigid cluster over vars. A single-variable (or
// even empty) Rigid is semantically permitted: degenerate shapes are a
// caller concern, not a construction error.
func NewRigid[V cmp.Ordered](vars ...V) *Rigid[V] {
	return &Rigid[V]{vars: newVarSet(vars)}
}

func (r *Rigid[V]) Kind() Kind               { return KindRigid }
func (r *Rigid[V]) Vars() []V                { return r.vars.sorted() }
func (r *Rigid[V]) HasVar(v V) bool          { return r.vars.has(v) }
func (r *Rigid[V]) Overconstrained() bool    { return r.overconstrained }
func (r *Rigid[V]) SetOverconstrained()      { r.overconstrained = true }
func (r *Rigid[V]) NDistances() int          { return binom(r.vars.len(), 2) }
func (r *Rigid[V]) NAngles() int             { return 3 * binom(r.vars.len(), 3) }
func (r *Rigid[V]) String() string {
	return fmt.Sprintf("%sRigid(%s)", marker(r.overconstrained), joinVars(r.Vars()))
}

// Hedgehog represents a central variable c plus a spoke set X (c ∉ X,
// |X| >= 2): every angle ∠(xi, c, xj) for distinct xi, xj in X is
// implied. Distances are not implied.
type Hedgehog[V cmp.Ordered] struct {
	center          V
	spokes          varSet[V]
	overconstrained bool
}

// NewHedgehog returns a Hedgehog centered at c with spokes x. It returns
// ErrHedgehogTooFewSpokes if fewer than two distinct spokes (excluding
// c itself) are given.
func NewHedgehog[V cmp.Ordered](c V, x ...V) (*Hedgehog[V], error) {
	spokes := newVarSet(x)
	delete(spokes.set, c)
	if spokes.len() < 2 {
		return nil, ErrHedgehogTooFewSpokes
	}
	return &Hedgehog[V]{center: c, spokes: spokes}, nil
}

func (h *Hedgehog[V]) Kind() Kind            { return KindHedgehog }
func (h *Hedgehog[V]) Center() V             { return h.center }
func (h *Hedgehog[V]) Spokes() []V           { return h.spokes.sorted() }
func (h *Hedgehog[V]) Vars() []V {
	all := newVarSet(h.spokes.sorted())
	all.set[h.center] = true
	return all.sorted()
}
func (h *Hedgehog[V]) HasVar(v V) bool       { return v == h.center || h.spokes.has(v) }
func (h *Hedgehog[V]) Overconstrained() bool { return h.overconstrained }
func (h *Hedgehog[V]) SetOverconstrained()   { h.overconstrained = true }
func (h *Hedgehog[V]) NDistances() int       { return 0 }
func (h *Hedgehog[V]) NAngles() int          { return binom(h.spokes.len(), 2) }
func (h *Hedgehog[V]) String() string {
	return fmt.Sprintf("%sHedgehog(%v; %s)", marker(h.overconstrained), h.center, joinVars(h.Spokes()))
}

// Balloon represents a set of points fixed up to uniform scaling: every
// angle on triples is implied, no distances are.
type Balloon[V cmp.Ordered] struct {
	vars            varSet[V]
	overconstrained bool
}

// NewBalloon returns a Balloon over vars. It returns ErrBalloonTooFewVars
// if fewer than three distinct variables are given.
func NewBalloon[V cmp.Ordered](vars ...V) (*Balloon[V], error) {
	vs := newVarSet(vars)
	if vs.len() < 3 {
		return nil, ErrBalloonTooFewVars
	}
	return &Balloon[V]{vars: vs}, nil
}

func (b *Balloon[V]) Kind() Kind               { return KindBalloon }
func (b *Balloon[V]) Vars() []V                { return b.vars.sorted() }
func (b *Balloon[V]) HasVar(v V) bool          { return b.vars.has(v) }
func (b *Balloon[V]) Overconstrained() bool    { return b.overconstrained }
func (b *Balloon[V]) SetOverconstrained()      { b.overconstrained = true }
func (b *Balloon[V]) NDistances() int          { return 0 }
func (b *Balloon[V]) NAngles() int             { return 3 * binom(b.vars.len(), 3) }
func (b *Balloon[V]) String() string {
	return fmt.Sprintf("%sBalloon(%s)", marker(b.overconstrained), joinVars(b.Vars()))
}

func marker(overconstrained bool) string {
	if overconstrained {
		return "!"
	}
	return ""
}

// NConstraints is n_distances(c) + n_angles(c).
func NConstraints[V cmp.Ordered](c Cluster[V]) int {
	return c.NDistances() + c.NAngles()
}

// binom returns the binomial coefficient C(n, k) for small non-negative
// n, k, computed directly (no factorials) to avoid overflow for the
// cluster sizes this solver deals with.
func binom(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 0; i < k; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}
