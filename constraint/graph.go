package constraint

import (
	"cmp"
	"fmt"
	"sort"
	"strings"

	"github.com/solvergeo/rigidcore/digraph"
	"github.com/solvergeo/rigidcore/solverlog"
)

// ConstraintGraph wraps the generic directed-graph substrate as a
// bipartite variable/constraint index: an edge v -> c exists iff v is
// one of c's variables.
type ConstraintGraph[V cmp.Ordered] struct {
	g           *digraph.Graph[string]
	variables   map[string]V
	constraints map[string]Constraint[V]
	log         solverlog.Logger
}

// Option configures a ConstraintGraph at construction time.
type Option[V cmp.Ordered] func(*ConstraintGraph[V])

// WithLogger injects a logger for soft-warning diagnostics. Nil (the
// default) is silent.
func WithLogger[V cmp.Ordered](l solverlog.Logger) Option[V] {
	return func(cg *ConstraintGraph[V]) { cg.log = solverlog.OrNop(l) }
}

func New[V cmp.Ordered](opts ...Option[V]) *ConstraintGraph[V] {
	cg := &ConstraintGraph[V]{
		g:           digraph.New[string](),
		variables:   make(map[string]V),
		constraints: make(map[string]Constraint[V]),
		log:         solverlog.Nop,
	}
	for _, opt := range opts {
		opt(cg)
	}
	return cg
}

func varKey[V cmp.Ordered](v V) string { return "v:" + fmt.Sprintf("%v", v) }

// AddVariable inserts v if absent. Idempotent.
func (cg *ConstraintGraph[V]) AddVariable(v V) {
	key := varKey(v)
	if _, ok := cg.variables[key]; ok {
		return
	}
	cg.variables[key] = v
	cg.g.AddVertex(key)
}

// HasVariable reports whether v has been added.
func (cg *ConstraintGraph[V]) HasVariable(v V) bool {
	_, ok := cg.variables[varKey(v)]
	return ok
}

// RemoveVariable removes every constraint touching v, then v itself.
// Removing an absent variable is a non-fatal soft warning.
func (cg *ConstraintGraph[V]) RemoveVariable(v V) {
	key := varKey(v)
	if _, ok := cg.variables[key]; !ok {
		cg.log.Warn("constraint graph: remove of absent variable", "variable", v)
		return
	}
	for _, c := range cg.ConstraintsOn(v) {
		cg.RemoveConstraint(c)
	}
	delete(cg.variables, key)
	cg.g.RemoveVertex(key)
}

// AddConstraint inserts c, implicitly adding any variables not yet
// present, and wires v -> c for each of c's variables. Idempotent.
func (cg *ConstraintGraph[V]) AddConstraint(c Constraint[V]) {
	key := "c:" + c.ID()
	if _, ok := cg.constraints[key]; ok {
		return
	}
	cg.constraints[key] = c
	cg.g.AddVertex(key)
	for _, v := range c.Variables() {
		cg.AddVariable(v)
		cg.g.AddEdge(varKey(v), key)
	}
}

// RemoveConstraint removes c. Removing an absent constraint is a
// non-fatal soft warning.
func (cg *ConstraintGraph[V]) RemoveConstraint(c Constraint[V]) {
	key := "c:" + c.ID()
	if _, ok := cg.constraints[key]; !ok {
		cg.log.Warn("constraint graph: remove of absent constraint", "constraint", c)
		return
	}
	delete(cg.constraints, key)
	cg.g.RemoveVertex(key)
}

// ConstraintsOn returns the constraints adjacent to v (empty if v is
// absent).
func (cg *ConstraintGraph[V]) ConstraintsOn(v V) []Constraint[V] {
	key := varKey(v)
	if !cg.g.HasVertex(key) {
		return nil
	}
	var out []Constraint[V]
	for _, ck := range cg.g.OutNeighbors(key) {
		if c, ok := cg.constraints[ck]; ok {
			out = append(out, c)
		}
	}
	return out
}

// ConstraintsOnAll returns the intersection of ConstraintsOn(v) over
// vs, preserving the order seen on vs[0].
func (cg *ConstraintGraph[V]) ConstraintsOnAll(vs []V) []Constraint[V] {
	if len(vs) == 0 {
		return nil
	}
	first := cg.ConstraintsOn(vs[0])
	rest := vs[1:]

	var out []Constraint[V]
	for _, c := range first {
		inAll := true
		for _, v := range rest {
			if !containsConstraint(cg.ConstraintsOn(v), c) {
				inAll = false
				break
			}
		}
		if inAll {
			out = append(out, c)
		}
	}
	return out
}

// ConstraintsOnAny returns the union of ConstraintsOn(v) over vs.
func (cg *ConstraintGraph[V]) ConstraintsOnAny(vs []V) []Constraint[V] {
	seen := make(map[string]bool)
	var out []Constraint[V]
	for _, v := range vs {
		for _, c := range cg.ConstraintsOn(v) {
			if !seen[c.ID()] {
				seen[c.ID()] = true
				out = append(out, c)
			}
		}
	}
	return out
}

// String renders the graph as "ConstraintGraph(variables=[...], constraints=[...])".
func (cg *ConstraintGraph[V]) String() string {
	vars := make([]string, 0, len(cg.variables))
	for _, v := range cg.variables {
		vars = append(vars, fmt.Sprintf("%v", v))
	}
	sort.Strings(vars)

	cons := make([]string, 0, len(cg.constraints))
	for _, c := range cg.constraints {
		cons = append(cons, c.String())
	}
	sort.Strings(cons)

	return fmt.Sprintf("ConstraintGraph(variables=[%s], constraints=[%s])",
		strings.Join(vars, ", "), strings.Join(cons, ", "))
}

func containsConstraint[V cmp.Ordered](cs []Constraint[V], target Constraint[V]) bool {
	for _, c := range cs {
		if c.ID() == target.ID() {
			return true
		}
	}
	return false
}
