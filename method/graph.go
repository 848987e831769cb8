package method

import (
	"cmp"
	"fmt"
	"sort"
	"strings"

	"github.com/solvergeo/rigidcore/digraph"
	"github.com/solvergeo/rigidcore/solverlog"
)

// MethodGraph wraps the generic directed-graph substrate as a bipartite
// variable/method dataflow graph, enforcing single-writer and acyclic
// invariants and propagating value changes.
type MethodGraph[V cmp.Ordered] struct {
	g       *digraph.Graph[string]
	values  map[V]Value
	multi   map[V]bool
	methods map[string]Method[V]

	changedOrder []V
	changedSet   map[V]bool

	log solverlog.Logger
}

// Option configures a MethodGraph at construction time.
type Option[V cmp.Ordered] func(*MethodGraph[V])

// WithLogger injects a logger for debug tracing. Nil (the default) is
// silent.
func WithLogger[V cmp.Ordered](l solverlog.Logger) Option[V] {
	return func(mg *MethodGraph[V]) { mg.log = solverlog.OrNop(l) }
}

func New[V cmp.Ordered](opts ...Option[V]) *MethodGraph[V] {
	mg := &MethodGraph[V]{
		g:          digraph.New[string](),
		values:     make(map[V]Value),
		multi:      make(map[V]bool),
		methods:    make(map[string]Method[V]),
		changedSet: make(map[V]bool),
		log:        solverlog.Nop,
	}
	for _, opt := range opts {
		opt(mg)
	}
	return mg
}

func varKey[V cmp.Ordered](v V) string { return "v:" + fmt.Sprintf("%v", v) }
func methodKey(m interface{ ID() string }) string {
	return "m:" + m.ID()
}

// AddVariable inserts v with value Unknown if absent. Idempotent.
func (mg *MethodGraph[V]) AddVariable(v V) {
	if _, ok := mg.values[v]; ok {
		return
	}
	mg.values[v] = Unknown
	mg.g.AddVertex(varKey(v))
}

// AddMultiVariable inserts v as a MultiVariable: it starts as Unknown,
// and once known its value is a []Value of alternatives rather than a
// scalar.
func (mg *MethodGraph[V]) AddMultiVariable(v V) {
	mg.AddVariable(v)
	mg.multi[v] = true
}

// IsMultiVariable reports whether v was registered via AddMultiVariable.
func (mg *MethodGraph[V]) IsMultiVariable(v V) bool { return mg.multi[v] }

// HasVariable reports whether v has been added.
func (mg *MethodGraph[V]) HasVariable(v V) bool {
	_, ok := mg.values[v]
	return ok
}

// Value returns v's current stored value (Unknown if never set).
func (mg *MethodGraph[V]) Value(v V) Value { return mg.values[v] }

// RemoveVariable removes every method touching v (as input or output),
// then v itself. Removing an absent variable is a programmer error.
func (mg *MethodGraph[V]) RemoveVariable(v V) {
	if _, ok := mg.values[v]; !ok {
		panic(fmt.Sprintf("method graph: remove of absent variable %v", v))
	}
	key := varKey(v)
	for _, mk := range append(mg.g.OutNeighbors(key), mg.g.InNeighbors(key)...) {
		if m, ok := mg.methods[mk]; ok {
			mg.removeMethod(m)
		}
	}
	delete(mg.values, v)
	delete(mg.multi, v)
	mg.unmarkChanged(v)
	mg.g.RemoveVertex(key)
}

// Set overwrites v's stored value, marks it changed, and propagates if
// requested.
func (mg *MethodGraph[V]) Set(v V, value Value, propagate bool) {
	mg.values[v] = value
	mg.markChanged(v)
	if propagate {
		mg.Propagate()
	}
}

// AddMethod inserts m, wiring input/output edges and implicitly adding
// any variables not yet present. It validates the single-writer and
// acyclic invariants, rolling the method back and returning a typed
// violation if either is broken. On success, if propagate is true, m is
// executed immediately and then Propagate runs.
func (mg *MethodGraph[V]) AddMethod(m Method[V], propagate bool) error {
	key := methodKey(m)
	if _, ok := mg.methods[key]; ok {
		return nil
	}

	mg.methods[key] = m
	mg.g.AddVertex(key)
	for _, v := range m.Inputs() {
		mg.AddVariable(v)
		mg.g.AddEdge(varKey(v), key)
	}
	for _, v := range m.Outputs() {
		mg.AddVariable(v)
		mg.g.AddEdge(key, varKey(v))
	}

	for _, v := range m.Outputs() {
		writers := 0
		for _, wk := range mg.g.InNeighbors(varKey(v)) {
			if _, ok := mg.methods[wk]; ok {
				writers++
			}
		}
		if writers > 1 {
			mg.removeMethod(m)
			return &DetermineViolation[V]{Variable: v}
		}
	}

	for _, v := range m.Outputs() {
		if mg.g.Path(varKey(v), varKey(v)) {
			mg.removeMethod(m)
			return &CycleViolation[V]{Variable: v}
		}
	}

	mg.log.Debug("method graph: method added", "method", m)

	if propagate {
		mg.execute(m)
		mg.Propagate()
	}
	return nil
}

// removeMethod deletes m from the graph without any validation; used
// for rollback, Clear and RemoveVariable's cascade.
func (mg *MethodGraph[V]) removeMethod(m Method[V]) {
	key := methodKey(m)
	if _, ok := mg.methods[key]; !ok {
		return
	}
	delete(mg.methods, key)
	mg.g.RemoveVertex(key)
}

// Propagate drains the pending-change set: while it is non-empty, it
// pops the first pending variable, re-runs every method that has it as
// an input, and removes it from the pending set once those methods
// have finished running.
func (mg *MethodGraph[V]) Propagate() {
	for len(mg.changedOrder) > 0 {
		v := mg.changedOrder[0]
		for _, mk := range mg.g.OutNeighbors(varKey(v)) {
			if m, ok := mg.methods[mk]; ok {
				mg.execute(m)
			}
		}
		mg.unmarkChanged(v)
	}
}

// execute runs m against the current store: if any input is Unknown,
// the call is skipped and treated as an empty output map. Outputs
// present in the result are stored and marked changed; outputs absent
// from the result are reset to Unknown (and marked changed) if they
// were not already Unknown. Finally, m's own inputs are cleared from
// the pending set, since this run has now consumed them.
func (mg *MethodGraph[V]) execute(m Method[V]) {
	inMap := make(map[V]Value, len(m.Inputs())+len(m.Outputs()))
	for _, v := range m.Inputs() {
		inMap[v] = mg.values[v]
	}
	for _, v := range m.Outputs() {
		inMap[v] = mg.values[v]
	}

	anyUnknown := false
	for _, v := range m.Inputs() {
		if IsUnknown(mg.values[v]) {
			anyUnknown = true
			break
		}
	}

	outMap := map[V]Value{}
	if !anyUnknown {
		outMap = m.Execute(inMap)
	}

	for _, v := range m.Outputs() {
		if val, ok := outMap[v]; ok {
			mg.values[v] = val
			mg.markChanged(v)
		} else if !IsUnknown(mg.values[v]) {
			mg.values[v] = Unknown
			mg.markChanged(v)
		}
	}

	for _, v := range m.Inputs() {
		mg.unmarkChanged(v)
	}
}

// Clear removes every variable, cascading to remove every method.
func (mg *MethodGraph[V]) Clear() {
	mg.g = digraph.New[string]()
	mg.values = make(map[V]Value)
	mg.multi = make(map[V]bool)
	mg.methods = make(map[string]Method[V])
	mg.changedOrder = nil
	mg.changedSet = make(map[V]bool)
}

// Changed reports the variables currently pending propagation.
func (mg *MethodGraph[V]) Changed() []V {
	out := make([]V, len(mg.changedOrder))
	copy(out, mg.changedOrder)
	return out
}

func (mg *MethodGraph[V]) markChanged(v V) {
	if mg.changedSet[v] {
		return
	}
	mg.changedSet[v] = true
	mg.changedOrder = append(mg.changedOrder, v)
}

// String renders the graph as "MethodGraph(variables=[...], methods=[...])".
func (mg *MethodGraph[V]) String() string {
	vars := make([]string, 0, len(mg.values))
	for v := range mg.values {
		vars = append(vars, fmt.Sprintf("%v", v))
	}
	sort.Strings(vars)

	methods := make([]string, 0, len(mg.methods))
	for _, m := range mg.methods {
		methods = append(methods, m.String())
	}
	sort.Strings(methods)

	return fmt.Sprintf("MethodGraph(variables=[%s], methods=[%s])",
		strings.Join(vars, ", "), strings.Join(methods, ", "))
}

func (mg *MethodGraph[V]) unmarkChanged(v V) {
	if !mg.changedSet[v] {
		return
	}
	delete(mg.changedSet, v)
	for i, x := range mg.changedOrder {
		if x == v {
			mg.changedOrder = append(mg.changedOrder[:i], mg.changedOrder[i+1:]...)
			break
		}
	}
}
