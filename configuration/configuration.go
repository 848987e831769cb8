package configuration

import (
	"cmp"
	"fmt"
	"sort"

	"github.com/solvergeo/rigidcore/geom"
)

// Configuration is an immutable point-name to 2-D coordinate assignment.
// The underconstrained flag records whether the configuration (or one of
// its ancestors, through Merge) was built from too few shared points to
// pin its placement uniquely.
type Configuration[V cmp.Ordered] struct {
	points          map[V]geom.Vector
	underconstrained bool
}

// New returns a Configuration over a copy of points.
func New[V cmp.Ordered](points map[V]geom.Vector, underconstrained bool) *Configuration[V] {
	cp := make(map[V]geom.Vector, len(points))
	for k, v := range points {
		cp[k] = v
	}
	return &Configuration[V]{points: cp, underconstrained: underconstrained}
}

// Get returns the coordinate stored for v. Looking up a variable the
// configuration does not carry is a programmer error: callers are
// expected to check Has first.
func (c *Configuration[V]) Get(v V) geom.Vector {
	p, ok := c.points[v]
	if !ok {
		panic(fmt.Sprintf("configuration: get of unknown variable %v", v))
	}
	return p
}

// Has reports whether v is present.
func (c *Configuration[V]) Has(v V) bool {
	_, ok := c.points[v]
	return ok
}

// Vars returns the configuration's variables in deterministic sorted
// order.
func (c *Configuration[V]) Vars() []V {
	out := make([]V, 0, len(c.points))
	for v := range c.points {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len is the number of variables this configuration assigns.
func (c *Configuration[V]) Len() int { return len(c.points) }

// Underconstrained reports whether this configuration (or an ancestor
// merged into it) was built from fewer shared points than needed to fix
// its placement uniquely.
func (c *Configuration[V]) Underconstrained() bool { return c.underconstrained }

// Transform applies T to every coordinate, returning a fresh
// Configuration. The underconstrained flag is not carried forward: the
// result's flag is always false, and Merge combines both operands' own
// flags itself.
func (c *Configuration[V]) Transform(t geom.Matrix) *Configuration[V] {
	out := make(map[V]geom.Vector, len(c.points))
	for v, p := range c.points {
		out[v] = t.TransformPoint(p)
	}
	return &Configuration[V]{points: out}
}

// Add returns the union of c and other; where both assign a variable,
// c's value wins.
func (c *Configuration[V]) Add(other *Configuration[V]) *Configuration[V] {
	out := make(map[V]geom.Vector, len(c.points)+len(other.points))
	for v, p := range other.points {
		out[v] = p
	}
	for v, p := range c.points {
		out[v] = p
	}
	return &Configuration[V]{
		points:          out,
		underconstrained: c.underconstrained || other.underconstrained,
	}
}

// Select restricts c to vs, all of which must be present; selecting an
// absent variable is a programmer error.
func (c *Configuration[V]) Select(vs []V) *Configuration[V] {
	out := make(map[V]geom.Vector, len(vs))
	for _, v := range vs {
		p, ok := c.points[v]
		if !ok {
			panic(fmt.Sprintf("configuration: select of unknown variable %v", v))
		}
		out[v] = p
	}
	return &Configuration[V]{points: out, underconstrained: c.underconstrained}
}

func (c *Configuration[V]) String() string {
	return fmt.Sprintf("Configuration(%v)", c.Vars())
}
