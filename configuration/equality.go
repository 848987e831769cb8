package configuration

import (
	"cmp"
	"fmt"
	"hash/fnv"

	"github.com/solvergeo/rigidcore/geom"
)

// Hash is a commutative combiner over the hashes of the variable names
// only: coordinates never participate, so Equal's requirement that equal
// configurations hash equal holds trivially once variable-name sets
// match. Commutativity (XOR rather than a rolling combine) means the
// hash does not depend on map iteration order.
func (c *Configuration[V]) Hash() uint64 {
	var h uint64
	for v := range c.points {
		f := fnv.New64a()
		_, _ = f.Write([]byte(fmt.Sprintf("%v", v)))
		h ^= f.Sum64()
	}
	return h
}

// Equal reports whether c and other describe the same shape up to
// rigid motion: same variable-name set, and every point coincides
// (within tolerance) after aligning other onto c's frame.
func (c *Configuration[V]) Equal(other *Configuration[V]) bool {
	if c.Hash() != other.Hash() {
		return false
	}
	if !sameVarSet(c, other) {
		return false
	}
	t, _ := c.TransformationMatrix(other)
	aligned := other.Transform(t)
	for _, v := range c.Vars() {
		if !geom.ToleranceZero(geom.Distance(c.Get(v), aligned.Get(v))) {
			return false
		}
	}
	return true
}

func sameVarSet[V cmp.Ordered](a, b *Configuration[V]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, v := range a.Vars() {
		if !b.Has(v) {
			return false
		}
	}
	return true
}
