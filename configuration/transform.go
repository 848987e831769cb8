package configuration

import (
	"cmp"

	"github.com/solvergeo/rigidcore/geom"
)

var originFrame = geom.MakeHCS(geom.Origin(), geom.Vector{X: 1, Y: 0})

// TransformationMatrix computes the transform T mapping other's frame
// onto c's frame, together with the underconstrained flag raised by
// this alignment (not including either side's own prior flag). The
// frame-defining pair, when two or more variables are shared, is the
// first two in sorted (deterministic) order over the shared set.
func (c *Configuration[V]) TransformationMatrix(other *Configuration[V]) (geom.Matrix, bool) {
	shared := sharedVars(c, other)

	switch {
	case len(shared) == 0:
		return geom.CSTransformMatrix(originFrame, originFrame), true

	case len(shared) == 1:
		v := shared[0]
		underconstrained := c.Len() > 1 && other.Len() > 1
		selfFrame := onePointFrame(c.Get(v))
		otherFrame := onePointFrame(other.Get(v))
		return geom.CSTransformMatrix(otherFrame, selfFrame), underconstrained

	default:
		v1, v2 := shared[0], shared[1]
		selfFrame, selfUnder := pairFrame(c.Get(v1), c.Get(v2))
		otherFrame, otherUnder := pairFrame(other.Get(v1), other.Get(v2))
		return geom.CSTransformMatrix(otherFrame, selfFrame), selfUnder || otherUnder
	}
}

// Merge aligns other onto c via their shared variables and returns the
// union, together with the combined underconstrained flag.
func (c *Configuration[V]) Merge(other *Configuration[V]) (*Configuration[V], bool) {
	t, underHere := c.TransformationMatrix(other)
	merged := c.Add(other.Transform(t))
	flag := c.underconstrained || other.underconstrained || underHere
	merged.underconstrained = flag
	return merged, flag
}

func onePointFrame(p geom.Vector) geom.Matrix {
	return geom.MakeHCS(p, p.Add(geom.Vector{X: 1, Y: 0}))
}

// pairFrame builds the frame from (p1, p2), falling back to the
// one-point frame (and raising underconstrained) when p1 and p2 are
// within tolerance of coincident.
func pairFrame(p1, p2 geom.Vector) (geom.Matrix, bool) {
	if geom.ToleranceZero(geom.Distance(p1, p2)) {
		return onePointFrame(p1), true
	}
	return geom.MakeHCS(p1, p2), false
}

func sharedVars[V cmp.Ordered](a, b *Configuration[V]) []V {
	var shared []V
	for _, v := range a.Vars() {
		if b.Has(v) {
			shared = append(shared, v)
		}
	}
	return shared
}
