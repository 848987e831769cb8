package cluster

import (
	"cmp"

	"github.com/solvergeo/rigidcore/relation"
)

// OverConstraints is the union of CommonDistances and CommonAngles: the
// full set of relations implied redundantly by both a and b once they
// are merged.
type OverConstraints[V cmp.Ordered] struct {
	Distances []relation.Distance[V]
	Angles    []relation.Angle[V]
}

// ComputeOverConstraints returns CommonDistances(a, b) union
// CommonAngles(a, b).
func ComputeOverConstraints[V cmp.Ordered](a, b Cluster[V]) OverConstraints[V] {
	return OverConstraints[V]{
		Distances: CommonDistances(a, b),
		Angles:    CommonAngles(a, b),
	}
}

// CommonDistances is non-empty only when both a and b are Rigid: every
// Distance(u, v) for u != v in the shared variable set.
func CommonDistances[V cmp.Ordered](a, b Cluster[V]) []relation.Distance[V] {
	ra, aOK := a.(*Rigid[V])
	rb, bOK := b.(*Rigid[V])
	if !aOK || !bOK {
		return nil
	}
	shared := sharedVars[V](ra, rb)

	seen := make(map[relation.Distance[V]]bool)
	var out []relation.Distance[V]
	for i := 0; i < len(shared); i++ {
		for j := 0; j < i; j++ {
			d := relation.NewDistance(shared[i], shared[j])
			if !seen[d] {
				seen[d] = true
				out = append(out, d)
			}
		}
	}
	return out
}

// CommonAngles enumerates the angles implied by both a and b over their
// shared variables, dispatching on the (a.Kind(), b.Kind()) pair the
// same way Intersect does.
func CommonAngles[V cmp.Ordered](a, b Cluster[V]) []relation.Angle[V] {
	switch {
	case a.Kind() == KindRigid && b.Kind() == KindRigid,
		a.Kind() == KindRigid && b.Kind() == KindBalloon,
		a.Kind() == KindBalloon && b.Kind() == KindRigid,
		a.Kind() == KindBalloon && b.Kind() == KindBalloon:
		return tripleAngles(sharedVars(a, b))

	case a.Kind() == KindRigid && b.Kind() == KindHedgehog:
		return hedgehogAngles(a, b.(*Hedgehog[V]))
	case a.Kind() == KindHedgehog && b.Kind() == KindRigid:
		return hedgehogAngles(b, a.(*Hedgehog[V]))
	case a.Kind() == KindBalloon && b.Kind() == KindHedgehog:
		return hedgehogAngles(a, b.(*Hedgehog[V]))
	case a.Kind() == KindHedgehog && b.Kind() == KindBalloon:
		return hedgehogAngles(b, a.(*Hedgehog[V]))

	case a.Kind() == KindHedgehog && b.Kind() == KindHedgehog:
		return hedgehogHedgehogAngles(a.(*Hedgehog[V]), b.(*Hedgehog[V]))

	default:
		panic("cluster: common angles reached an unknown variant pair")
	}
}

// tripleAngles emits all three rotations of Angle for every 3-subset of
// vars, used for Rigid-Rigid, Rigid-Balloon and Balloon-Balloon.
func tripleAngles[V cmp.Ordered](vars []V) []relation.Angle[V] {
	seen := make(map[relation.Angle[V]]bool)
	var out []relation.Angle[V]
	add := func(x, y, z V) {
		ang := relation.NewAngle(x, y, z)
		if !seen[ang] {
			seen[ang] = true
			out = append(out, ang)
		}
	}
	for i := 0; i < len(vars); i++ {
		for j := i + 1; j < len(vars); j++ {
			for k := j + 1; k < len(vars); k++ {
				v1, v2, v3 := vars[i], vars[j], vars[k]
				add(v1, v2, v3)
				add(v2, v3, v1)
				add(v3, v1, v2)
			}
		}
	}
	return out
}

// hedgehogAngles handles the Rigid/Hedgehog and Balloon/Hedgehog cells:
// if the hedgehog's center lies in the other cluster, emit Angle(u, c, w)
// for every pair {u, w} of shared spoke/container variables.
func hedgehogAngles[V cmp.Ordered](other Cluster[V], hh *Hedgehog[V]) []relation.Angle[V] {
	if !other.HasVar(hh.Center()) {
		return nil
	}
	shared := intersectSorted(other.Vars(), hh.Spokes())

	var out []relation.Angle[V]
	seen := make(map[relation.Angle[V]]bool)
	for i := 0; i < len(shared); i++ {
		for j := i + 1; j < len(shared); j++ {
			ang := relation.NewAngle(shared[i], hh.Center(), shared[j])
			if !seen[ang] {
				seen[ang] = true
				out = append(out, ang)
			}
		}
	}
	return out
}

// hedgehogHedgehogAngles is empty unless the two centers are equal, in
// which case it emits Angle(u, c, w) for every pair in the shared spokes.
func hedgehogHedgehogAngles[V cmp.Ordered](a, b *Hedgehog[V]) []relation.Angle[V] {
	if a.Center() != b.Center() {
		return nil
	}
	shared := intersectSorted(a.Spokes(), b.Spokes())

	var out []relation.Angle[V]
	seen := make(map[relation.Angle[V]]bool)
	for i := 0; i < len(shared); i++ {
		for j := i + 1; j < len(shared); j++ {
			ang := relation.NewAngle(shared[i], a.Center(), shared[j])
			if !seen[ang] {
				seen[ang] = true
				out = append(out, ang)
			}
		}
	}
	return out
}

func intersectSorted[V cmp.Ordered](a, b []V) []V {
	bSet := make(map[V]bool, len(b))
	for _, v := range b {
		bSet[v] = true
	}
	var out []V
	for _, v := range a {
		if bSet[v] {
			out = append(out, v)
		}
	}
	return out
}
