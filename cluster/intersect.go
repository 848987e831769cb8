package cluster

import "cmp"

// Intersect computes the merge candidate between a and b, or nil if
// they share fewer than two variables or the variant pair is otherwise
// incompatible. Dispatch is a single tagged match on (a.Kind(),
// b.Kind()); the three variant pairs below the diagonal delegate to the
// canonical (lower Kind first) case so each merge rule is written
// exactly once.
func Intersect[V cmp.Ordered](a, b Cluster[V]) Cluster[V] {
	shared := sharedVars(a, b)
	if len(shared) < 2 {
		return nil
	}

	switch {
	case a.Kind() == KindRigid && b.Kind() == KindRigid:
		return NewRigid(shared...)

	case a.Kind() == KindRigid && b.Kind() == KindHedgehog:
		return intersectRigidHedgehog(a, b.(*Hedgehog[V]), shared)
	case a.Kind() == KindHedgehog && b.Kind() == KindRigid:
		return intersectRigidHedgehog(b, a.(*Hedgehog[V]), shared)

	case a.Kind() == KindRigid && b.Kind() == KindBalloon:
		return intersectRigidBalloon(shared)
	case a.Kind() == KindBalloon && b.Kind() == KindRigid:
		return intersectRigidBalloon(shared)

	case a.Kind() == KindHedgehog && b.Kind() == KindHedgehog:
		return intersectHedgehogHedgehog(a.(*Hedgehog[V]), b.(*Hedgehog[V]))

	case a.Kind() == KindHedgehog && b.Kind() == KindBalloon:
		return intersectHedgehogBalloon(a.(*Hedgehog[V]), b, shared)
	case a.Kind() == KindBalloon && b.Kind() == KindHedgehog:
		return intersectHedgehogBalloon(b.(*Hedgehog[V]), a, shared)

	case a.Kind() == KindBalloon && b.Kind() == KindBalloon:
		return intersectRigidBalloon(shared)

	default:
		panic("cluster: intersect reached an unknown variant pair")
	}
}

func sharedVars[V cmp.Ordered](a, b Cluster[V]) []V {
	var shared []V
	for _, v := range a.Vars() {
		if b.HasVar(v) {
			shared = append(shared, v)
		}
	}
	return shared
}

// intersectRigidHedgehog implements the Rigid/Hedgehog cell: if the
// hedgehog's center is in the rigid, and at least two non-center shared
// variables remain, the merge is a Hedgehog over those; otherwise nil.
func intersectRigidHedgehog[V cmp.Ordered](rigid Cluster[V], hh *Hedgehog[V], shared []V) Cluster[V] {
	if !rigid.HasVar(hh.Center()) {
		return nil
	}
	xVars := without(shared, hh.Center())
	if len(xVars) < 2 {
		return nil
	}
	merged, err := NewHedgehog(hh.Center(), xVars...)
	if err != nil {
		return nil
	}
	return merged
}

// intersectRigidBalloon implements both the Rigid/Balloon and
// Balloon/Balloon cells: the result is a Balloon over the shared
// variables, provided at least three are shared.
func intersectRigidBalloon[V cmp.Ordered](shared []V) Cluster[V] {
	if len(shared) < 3 {
		return nil
	}
	merged, err := NewBalloon(shared...)
	if err != nil {
		return nil
	}
	return merged
}

// intersectHedgehogHedgehog merges two hedgehogs sharing the same
// center, provided their spoke sets overlap in at least two variables.
func intersectHedgehogHedgehog[V cmp.Ordered](a, b *Hedgehog[V]) Cluster[V] {
	if a.Center() != b.Center() {
		return nil
	}
	aSpokes := newVarSet(a.Spokes())
	bSpokes := newVarSet(b.Spokes())
	common := aSpokes.intersect(bSpokes).sorted()
	if len(common) < 2 {
		return nil
	}
	merged, err := NewHedgehog(a.Center(), common...)
	if err != nil {
		return nil
	}
	return merged
}

// intersectHedgehogBalloon implements the Hedgehog/Balloon cell: if the
// hedgehog's center is in the balloon, the merge is a Hedgehog over the
// shared non-center variables, provided at least two remain.
func intersectHedgehogBalloon[V cmp.Ordered](hh *Hedgehog[V], balloon Cluster[V], shared []V) Cluster[V] {
	if !balloon.HasVar(hh.Center()) {
		return nil
	}
	xVars := without(shared, hh.Center())
	if len(xVars) < 2 {
		return nil
	}
	merged, err := NewHedgehog(hh.Center(), xVars...)
	if err != nil {
		return nil
	}
	return merged
}

func without[V cmp.Ordered](vs []V, exclude V) []V {
	out := make([]V, 0, len(vs))
	for _, v := range vs {
		if v != exclude {
			out = append(out, v)
		}
	}
	return out
}
