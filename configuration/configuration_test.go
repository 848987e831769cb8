package configuration_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/solvergeo/rigidcore/configuration"
	"github.com/solvergeo/rigidcore/geom"
)

func cfg(points map[string]geom.Vector) *configuration.Configuration[string] {
	return configuration.New(points, false)
}

// S1: 180-degree rotation about the shared origin.
func TestEqual_S1Rotation180(t *testing.T) {
	c1 := cfg(map[string]geom.Vector{"1": {X: 0, Y: 0}, "2": {X: 1, Y: 0}})
	c3 := cfg(map[string]geom.Vector{"1": {X: 0, Y: 0}, "2": {X: -1, Y: 0}})
	assert.True(t, c1.Equal(c3))
}

// S2: off-origin translation plus rotation.
func TestEqual_S2OffOrigin(t *testing.T) {
	c5 := cfg(map[string]geom.Vector{"1": {X: 1, Y: 2}, "2": {X: 2, Y: 3}})
	c6 := cfg(map[string]geom.Vector{"1": {X: -1, Y: -2}, "2": {X: -2, Y: -3}})
	assert.True(t, c5.Equal(c6))
}

func TestEqual_DifferentVariableSetsAreNotEqual(t *testing.T) {
	a := cfg(map[string]geom.Vector{"1": {X: 0, Y: 0}, "2": {X: 1, Y: 0}})
	b := cfg(map[string]geom.Vector{"1": {X: 0, Y: 0}, "3": {X: 1, Y: 0}})
	assert.False(t, a.Equal(b))
}

func TestTransform_Identity(t *testing.T) {
	c := cfg(map[string]geom.Vector{"1": {X: 3, Y: 4}})
	out := c.Transform(geom.Identity())
	assert.InDelta(t, 3.0, out.Get("1").X, 1e-9)
	assert.InDelta(t, 4.0, out.Get("1").Y, 1e-9)
}

func TestAdd_SelfTakesPrecedence(t *testing.T) {
	a := cfg(map[string]geom.Vector{"1": {X: 0, Y: 0}})
	b := cfg(map[string]geom.Vector{"1": {X: 9, Y: 9}, "2": {X: 1, Y: 1}})
	merged := a.Add(b)
	assert.Equal(t, geom.Vector{X: 0, Y: 0}, merged.Get("1"))
	assert.Equal(t, geom.Vector{X: 1, Y: 1}, merged.Get("2"))
}

func TestSelect_Restricts(t *testing.T) {
	a := cfg(map[string]geom.Vector{"1": {X: 0, Y: 0}, "2": {X: 1, Y: 1}, "3": {X: 2, Y: 2}})
	sel := a.Select([]string{"1", "3"})
	assert.Equal(t, 2, sel.Len())
	assert.True(t, sel.Has("1"))
	assert.True(t, sel.Has("3"))
	assert.False(t, sel.Has("2"))
}

func TestSelect_UnknownVariablePanics(t *testing.T) {
	a := cfg(map[string]geom.Vector{"1": {X: 0, Y: 0}})
	assert.Panics(t, func() { a.Select([]string{"absent"}) })
}

func TestMerge_SharesOnePoint(t *testing.T) {
	a := cfg(map[string]geom.Vector{"1": {X: 0, Y: 0}, "2": {X: 1, Y: 0}})
	b := cfg(map[string]geom.Vector{"2": {X: 0, Y: 0}, "3": {X: 0, Y: 1}})

	merged, under := a.Merge(b)
	require.True(t, merged.Has("3"))
	assert.True(t, under) // single shared point with >1 var each side is underconstrained
}

func TestMerge_SharesZeroPoints(t *testing.T) {
	a := cfg(map[string]geom.Vector{"1": {X: 0, Y: 0}})
	b := cfg(map[string]geom.Vector{"2": {X: 5, Y: 5}})
	merged, under := a.Merge(b)
	assert.True(t, under)
	assert.Equal(t, 2, merged.Len())
}

// Property 5 (spec §8): for every configuration C and every
// rotation-translation T, C == C.transform(T).
func TestRapid_EqualityUnderRigidMotion(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 5).Draw(rt, "n")
		points := make(map[string]geom.Vector, n)
		for i := 0; i < n; i++ {
			x := rapid.Float64Range(-100, 100).Draw(rt, "x")
			y := rapid.Float64Range(-100, 100).Draw(rt, "y")
			points[string(rune('a'+i))] = geom.Vector{X: x, Y: y}
		}
		c := cfg(points)

		angle := rapid.Float64Range(0, 6.28).Draw(rt, "angle")
		tx := rapid.Float64Range(-50, 50).Draw(rt, "tx")
		ty := rapid.Float64Range(-50, 50).Draw(rt, "ty")
		cos, sin := math.Cos(angle), math.Sin(angle)
		t2 := geom.NewMatrix([9]float64{
			cos, -sin, tx,
			sin, cos, ty,
			0, 0, 1,
		})

		assert.True(rt, c.Equal(c.Transform(t2)))
	})
}
