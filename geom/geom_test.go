package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solvergeo/rigidcore/geom"
)

func TestVector_Arithmetic(t *testing.T) {
	a := geom.Vector{X: 1, Y: 2}
	b := geom.Vector{X: 3, Y: 4}
	assert.Equal(t, geom.Vector{X: 4, Y: 6}, a.Add(b))
	assert.Equal(t, geom.Vector{X: -2, Y: -2}, a.Sub(b))
	assert.Equal(t, geom.Vector{X: 2, Y: 4}, a.Scale(2))
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, geom.Distance(geom.Vector{X: 0, Y: 0}, geom.Vector{X: 3, Y: 4}), 1e-9)
}

func TestMakeHCS_RoundTripsOrigin(t *testing.T) {
	p := geom.Vector{X: 2, Y: 3}
	q := geom.Vector{X: 5, Y: 3}
	frame := geom.MakeHCS(p, q)
	back := frame.TransformPoint(geom.Origin())
	assert.InDelta(t, p.X, back.X, 1e-9)
	assert.InDelta(t, p.Y, back.Y, 1e-9)
}

func TestCSTransformMatrix_IdentityWhenSameFrame(t *testing.T) {
	frame := geom.MakeHCS(geom.Vector{X: 1, Y: 1}, geom.Vector{X: 2, Y: 1})
	t2 := geom.CSTransformMatrix(frame, frame)
	p := geom.Vector{X: 7, Y: -3}
	out := t2.TransformPoint(p)
	assert.InDelta(t, p.X, out.X, 1e-6)
	assert.InDelta(t, p.Y, out.Y, 1e-6)
}

// S7: three coincident points satisfy NotClockwise and NotCounterClockwise.
func TestOrientation_S7CoincidentPoints(t *testing.T) {
	p := geom.Vector{X: 1, Y: 1}
	assert.False(t, geom.IsClockwise(p, p, p))
	assert.False(t, geom.IsCounterClockwise(p, p, p))
}

func TestOrientation_ClockwiseTriangle(t *testing.T) {
	a := geom.Vector{X: 0, Y: 0}
	b := geom.Vector{X: 0, Y: 1}
	c := geom.Vector{X: 1, Y: 0}
	assert.True(t, geom.IsClockwise(a, b, c))
	assert.False(t, geom.IsCounterClockwise(a, b, c))
}

func TestOrientation_RightAngleIsNeitherObtuseNorAcute(t *testing.T) {
	a := geom.Vector{X: 1, Y: 0}
	b := geom.Vector{X: 0, Y: 0}
	c := geom.Vector{X: 0, Y: 1}
	assert.False(t, geom.IsObtuse(a, b, c))
	assert.False(t, geom.IsAcute(a, b, c))
}
