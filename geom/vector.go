package geom

import "math"

// Vector is a point or free vector in the plane.
type Vector struct {
	X, Y float64
}

// Origin returns the zero vector (0, 0).
func Origin() Vector { return Vector{X: 0, Y: 0} }

// Add returns v + other.
func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v - other.
func (v Vector) Sub(other Vector) Vector {
	return Vector{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns v scaled by the given factor.
func (v Vector) Scale(factor float64) Vector {
	return Vector{X: v.X * factor, Y: v.Y * factor}
}

// Length returns the Euclidean norm of v.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vector) float64 {
	return a.Sub(b).Length()
}
