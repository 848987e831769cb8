package geom

import "gonum.org/v1/gonum/mat"

// Matrix is a 3x3 homogeneous-coordinate transform, backed by a gonum
// dense matrix so that composition (Mul) reuses a well-tested BLAS-style
// implementation instead of hand-rolled 3x3 arithmetic.
type Matrix struct {
	dense *mat.Dense
}

// NewMatrix builds a 3x3 Matrix from nine row-major elements.
func NewMatrix(rowMajor [9]float64) Matrix {
	return Matrix{dense: mat.NewDense(3, 3, rowMajor[:])}
}

// Identity returns the 3x3 identity transform.
func Identity() Matrix {
	return NewMatrix([9]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
}

// At returns the element at row r, column c (0-indexed).
func (m Matrix) At(r, c int) float64 {
	return m.dense.At(r, c)
}

// Mul returns m * other.
func (m Matrix) Mul(other Matrix) Matrix {
	var out mat.Dense
	out.Mul(m.dense, other.dense)
	return Matrix{dense: &out}
}

// TransformPoint applies the homogeneous transform to a 2-D point,
// performing the perspective divide by the homogeneous coordinate.
func (m Matrix) TransformPoint(p Vector) Vector {
	h := mat.NewDense(3, 1, []float64{p.X, p.Y, 1.0})
	var out mat.Dense
	out.Mul(m.dense, h)
	w := out.At(2, 0)
	return Vector{X: out.At(0, 0) / w, Y: out.At(1, 0) / w}
}

// MakeHCS builds the homogeneous coordinate system whose origin is p and
// whose x-axis points from p toward q. The y-axis is the x-axis rotated
// 90 degrees counter-clockwise, giving a right-handed orthonormal frame.
func MakeHCS(p, q Vector) Matrix {
	xAxis := q.Sub(p)
	length := xAxis.Length()
	if !ToleranceZero(length) {
		xAxis = xAxis.Scale(1.0 / length)
	}
	yAxis := Vector{X: -xAxis.Y, Y: xAxis.X}

	return NewMatrix([9]float64{
		xAxis.X, yAxis.X, p.X,
		xAxis.Y, yAxis.Y, p.Y,
		0, 0, 1,
	})
}

// CSTransformMatrix returns the 3x3 transform mapping the from frame
// onto the to frame: to * from^-1.
func CSTransformMatrix(from, to Matrix) Matrix {
	var inv mat.Dense
	_ = inv.Inverse(from.dense)
	var out mat.Dense
	out.Mul(to.dense, &inv)
	return Matrix{dense: &out}
}
