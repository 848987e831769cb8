package geom

// cross2 returns the z-component of (b-a) x (c-a), the signed area of
// the triangle a,b,c scaled by 2. Positive means a,b,c turn counter-
// clockwise; negative means clockwise; zero (within tolerance) means
// collinear or coincident.
func cross2(a, b, c Vector) float64 {
	ab := b.Sub(a)
	ac := c.Sub(a)
	return ab.X*ac.Y - ab.Y*ac.X
}

// IsClockwise reports whether a, b, c are arranged in clockwise order.
// Collinear or coincident points (the degenerate case) are not clockwise.
func IsClockwise(a, b, c Vector) bool {
	return ToleranceGreater(-cross2(a, b, c), 0)
}

// IsCounterClockwise reports whether a, b, c are arranged in
// counter-clockwise order. The degenerate case is not counter-clockwise.
func IsCounterClockwise(a, b, c Vector) bool {
	return ToleranceGreater(cross2(a, b, c), 0)
}

// angleDot returns the dot product of (a-b) and (c-b), the legs of the
// angle at apex b.
func angleDot(a, b, c Vector) float64 {
	u := a.Sub(b)
	v := c.Sub(b)
	return u.X*v.X + u.Y*v.Y
}

// IsObtuse reports whether the angle at b between a and c is obtuse
// (strictly greater than a right angle, within tolerance).
func IsObtuse(a, b, c Vector) bool {
	return ToleranceGreater(0, angleDot(a, b, c))
}

// IsAcute reports whether the angle at b between a and c is acute
// (strictly less than a right angle, within tolerance).
func IsAcute(a, b, c Vector) bool {
	return ToleranceGreater(angleDot(a, b, c), 0)
}
