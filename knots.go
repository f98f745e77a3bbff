package spline

// Float is the set of floating point types the B-spline engine works with.
type Float interface {
	~float32 | ~float64
}

// KnotVec is a non-decreasing sequence of knots.
type KnotVec[F Float] []F

// UniformKnots returns the knot vector 0, 1, …, n-1.
func UniformKnots[F Float](n int) KnotVec[F] {
	knots := make(KnotVec[F], n)
	for i := range knots {
		knots[i] = F(i)
	}
	return knots
}

// IsNonDecreasing reports whether every knot is at least as large as its
// predecessor.
func (knots KnotVec[F]) IsNonDecreasing() bool {
	for i := 1; i < len(knots); i++ {
		if knots[i] < knots[i-1] {
			return false
		}
	}
	return true
}

// Span returns the first index s in [degree, n) with knots[s] ≤ t ≤ knots[s+1],
// where n is the number of control points. The second return value is false if
// no such span exists.
//
// Because both ends are inclusive, a t that falls exactly on an interior knot
// resolves to the span to its left.
func (knots KnotVec[F]) Span(degree, n int, t F) (int, bool) {
	for s := degree; s < n; s++ {
		if t >= knots[s] && t <= knots[s+1] {
			return s, true
		}
	}
	return 0, false
}
