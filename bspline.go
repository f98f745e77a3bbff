package spline

import "fmt"

// BSpline is a non-rational B-spline of arbitrary degree and dimension over the
// uniform knot vector 0, 1, …, n+degree. It is immutable once constructed, and
// its methods may be called concurrently.
type BSpline[F Float] struct {
	n      int
	dims   int
	degree int
	knots  KnotVec[F]
	// net holds the control points in homogeneous coordinates, dims+1 values
	// per point, the last one being the weight.
	net []F
}

// NewBSpline returns the B-spline of the given degree with nPoints control
// points of nDims coordinates each. The control points are flattened into
// points, one point after the other.
//
// It returns an error wrapping [ErrShapeMismatch] if len(points) isn't
// nPoints*nDims and [ErrInvalidDegree] if degree is negative.
func NewBSpline[F Float](points []F, nPoints, nDims, degree int) (*BSpline[F], error) {
	if nPoints < 0 || nDims < 0 || nPoints*nDims != len(points) {
		return nil, fmt.Errorf("%w: have %d values, want %d×%d", ErrShapeMismatch, len(points), nPoints, nDims)
	}
	if degree < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDegree, degree)
	}
	return &BSpline[F]{
		n:      nPoints,
		dims:   nDims,
		degree: degree,
		knots:  UniformKnots[F](nPoints + degree + 1),
		net:    homogenize(points, nPoints, nDims),
	}, nil
}

// homogenize appends a weight of 1 to every point.
func homogenize[F Float](points []F, n, dims int) []F {
	stride := dims + 1
	net := make([]F, n*stride)
	for i := range n {
		copy(net[i*stride:i*stride+dims], points[i*dims:(i+1)*dims])
		net[i*stride+dims] = 1
	}
	return net
}

// Degree returns the degree of the spline.
func (b *BSpline[F]) Degree() int { return b.degree }

// Dims returns the number of coordinates of each point.
func (b *BSpline[F]) Dims() int { return b.dims }

// Len returns the number of control points.
func (b *BSpline[F]) Len() int { return b.n }

// Knots returns a copy of the knot vector.
func (b *BSpline[F]) Knots() KnotVec[F] {
	return append(KnotVec[F](nil), b.knots...)
}

// Eval evaluates the spline at every parameter in params. Parameters are
// normalized: 0 maps to the start of the spline's domain and 1 to its end.
//
// The result holds len(params)*Dims() values, one point per parameter, in the
// order of params. Parameters outside of [0, 1] are skipped and leave their
// point at all zeros; use [BSpline.EvalValid] to tell these apart from genuine
// points at the origin.
//
// If no knot span can be found for a parameter in [0, 1], Eval fails as a whole
// with an error wrapping [ErrSpanNotFound].
func (b *BSpline[F]) Eval(params []F) ([]F, error) {
	return b.eval(params, nil)
}

// EvalValid is like [BSpline.Eval] but additionally reports, for every
// parameter, whether a point was evaluated for it.
func (b *BSpline[F]) EvalValid(params []F) ([]F, []bool, error) {
	valid := make([]bool, len(params))
	ys, err := b.eval(params, valid)
	if err != nil {
		return nil, nil, err
	}
	return ys, valid, nil
}

func (b *BSpline[F]) eval(params []F, valid []bool) ([]F, error) {
	m := b.dims
	stride := m + 1
	low, high := b.knots[b.degree], b.knots[b.n]
	ys := make([]F, len(params)*m)
	xs := make([]F, len(b.net))
	for k, u := range params {
		// This also skips NaNs.
		if !(u >= 0 && u <= 1) {
			continue
		}
		t := u*(high-low) + low
		s, ok := b.knots.Span(b.degree, b.n, t)
		if !ok {
			return nil, fmt.Errorf("%w: u = %v (t = %v)", ErrSpanNotFound, u, t)
		}
		// The recurrence only touches points s-degree through s.
		lo, hi := (s-b.degree)*stride, (s+1)*stride
		copy(xs[lo:hi], b.net[lo:hi])
		deBoor(xs, b.knots, stride, b.degree, s, t)
		w := xs[s*stride+m]
		for j := range m {
			ys[k*m+j] = xs[s*stride+j] / w
		}
		if valid != nil {
			valid[k] = true
		}
	}
	return ys, nil
}

// deBoor runs de Boor's recurrence in place on the homogeneous control net xs
// for parameter t in span s. The result ends up in point s.
//
// Within a level, i has to run downwards: point i is blended with point i-1,
// which must still hold the previous level's value.
func deBoor[F Float](xs []F, knots KnotVec[F], stride, degree, s int, t F) {
	for l := 1; l <= degree; l++ {
		for i := s; i >= s-degree+l; i-- {
			alpha := (t - knots[i]) / (knots[i+degree+1-l] - knots[i])
			cur := xs[i*stride : (i+1)*stride]
			prev := xs[(i-1)*stride : i*stride]
			for j := range cur {
				cur[j] = (1-alpha)*prev[j] + alpha*cur[j]
			}
		}
	}
}

// EvalBSpline evaluates the B-spline of the given degree through nPoints
// control points of nDims coordinates each at every parameter in params. It is
// a shorthand for [NewBSpline] followed by [BSpline.Eval].
func EvalBSpline[F Float](points []F, nPoints, nDims, degree int, params []F) ([]F, error) {
	b, err := NewBSpline(points, nPoints, nDims, degree)
	if err != nil {
		return nil, err
	}
	return b.Eval(params)
}
