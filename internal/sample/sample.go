// Package sample generates random control points for splines.
//
// All samplers draw from a caller-supplied source, so that a given seed always
// produces the same points. They never emit a point equal to its predecessor,
// which the spline engines require.
package sample

import (
	"math/rand/v2"

	"honnef.co/go/spline"
)

// New returns a deterministic source of randomness for seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Uniform returns n points distributed uniformly in the unit square [0, 1)².
func Uniform(r *rand.Rand, n int) []spline.Point {
	return generate(n, func() spline.Point {
		return spline.Pt(r.Float64(), r.Float64())
	})
}

// Gaussian returns n points normally distributed around mean, with standard
// deviation stddev along both axes. For n > 1, stddev must be positive.
func Gaussian(r *rand.Rand, n int, mean spline.Point, stddev float64) []spline.Point {
	return generate(n, func() spline.Point {
		return spline.Pt(mean.X+r.NormFloat64()*stddev, mean.Y+r.NormFloat64()*stddev)
	})
}

func generate(n int, next func() spline.Point) []spline.Point {
	points := make([]spline.Point, 0, n)
	for len(points) < n {
		p := next()
		if len(points) > 0 && p == points[len(points)-1] {
			continue
		}
		points = append(points, p)
	}
	return points
}

// Flatten interleaves the coordinates of points as x0, y0, x1, y1, …, the
// layout expected by [spline.EvalBSpline].
func Flatten(points []spline.Point) []float64 {
	flat := make([]float64, 0, 2*len(points))
	for _, p := range points {
		flat = append(flat, p.X, p.Y)
	}
	return flat
}

// Unflatten is the inverse of [Flatten]. A trailing odd coordinate is ignored.
func Unflatten(flat []float64) []spline.Point {
	points := make([]spline.Point, len(flat)/2)
	for i := range points {
		points[i] = spline.Pt(flat[2*i], flat[2*i+1])
	}
	return points
}
