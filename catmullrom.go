package spline

import (
	"iter"
	"math"
	"slices"
)

// CatmullRom evaluates the Catmull-Rom spline through points at every sample
// of table and returns the resulting polyline.
//
// Segment i of the spline runs from points[i+1] to points[i+2], with
// points[i] and points[i+3] only shaping the tangents. The first and last
// control points are therefore not part of the curve, and the result holds
// (len(points)-3) * len(table) points.
//
// Alpha selects the parameterization: 0 is uniform, 0.5 centripetal and 1
// chordal. Tension scales both tangents by 1-tension; a tension of 0 gives the
// classic Catmull-Rom spline and a tension of 1 reduces every segment to its
// chord. Neither value is range-checked here. Consecutive control points must
// be distinct; coincident points produce NaNs rather than an error.
//
// CatmullRom returns [ErrTooFewPoints] if there are fewer than four points.
func CatmullRom(points []Point, table ParameterTable, alpha, tension float64) ([]Point, error) {
	if len(points) < 4 {
		return nil, ErrTooFewPoints
	}
	return AppendCatmullRom(make([]Point, 0, (len(points)-3)*len(table)), points, table, alpha, tension)
}

// AppendCatmullRom is like [CatmullRom] but appends the polyline to dst and
// returns the extended slice. On error, dst is returned unchanged.
func AppendCatmullRom(dst []Point, points []Point, table ParameterTable, alpha, tension float64) ([]Point, error) {
	if len(points) < 4 {
		return dst, ErrTooFewPoints
	}
	dst = slices.Grow(dst, (len(points)-3)*len(table))
	inverseTension := 1 - tension
	for i := range len(points) - 3 {
		seg := newCatmullRomSegment(points[i], points[i+1], points[i+2], points[i+3], alpha, inverseTension)
		for _, s := range table {
			dst = append(dst, seg.eval(s))
		}
	}
	return dst, nil
}

// CatmullRomSegments returns an iterator over the segments of the Catmull-Rom
// spline through points, each converted exactly to a cubic Bézier. It yields
// len(points)-3 segments, or none if there are fewer than four points. See
// [CatmullRom] for the meaning of alpha and tension.
func CatmullRomSegments(points []Point, alpha, tension float64) iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		inverseTension := 1 - tension
		for i := 0; i+3 < len(points); i++ {
			seg := newCatmullRomSegment(points[i], points[i+1], points[i+2], points[i+3], alpha, inverseTension)
			if !yield(seg.cubic()) {
				return
			}
		}
	}
}

// catmullRomSegment holds the polynomial a·t³ + b·t² + m1·t + p1 of one
// segment.
type catmullRomSegment struct {
	p1, p2 Point
	m1, m2 Vec2
	a, b   Vec2
}

func newCatmullRomSegment(p0, p1, p2, p3 Point, alpha, inverseTension float64) catmullRomSegment {
	t01 := math.Pow(p0.Distance(p1), alpha)
	t12 := math.Pow(p1.Distance(p2), alpha)
	t23 := math.Pow(p2.Distance(p3), alpha)

	d21 := p2.Sub(p1)
	m1 := d21.Add(p1.Sub(p0).Div(t01).Sub(p2.Sub(p0).Div(t01 + t12)).Mul(t12)).Mul(inverseTension)
	m2 := d21.Add(p3.Sub(p2).Div(t23).Sub(p3.Sub(p1).Div(t12 + t23)).Mul(t12)).Mul(inverseTension)

	d12 := d21.Negate()
	return catmullRomSegment{
		p1: p1,
		p2: p2,
		m1: m1,
		m2: m2,
		a:  d12.Mul(2).Add(m1).Add(m2),
		b:  d12.Mul(-3).Sub(m1).Sub(m1).Sub(m2),
	}
}

func (seg catmullRomSegment) eval(s Sample) Point {
	return seg.p1.Translate(seg.a.Mul(s.T3).Add(seg.b.Mul(s.T2)).Add(seg.m1.Mul(s.T)))
}

func (seg catmullRomSegment) cubic() CubicBez {
	return hermite(seg.p1, seg.p2, seg.m1, seg.m2)
}
