package spline

// CubicBez is a cubic Bézier segment.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// hermite returns the cubic Bézier that starts at p1 with derivative m1 and
// ends at p2 with derivative m2.
func hermite(p1, p2 Point, m1, m2 Vec2) CubicBez {
	return CubicBez{
		P0: p1,
		P1: p1.Translate(m1.Mul(1.0 / 3.0)),
		P2: p2.Translate(m2.Mul(-1.0 / 3.0)),
		P3: p2,
	}
}

// Eval evaluates the curve at parameter t.
func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}
