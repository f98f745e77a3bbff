package spline

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
	diff(t, Pt(-1, 0).Midpoint(Pt(1, 2)), Pt(0, 1))
	diff(t, Pt(0, 0).Lerp(Pt(4, 8), 0.25), Pt(1, 2))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestVecArithmetic(t *testing.T) {
	a := Vec(1, -2)
	b := Vec(0.5, 4)
	c := Vec(-3, 0.25)

	diff(t, a.Add(b), b.Add(a))
	diff(t, a.Add(b).Add(c), a.Add(b.Add(c)))
	diff(t, a.Add(b).Mul(2), a.Mul(2).Add(b.Mul(2)))
	diff(t, a.Sub(a), Vec(0, 0))
	diff(t, Vec(3, 8).Div(2), Vec(1.5, 4))
	diff(t, Vec(3, 8).DivElem(Vec(3, -2)), Vec(1, -4))
	diff(t, a.Negate(), Vec(-1, 2))
	if h := Vec(3, 4).Hypot(); h != 5 {
		t.Errorf("got magnitude %v, want 5", h)
	}
}

func TestVecDivByZero(t *testing.T) {
	if v := Vec(1, 0).Div(0); !v.IsInf() || !v.IsNaN() {
		t.Errorf("got %s, want an infinite and a NaN component", v)
	}
	if v := Vec(1, 1).DivElem(Vec(1, 0)); !math.IsInf(v.Y, 1) {
		t.Errorf("got %s, want +Inf y", v)
	}
}

func TestAffine(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
	assertNear(t, p.Transform(Scale(2, 2).ThenTranslate(Vec(1, 1))), Pt(7, 9), epsilon)
	assertNear(t, p.Transform(Translate(Vec(1, 1)).ThenScale(2, 2)), Pt(8, 10), epsilon)

	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}
	assertNear(t, p.Transform(a2).Transform(a1), p.Transform(a1.Mul(a2)), epsilon)

	if f := Scale(3, 3).ThenTranslate(Vec(7, -1)).ScaleFactor(); f != 3 {
		t.Errorf("got scale factor %v, want 3", f)
	}
}
