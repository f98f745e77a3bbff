package sample

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"honnef.co/go/spline"
)

func TestUniform(t *testing.T) {
	points := Uniform(New(1), 1000)
	if len(points) != 1000 {
		t.Fatalf("got %d points, want 1000", len(points))
	}
	for i, p := range points {
		if p.X < 0 || p.X >= 1 || p.Y < 0 || p.Y >= 1 {
			t.Errorf("point %d = %s outside of the unit square", i, p)
		}
	}
}

func TestSeedReproducible(t *testing.T) {
	a := Uniform(New(42), 20)
	b := Uniform(New(42), 20)
	if d := cmp.Diff(a, b); d != "" {
		t.Errorf("same seed, different points:\n%s", d)
	}
	c := Uniform(New(43), 20)
	if cmp.Equal(a, c) {
		t.Errorf("different seeds produced the same points")
	}
}

func TestGaussian(t *testing.T) {
	const n = 20000
	mean := spline.Pt(0.5, -2)
	points := Gaussian(New(7), n, mean, 0.25)
	var sx, sy float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	got := spline.Pt(sx/n, sy/n)
	if d := got.Distance(mean); d > 0.01 {
		t.Errorf("got sample mean %s, want close to %s", got, mean)
	}

	var vx float64
	for _, p := range points {
		vx += (p.X - got.X) * (p.X - got.X)
	}
	if sd := math.Sqrt(vx / n); math.Abs(sd-0.25) > 0.01 {
		t.Errorf("got standard deviation %g, want close to 0.25", sd)
	}
}

func TestNoConsecutiveDuplicates(t *testing.T) {
	// A zero deviation collapses every draw onto the mean; only the first one
	// can be used, so ask for a single point.
	points := Gaussian(New(1), 1, spline.Pt(1, 1), 0)
	if d := cmp.Diff([]spline.Point{spline.Pt(1, 1)}, points); d != "" {
		t.Error(d)
	}

	calls := 0
	seq := []spline.Point{spline.Pt(0, 0), spline.Pt(0, 0), spline.Pt(0, 0), spline.Pt(1, 0), spline.Pt(1, 0), spline.Pt(0, 0)}
	got := generate(3, func() spline.Point {
		p := seq[calls]
		calls++
		return p
	})
	want := []spline.Point{spline.Pt(0, 0), spline.Pt(1, 0), spline.Pt(0, 0)}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestFlatten(t *testing.T) {
	points := []spline.Point{spline.Pt(1, 2), spline.Pt(3, 4)}
	flat := Flatten(points)
	if d := cmp.Diff([]float64{1, 2, 3, 4}, flat); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff(points, Unflatten(flat)); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff(points, Unflatten(append(flat, 5))); d != "" {
		t.Error(d)
	}
}
