package spline

import (
	"math/rand/v2"
	"testing"
)

func randomPoints(r *rand.Rand, n int) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = Pt(r.Float64(), r.Float64())
	}
	return points
}

func BenchmarkCatmullRom(b *testing.B) {
	points := randomPoints(rand.New(rand.NewPCG(0, 0)), 20)
	table := NewParameterTable(100)
	b.ReportAllocs()
	for b.Loop() {
		if _, err := CatmullRom(points, table, 0.5, 0.5); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAppendCatmullRom(b *testing.B) {
	points := randomPoints(rand.New(rand.NewPCG(0, 0)), 20)
	table := NewParameterTable(100)
	buf := make([]Point, 0, (len(points)-3)*len(table))
	b.ReportAllocs()
	for b.Loop() {
		var err error
		buf, err = AppendCatmullRom(buf[:0], points, table, 0.5, 0.5)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBSpline32(b *testing.B) {
	params := Parameters[float32](1000)
	b.ReportAllocs()
	for b.Loop() {
		if _, err := EvalBSpline(wave32, 4, 2, 2, params); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBSpline64(b *testing.B) {
	params := Parameters[float64](1000)
	spl, err := NewBSpline(wave64, 4, 2, 2)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for b.Loop() {
		if _, err := spl.Eval(params); err != nil {
			b.Fatal(err)
		}
	}
}
