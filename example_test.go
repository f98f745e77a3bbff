package spline_test

import (
	"fmt"

	"honnef.co/go/spline"
)

func ExampleCatmullRom() {
	points := []spline.Point{
		spline.Pt(-1, 0),
		spline.Pt(-0.5, 0.5),
		spline.Pt(0.5, -0.5),
		spline.Pt(1, 0),
	}
	// The table can be shared by any number of splines of the same
	// resolution.
	table := spline.NewParameterTable(4)

	curve, err := spline.CatmullRom(points, table, 0.5, 0)
	if err != nil {
		panic(err)
	}
	fmt.Println(len(curve), "points")
	fmt.Println("starts at", curve[0])
	// Output:
	// 4 points
	// starts at (-0.5, 0.5)
}

func ExampleEvalBSpline() {
	points := []float64{
		-1.0, 0.0,
		-0.5, 0.5,
		0.5, -0.5,
		1.0, 0.0,
	}
	params := []float64{0, 0.2, 0.5, 1, 1.5}

	curve, err := spline.EvalBSpline(points, 4, 2, 2, params)
	if err != nil {
		panic(err)
	}
	for i := range params {
		fmt.Printf("u = %.1f: (%.2f, %.2f)\n", params[i], curve[2*i], curve[2*i+1])
	}
	// Output:
	// u = 0.0: (-0.75, 0.25)
	// u = 0.2: (-0.51, 0.33)
	// u = 0.5: (0.00, 0.00)
	// u = 1.0: (0.75, -0.25)
	// u = 1.5: (0.00, 0.00)
}

func ExampleCatmullRomSegments() {
	points := []spline.Point{
		spline.Pt(0, 0),
		spline.Pt(1, 0),
		spline.Pt(2, 0),
		spline.Pt(3, 0),
		spline.Pt(4, 0),
	}
	for seg := range spline.CatmullRomSegments(points, 0, 0) {
		fmt.Println(seg.Start(), "to", seg.End())
	}
	// Output:
	// (1, 0) to (2, 0)
	// (2, 0) to (3, 0)
}
