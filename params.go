package spline

import "fmt"

// Sample is one position along a curve segment, together with its square and
// cube.
type Sample struct {
	T  float64
	T2 float64
	T3 float64
}

// ParameterTable is a fixed set of samples at which every segment of a
// Catmull-Rom spline gets evaluated. Build it once per resolution with
// [NewParameterTable] and share it between any number of evaluations; nothing
// writes to it after construction.
type ParameterTable []Sample

// NewParameterTable returns the samples i/resolution for i in [0, resolution).
// The sample t = 1 is left out because it coincides with t = 0 of the next
// segment.
//
// NewParameterTable panics if resolution isn't positive.
func NewParameterTable(resolution int) ParameterTable {
	if resolution <= 0 {
		panic(fmt.Sprintf("spline: invalid resolution %d", resolution))
	}
	table := make(ParameterTable, resolution)
	n := float64(resolution)
	for i := range table {
		t := float64(i) / n
		t2 := t * t
		table[i] = Sample{T: t, T2: t2, T3: t2 * t}
	}
	return table
}

// Parameters returns resolution+1 evenly spaced values from 0 to 1 inclusive,
// suitable as the parameters of [BSpline.Eval].
//
// Parameters panics if resolution isn't positive.
func Parameters[F Float](resolution int) []F {
	if resolution <= 0 {
		panic(fmt.Sprintf("spline: invalid resolution %d", resolution))
	}
	ts := make([]F, resolution+1)
	for i := range ts {
		ts[i] = F(i) / F(resolution)
	}
	return ts
}
