// Package spline evaluates smooth curves through sequences of control points
// and turns them into dense polylines suitable for stroking.
//
// Two independent algorithms are provided. Both follow the same shape: the
// control points and a precomputed table of parameters go in, a sequence of
// points comes out.
//
// # Catmull-Rom splines
//
// [CatmullRom] interpolates its control points with a cubic Hermite curve per
// segment, estimating the tangents from the neighbouring points. The alpha
// parameter picks between the uniform (0), centripetal (0.5) and chordal (1)
// variants; centripetal Catmull-Rom splines never form cusps or
// self-intersections within a segment. Tension shortens the tangents, and at a
// tension of 1 every segment degenerates into its chord.
//
// The positions at which segments are sampled come from a [ParameterTable],
// which stores t, t² and t³ for every sample. Tables are built once per
// resolution with [NewParameterTable] and are safe to share.
//
// [AppendCatmullRom] reuses a caller-provided buffer, and [CatmullRomSegments]
// yields exact [CubicBez] segments instead of sampled points.
//
// # B-splines
//
// [BSpline] is a B-spline of any degree over points of any dimension, evaluated
// with de Boor's algorithm over the uniform knot vector 0, 1, …, n+degree.
// Control points are passed as one flat slice, so that a spline through 2D
// points (x0, y0), (x1, y1) is given as []F{x0, y0, x1, y1}. The engine is
// generic over float32 and float64.
//
// Parameters passed to [BSpline.Eval] are normalized to [0, 1]. Parameters
// outside of that range produce a point of all zeros instead of an error;
// [BSpline.EvalValid] additionally reports which points were computed.
//
// # Preconditions
//
// Neither engine checks for coincident consecutive control points. Such input
// leads to divisions by zero, and the resulting infinities and NaNs propagate
// into the output.
//
// # Concurrency
//
// All functions in this package are pure. Parameter tables and [BSpline] values
// are never modified after construction and can be used from multiple
// goroutines at once.
//
// # Literature
//
//   - [Parameterization and Applications of Catmull-Rom Curves] by Yuksel, Schaefer and Keyser
//   - [The NURBS Book] by Piegl and Tiller, algorithm A2.1 and section 3.1
//   - [de Boor's algorithm]
//
// [Parameterization and Applications of Catmull-Rom Curves]: https://www.cemyuksel.com/research/catmullrom_param/catmullrom_cad.pdf
// [The NURBS Book]: https://doi.org/10.1007/978-3-642-59223-2
// [de Boor's algorithm]: https://en.wikipedia.org/wiki/De_Boor%27s_algorithm
package spline
