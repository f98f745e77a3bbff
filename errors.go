package spline

import "errors"

var (
	// ErrTooFewPoints indicates a Catmull-Rom spline was requested for fewer
	// than four control points.
	ErrTooFewPoints = errors.New("spline: need at least 4 control points")
	// ErrShapeMismatch indicates a flattened control point buffer whose length
	// isn't the number of points times the number of dimensions.
	ErrShapeMismatch = errors.New("spline: control point buffer does not match n_points × n_dimensions")
	// ErrSpanNotFound indicates that no knot span contains a parameter that lies
	// inside the curve's domain. It signals a broken invariant, not bad input.
	ErrSpanNotFound = errors.New("spline: no knot span contains parameter")
	// ErrInvalidDegree indicates a negative B-spline degree.
	ErrInvalidDegree = errors.New("spline: degree must not be negative")
)
