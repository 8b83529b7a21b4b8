// Package bezier implements a 2D Bezier geometry kernel: polynomial root
// solvers, control-point/power-basis conversions, point evaluation,
// bounding boxes, arc length and segment splitting/intersection for lines,
// quadratic and cubic Bezier segments.
//
// The package is purely functional: every operation takes its inputs by
// value and returns freshly allocated outputs. There is no shared mutable
// state, so every exported function is safe to call concurrently from any
// number of goroutines.
package bezier

import "github.com/ibd1279/bezierkit/geom"

// InvalidDegreeError reports that a segment of unsupported arity (anything
// other than 2, 3 or 4 points) was supplied to an operation that requires a
// line, quadratic or cubic.
type InvalidDegreeError struct {
	Degree int
}

func (e *InvalidDegreeError) Error() string {
	return "bezier: invalid segment degree"
}

// Segment is a line, quadratic or cubic Bezier segment.
//
// Segments are value types: immutable on input, freshly allocated on
// output. The zero value is not a valid Segment; construct one with Line,
// Quadratic or Cubic.
type Segment interface {
	// Degree is 1 for a line, 2 for a quadratic, 3 for a cubic.
	Degree() int
	// Points returns the segment's control points, start point first.
	Points() []geom.Pt
}

// Line is a degree-1 segment between two points.
type Line [2]geom.Pt

func (l Line) Degree() int        { return 1 }
func (l Line) Points() []geom.Pt  { return l[:] }
func (l Line) Begin() geom.Pt     { return l[0] }
func (l Line) End() geom.Pt       { return l[1] }

// Quadratic is a degree-2 segment: start, off-curve control, end.
type Quadratic [3]geom.Pt

func (q Quadratic) Degree() int       { return 2 }
func (q Quadratic) Points() []geom.Pt { return q[:] }

// Cubic is a degree-3 segment: start, two off-curve controls, end.
type Cubic [4]geom.Pt

func (c Cubic) Degree() int       { return 3 }
func (c Cubic) Points() []geom.Pt { return c[:] }

// segmentByDegree builds a Segment from a slice of 2, 3 or 4 points, as the
// external interfaces that accept arbitrary-degree input (§6) require.
func segmentByDegree(pts []geom.Pt) (Segment, error) {
	switch len(pts) {
	case 2:
		return Line{pts[0], pts[1]}, nil
	case 3:
		return Quadratic{pts[0], pts[1], pts[2]}, nil
	case 4:
		return Cubic{pts[0], pts[1], pts[2], pts[3]}, nil
	default:
		return nil, &InvalidDegreeError{Degree: len(pts)}
	}
}
