package bezier

import "github.com/ibd1279/bezierkit/geom"

// LinePointAtT returns the point at parameter t on the line p0->p1.
func LinePointAtT(p0, p1 geom.Pt, t float64) geom.Pt {
	x := float64(p0.X())*(1-t) + float64(p1.X())*t
	y := float64(p0.Y())*(1-t) + float64(p1.Y())*t
	return geom.PtXy(geom.Length(x), geom.Length(y))
}

// QuadraticPointAtT returns the point at parameter t on the quadratic
// Bezier (p0, p1, p2), using the Bernstein form directly for numerical
// stability near the endpoints.
func QuadraticPointAtT(p0, p1, p2 geom.Pt, t float64) geom.Pt {
	mt := 1 - t
	x := mt*mt*float64(p0.X()) + 2*mt*t*float64(p1.X()) + t*t*float64(p2.X())
	y := mt*mt*float64(p0.Y()) + 2*mt*t*float64(p1.Y()) + t*t*float64(p2.Y())
	return geom.PtXy(geom.Length(x), geom.Length(y))
}

// CubicPointAtT returns the point at parameter t on the cubic Bezier (p0,
// p1, p2, p3), using the Bernstein form directly for numerical stability
// near the endpoints.
func CubicPointAtT(p0, p1, p2, p3 geom.Pt, t float64) geom.Pt {
	mt := 1 - t
	mt2 := mt * mt
	t2 := t * t
	x := mt2*mt*float64(p0.X()) + 3*mt2*t*float64(p1.X()) + 3*mt*t2*float64(p2.X()) + t2*t*float64(p3.X())
	y := mt2*mt*float64(p0.Y()) + 3*mt2*t*float64(p1.Y()) + 3*mt*t2*float64(p2.Y()) + t2*t*float64(p3.Y())
	return geom.PtXy(geom.Length(x), geom.Length(y))
}

// SegmentPointAtT dispatches to LinePointAtT, QuadraticPointAtT or
// CubicPointAtT by seg's degree. It returns an *InvalidDegreeError for any
// other arity.
func SegmentPointAtT(seg Segment, t float64) (geom.Pt, error) {
	switch s := seg.(type) {
	case Line:
		return LinePointAtT(s[0], s[1], t), nil
	case Quadratic:
		return QuadraticPointAtT(s[0], s[1], s[2], t), nil
	case Cubic:
		return CubicPointAtT(s[0], s[1], s[2], s[3], t), nil
	default:
		return geom.Pt{}, &InvalidDegreeError{Degree: len(seg.Points())}
	}
}
