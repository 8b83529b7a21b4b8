package bezier

import (
	"math"
	"sort"

	"github.com/ibd1279/bezierkit/geom"
)

// Intersection is one intersection point found between two segments: Pt is
// the shared point, T1 is its parameter on the first segment, T2 its
// parameter on the second.
type Intersection struct {
	Pt     geom.Pt
	T1, T2 float64
}

// isClose mirrors Python's math.isclose with its default relative
// tolerance of 1e-9 and absolute tolerance of 0, the comparison
// LineLineIntersections is specified to use -- distinct from geom.IsEqual's
// mgl64.FloatEqualThreshold comparison.
func isClose(a, b float64) bool {
	const relTol = 1e-9
	return math.Abs(a-b) <= relTol*math.Max(math.Abs(a), math.Abs(b))
}

// lineTOfPt returns the parameter t such that LinePointAtT(s, e, t) == pt,
// assuming pt already lies on the infinite line through s and e. Returns -1
// if s and e coincide, a degenerate line with no meaningful parameter.
func lineTOfPt(s, e, pt geom.Pt) float64 {
	sx, sy := s.XY()
	ex, ey := e.XY()
	px, py := pt.XY()
	if !isClose(float64(sx), float64(ex)) {
		return float64(px-sx) / float64(ex-sx)
	}
	if !isClose(float64(sy), float64(ey)) {
		return float64(py-sy) / float64(ey-sy)
	}
	return -1
}

// withinChord reports whether pt lies between a and b on both axes (pt-a
// and pt-b differ in sign or one is zero), i.e. pt does not fall strictly
// outside the chord [a, b].
func withinChord(pt, a, b geom.Pt) bool {
	xDiff := float64((pt.X() - a.X()) * (pt.X() - b.X()))
	yDiff := float64((pt.Y() - a.Y()) * (pt.Y() - b.Y()))
	return xDiff <= 0 && yDiff <= 0
}

// LineLineIntersections finds the intersection, if any, of line s1->e1 and
// line s2->e2. Parallel, coincident or degenerate (zero-length) lines
// return an empty slice.
func LineLineIntersections(s1, e1, s2, e2 geom.Pt) []Intersection {
	ax, ay := s1.XY()
	bx, by := e1.XY()
	cx, cy := s2.XY()
	dx, dy := e2.XY()

	fax, fay, fbx, fby := float64(ax), float64(ay), float64(bx), float64(by)
	fcx, fcy, fdx, fdy := float64(cx), float64(cy), float64(dx), float64(dy)

	switch {
	case isClose(fax, fbx) && isClose(fay, fby):
		return nil
	case isClose(fcx, fdx) && isClose(fcy, fdy):
		return nil
	}

	mkResult := func(pt geom.Pt) []Intersection {
		return []Intersection{{
			Pt: pt,
			T1: lineTOfPt(s1, e1, pt),
			T2: lineTOfPt(s2, e2, pt),
		}}
	}

	var x, y geom.Length
	switch {
	case isClose(fbx, fax):
		// First line is vertical. The reference implementation has a
		// documented typo in this branch (an undefined "xy" in place
		// of "cy"); this is the corrected expression.
		if isClose(fdx, fcx) {
			return nil
		}
		x = ax
		slope34 := (dy - cy) / (dx - cx)
		y = slope34*(x-cx) + cy
	case isClose(fdx, fcx):
		x = cx
		slope12 := (by - ay) / (bx - ax)
		y = slope12*(x-ax) + ay
	default:
		slope12 := (by - ay) / (bx - ax)
		slope34 := (dy - cy) / (dx - cx)
		if isClose(float64(slope12), float64(slope34)) {
			return nil
		}
		x = (slope12*ax - ay - slope34*cx + cy) / (slope12 - slope34)
		y = slope12*(x-ax) + ay
	}
	pt := geom.PtXy(x, y)

	if withinChord(pt, e1, s1) && withinChord(pt, s2, e2) {
		return mkResult(pt)
	}
	return nil
}

// alignToXAxis translates pts by -line.start and rotates them so that
// line.end lands on the positive X axis, the reference frame
// curveLineIntersectionTs solves the curve's axis polynomial in.
func alignToXAxis(line Line, pts []geom.Pt) []geom.Pt {
	translate := line[0].VectorTo(geom.PtOrig)
	end := line[1].Add(translate)
	angle := geom.PtOrig.VectorTo(end).Angle()

	out := make([]geom.Pt, len(pts))
	for h, p := range pts {
		moved := p.Add(translate)
		v := geom.PtOrig.VectorTo(moved).Rotate(-angle)
		out[h] = geom.PtOrig.Add(v)
	}
	return out
}

// curveLineIntersectionTs returns the sorted, [0,1]-filtered parameter
// values on curve where it crosses line, found by rotating the curve into
// the line's reference frame and solving the resulting axis polynomial for
// both axes.
func curveLineIntersectionTs(curve Segment, line Line) ([]float64, error) {
	aligned := alignToXAxis(line, curve.Points())

	var ts []float64
	switch curve.(type) {
	case Quadratic:
		pq := toPowerQuadratic(aligned[0], aligned[1], aligned[2])
		ts = append(ts, SolveQuadratic(pq.x[0], pq.x[1], pq.x[2])...)
		ts = append(ts, SolveQuadratic(pq.y[0], pq.y[1], pq.y[2])...)
	case Cubic:
		pc := toPowerCubic(aligned[0], aligned[1], aligned[2], aligned[3])
		ts = append(ts, SolveCubic(pc.x[0], pc.x[1], pc.x[2], pc.x[3])...)
		ts = append(ts, SolveCubic(pc.y[0], pc.y[1], pc.y[2], pc.y[3])...)
	default:
		return nil, &InvalidDegreeError{Degree: curve.Degree()}
	}

	out := make([]float64, 0, len(ts))
	for _, t := range ts {
		if t >= 0.0 && t <= 1.0 {
			out = append(out, t)
		}
	}
	sort.Float64s(out)
	return out, nil
}

// CurveLineIntersections finds the intersections of a quadratic or cubic
// curve with a line.
func CurveLineIntersections(curve Segment, line Line) ([]Intersection, error) {
	ts, err := curveLineIntersectionTs(curve, line)
	if err != nil {
		return nil, err
	}
	out := make([]Intersection, 0, len(ts))
	for _, t := range ts {
		pt, err := SegmentPointAtT(curve, t)
		if err != nil {
			return nil, err
		}
		out = append(out, Intersection{
			Pt: pt,
			T1: t,
			T2: lineTOfPt(line[0], line[1], pt),
		})
	}
	return out, nil
}

func curveBounds(seg Segment) (Bounds, error) {
	switch s := seg.(type) {
	case Quadratic:
		return CalcQuadraticBounds(s[0], s[1], s[2]), nil
	case Cubic:
		return CalcCubicBounds(s[0], s[1], s[2], s[3]), nil
	default:
		return Bounds{}, &InvalidDegreeError{Degree: seg.Degree()}
	}
}

// defaultIntersectionPrecision is curve/curve intersection's default
// bounding-box-area and deduplication precision.
const defaultIntersectionPrecision = 1e-3

// curveCurveIntersectionsT is the recursive bounding-box subdivision at the
// heart of curve/curve intersection: whenever the two curves' bounding
// boxes overlap, split both in half and recurse into the four quadrant
// pairings, until both boxes are smaller than precision, at which point the
// midpoints of the current parameter ranges are reported as a hit.
func curveCurveIntersectionsT(c1, c2 Segment, precision float64, range1, range2 [2]float64) ([][2]float64, error) {
	b1, err := curveBounds(c1)
	if err != nil {
		return nil, err
	}
	b2, err := curveBounds(c2)
	if err != nil {
		return nil, err
	}
	if !b1.Intersects(b2) {
		return nil, nil
	}

	mid := func(r [2]float64) float64 { return 0.5 * (r[0] + r[1]) }

	if float64(b1.Area()) < precision && float64(b2.Area()) < precision {
		return [][2]float64{{mid(range1), mid(range2)}}, nil
	}

	c11, c12 := splitSegmentAtT(c1, 0.5)
	c11Range := [2]float64{range1[0], mid(range1)}
	c12Range := [2]float64{mid(range1), range1[1]}

	c21, c22 := splitSegmentAtT(c2, 0.5)
	c21Range := [2]float64{range2[0], mid(range2)}
	c22Range := [2]float64{mid(range2), range2[1]}

	var found [][2]float64
	for _, pair := range []struct {
		a, b   Segment
		ra, rb [2]float64
	}{
		{c11, c21, c11Range, c21Range},
		{c12, c21, c12Range, c21Range},
		{c11, c22, c11Range, c22Range},
		{c12, c22, c12Range, c22Range},
	} {
		sub, err := curveCurveIntersectionsT(pair.a, pair.b, precision, pair.ra, pair.rb)
		if err != nil {
			return nil, err
		}
		found = append(found, sub...)
	}

	seen := make(map[int64]bool, len(found))
	out := make([][2]float64, 0, len(found))
	for _, ts := range found {
		key := int64(ts[0] / precision)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, ts)
	}
	return out, nil
}

// CurveCurveIntersections finds the intersections of two quadratic and/or
// cubic curves (of possibly different degree) by recursive bounding-box
// subdivision.
func CurveCurveIntersections(c1, c2 Segment) ([]Intersection, error) {
	ts, err := curveCurveIntersectionsT(c1, c2, defaultIntersectionPrecision, [2]float64{0, 1}, [2]float64{0, 1})
	if err != nil {
		return nil, err
	}
	out := make([]Intersection, 0, len(ts))
	for _, t := range ts {
		pt, err := SegmentPointAtT(c1, t[0])
		if err != nil {
			return nil, err
		}
		out = append(out, Intersection{Pt: pt, T1: t[0], T2: t[1]})
	}
	return out, nil
}

// SegmentSegmentIntersections dispatches to LineLineIntersections,
// CurveLineIntersections or CurveCurveIntersections depending on the
// degrees of s1 and s2.
func SegmentSegmentIntersections(s1, s2 Segment) ([]Intersection, error) {
	if s2.Degree() > s1.Degree() {
		s1, s2 = s2, s1
	}

	switch {
	case s1.Degree() > 1 && s2.Degree() > 1:
		return CurveCurveIntersections(s1, s2)
	case s1.Degree() > 1 && s2.Degree() == 1:
		line, ok := s2.(Line)
		if !ok {
			return nil, &InvalidDegreeError{Degree: s2.Degree()}
		}
		return CurveLineIntersections(s1, line)
	case s1.Degree() == 1 && s2.Degree() == 1:
		l1, ok1 := s1.(Line)
		l2, ok2 := s2.(Line)
		if !ok1 || !ok2 {
			return nil, &InvalidDegreeError{Degree: s1.Degree()}
		}
		return LineLineIntersections(l1[0], l1[1], l2[0], l2[1]), nil
	default:
		return nil, &InvalidDegreeError{Degree: s1.Degree()}
	}
}
