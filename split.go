package bezier

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ibd1279/bezierkit/geom"
)

// splitQuadraticPowerAtT re-parameterizes a power-basis quadratic into the
// contiguous sub-segments bounded by the sorted, endpoint-padded parameter
// list ts.
func splitQuadraticPowerAtT(pq powerQuadratic, ts []float64) []Quadratic {
	ax, bx, cx := pq.x[0], pq.x[1], pq.x[2]
	ay, by, cy := pq.y[0], pq.y[1], pq.y[2]

	segs := make([]Quadratic, 0, len(ts)-1)
	for i := 0; i < len(ts)-1; i++ {
		t1, t2 := ts[i], ts[i+1]
		delta := t2 - t1
		delta2 := delta * delta

		a1x, a1y := ax*delta2, ay*delta2
		b1x := (2*ax*t1 + bx) * delta
		b1y := (2*ay*t1 + by) * delta
		t1sq := t1 * t1
		c1x := ax*t1sq + bx*t1 + cx
		c1y := ay*t1sq + by*t1 + cy

		p0, p1, p2 := toPointsQuadratic(powerQuadratic{
			x: mgl64.Vec3{a1x, b1x, c1x},
			y: mgl64.Vec3{a1y, b1y, c1y},
		})
		segs = append(segs, Quadratic{p0, p1, p2})
	}
	return segs
}

// splitCubicPowerAtT re-parameterizes a power-basis cubic into the
// contiguous sub-segments bounded by the sorted, endpoint-padded parameter
// list ts.
func splitCubicPowerAtT(pc powerCubic, ts []float64) []Cubic {
	ax, bx, cx, dx := pc.x[0], pc.x[1], pc.x[2], pc.x[3]
	ay, by, cy, dy := pc.y[0], pc.y[1], pc.y[2], pc.y[3]

	segs := make([]Cubic, 0, len(ts)-1)
	for i := 0; i < len(ts)-1; i++ {
		t1, t2 := ts[i], ts[i+1]
		delta := t2 - t1
		delta2 := delta * delta
		delta3 := delta * delta2
		t1sq := t1 * t1
		t1cu := t1 * t1sq

		a1x, a1y := ax*delta3, ay*delta3
		b1x := (3*ax*t1 + bx) * delta2
		b1y := (3*ay*t1 + by) * delta2
		c1x := (2*bx*t1 + cx + 3*ax*t1sq) * delta
		c1y := (2*by*t1 + cy + 3*ay*t1sq) * delta
		d1x := ax*t1cu + bx*t1sq + cx*t1 + dx
		d1y := ay*t1cu + by*t1sq + cy*t1 + dy

		p0, p1, p2, p3 := toPointsCubic(powerCubic{
			x: mgl64.Vec4{a1x, b1x, c1x, d1x},
			y: mgl64.Vec4{a1y, b1y, c1y, d1y},
		})
		segs = append(segs, Cubic{p0, p1, p2, p3})
	}
	return segs
}

// padTs prepends 0.0 and appends 1.0 to a sorted copy of ts (duplicates
// are kept), the parameter list splitAtT needs.
func padTs(ts []float64) []float64 {
	sorted := append([]float64(nil), ts...)
	sort.Float64s(sorted)
	out := make([]float64, 0, len(sorted)+2)
	out = append(out, 0.0)
	out = append(out, sorted...)
	out = append(out, 1.0)
	return out
}

// SplitQuadraticAtT splits the quadratic Bezier (p0, p1, p2) at each
// parameter in ts, returning len(ts)+1 contiguous sub-segments.
func SplitQuadraticAtT(p0, p1, p2 geom.Pt, ts ...float64) []Quadratic {
	pq := toPowerQuadratic(p0, p1, p2)
	return splitQuadraticPowerAtT(pq, padTs(ts))
}

// SplitCubicAtT splits the cubic Bezier (p0, p1, p2, p3) at each parameter
// in ts, returning len(ts)+1 contiguous sub-segments.
func SplitCubicAtT(p0, p1, p2, p3 geom.Pt, ts ...float64) []Cubic {
	pc := toPowerCubic(p0, p1, p2, p3)
	return splitCubicPowerAtT(pc, padTs(ts))
}

// SplitLine splits the line (p0, p1) at the point where it crosses the
// axis-aligned coordinate where. If isHorizontal, where is a Y coordinate;
// otherwise it is an X coordinate. Returns the original line unchanged, as
// a single-element slice, if the line is parallel to the splitting ray or
// the crossing falls outside [0, 1).
func SplitLine(p0, p1 geom.Pt, where geom.Length, isHorizontal bool) []Line {
	ax := p1.X() - p0.X()
	ay := p1.Y() - p0.Y()

	var a, b geom.Length
	if isHorizontal {
		a, b = ay, p0.Y()
	} else {
		a, b = ax, p0.X()
	}
	if a == 0 {
		return []Line{{p0, p1}}
	}
	t := float64((where - b) / a)
	if t < 0 || t >= 1 {
		return []Line{{p0, p1}}
	}
	mid := geom.PtXy(geom.Length(float64(ax)*t)+p0.X(), geom.Length(float64(ay)*t)+p0.Y())
	return []Line{{p0, mid}, {mid, p1}}
}

// axisRoots returns the sorted, [0,1)-filtered roots in solutions.
func axisRoots(solutions []float64) []float64 {
	out := make([]float64, 0, len(solutions))
	for _, t := range solutions {
		if 0 <= t && t < 1 {
			out = append(out, t)
		}
	}
	sort.Float64s(out)
	return out
}

func axisCoefficients3(pq powerQuadratic, isHorizontal bool) (a, b, c float64) {
	if isHorizontal {
		return pq.y[0], pq.y[1], pq.y[2]
	}
	return pq.x[0], pq.x[1], pq.x[2]
}

func axisCoefficients4(pc powerCubic, isHorizontal bool) (a, b, c, d float64) {
	if isHorizontal {
		return pc.y[0], pc.y[1], pc.y[2], pc.y[3]
	}
	return pc.x[0], pc.x[1], pc.x[2], pc.x[3]
}

// SplitQuadratic splits the quadratic Bezier (p0, p1, p2) where it crosses
// the axis-aligned coordinate where (see SplitLine for the isHorizontal
// convention). Returns the original curve unchanged, as a single-element
// slice, if no crossing falls within the curve.
func SplitQuadratic(p0, p1, p2 geom.Pt, where geom.Length, isHorizontal bool) []Quadratic {
	pq := toPowerQuadratic(p0, p1, p2)
	a, b, c := axisCoefficients3(pq, isHorizontal)
	roots := axisRoots(SolveQuadratic(a, b, c-float64(where)))
	if len(roots) == 0 {
		return []Quadratic{{p0, p1, p2}}
	}
	return splitQuadraticPowerAtT(pq, padTs(roots))
}

// SplitCubic splits the cubic Bezier (p0, p1, p2, p3) where it crosses the
// axis-aligned coordinate where (see SplitLine for the isHorizontal
// convention). Returns the original curve unchanged, as a single-element
// slice, if no crossing falls within the curve.
func SplitCubic(p0, p1, p2, p3 geom.Pt, where geom.Length, isHorizontal bool) []Cubic {
	pc := toPowerCubic(p0, p1, p2, p3)
	a, b, c, d := axisCoefficients4(pc, isHorizontal)
	roots := axisRoots(SolveCubic(a, b, c, d-float64(where)))
	if len(roots) == 0 {
		return []Cubic{{p0, p1, p2, p3}}
	}
	return splitCubicPowerAtT(pc, padTs(roots))
}

// splitSegmentAtT splits any supported segment at a single parameter t,
// returning its two halves as Segments. Used by the curve/curve
// intersection subdivision.
func splitSegmentAtT(seg Segment, t float64) (Segment, Segment) {
	switch s := seg.(type) {
	case Line:
		mid := LinePointAtT(s[0], s[1], t)
		return Line{s[0], mid}, Line{mid, s[1]}
	case Quadratic:
		halves := SplitQuadraticAtT(s[0], s[1], s[2], t)
		return halves[0], halves[1]
	case Cubic:
		halves := SplitCubicAtT(s[0], s[1], s[2], s[3], t)
		return halves[0], halves[1]
	default:
		panic("bezier: splitSegmentAtT: unsupported segment")
	}
}
