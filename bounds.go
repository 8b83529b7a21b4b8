package bezier

import "github.com/ibd1279/bezierkit/geom"

// Bounds is an axis-aligned bounding box, always normalized so that
// XMin <= XMax and YMin <= YMax.
type Bounds struct {
	XMin, YMin, XMax, YMax geom.Length
}

// Area returns the rectangle's area, used by the curve/curve intersection
// subdivision to decide when bounds are "tiny enough" to approximate.
func (b Bounds) Area() geom.Length {
	return (b.XMax - b.XMin) * (b.YMax - b.YMin)
}

// Intersects reports whether b and o overlap (touching counts as overlap).
func (b Bounds) Intersects(o Bounds) bool {
	return b.XMin <= o.XMax && o.XMin <= b.XMax && b.YMin <= o.YMax && o.YMin <= b.YMax
}

func boundsOfPts(pts []geom.Pt) Bounds {
	xs := make([]geom.Length, len(pts))
	ys := make([]geom.Length, len(pts))
	for h, p := range pts {
		xs[h], ys[h] = p.XY()
	}
	return Bounds{
		XMin: geom.Minimum(xs...),
		XMax: geom.Maximum(xs...),
		YMin: geom.Minimum(ys...),
		YMax: geom.Maximum(ys...),
	}
}

// CalcQuadraticBounds returns the axis-aligned bounding box of the
// quadratic Bezier (p0, p1, p2).
func CalcQuadraticBounds(p0, p1, p2 geom.Pt) Bounds {
	pq := toPowerQuadratic(p0, p1, p2)
	ax, bx := pq.x[0], pq.x[1]
	ay, by := pq.y[0], pq.y[1]

	pts := []geom.Pt{p0, p2}
	if ax2 := ax * 2; ax2 != 0 {
		if t := -bx / ax2; 0 <= t && t < 1 {
			pts = append(pts, geom.PtXy(geom.Length(quadAtT(pq.x, t)), geom.Length(quadAtT(pq.y, t))))
		}
	}
	if ay2 := ay * 2; ay2 != 0 {
		if t := -by / ay2; 0 <= t && t < 1 {
			pts = append(pts, geom.PtXy(geom.Length(quadAtT(pq.x, t)), geom.Length(quadAtT(pq.y, t))))
		}
	}
	return boundsOfPts(pts)
}

// CalcCubicBounds returns the axis-aligned bounding box of the cubic
// Bezier (p0, p1, p2, p3).
func CalcCubicBounds(p0, p1, p2, p3 geom.Pt) Bounds {
	pc := toPowerCubic(p0, p1, p2, p3)
	ax, bx, cx := pc.x[0], pc.x[1], pc.x[2]
	ay, by, cy := pc.y[0], pc.y[1], pc.y[2]

	pts := []geom.Pt{p0, p3}
	for _, t := range SolveQuadratic(ax*3, bx*2, cx) {
		if 0 <= t && t < 1 {
			pts = append(pts, geom.PtXy(geom.Length(cubicAtT(pc.x, t)), geom.Length(cubicAtT(pc.y, t))))
		}
	}
	for _, t := range SolveQuadratic(ay*3, by*2, cy) {
		if 0 <= t && t < 1 {
			pts = append(pts, geom.PtXy(geom.Length(cubicAtT(pc.x, t)), geom.Length(cubicAtT(pc.y, t))))
		}
	}
	return boundsOfPts(pts)
}
