package bezier

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/ibd1279/bezierkit/geom"
)

// powerQuadratic is the power-basis form of a quadratic segment: one
// quadratic polynomial per axis, P(t) = A*t^2 + B*t + C, stored highest
// degree first the way figuring.Quadratic stores its coefficients.
type powerQuadratic struct {
	x, y mgl64.Vec3
}

// powerCubic is the power-basis form of a cubic segment: P(t) = A*t^3 +
// B*t^2 + C*t + D per axis.
type powerCubic struct {
	x, y mgl64.Vec4
}

// quadAtT and cubicAtT evaluate a single axis's polynomial via a dot product against the
// monomial basis, mirroring figuring.Quadratic.AtT / figuring.Cubic.AtT.
func quadAtT(abc mgl64.Vec3, t float64) float64 {
	return mgl64.Vec3{t * t, t, 1}.Dot(abc)
}

func cubicAtT(abcd mgl64.Vec4, t float64) float64 {
	return mgl64.Vec4{t * t * t, t * t, t, 1}.Dot(abcd)
}

// toPowerQuadratic converts control points to power-basis form.
// C = P0, B = 2*(P1-P0), A = P2-P0-B.
func toPowerQuadratic(p0, p1, p2 geom.Pt) powerQuadratic {
	cx, cy := p0.XY()
	bx := 2 * (float64(p1.X()) - float64(cx))
	by := 2 * (float64(p1.Y()) - float64(cy))
	ax := float64(p2.X()) - float64(cx) - bx
	ay := float64(p2.Y()) - float64(cy) - by
	return powerQuadratic{
		x: mgl64.Vec3{ax, bx, float64(cx)},
		y: mgl64.Vec3{ay, by, float64(cy)},
	}
}

// toPointsQuadratic is the inverse of toPowerQuadratic.
// P0 = C, P1 = C + B/2, P2 = A + B + C.
func toPointsQuadratic(pq powerQuadratic) (p0, p1, p2 geom.Pt) {
	ax, bx, cx := pq.x[0], pq.x[1], pq.x[2]
	ay, by, cy := pq.y[0], pq.y[1], pq.y[2]
	p0 = geom.PtXy(geom.Length(cx), geom.Length(cy))
	p1 = geom.PtXy(geom.Length(cx+bx/2), geom.Length(cy+by/2))
	p2 = geom.PtXy(geom.Length(ax+bx+cx), geom.Length(ay+by+cy))
	return
}

// toPowerCubic converts control points to power-basis form.
// D = P0, C = 3*(P1-P0), B = 3*(P2-P1)-C, A = P3-P0-C-B.
func toPowerCubic(p0, p1, p2, p3 geom.Pt) powerCubic {
	dx, dy := p0.XY()
	cx := 3 * (float64(p1.X()) - float64(dx))
	cy := 3 * (float64(p1.Y()) - float64(dy))
	bx := 3*(float64(p2.X())-float64(p1.X())) - cx
	by := 3*(float64(p2.Y())-float64(p1.Y())) - cy
	ax := float64(p3.X()) - float64(dx) - cx - bx
	ay := float64(p3.Y()) - float64(dy) - cy - by
	return powerCubic{
		x: mgl64.Vec4{ax, bx, cx, float64(dx)},
		y: mgl64.Vec4{ay, by, cy, float64(dy)},
	}
}

// toPointsCubic is the inverse of toPowerCubic.
// P0 = D, P1 = D + C/3, P2 = P1 + (B+C)/3, P3 = A+B+C+D.
func toPointsCubic(pc powerCubic) (p0, p1, p2, p3 geom.Pt) {
	ax, bx, cx, dx := pc.x[0], pc.x[1], pc.x[2], pc.x[3]
	ay, by, cy, dy := pc.y[0], pc.y[1], pc.y[2], pc.y[3]
	p0 = geom.PtXy(geom.Length(dx), geom.Length(dy))
	p1x, p1y := dx+cx/3, dy+cy/3
	p1 = geom.PtXy(geom.Length(p1x), geom.Length(p1y))
	p2 = geom.PtXy(geom.Length(p1x+(bx+cx)/3), geom.Length(p1y+(by+cy)/3))
	p3 = geom.PtXy(geom.Length(ax+bx+cx+dx), geom.Length(ay+by+cy+dy))
	return
}
