package bezier

import (
	"math"

	"github.com/ibd1279/bezierkit/geom"
)

// defaultCubicArcLengthTolerance is calcCubicArcLength's default flatness
// tolerance, matching the reference implementation's default.
const defaultCubicArcLengthTolerance = 0.005

// intSecAtan is the antiderivative of sec(atan(x)), used by
// CalcQuadraticArcLength's closed-form solution.
//
//	sympy.integrate(sp.sec(sp.atan(x))) == x*sqrt(x**2+1)/2 + asinh(x)/2
func intSecAtan(x float64) float64 {
	return x*math.Sqrt(x*x+1)/2 + math.Asinh(x)/2
}

// CalcQuadraticArcLength computes the exact arc length of the quadratic
// Bezier (p0, p1, p2) via a closed-form analytical solution. It treats the
// 2D plane as the complex plane internally (rotation by 90 degrees via
// Vector.Rotate90, dot products via Vector.Dot) to keep the formula a
// direct transliteration of the reference derivation.
func CalcQuadraticArcLength(p0, p1, p2 geom.Pt) geom.Length {
	d0 := p0.VectorTo(p1)
	d1 := p1.VectorTo(p2)
	d := d0.Scale(-1).Add(d1)
	n := d.Rotate90()
	scale := n.Magnitude()

	if geom.IsZero(scale) {
		return p0.VectorTo(p2).Magnitude()
	}

	origDist := n.Dot(d0)
	if math.Abs(float64(origDist)) < epsilon {
		if d0.Dot(d1) >= 0 {
			return p0.VectorTo(p2).Magnitude()
		}
		a, b := float64(d0.Magnitude()), float64(d1.Magnitude())
		return geom.Length((a*a + b*b) / (a + b))
	}

	x0 := float64(d.Dot(d0)) / float64(origDist)
	x1 := float64(d.Dot(d1)) / float64(origDist)
	length := math.Abs(2 * (intSecAtan(x1) - intSecAtan(x0)) * float64(origDist) / (float64(scale) * (x1 - x0)))
	return geom.Length(length)
}

// splitCubicInTwo performs the closed-form De Casteljau split of a cubic at
// t=0.5, used by CalcCubicArcLength's recursion.
func splitCubicInTwo(p0, p1, p2, p3 geom.Pt) (Cubic, Cubic) {
	mid := geom.PtXy(
		(p0.X()+3*(p1.X()+p2.X())+p3.X())/8,
		(p0.Y()+3*(p1.Y()+p2.Y())+p3.Y())/8,
	)
	deriv3 := geom.VectorIj(
		(p3.X()+p2.X()-p1.X()-p0.X())/8,
		(p3.Y()+p2.Y()-p1.Y()-p0.Y())/8,
	)
	left := Cubic{
		p0,
		geom.PtXy((p0.X()+p1.X())/2, (p0.Y()+p1.Y())/2),
		mid.Add(deriv3.Scale(-1)),
		mid,
	}
	right := Cubic{
		mid,
		mid.Add(deriv3),
		geom.PtXy((p2.X()+p3.X())/2, (p2.Y()+p3.Y())/2),
		p3,
	}
	return left, right
}

func calcCubicArcLengthRecurse(mult geom.Length, p0, p1, p2, p3 geom.Pt) geom.Length {
	arch := p0.VectorTo(p3).Magnitude()
	box := p0.VectorTo(p1).Magnitude() + p1.VectorTo(p2).Magnitude() + p2.VectorTo(p3).Magnitude()
	if arch*mult >= box {
		return (arch + box) / 2
	}
	one, two := splitCubicInTwo(p0, p1, p2, p3)
	return calcCubicArcLengthRecurse(mult, one[0], one[1], one[2], one[3]) +
		calcCubicArcLengthRecurse(mult, two[0], two[1], two[2], two[3])
}

// CalcCubicArcLength computes the arc length of the cubic Bezier (p0, p1,
// p2, p3) by recursively subdividing the curve until each piece is flat
// enough, within tolerance, that the average of the chord and the control
// polygon is an adequate length estimate. Smaller tolerance means more
// subdivision and a more accurate (but slower) result.
func CalcCubicArcLength(p0, p1, p2, p3 geom.Pt, tolerance float64) geom.Length {
	if tolerance <= 0 {
		tolerance = defaultCubicArcLengthTolerance
	}
	mult := geom.Length(1 + 1.5*tolerance)
	return calcCubicArcLengthRecurse(mult, p0, p1, p2, p3)
}

// ApproximateQuadraticArcLength approximates the arc length of the
// quadratic Bezier (p0, p1, p2) using a fixed 3-point Gauss-Legendre
// quadrature of the derivative's magnitude. It is branch-free and faster,
// but less accurate, than CalcQuadraticArcLength.
func ApproximateQuadraticArcLength(p0, p1, p2 geom.Pt) geom.Length {
	v0 := combine(p0, p1, p2, -0.492943519233745, 0.430331482911935, 0.0626120363218102).Magnitude()
	v1 := p0.VectorTo(p2).Magnitude() * 0.4444444444444444
	v2 := combine(p0, p1, p2, -0.0626120363218102, -0.430331482911935, 0.492943519233745).Magnitude()
	return v0 + v1 + v2
}

// combine returns the vector a*p0 + b*p1 + c*p2 (as a free vector, not a
// point), the shape every Gauss quadrature weight-combination below needs.
func combine(p0, p1, p2 geom.Pt, a, b, c float64) geom.Vector {
	x := a*float64(p0.X()) + b*float64(p1.X()) + c*float64(p2.X())
	y := a*float64(p0.Y()) + b*float64(p1.Y()) + c*float64(p2.Y())
	return geom.VectorIj(geom.Length(x), geom.Length(y))
}

func combine4(p0, p1, p2, p3 geom.Pt, a, b, c, d float64) geom.Vector {
	x := a*float64(p0.X()) + b*float64(p1.X()) + c*float64(p2.X()) + d*float64(p3.X())
	y := a*float64(p0.Y()) + b*float64(p1.Y()) + c*float64(p2.Y()) + d*float64(p3.Y())
	return geom.VectorIj(geom.Length(x), geom.Length(y))
}

// ApproximateCubicArcLength approximates the arc length of the cubic
// Bezier (p0, p1, p2, p3) using a fixed 5-point Gauss-Lobatto quadrature of
// the derivative's magnitude (weights 1/20, 49/180, 32/90, 49/180, 1/20).
// It is branch-free and faster, but less accurate, than
// CalcCubicArcLength.
func ApproximateCubicArcLength(p0, p1, p2, p3 geom.Pt) geom.Length {
	v0 := p0.VectorTo(p1).Magnitude() * 0.15
	v1 := combine4(p0, p1, p2, p3, -0.558983582205757, 0.325650248872424, 0.208983582205757, 0.024349751127576).Magnitude()
	v2 := combine4(p0, p1, p2, p3, -1, -1, 1, 1).Magnitude() * 0.26666666666666666
	v3 := combine4(p0, p1, p2, p3, -0.024349751127576, -0.208983582205757, -0.325650248872424, 0.558983582205757).Magnitude()
	v4 := p2.VectorTo(p3).Magnitude() * 0.15
	return v0 + v1 + v2 + v3 + v4
}
