/*
Package geom provides the small value types shared by the bezier kernel:
points, vectors, radians and the tolerant float comparisons the kernel's
numerical routines are built on.

It is adapted from the point/vector/length vocabulary of
github.com/ibd1279/figuring, trimmed to the parts a Bezier geometry kernel
needs: the physical unit-of-measure machinery (micrometers, millimeters,
...) of the original is dropped since glyph outlines live in an abstract
coordinate space, not a physical one.
*/
package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// equalEpsilon is used by IsEqual to compare floats via
	// mgl64.FloatEqualThreshold: the difference relative to |a|+|b| must be
	// smaller than this (the absolute difference smaller than its square
	// when either value is zero).
	equalEpsilon = 1e-9

	// zeroEpsilon is used by IsZero to compare a float against zero.
	zeroEpsilon = 1e-9
)

// Length is a scalar coordinate or distance.
type Length float64

// Radians measures an angle.
type Radians float64

// Degrees converts r to degrees.
func (r Radians) Degrees() float64 { return float64(r) * 180 / math.Pi }

// IsEqual reports whether a and b are within tolerance of each other.
func IsEqual[T Length | Radians | float64](a, b T) bool {
	return mgl64.FloatEqualThreshold(float64(a), float64(b), equalEpsilon)
}

// IsZero reports whether a is within tolerance of zero.
func IsZero[T Length | Radians | float64](a T) bool {
	return -zeroEpsilon < a && a < zeroEpsilon
}

// Clamp restricts v to the closed interval [min, max].
func Clamp[T Length | Radians | float64](min, v, max T) T {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Pair is implemented by anything that can be read back as an (x, y) pair.
type Pair interface {
	Units() (Length, Length)
}

// IsEqualPair compares two Pairs component-wise with IsEqual.
func IsEqualPair[T Pair](a, b T) bool {
	ax, ay := a.Units()
	bx, by := b.Units()
	return IsEqual(ax, bx) && IsEqual(ay, by)
}

// FloatingPointError reports that a computation produced a NaN or an Inf.
type FloatingPointError struct {
	v float64
}

func (e *FloatingPointError) Error() string {
	switch {
	case math.IsNaN(e.v):
		return "NaN encountered"
	case math.IsInf(e.v, -1):
		return "negative Inf encountered"
	case math.IsInf(e.v, 1):
		return "positive Inf encountered"
	}
	return fmt.Sprintf("%g resulted in an error", e.v)
}

// IsNaN reports whether the error was caused by a NaN value.
func (e *FloatingPointError) IsNaN() bool { return math.IsNaN(e.v) }

// IsInf reports whether the error was caused by an Inf value of either sign.
func (e *FloatingPointError) IsInf() bool { return math.IsInf(e.v, 0) }

// checkFinite returns a FloatingPointError if f is NaN or +-Inf, else nil.
func checkFinite(f float64) *FloatingPointError {
	if math.IsNaN(f) {
		return &FloatingPointError{v: f}
	}
	if math.IsInf(f, 0) {
		return &FloatingPointError{v: f}
	}
	return nil
}

// Pt is a point on the plane.
type Pt struct {
	xy mgl64.Vec2
}

// PtXy creates a Pt from its coordinates.
func PtXy(x, y Length) Pt {
	return Pt{xy: mgl64.Vec2{float64(x), float64(y)}}
}

// PtOrig is the origin.
var PtOrig = PtXy(0, 0)

// X returns the point's X coordinate.
func (p Pt) X() Length { return Length(p.xy[0]) }

// Y returns the point's Y coordinate.
func (p Pt) Y() Length { return Length(p.xy[1]) }

// XY returns both coordinates. Shorthand for Units().
func (p Pt) XY() (Length, Length) { return p.Units() }

// Units implements Pair.
func (p Pt) Units() (Length, Length) { return Length(p.xy[0]), Length(p.xy[1]) }

// OrErr reports a FloatingPointError if either coordinate is NaN or Inf.
func (p Pt) OrErr() (Pt, *FloatingPointError) {
	if err := checkFinite(p.xy[0]); err != nil {
		return p, err
	}
	if err := checkFinite(p.xy[1]); err != nil {
		return p, err
	}
	return p, nil
}

// String renders the point for debugging.
func (p Pt) String() string { return fmt.Sprintf("Pt(%g, %g)", p.xy[0], p.xy[1]) }

// Add returns p translated by v.
func (p Pt) Add(v Vector) Pt {
	return Pt{xy: mgl64.Vec2{p.xy[0] + v.ij[0], p.xy[1] + v.ij[1]}}
}

// VectorTo returns the vector from p to b.
func (p Pt) VectorTo(b Pt) Vector {
	return VectorIj(b.X()-p.X(), b.Y()-p.Y())
}

// Vector is a direction and a magnitude.
type Vector struct {
	ij mgl64.Vec2
}

// VectorZero is the zero vector.
var VectorZero = VectorIj(0, 0)

// VectorIj creates a vector from its components.
func VectorIj(i, j Length) Vector {
	return Vector{ij: mgl64.Vec2{float64(i), float64(j)}}
}

// Units implements Pair.
func (v Vector) Units() (Length, Length) { return Length(v.ij[0]), Length(v.ij[1]) }

// Magnitude returns the vector's length.
func (v Vector) Magnitude() Length { return Length(math.Hypot(v.ij[0], v.ij[1])) }

// Angle returns the vector's angle from the positive X axis,
// increasing anti-clockwise.
func (v Vector) Angle() Radians { return Radians(math.Atan2(v.ij[1], v.ij[0])) }

// Rotate returns v rotated rads anti-clockwise.
func (v Vector) Rotate(rads Radians) Vector {
	c, s := math.Cos(float64(rads)), math.Sin(float64(rads))
	a := mgl64.Mat2{c, s, -s, c}
	ij := a.Mul2x1(v.ij)
	return Vector{ij: ij}
}

// Rotate90 returns v rotated 90 degrees anti-clockwise -- equivalent to
// multiplying the point-as-complex-number by the imaginary unit, which is
// how the reference implementation expresses this operation.
func (v Vector) Rotate90() Vector {
	return Vector{ij: mgl64.Vec2{-v.ij[1], v.ij[0]}}
}

// Scale returns v scaled by m.
func (v Vector) Scale(m Length) Vector {
	return VectorIj(Length(v.ij[0])*m, Length(v.ij[1])*m)
}

// Add returns the sum of v and n.
func (v Vector) Add(n Vector) Vector {
	return Vector{ij: mgl64.Vec2{v.ij[0] + n.ij[0], v.ij[1] + n.ij[1]}}
}

// Sub returns v minus n.
func (v Vector) Sub(n Vector) Vector {
	return Vector{ij: mgl64.Vec2{v.ij[0] - n.ij[0], v.ij[1] - n.ij[1]}}
}

// Dot returns the dot product of v and n.
func (v Vector) Dot(n Vector) Length {
	return Length(v.ij[0]*n.ij[0] + v.ij[1]*n.ij[1])
}

// Minimum returns the smallest of vals.
func Minimum[T Length | float64](vals ...T) (ret T) {
	if len(vals) == 0 {
		return ret
	}
	ret = vals[0]
	for _, v := range vals[1:] {
		if v < ret {
			ret = v
		}
	}
	return ret
}

// Maximum returns the largest of vals.
func Maximum[T Length | float64](vals ...T) (ret T) {
	if len(vals) == 0 {
		return ret
	}
	ret = vals[0]
	for _, v := range vals[1:] {
		if v > ret {
			ret = v
		}
	}
	return ret
}
