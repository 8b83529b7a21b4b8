package bezier

import (
	"errors"
	"testing"

	"github.com/ibd1279/bezierkit/geom"
)

func TestLinePointAtT(t *testing.T) {
	p0, p1 := geom.PtXy(0, 0), geom.PtXy(10, 20)
	got := LinePointAtT(p0, p1, 0.5)
	want := geom.PtXy(5, 10)
	if !geom.IsEqualPair(got, want) {
		t.Fatalf("LinePointAtT = %v, want %v", got, want)
	}
}

func TestQuadraticPointAtTEndpoints(t *testing.T) {
	p0, p1, p2 := geom.PtXy(0, 0), geom.PtXy(50, 100), geom.PtXy(100, 0)
	if got := QuadraticPointAtT(p0, p1, p2, 0); !geom.IsEqualPair(got, p0) {
		t.Fatalf("QuadraticPointAtT(t=0) = %v, want %v", got, p0)
	}
	if got := QuadraticPointAtT(p0, p1, p2, 1); !geom.IsEqualPair(got, p2) {
		t.Fatalf("QuadraticPointAtT(t=1) = %v, want %v", got, p2)
	}
}

func TestCubicPointAtTEndpoints(t *testing.T) {
	p0, p1, p2, p3 := geom.PtXy(0, 0), geom.PtXy(25, 100), geom.PtXy(75, 100), geom.PtXy(100, 0)
	if got := CubicPointAtT(p0, p1, p2, p3, 0); !geom.IsEqualPair(got, p0) {
		t.Fatalf("CubicPointAtT(t=0) = %v, want %v", got, p0)
	}
	if got := CubicPointAtT(p0, p1, p2, p3, 1); !geom.IsEqualPair(got, p3) {
		t.Fatalf("CubicPointAtT(t=1) = %v, want %v", got, p3)
	}
}

func TestSegmentPointAtTDispatch(t *testing.T) {
	line := Line{geom.PtXy(0, 0), geom.PtXy(10, 10)}
	got, err := SegmentPointAtT(line, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := geom.PtXy(5, 5); !geom.IsEqualPair(got, want) {
		t.Fatalf("SegmentPointAtT(line, 0.5) = %v, want %v", got, want)
	}

	quad := Quadratic{geom.PtXy(0, 0), geom.PtXy(50, 100), geom.PtXy(100, 0)}
	if _, err := SegmentPointAtT(quad, 0.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cubic := Cubic{geom.PtXy(0, 0), geom.PtXy(25, 100), geom.PtXy(75, 100), geom.PtXy(100, 0)}
	if _, err := SegmentPointAtT(cubic, 0.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

type badSegment struct{}

func (badSegment) Degree() int        { return 7 }
func (badSegment) Points() []geom.Pt { return nil }

func TestSegmentPointAtTInvalidDegree(t *testing.T) {
	_, err := SegmentPointAtT(badSegment{}, 0.5)
	if err == nil {
		t.Fatal("expected an error for an unsupported segment type")
	}
	var deg *InvalidDegreeError
	if !errors.As(err, &deg) {
		t.Fatalf("expected *InvalidDegreeError, got %T", err)
	}
}
