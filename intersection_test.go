package bezier

import (
	"testing"

	"github.com/ibd1279/bezierkit/geom"
)

func TestLineLineIntersections(t *testing.T) {
	got := LineLineIntersections(
		geom.PtXy(310, 389), geom.PtXy(453, 222),
		geom.PtXy(289, 251), geom.PtXy(447, 367),
	)
	if len(got) != 1 {
		t.Fatalf("LineLineIntersections = %d results, want 1", len(got))
	}
	want := geom.PtXy(374.4488, 313.7346)
	if !closeEnoughTol(float64(got[0].Pt.X()), float64(want.X()), 1e-3) ||
		!closeEnoughTol(float64(got[0].Pt.Y()), float64(want.Y()), 1e-3) {
		t.Fatalf("LineLineIntersections pt = %v, want %v", got[0].Pt, want)
	}
	if !closeEnoughTol(got[0].T1, 0.4507, 1e-3) {
		t.Fatalf("LineLineIntersections T1 = %v, want 0.4507", got[0].T1)
	}
	if !closeEnoughTol(got[0].T2, 0.5408, 1e-3) {
		t.Fatalf("LineLineIntersections T2 = %v, want 0.5408", got[0].T2)
	}
}

func TestLineLineIntersectionsParallel(t *testing.T) {
	got := LineLineIntersections(
		geom.PtXy(0, 0), geom.PtXy(10, 10),
		geom.PtXy(0, 5), geom.PtXy(10, 15),
	)
	if len(got) != 0 {
		t.Fatalf("LineLineIntersections(parallel) = %v, want none", got)
	}
}

func TestLineLineIntersectionsVerticalFirst(t *testing.T) {
	got := LineLineIntersections(
		geom.PtXy(5, 0), geom.PtXy(5, 10),
		geom.PtXy(0, 5), geom.PtXy(10, 5),
	)
	if len(got) != 1 {
		t.Fatalf("LineLineIntersections(vertical) = %d results, want 1", len(got))
	}
	want := geom.PtXy(5, 5)
	if !geom.IsEqualPair(got[0].Pt, want) {
		t.Fatalf("LineLineIntersections(vertical) pt = %v, want %v", got[0].Pt, want)
	}
}

func TestCurveLineIntersections(t *testing.T) {
	cubic := Cubic{
		geom.PtXy(100, 240), geom.PtXy(30, 60),
		geom.PtXy(210, 230), geom.PtXy(160, 30),
	}
	line := Line{geom.PtXy(25, 260), geom.PtXy(230, 20)}

	got, err := CurveLineIntersections(cubic, line)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("CurveLineIntersections = %d results, want 3", len(got))
	}
	want := geom.PtXy(84.9001, 189.8731)
	if !closeEnoughTol(float64(got[0].Pt.X()), float64(want.X()), 1e-2) ||
		!closeEnoughTol(float64(got[0].Pt.Y()), float64(want.Y()), 1e-2) {
		t.Fatalf("CurveLineIntersections first pt = %v, want %v", got[0].Pt, want)
	}
}

func TestCurveCurveIntersections(t *testing.T) {
	c1 := Cubic{
		geom.PtXy(10, 100), geom.PtXy(90, 30),
		geom.PtXy(40, 140), geom.PtXy(220, 220),
	}
	c2 := Cubic{
		geom.PtXy(5, 150), geom.PtXy(180, 20),
		geom.PtXy(80, 250), geom.PtXy(210, 190),
	}

	got, err := CurveCurveIntersections(c1, c2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("CurveCurveIntersections = %d results, want 3", len(got))
	}
	want := geom.PtXy(81.7831, 109.8890)
	found := false
	for _, in := range got {
		if closeEnoughTol(float64(in.Pt.X()), float64(want.X()), 1.0) &&
			closeEnoughTol(float64(in.Pt.Y()), float64(want.Y()), 1.0) {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("CurveCurveIntersections = %v, want one result near %v", got, want)
	}
}

func TestSegmentSegmentIntersectionsDispatch(t *testing.T) {
	line1 := Line{geom.PtXy(0, 0), geom.PtXy(10, 10)}
	line2 := Line{geom.PtXy(0, 10), geom.PtXy(10, 0)}
	got, err := SegmentSegmentIntersections(line1, line2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("SegmentSegmentIntersections(line, line) = %d results, want 1", len(got))
	}
	if want := geom.PtXy(5, 5); !geom.IsEqualPair(got[0].Pt, want) {
		t.Fatalf("SegmentSegmentIntersections pt = %v, want %v", got[0].Pt, want)
	}
}

func closeEnoughTol(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < tol
}
