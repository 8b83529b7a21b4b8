package bezier

import (
	"testing"

	"github.com/ibd1279/bezierkit/geom"
)

func TestSplitQuadraticAtT(t *testing.T) {
	p0, p1, p2 := geom.PtXy(0, 0), geom.PtXy(50, 100), geom.PtXy(100, 0)
	segs := SplitQuadraticAtT(p0, p1, p2, 0.5)
	if len(segs) != 2 {
		t.Fatalf("SplitQuadraticAtT(0.5) returned %d segments, want 2", len(segs))
	}
	if !geom.IsEqualPair(segs[0][0], p0) {
		t.Fatalf("first segment does not start at p0: %v", segs[0][0])
	}
	if !geom.IsEqualPair(segs[1][2], p2) {
		t.Fatalf("second segment does not end at p2: %v", segs[1][2])
	}
	mid, err := SegmentPointAtT(Quadratic{p0, p1, p2}, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if !geom.IsEqualPair(segs[0][2], mid) {
		t.Fatalf("split point mismatch: %v vs %v", segs[0][2], mid)
	}
}

func TestSplitCubicAtTMultiple(t *testing.T) {
	p0, p1, p2, p3 := geom.PtXy(0, 0), geom.PtXy(25, 100), geom.PtXy(75, 100), geom.PtXy(100, 0)
	segs := SplitCubicAtT(p0, p1, p2, p3, 0.25, 0.75)
	if len(segs) != 3 {
		t.Fatalf("SplitCubicAtT(0.25, 0.75) returned %d segments, want 3", len(segs))
	}
	if !geom.IsEqualPair(segs[0][0], p0) {
		t.Fatalf("first segment does not start at p0")
	}
	if !geom.IsEqualPair(segs[2][3], p3) {
		t.Fatalf("last segment does not end at p3")
	}
}

func TestSplitLine(t *testing.T) {
	p0, p1 := geom.PtXy(0, 0), geom.PtXy(10, 10)
	segs := SplitLine(p0, p1, 5, false)
	if len(segs) != 2 {
		t.Fatalf("SplitLine = %d segments, want 2", len(segs))
	}
	want := geom.PtXy(5, 5)
	if !geom.IsEqualPair(segs[0][1], want) {
		t.Fatalf("split point = %v, want %v", segs[0][1], want)
	}
}

func TestSplitLineNoCrossingReturnsOriginal(t *testing.T) {
	p0, p1 := geom.PtXy(0, 0), geom.PtXy(10, 10)
	segs := SplitLine(p0, p1, 50, false)
	if len(segs) != 1 {
		t.Fatalf("SplitLine(no crossing) = %d segments, want 1", len(segs))
	}
}

func TestSplitQuadraticAtCoord(t *testing.T) {
	p0, p1, p2 := geom.PtXy(0, 0), geom.PtXy(50, 100), geom.PtXy(100, 0)
	segs := SplitQuadratic(p0, p1, p2, 25, true)
	if len(segs) != 3 {
		t.Fatalf("SplitQuadratic(y=25) = %d segments, want 3", len(segs))
	}
}

func TestPadTs(t *testing.T) {
	got := padTs([]float64{0.75, 0.25})
	want := []float64{0.0, 0.25, 0.75, 1.0}
	if len(got) != len(want) {
		t.Fatalf("padTs = %v, want %v", got, want)
	}
	for i := range want {
		if !closeEnough(got[i], want[i]) {
			t.Fatalf("padTs = %v, want %v", got, want)
		}
	}
}
