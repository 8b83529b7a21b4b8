package bezier

import (
	"testing"

	"github.com/ibd1279/bezierkit/geom"
)

func TestCalcQuadraticBounds(t *testing.T) {
	got := CalcQuadraticBounds(geom.PtXy(0, 0), geom.PtXy(50, 100), geom.PtXy(100, 0))
	want := Bounds{XMin: 0, YMin: 0, XMax: 100, YMax: 50}
	if !boundsClose(got, want) {
		t.Fatalf("CalcQuadraticBounds = %+v, want %+v", got, want)
	}
}

func TestCalcCubicBounds(t *testing.T) {
	got := CalcCubicBounds(geom.PtXy(0, 0), geom.PtXy(25, 100), geom.PtXy(75, 100), geom.PtXy(100, 0))
	want := Bounds{XMin: 0, YMin: 0, XMax: 100, YMax: 75}
	if !boundsClose(got, want) {
		t.Fatalf("CalcCubicBounds = %+v, want %+v", got, want)
	}
}

func TestBoundsIntersects(t *testing.T) {
	a := Bounds{XMin: 0, YMin: 0, XMax: 10, YMax: 10}
	b := Bounds{XMin: 5, YMin: 5, XMax: 15, YMax: 15}
	c := Bounds{XMin: 20, YMin: 20, XMax: 30, YMax: 30}
	if !a.Intersects(b) {
		t.Fatal("expected a and b to intersect")
	}
	if a.Intersects(c) {
		t.Fatal("expected a and c not to intersect")
	}
}

func TestBoundsArea(t *testing.T) {
	b := Bounds{XMin: 0, YMin: 0, XMax: 4, YMax: 5}
	if got := b.Area(); got != 20 {
		t.Fatalf("Area() = %v, want 20", got)
	}
}

func boundsClose(a, b Bounds) bool {
	return closeEnough(float64(a.XMin), float64(b.XMin)) &&
		closeEnough(float64(a.YMin), float64(b.YMin)) &&
		closeEnough(float64(a.XMax), float64(b.XMax)) &&
		closeEnough(float64(a.YMax), float64(b.YMax))
}
