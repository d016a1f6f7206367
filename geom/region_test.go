package geom_test

import (
	"testing"

	"github.com/eak1mov/go-cornerstitch/geom"
	"github.com/google/go-cmp/cmp"
)

func TestRegionPredicates(t *testing.T) {
	a := geom.Region{X1: 0, Y1: 0, X2: 10, Y2: 10}
	for _, tc := range []struct {
		name         string
		b            geom.Region
		intersecting bool
		touching     bool
		adjacent     bool
		within       bool
	}{
		{"same", a, true, true, false, true},
		{"inside", geom.Region{X1: 2, Y1: 2, X2: 5, Y2: 5}, true, true, false, false},
		{"right edge", geom.Region{X1: 10, Y1: 2, X2: 15, Y2: 5}, false, true, true, false},
		{"top edge", geom.Region{X1: -5, Y1: 10, X2: 3, Y2: 12}, false, true, true, false},
		{"corner", geom.Region{X1: 10, Y1: 10, X2: 12, Y2: 12}, false, true, false, false},
		{"apart", geom.Region{X1: 20, Y1: 20, X2: 30, Y2: 30}, false, false, false, false},
		{"overlap", geom.Region{X1: 5, Y1: 5, X2: 15, Y2: 15}, true, true, false, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.IsIntersecting(tc.b); got != tc.intersecting {
				t.Errorf("IsIntersecting(%v) = %v, want = %v", tc.b, got, tc.intersecting)
			}
			if got := a.IsTouching(tc.b); got != tc.touching {
				t.Errorf("IsTouching(%v) = %v, want = %v", tc.b, got, tc.touching)
			}
			if got := a.IsAdjacent(tc.b); got != tc.adjacent {
				t.Errorf("IsAdjacent(%v) = %v, want = %v", tc.b, got, tc.adjacent)
			}
			if got := tc.b.IsWithin(a) && a.IsWithin(tc.b); got != tc.within {
				t.Errorf("mutual IsWithin(%v) = %v, want = %v", tc.b, got, tc.within)
			}
		})
	}
}

func TestRegionDifference(t *testing.T) {
	r := geom.Region{X1: 0, Y1: 0, X2: 10, Y2: 10}
	o := geom.Region{X1: 5, Y1: 5, X2: 15, Y2: 15}

	horizontal := []geom.Region{
		{X1: 0, Y1: 0, X2: 10, Y2: 5},
		{X1: 0, Y1: 5, X2: 5, Y2: 10},
	}
	if diff := cmp.Diff(horizontal, r.Difference(o, geom.Horizontal)); diff != "" {
		t.Errorf("Difference(horizontal) mismatch (-want +got):\n%v", diff)
	}

	vertical := []geom.Region{
		{X1: 0, Y1: 0, X2: 5, Y2: 10},
		{X1: 5, Y1: 0, X2: 10, Y2: 5},
	}
	if diff := cmp.Diff(vertical, r.Difference(o, geom.Vertical)); diff != "" {
		t.Errorf("Difference(vertical) mismatch (-want +got):\n%v", diff)
	}

	inner := geom.Region{X1: 2, Y1: 3, X2: 4, Y2: 6}
	var area float64
	for _, d := range r.Difference(inner, geom.OrientUndefined) {
		if d.IsIntersecting(inner) {
			t.Errorf("difference piece %v overlaps %v", d, inner)
		}
		area += d.Area()
	}
	if got, want := area, r.Area()-inner.Area(); got != want {
		t.Errorf("difference area = %v, want = %v", got, want)
	}

	apart := geom.Region{X1: 20, Y1: 20, X2: 30, Y2: 30}
	if diff := cmp.Diff([]geom.Region{r}, r.Difference(apart, geom.Horizontal)); diff != "" {
		t.Errorf("Difference(apart) mismatch (-want +got):\n%v", diff)
	}
}

func TestRegionDistance(t *testing.T) {
	r := geom.Region{X1: 0, Y1: 0, X2: 10, Y2: 10}
	for _, tc := range []struct {
		o    geom.Region
		want float64
	}{
		{geom.Region{X1: 13, Y1: 0, X2: 20, Y2: 5}, 3},
		{geom.Region{X1: 13, Y1: 14, X2: 20, Y2: 20}, 5},
		{geom.Region{X1: 5, Y1: 5, X2: 20, Y2: 20}, 0},
		{geom.Region{X1: 10, Y1: 10, X2: 20, Y2: 20}, 0},
	} {
		if got := r.Distance(tc.o); got != tc.want {
			t.Errorf("Distance(%v) = %v, want = %v", tc.o, got, tc.want)
		}
	}
	if got, want := r.DistanceToPoint(geom.Point{X: -3, Y: 14}), 5.0; got != want {
		t.Errorf("DistanceToPoint = %v, want = %v", got, want)
	}
}

func TestRegionCompare(t *testing.T) {
	a := geom.Region{X1: 0, Y1: 5, X2: 10, Y2: 10}
	b := geom.Region{X1: 5, Y1: 0, X2: 10, Y2: 5}
	if got := a.Compare(b, geom.Horizontal); got != -1 {
		t.Errorf("Compare(horizontal) = %v, want = -1", got)
	}
	if got := a.Compare(b, geom.Vertical); got != 1 {
		t.Errorf("Compare(vertical) = %v, want = 1", got)
	}
	if got := a.Compare(a, geom.Vertical); got != 0 {
		t.Errorf("Compare(self) = %v, want = 0", got)
	}
}

func TestAspectAndOrient(t *testing.T) {
	if got := (geom.Region{X2: 10, Y2: 2}).Aspect(); got != geom.AspectWide {
		t.Errorf("Aspect = %v, want = wide", got)
	}
	if got := (geom.Region{X2: 2, Y2: 10}).Aspect(); got != geom.AspectTall {
		t.Errorf("Aspect = %v, want = tall", got)
	}
	for _, tc := range []struct {
		line geom.Line
		want geom.Orient
	}{
		{geom.HorizontalLine(0, 10, 5), geom.Horizontal},
		{geom.VerticalLine(5, 0, 10), geom.Vertical},
		{geom.Line{X1: 1, Y1: 1, X2: 1, Y2: 1}, geom.OrientUndefined},
		{geom.Line{X1: 0, Y1: 0, X2: 3, Y2: 4}, geom.OrientUndefined},
	} {
		if got := tc.line.Orient(); got != tc.want {
			t.Errorf("%v.Orient() = %v, want = %v", tc.line, got, tc.want)
		}
	}
}
