// Package geom provides the axis-aligned geometry used by the tile plane.
package geom

import (
	"fmt"
	"math"
)

// Point is a location in the plane.
type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Region is an axis-aligned rectangle with X1 <= X2 and Y1 <= Y2.
type Region struct {
	X1 float64
	Y1 float64
	X2 float64
	Y2 float64
}

// NewRegion returns the region spanned by two corners given in any order.
func NewRegion(x1, y1, x2, y2 float64) Region {
	return Region{
		X1: math.Min(x1, x2),
		Y1: math.Min(y1, y2),
		X2: math.Max(x1, x2),
		Y2: math.Max(y1, y2),
	}
}

func (r Region) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", r.X1, r.Y1, r.X2, r.Y2)
}

func (r Region) Width() float64  { return r.X2 - r.X1 }
func (r Region) Height() float64 { return r.Y2 - r.Y1 }
func (r Region) Area() float64   { return r.Width() * r.Height() }

func (r Region) LowerLeft() Point  { return Point{r.X1, r.Y1} }
func (r Region) UpperRight() Point { return Point{r.X2, r.Y2} }

func (r Region) Center() Point {
	return Point{(r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2}
}

// IsValid reports whether r is ordered and has a positive area.
func (r Region) IsValid() bool {
	return r.X1 < r.X2 && r.Y1 < r.Y2
}

// IsDegenerate reports whether r is ordered but has zero area (a line or a point).
func (r Region) IsDegenerate() bool {
	return r.X1 <= r.X2 && r.Y1 <= r.Y2 && (r.X1 == r.X2 || r.Y1 == r.Y2)
}

// Contains reports whether p lies inside r or on its boundary.
func (r Region) Contains(p Point) bool {
	return r.X1 <= p.X && p.X <= r.X2 && r.Y1 <= p.Y && p.Y <= r.Y2
}

// IsWithin reports whether r lies completely inside o (boundaries may coincide).
func (r Region) IsWithin(o Region) bool {
	return o.X1 <= r.X1 && r.X2 <= o.X2 && o.Y1 <= r.Y1 && r.Y2 <= o.Y2
}

// IsIntersecting reports whether r and o overlap with a positive area.
func (r Region) IsIntersecting(o Region) bool {
	return r.X1 < o.X2 && o.X1 < r.X2 && r.Y1 < o.Y2 && o.Y1 < r.Y2
}

// IsTouching reports whether r and o share at least one point.
func (r Region) IsTouching(o Region) bool {
	return r.X1 <= o.X2 && o.X1 <= r.X2 && r.Y1 <= o.Y2 && o.Y1 <= r.Y2
}

// IsAdjacent reports whether r and o share an edge segment of positive length
// without overlapping.
func (r Region) IsAdjacent(o Region) bool {
	if r.X2 == o.X1 || o.X2 == r.X1 {
		return r.Y1 < o.Y2 && o.Y1 < r.Y2
	}
	if r.Y2 == o.Y1 || o.Y2 == r.Y1 {
		return r.X1 < o.X2 && o.X1 < r.X2
	}
	return false
}

// Intersect returns the common part of r and o. The result is not valid when
// the regions do not intersect.
func (r Region) Intersect(o Region) Region {
	return Region{
		X1: math.Max(r.X1, o.X1),
		Y1: math.Max(r.Y1, o.Y1),
		X2: math.Min(r.X2, o.X2),
		Y2: math.Min(r.Y2, o.Y2),
	}
}

// Union returns the bounding box of r and o.
func (r Region) Union(o Region) Region {
	return Region{
		X1: math.Min(r.X1, o.X1),
		Y1: math.Min(r.Y1, o.Y1),
		X2: math.Max(r.X2, o.X2),
		Y2: math.Max(r.Y2, o.Y2),
	}
}

// Expand grows r by d on every side.
func (r Region) Expand(d float64) Region {
	return Region{r.X1 - d, r.Y1 - d, r.X2 + d, r.Y2 + d}
}

// Difference subtracts o from r and returns the remaining area as at most four
// non-overlapping regions. With Horizontal orientation the full-width strips
// below and above o come first, followed by the pieces left and right of o;
// Vertical does the same with full-height strips. OrientUndefined picks
// horizontal strips for wide regions and vertical strips otherwise.
func (r Region) Difference(o Region, orient Orient) []Region {
	if !r.IsIntersecting(o) {
		return []Region{r}
	}
	i := r.Intersect(o)
	if orient == OrientUndefined {
		orient = Vertical
		if r.Aspect() == AspectWide {
			orient = Horizontal
		}
	}

	result := make([]Region, 0, 4)
	add := func(d Region) {
		if d.IsValid() {
			result = append(result, d)
		}
	}
	if orient == Horizontal {
		add(Region{r.X1, r.Y1, r.X2, i.Y1})
		add(Region{r.X1, i.Y2, r.X2, r.Y2})
		add(Region{r.X1, i.Y1, i.X1, i.Y2})
		add(Region{i.X2, i.Y1, r.X2, i.Y2})
	} else {
		add(Region{r.X1, r.Y1, i.X1, r.Y2})
		add(Region{i.X2, r.Y1, r.X2, r.Y2})
		add(Region{i.X1, r.Y1, i.X2, i.Y1})
		add(Region{i.X1, i.Y2, i.X2, r.Y2})
	}
	return result
}

// Distance returns the Euclidean distance between the closest points of r
// and o, zero when they touch or overlap.
func (r Region) Distance(o Region) float64 {
	dx := math.Max(0, math.Max(o.X1-r.X2, r.X1-o.X2))
	dy := math.Max(0, math.Max(o.Y1-r.Y2, r.Y1-o.Y2))
	return math.Hypot(dx, dy)
}

// DistanceToPoint returns the Euclidean distance from p to the closest point of r.
func (r Region) DistanceToPoint(p Point) float64 {
	return r.Distance(Region{p.X, p.Y, p.X, p.Y})
}

// Compare orders regions along an orientation: Horizontal compares
// (X1, X2, Y1, Y2) lexicographically, Vertical compares (Y1, Y2, X1, X2).
// It returns -1, 0 or +1.
func (r Region) Compare(o Region, orient Orient) int {
	a := [4]float64{r.X1, r.X2, r.Y1, r.Y2}
	b := [4]float64{o.X1, o.X2, o.Y1, o.Y2}
	if orient == Vertical {
		a = [4]float64{r.Y1, r.Y2, r.X1, r.X2}
		b = [4]float64{o.Y1, o.Y2, o.X1, o.X2}
	}
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// Aspect classifies the shape of r.
func (r Region) Aspect() Aspect {
	switch w, h := r.Width(), r.Height(); {
	case w > h:
		return AspectWide
	case h > w:
		return AspectTall
	default:
		return AspectSquare
	}
}
