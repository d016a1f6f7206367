package geom

import "math"

// DefaultMinGrid is the grid used when a plane is created without one.
const DefaultMinGrid = 0.001

// Grid snaps coordinates to integer multiples of a minimum grid step. Values
// that snap to the same grid point compare equal afterwards, so touching and
// overlapping can be decided with plain comparisons.
type Grid struct {
	min   float64
	scale float64 // 1/min when that is an integer, zero otherwise
}

// NewGrid returns a grid with the given step. Non-positive steps fall back to
// DefaultMinGrid.
func NewGrid(step float64) Grid {
	if !(step > 0) || math.IsInf(step, 0) {
		step = DefaultMinGrid
	}
	g := Grid{min: step}
	if inv := 1 / step; math.Abs(inv-math.Round(inv)) < 1e-9*inv {
		g.scale = math.Round(inv)
	}
	return g
}

func (g Grid) Min() float64 {
	if g.min == 0 {
		return DefaultMinGrid
	}
	return g.min
}

// Snap rounds v to the nearest grid point.
func (g Grid) Snap(v float64) float64 {
	if g.min == 0 {
		g = NewGrid(DefaultMinGrid)
	}
	if g.scale != 0 {
		return math.Round(v*g.scale) / g.scale
	}
	return math.Round(v/g.min) * g.min
}

func (g Grid) SnapPoint(p Point) Point {
	return Point{g.Snap(p.X), g.Snap(p.Y)}
}

func (g Grid) SnapRegion(r Region) Region {
	return NewRegion(g.Snap(r.X1), g.Snap(r.Y1), g.Snap(r.X2), g.Snap(r.Y2))
}

func (g Grid) SnapLine(l Line) Line {
	return Line{g.Snap(l.X1), g.Snap(l.Y1), g.Snap(l.X2), g.Snap(l.Y2)}
}
