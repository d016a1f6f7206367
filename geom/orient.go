package geom

import "fmt"

// Orient is the orientation of a line or of a strip decomposition.
type Orient uint8

const (
	OrientUndefined Orient = iota
	Horizontal
	Vertical
)

func (o Orient) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "undefined"
	}
}

// Alternate returns the perpendicular orientation.
func (o Orient) Alternate() Orient {
	switch o {
	case Horizontal:
		return Vertical
	case Vertical:
		return Horizontal
	default:
		return OrientUndefined
	}
}

// Aspect is the shape class of a region.
type Aspect uint8

const (
	AspectSquare Aspect = iota
	AspectWide
	AspectTall
)

func (a Aspect) String() string {
	switch a {
	case AspectWide:
		return "wide"
	case AspectTall:
		return "tall"
	default:
		return "square"
	}
}

// Line is a segment between two points. Split lines are horizontal or
// vertical; a zero-length line is a point.
type Line struct {
	X1 float64
	Y1 float64
	X2 float64
	Y2 float64
}

// HorizontalLine returns the horizontal line at y spanning [x1, x2].
func HorizontalLine(x1, x2, y float64) Line { return Line{x1, y, x2, y} }

// VerticalLine returns the vertical line at x spanning [y1, y2].
func VerticalLine(x, y1, y2 float64) Line { return Line{x, y1, x, y2} }

func (l Line) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", l.X1, l.Y1, l.X2, l.Y2)
}

// IsPoint reports whether the line has zero length.
func (l Line) IsPoint() bool {
	return l.X1 == l.X2 && l.Y1 == l.Y2
}

// Orient returns Horizontal or Vertical for axis-aligned lines and
// OrientUndefined for points and slanted lines.
func (l Line) Orient() Orient {
	switch {
	case l.IsPoint():
		return OrientUndefined
	case l.Y1 == l.Y2:
		return Horizontal
	case l.X1 == l.X2:
		return Vertical
	default:
		return OrientUndefined
	}
}

// Bounds returns the region spanned by the line's end points.
func (l Line) Bounds() Region {
	return NewRegion(l.X1, l.Y1, l.X2, l.Y2)
}
