package tile

import (
	"fmt"

	"github.com/eak1mov/go-cornerstitch/geom"
)

// splitAt resolves line against t into an orientation and a coordinate
// strictly inside t. A point splits wide tiles vertically and others
// horizontally.
func (p *Plane[D]) splitAt(t *Tile[D], line geom.Line) (geom.Orient, float64, bool) {
	l := p.grid.SnapLine(line)
	r := t.region
	orient := l.Orient()
	if orient == geom.OrientUndefined {
		if !l.IsPoint() {
			return geom.OrientUndefined, 0, false
		}
		orient = geom.Horizontal
		if r.Aspect() == geom.AspectWide {
			orient = geom.Vertical
		}
	}

	b := l.Bounds()
	switch orient {
	case geom.Horizontal:
		crosses := (b.X1 == b.X2 && r.X1 <= b.X1 && b.X1 <= r.X2) || (b.X1 < r.X2 && r.X1 < b.X2)
		return orient, l.Y1, crosses && r.Y1 < l.Y1 && l.Y1 < r.Y2
	default:
		crosses := (b.Y1 == b.Y2 && r.Y1 <= b.Y1 && b.Y1 <= r.Y2) || (b.Y1 < r.Y2 && r.Y1 < b.Y2)
		return orient, l.X1, crosses && r.X1 < l.X1 && l.X1 < r.X2
	}
}

// IsSplitable reports whether line cuts t into two non-empty tiles.
func (p *Plane[D]) IsSplitable(t *Tile[D], line geom.Line) bool {
	_, _, ok := p.splitAt(t, line)
	return ok
}

// Split cuts t along line. A horizontal line yields the lower and upper
// parts, a vertical line the left and right parts; t remains the first one.
// Both parts keep t's mode and data.
//
// Splitting a CLEAR tile leaves the CLEAR area outside its strip form until
// the parts are merged back; Add and Delete expect the strip form.
func (p *Plane[D]) Split(t *Tile[D], line geom.Line) (*Tile[D], *Tile[D], error) {
	orient, v, ok := p.splitAt(t, line)
	if !ok {
		return nil, nil, p.report("Split", fmt.Errorf("%w: %v by %v", ErrNotSplitable, t.region, line), t.region)
	}
	if orient == geom.Horizontal {
		return t, p.splitY(t, v), nil
	}
	return t, p.splitX(t, v), nil
}

// IsMergable reports whether a and b share a full edge and may form one tile.
func (p *Plane[D]) IsMergable(a, b *Tile[D]) bool {
	_, ok := mergeOrient(a, b)
	return ok && peer(a, b)
}

// Merge joins two mergable tiles. The tile ordered first, left or lower,
// survives and is returned; the other is released.
func (p *Plane[D]) Merge(a, b *Tile[D]) (*Tile[D], error) {
	orient, ok := mergeOrient(a, b)
	if !ok || !peer(a, b) {
		return nil, p.report("Merge", fmt.Errorf("%w: %v and %v", ErrNotMergable, a, b), a.region, b.region)
	}
	if b.IsLessThan(a.region, orient) {
		a, b = b, a
	}
	if orient == geom.Horizontal {
		p.mergeX(a, b)
	} else {
		p.mergeY(a, b)
	}
	return a, nil
}

// IsAdjacent reports whether a and b share an edge segment.
func (p *Plane[D]) IsAdjacent(a, b *Tile[D]) bool {
	return a.region.IsAdjacent(b.region)
}

// mergeOrient returns Horizontal when a and b sit side by side with equal
// heights and Vertical when they are stacked with equal widths.
func mergeOrient[D comparable](a, b *Tile[D]) (geom.Orient, bool) {
	ra, rb := a.region, b.region
	switch {
	case ra.Y1 == rb.Y1 && ra.Y2 == rb.Y2 && (ra.X2 == rb.X1 || rb.X2 == ra.X1):
		return geom.Horizontal, true
	case ra.X1 == rb.X1 && ra.X2 == rb.X2 && (ra.Y2 == rb.Y1 || rb.Y2 == ra.Y1):
		return geom.Vertical, true
	}
	return geom.OrientUndefined, false
}
