package tile

import (
	"fmt"

	"github.com/eak1mov/go-cornerstitch/geom"
)

// Side names an edge of a tile or region.
type Side uint8

const (
	SideUndefined Side = iota
	SideLeft
	SideRight
	SideLower
	SideUpper
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideLower:
		return "lower"
	case SideUpper:
		return "upper"
	default:
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
}

// Iterator enumerates tiles of a plane without allocating per tile.
//
// In region mode it visits every tile intersecting a region exactly once:
// tiles along the region's left edge are taken top to bottom, and from each
// of them a depth-first walk follows right neighbors whose lower-left corner,
// clipped to the region, touches the current tile.
//
// In side mode it walks the neighbors along one edge of a tile or region:
// left neighbors bottom to top, right neighbors top to bottom, lower
// neighbors left to right and upper neighbors right to left.
//
// The plane must not be modified while an iterator is in use.
type Iterator[D comparable] struct {
	plane  *Plane[D]
	region geom.Region
	side   Side
	done   bool

	stack []TileID
	edge  TileID
	next  TileID
}

func NewIterator[D comparable](p *Plane[D]) *Iterator[D] {
	return &Iterator[D]{plane: p, done: true}
}

// InitRegion prepares a walk over the tiles intersecting region.
func (it *Iterator[D]) InitRegion(region geom.Region) {
	p := it.plane
	it.reset()
	it.region = p.grid.SnapRegion(region).Intersect(p.region)
	it.done = !it.region.IsValid() || p.lowerLeft == NoTile
}

// InitSide prepares a walk along the given side of t.
func (it *Iterator[D]) InitSide(t *Tile[D], side Side) {
	it.reset()
	it.side = side
	it.region = t.region
	switch side {
	case SideLeft:
		it.next = t.ll
	case SideRight:
		it.next = t.ur
	case SideLower:
		it.next = t.lo
	case SideUpper:
		it.next = t.ru
	}
	it.done = it.next == NoTile
}

// InitSideRegion prepares a walk over the tiles touching the given side of
// region from outside. region is clipped to the plane.
func (it *Iterator[D]) InitSideRegion(region geom.Region, side Side) {
	p := it.plane
	it.reset()
	it.side = side
	r := p.grid.SnapRegion(region).Intersect(p.region)
	it.region = r
	if r.X1 > r.X2 || r.Y1 > r.Y2 || p.lowerLeft == NoTile {
		return
	}

	b := p.region
	var t *Tile[D]
	switch side {
	case SideLeft:
		if r.X1 > b.X1 && r.Y1 < r.Y2 {
			pt := geom.Point{X: r.X1, Y: r.Y1}
			t = p.locate(p.seed(nil, pt), pt, dirBackward, dirForward)
		}
	case SideRight:
		if r.X2 < b.X2 && r.Y1 < r.Y2 {
			pt := geom.Point{X: r.X2, Y: r.Y2}
			t = p.locate(p.seed(nil, pt), pt, dirForward, dirBackward)
		}
	case SideLower:
		if r.Y1 > b.Y1 && r.X1 < r.X2 {
			pt := geom.Point{X: r.X1, Y: r.Y1}
			t = p.locate(p.seed(nil, pt), pt, dirForward, dirBackward)
		}
	case SideUpper:
		if r.Y2 < b.Y2 && r.X1 < r.X2 {
			pt := geom.Point{X: r.X2, Y: r.Y2}
			t = p.locate(p.seed(nil, pt), pt, dirBackward, dirForward)
		}
	}
	it.next = idOf(t)
	it.done = t == nil
}

func (it *Iterator[D]) reset() {
	it.region = geom.Region{}
	it.side = SideUndefined
	it.done = true
	it.stack = it.stack[:0]
	it.edge = NoTile
	it.next = NoTile
}

// Next returns the next tile whose mode matches mode, or nil when the walk
// is over.
func (it *Iterator[D]) Next(mode Mode) *Tile[D] {
	for {
		var t *Tile[D]
		if it.side == SideUndefined {
			t = it.nextInRegion()
		} else {
			t = it.nextOnSide()
		}
		if t == nil || mode.matches(t.mode) {
			return t
		}
	}
}

func (it *Iterator[D]) nextInRegion() *Tile[D] {
	p := it.plane
	if len(it.stack) == 0 {
		t := it.nextEdge()
		if t == nil {
			return nil
		}
		it.stack = append(it.stack, t.id)
	}

	n := len(it.stack) - 1
	t := p.at(it.stack[n])
	it.stack = it.stack[:n]

	r := it.region
	if t.region.X2 >= r.X2 {
		return t
	}
	o := p.at(t.ur)
	for o != nil && o.region.Y1 >= r.Y2 {
		o = p.at(o.lo)
	}
	for ; o != nil && o.region.Y2 > t.region.Y1 && o.region.Y2 > r.Y1; o = p.at(o.lo) {
		if y := max(o.region.Y1, r.Y1); t.region.Y1 <= y && y < t.region.Y2 {
			it.stack = append(it.stack, o.id)
		}
	}
	return t
}

// nextEdge steps down the tiles crossing the region's left edge.
func (it *Iterator[D]) nextEdge() *Tile[D] {
	if it.done {
		return nil
	}
	p := it.plane
	r := it.region

	var t *Tile[D]
	if it.edge == NoTile {
		pt := geom.Point{X: r.X1, Y: r.Y2}
		t = p.locate(p.seed(nil, pt), pt, dirForward, dirBackward)
	} else {
		prev := p.at(it.edge)
		if prev.region.Y1 <= r.Y1 {
			it.done = true
			return nil
		}
		t = p.at(prev.lo)
		for t.region.X2 <= r.X1 {
			t = p.at(t.ur)
		}
	}
	it.edge = t.id
	return t
}

func (it *Iterator[D]) nextOnSide() *Tile[D] {
	if it.done {
		return nil
	}
	p := it.plane
	r := it.region
	t := p.at(it.next)

	var n *Tile[D]
	switch it.side {
	case SideLeft:
		if t.region.Y1 >= r.Y2 {
			it.done = true
			return nil
		}
		n = p.at(t.ru)
		for n != nil && n.region.X1 >= r.X1 {
			n = p.at(n.ll)
		}
	case SideRight:
		if t.region.Y2 <= r.Y1 {
			it.done = true
			return nil
		}
		n = p.at(t.lo)
		for n != nil && n.region.X2 <= r.X2 {
			n = p.at(n.ur)
		}
	case SideLower:
		if t.region.X1 >= r.X2 {
			it.done = true
			return nil
		}
		n = p.at(t.ur)
		for n != nil && n.region.Y1 >= r.Y1 {
			n = p.at(n.lo)
		}
	case SideUpper:
		if t.region.X2 <= r.X1 {
			it.done = true
			return nil
		}
		n = p.at(t.ll)
		for n != nil && n.region.Y2 <= r.Y2 {
			n = p.at(n.ru)
		}
	}

	it.next = idOf(n)
	it.done = n == nil
	return t
}
