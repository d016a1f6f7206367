package tile

import (
	"slices"

	"github.com/eak1mov/go-cornerstitch/geom"
)

// splitY cuts t at the horizontal line y, Y1 < y < Y2. t keeps the lower part;
// the upper part is returned as a new tile with the same mode and data.
func (p *Plane[D]) splitY(t *Tile[D], y float64) *Tile[D] {
	n := p.tiles.alloc()
	n.mode = t.mode
	n.data = slices.Clone(t.data)
	n.region = t.region
	n.region.Y1 = y
	n.lo = t.id
	n.ru = t.ru
	n.ur = t.ur

	ll := p.at(t.ll)
	for ll != nil && ll.region.Y2 <= y {
		ll = p.at(ll.ru)
	}
	n.ll = idOf(ll)

	// Upper neighbors, right to left.
	for o := p.at(n.ru); o != nil && o.region.X2 > n.region.X1; o = p.at(o.ll) {
		if o.lo == t.id {
			o.lo = n.id
		}
	}
	// Right neighbors starting at or above y, top to bottom.
	for o := p.at(n.ur); o != nil && o.region.Y1 >= y; o = p.at(o.lo) {
		o.ll = n.id
	}
	// Left neighbors ending inside n, bottom to top.
	for o := p.at(n.ll); o != nil && o.region.Y1 < n.region.Y2; o = p.at(o.ru) {
		if o.ur == t.id {
			o.ur = n.id
		}
	}

	ur := p.at(n.ur)
	for ur != nil && ur.region.Y1 >= y {
		ur = p.at(ur.lo)
	}
	t.region.Y2 = y
	t.ru = n.id
	t.ur = idOf(ur)
	return n
}

// splitX cuts t at the vertical line x, X1 < x < X2. t keeps the left part;
// the right part is returned as a new tile with the same mode and data.
func (p *Plane[D]) splitX(t *Tile[D], x float64) *Tile[D] {
	n := p.tiles.alloc()
	n.mode = t.mode
	n.data = slices.Clone(t.data)
	n.region = t.region
	n.region.X1 = x
	n.ll = t.id
	n.ur = t.ur
	n.ru = t.ru

	lo := p.at(t.lo)
	for lo != nil && lo.region.X2 <= x {
		lo = p.at(lo.ur)
	}
	n.lo = idOf(lo)

	// Right neighbors, top to bottom.
	for o := p.at(n.ur); o != nil && o.region.Y2 > n.region.Y1; o = p.at(o.lo) {
		if o.ll == t.id {
			o.ll = n.id
		}
	}
	// Upper neighbors starting at or right of x, right to left.
	for o := p.at(n.ru); o != nil && o.region.X1 >= x; o = p.at(o.ll) {
		o.lo = n.id
	}
	// Lower neighbors ending inside n, left to right.
	for o := p.at(n.lo); o != nil && o.region.X1 < n.region.X2; o = p.at(o.ur) {
		if o.ru == t.id {
			o.ru = n.id
		}
	}

	ru := p.at(n.ru)
	for ru != nil && ru.region.X1 >= x {
		ru = p.at(ru.ll)
	}
	t.region.X2 = x
	t.ur = n.id
	t.ru = idOf(ru)
	return n
}

// mergeY joins upper into lower. Both must share X1 and X2 and touch at
// lower.Y2. upper is released.
func (p *Plane[D]) mergeY(lower, upper *Tile[D]) {
	for o := p.at(upper.ru); o != nil && o.region.X2 > upper.region.X1; o = p.at(o.ll) {
		if o.lo == upper.id {
			o.lo = lower.id
		}
	}
	for o := p.at(upper.ur); o != nil && o.region.Y2 > upper.region.Y1; o = p.at(o.lo) {
		if o.ll == upper.id {
			o.ll = lower.id
		}
	}
	for o := p.at(upper.ll); o != nil && o.region.Y1 < upper.region.Y2; o = p.at(o.ru) {
		if o.ur == upper.id {
			o.ur = lower.id
		}
	}

	lower.region.Y2 = upper.region.Y2
	lower.ru = upper.ru
	lower.ur = upper.ur
	p.deallocate(upper, lower)
}

// mergeX joins right into left. Both must share Y1 and Y2 and touch at
// left.X2. right is released.
func (p *Plane[D]) mergeX(left, right *Tile[D]) {
	for o := p.at(right.ru); o != nil && o.region.X2 > right.region.X1; o = p.at(o.ll) {
		if o.lo == right.id {
			o.lo = left.id
		}
	}
	for o := p.at(right.ur); o != nil && o.region.Y2 > right.region.Y1; o = p.at(o.lo) {
		if o.ll == right.id {
			o.ll = left.id
		}
	}
	for o := p.at(right.lo); o != nil && o.region.X1 < right.region.X2; o = p.at(o.ur) {
		if o.ru == right.id {
			o.ru = left.id
		}
	}

	left.region.X2 = right.region.X2
	left.ur = right.ur
	left.ru = right.ru
	p.deallocate(right, left)
}

// peer reports whether a and b may share one tile: same mode, and for SOLID
// tiles the same data set.
func peer[D comparable](a, b *Tile[D]) bool {
	if a.mode != b.mode || a.mode == ModeUndefined {
		return false
	}
	return a.mode == ModeClear || equalData(a.data, b.data)
}

// mergeClearVertical joins t with CLEAR tiles of the same horizontal extent
// directly below and above it and returns the surviving tile.
func (p *Plane[D]) mergeClearVertical(t *Tile[D]) *Tile[D] {
	for {
		r := t.region
		if o := p.at(t.lo); o != nil && o.mode == ModeClear && o.region.X1 == r.X1 && o.region.X2 == r.X2 {
			p.mergeY(o, t)
			t = o
			continue
		}
		if o := p.at(t.ru); o != nil && o.mode == ModeClear && o.region.X1 == r.X1 && o.region.X2 == r.X2 {
			p.mergeY(t, o)
			continue
		}
		return t
	}
}

// mergeSolid joins the SOLID tile t with SOLID neighbors carrying the same
// data and sharing a full edge, until none is left. It returns the survivor.
func (p *Plane[D]) mergeSolid(t *Tile[D]) *Tile[D] {
	for {
		r := t.region
		if o := p.at(t.ll); o != nil && peer(t, o) && o.region.Y1 == r.Y1 && o.region.Y2 == r.Y2 {
			p.mergeX(o, t)
			t = o
			continue
		}
		if o := p.at(t.ur); o != nil && peer(t, o) && o.region.Y1 == r.Y1 && o.region.Y2 == r.Y2 {
			p.mergeX(t, o)
			continue
		}
		if o := p.at(t.lo); o != nil && peer(t, o) && o.region.X1 == r.X1 && o.region.X2 == r.X2 {
			p.mergeY(o, t)
			t = o
			continue
		}
		if o := p.at(t.ru); o != nil && peer(t, o) && o.region.X1 == r.X1 && o.region.X2 == r.X2 {
			p.mergeY(t, o)
			continue
		}
		return t
	}
}

// mergeSolidCorners joins t with taller same-data neighbors on its left and
// right that share its bottom or top edge, cutting the neighbor to t's
// height first. SOLID areas thereby grow into horizontal strips.
func (p *Plane[D]) mergeSolidCorners(t *Tile[D]) *Tile[D] {
	t = p.mergeSolid(t)
	r := t.region

	if o := p.at(t.ll); o != nil && peer(t, o) && o.region.Y1 == r.Y1 && o.region.Y2 > r.Y2 {
		p.splitY(o, r.Y2)
		p.mergeX(o, t)
		t = o
	} else {
		o := p.at(t.ll)
		for o != nil && o.region.Y2 < r.Y2 {
			o = p.at(o.ru)
		}
		if o != nil && peer(t, o) && o.region.Y2 == r.Y2 && o.region.Y1 < r.Y1 {
			upper := p.splitY(o, r.Y1)
			p.mergeX(upper, t)
			t = upper
		}
	}

	o := p.at(t.ur)
	for o != nil && o.region.Y1 > r.Y1 {
		o = p.at(o.lo)
	}
	if o != nil && peer(t, o) && o.region.Y1 == r.Y1 && o.region.Y2 > r.Y2 {
		p.splitY(o, r.Y2)
		p.mergeX(t, o)
	} else if o := p.at(t.ur); o != nil && peer(t, o) && o.region.Y2 == r.Y2 && o.region.Y1 < r.Y1 {
		upper := p.splitY(o, r.Y1)
		p.mergeX(t, upper)
	}

	return p.mergeSolid(t)
}

// clip cuts the SOLID tile t down to r, r within t, and returns the piece
// covering r together with the cut-off remainders.
func (p *Plane[D]) clip(t *Tile[D], r geom.Region) (*Tile[D], []*Tile[D]) {
	var rest []*Tile[D]
	if r.Y1 > t.region.Y1 {
		rest = append(rest, t)
		t = p.splitY(t, r.Y1)
	}
	if r.Y2 < t.region.Y2 {
		rest = append(rest, p.splitY(t, r.Y2))
	}
	if r.X1 > t.region.X1 {
		rest = append(rest, t)
		t = p.splitX(t, r.X1)
	}
	if r.X2 < t.region.X2 {
		rest = append(rest, p.splitX(t, r.X2))
	}
	return t, rest
}

// remergeSolid merges the still live SOLID tiles of ts with their neighbors.
func (p *Plane[D]) remergeSolid(ts []*Tile[D]) {
	for _, t := range ts {
		if t.mode == ModeSolid {
			p.mergeSolid(t)
		}
	}
}
