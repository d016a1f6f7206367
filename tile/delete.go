package tile

import (
	"fmt"
	"slices"

	"github.com/eak1mov/go-cornerstitch/geom"
)

// DeleteMode selects which SOLID area Delete turns CLEAR.
type DeleteMode uint8

const (
	// DeleteExact requires the region to be entirely SOLID and clears
	// exactly the region.
	DeleteExact DeleteMode = iota
	// DeleteAny clears every SOLID tile intersecting the region, including
	// its parts outside the region.
	DeleteAny
	// DeleteClip clears the SOLID parts inside the region and keeps the
	// parts outside it.
	DeleteClip
)

func (m DeleteMode) String() string {
	switch m {
	case DeleteExact:
		return "exact"
	case DeleteAny:
		return "any"
	case DeleteClip:
		return "clip"
	default:
		return fmt.Sprintf("DeleteMode(%d)", uint8(m))
	}
}

// Delete turns SOLID area inside region CLEAR according to mode.
func (p *Plane[D]) Delete(region geom.Region, mode DeleteMode) error {
	r := p.grid.SnapRegion(region)
	if !r.IsValid() {
		return p.report("Delete", fmt.Errorf("%w: %v", ErrInvalidRegion, region), region)
	}
	if !r.IsWithin(p.region) {
		if mode == DeleteExact || !r.IsIntersecting(p.region) {
			return p.report("Delete", fmt.Errorf("%w: %v", ErrOutOfBounds, r), r, p.region)
		}
		r = r.Intersect(p.region)
	}

	switch mode {
	case DeleteExact:
		if !p.IsSolid(r, QueryAll) {
			return p.report("Delete", fmt.Errorf("%w: %v", ErrNotFound, r), r)
		}
		p.deleteClip(r)
	case DeleteAny:
		for _, t := range p.collect(r, ModeSolid) {
			p.deleteTile(t)
		}
	case DeleteClip:
		p.deleteClip(r)
	default:
		return p.report("Delete", fmt.Errorf("%w: %v", ErrInvalidMode, mode), r)
	}
	return nil
}

// DeleteData removes d from every SOLID tile inside region. Tile parts
// outside region keep d. Parts left without data turn CLEAR.
func (p *Plane[D]) DeleteData(region geom.Region, d D) error {
	r := p.grid.SnapRegion(region)
	if !r.IsValid() {
		return p.report("DeleteData", fmt.Errorf("%w: %v", ErrInvalidRegion, region), region)
	}
	if !r.IsIntersecting(p.region) {
		return p.report("DeleteData", fmt.Errorf("%w: %v", ErrOutOfBounds, r), r, p.region)
	}
	r = r.Intersect(p.region)

	var dead, changed, rest []*Tile[D]
	for _, t := range p.collect(r, ModeSolid) {
		if !slices.Contains(t.data, d) {
			continue
		}
		piece, remainders := p.clip(t, r.Intersect(t.region))
		rest = append(rest, remainders...)
		piece.DeleteData(d)
		if len(piece.data) == 0 {
			dead = append(dead, piece)
		} else {
			changed = append(changed, piece)
		}
	}
	for _, t := range dead {
		p.deleteTile(t)
	}
	p.remergeSolid(changed)
	p.remergeSolid(rest)
	return nil
}

// deleteClip clears the SOLID area inside r.
func (p *Plane[D]) deleteClip(r geom.Region) {
	var dead, rest []*Tile[D]
	for _, t := range p.collect(r, ModeSolid) {
		piece, remainders := p.clip(t, r.Intersect(t.region))
		dead = append(dead, piece)
		rest = append(rest, remainders...)
	}
	for _, t := range dead {
		p.deleteTile(t)
	}
	p.remergeSolid(rest)
}

// deleteTile turns the SOLID tile t CLEAR and restores the strip form of the
// CLEAR area around it.
//
// CLEAR neighbors on the left and right are cut to t's height, then t and
// those neighbors are cut at every horizontal edge found on either side.
// Each resulting row is merged horizontally with its CLEAR side pieces and
// finally the rows are merged vertically where their extents agree.
func (p *Plane[D]) deleteTile(t *Tile[D]) {
	t.MakeClear()
	p.repoint(t, nil)
	r := t.region

	for _, side := range [...]Side{SideLeft, SideRight} {
		for _, n := range p.sideTiles(t, side, ModeClear) {
			if n.region.Y1 < r.Y1 {
				n = p.splitY(n, r.Y1)
			}
			if n.region.Y2 > r.Y2 {
				p.splitY(n, r.Y2)
			}
		}
	}

	var cuts []float64
	for _, side := range [...]Side{SideLeft, SideRight} {
		for _, n := range p.sideTiles(t, side, ModeClear) {
			for _, y := range [...]float64{n.region.Y1, n.region.Y2} {
				if y > r.Y1 && y < r.Y2 {
					cuts = append(cuts, y)
				}
			}
		}
	}
	slices.Sort(cuts)
	cuts = slices.Compact(cuts)

	for _, side := range [...]Side{SideLeft, SideRight} {
		for _, n := range p.sideTiles(t, side, ModeClear) {
			for _, y := range cuts {
				if y > n.region.Y1 && y < n.region.Y2 {
					n = p.splitY(n, y)
				}
			}
		}
	}

	rows := []*Tile[D]{t}
	for _, y := range cuts {
		rows = append(rows, p.splitY(rows[len(rows)-1], y))
	}

	for i, row := range rows {
		if o := p.at(row.ll); o != nil && o.mode == ModeClear && o.region.Y1 == row.region.Y1 && o.region.Y2 == row.region.Y2 {
			p.mergeX(o, row)
			row = o
		}
		if o := p.at(row.ur); o != nil && o.mode == ModeClear && o.region.Y1 == row.region.Y1 && o.region.Y2 == row.region.Y2 {
			p.mergeX(row, o)
		}
		rows[i] = row
	}
	for _, row := range rows {
		if row.mode == ModeClear {
			p.mergeClearVertical(row)
		}
	}
}

// sideTiles collects the neighbors of t along side whose mode matches mode.
func (p *Plane[D]) sideTiles(t *Tile[D], side Side, mode Mode) []*Tile[D] {
	var result []*Tile[D]
	it := p.scratch
	it.InitSide(t, side)
	for n := it.Next(mode); n != nil; n = it.Next(mode) {
		result = append(result, n)
	}
	return result
}
