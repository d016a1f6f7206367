package tile

import (
	"fmt"

	"github.com/eak1mov/go-cornerstitch/geom"
)

// AddMode selects how Add treats SOLID tiles already in the target region.
type AddMode uint8

const (
	// AddNew fails with ErrExists unless the region is entirely CLEAR.
	AddNew AddMode = iota
	// AddMerge accepts SOLID tiles carrying exactly the new data and fills the
	// rest; any other SOLID tile fails the call with ErrConflict.
	AddMerge
	// AddOverlap adds the new data to every SOLID tile in the region and
	// fills the CLEAR parts with the new data alone.
	AddOverlap
	// AddDifference fills only the CLEAR parts of the region and leaves
	// existing SOLID tiles untouched.
	AddDifference
)

func (m AddMode) String() string {
	switch m {
	case AddNew:
		return "new"
	case AddMerge:
		return "merge"
	case AddOverlap:
		return "overlap"
	case AddDifference:
		return "difference"
	default:
		return fmt.Sprintf("AddMode(%d)", uint8(m))
	}
}

// Add makes region SOLID with data according to mode. SOLID tiles with equal
// data that end up sharing a full edge are merged.
func (p *Plane[D]) Add(region geom.Region, mode AddMode, data ...D) error {
	r := p.grid.SnapRegion(region)
	if !r.IsValid() {
		return p.report("Add", fmt.Errorf("%w: %v", ErrInvalidRegion, region), region)
	}
	if !r.IsWithin(p.region) {
		return p.report("Add", fmt.Errorf("%w: %v", ErrOutOfBounds, r), r, p.region)
	}

	switch mode {
	case AddNew:
		if p.IsSolid(r, QueryAny) {
			return p.report("Add", fmt.Errorf("%w: %v", ErrExists, r), r)
		}
		p.addRegion(r, data)
	case AddMerge:
		if p.IsSolidNot(r, data...) {
			return p.report("Add", fmt.Errorf("%w: %v", ErrConflict, r), r)
		}
		if !p.IsSolid(r, QueryAll, data...) {
			p.addFill(r, data)
		}
	case AddOverlap:
		p.addOverlap(r, data)
	case AddDifference:
		p.addFill(r, data)
	default:
		return p.report("Add", fmt.Errorf("%w: %v", ErrInvalidMode, mode), r)
	}
	return nil
}

// addFill makes the CLEAR parts of r SOLID with data. It peels off the
// largest SOLID tile inside r and recurses into the remaining strips.
func (p *Plane[D]) addFill(r geom.Region, data []D) {
	s := p.findMax(r, ModeSolid)
	if s == nil {
		p.addRegion(r, data)
		return
	}
	for _, d := range r.Difference(s.region, geom.OrientUndefined) {
		p.addFill(d, data)
	}
}

// addOverlap adds data to the SOLID parts of r and fills its CLEAR parts.
func (p *Plane[D]) addOverlap(r geom.Region, data []D) {
	s := p.findMax(r, ModeSolid)
	if s == nil {
		p.addRegion(r, data)
		return
	}
	i := r.Intersect(s.region)
	if union := unionData(s.data, data); !equalData(union, s.data) {
		piece, rest := p.clip(s, i)
		piece.data = union
		p.mergeSolidCorners(piece)
		p.remergeSolid(rest)
	}
	for _, d := range r.Difference(i, geom.OrientUndefined) {
		p.addOverlap(d, data)
	}
}

// addRegion turns the entirely CLEAR region r into one SOLID tile carrying
// data and returns the tile after merging it with its neighbors.
//
// The CLEAR strips crossing r are cut at r's top and bottom edges and then
// row by row at its left and right edges. The middle pieces are stacked into
// a single tile; the side remainders are merged back vertically.
func (p *Plane[D]) addRegion(r geom.Region, data []D) *Tile[D] {
	top := p.locate(p.seed(nil, geom.Point{X: r.X1, Y: r.Y2}), geom.Point{X: r.X1, Y: r.Y2}, dirForward, dirBackward)
	if top.region.Y2 > r.Y2 {
		p.splitY(top, r.Y2)
	}
	bottom := p.locate(top, r.LowerLeft(), dirForward, dirForward)
	if bottom.region.Y1 < r.Y1 {
		bottom = p.splitY(bottom, r.Y1)
	}

	var solid *Tile[D]
	var sides []*Tile[D]
	row := p.locate(bottom, geom.Point{X: r.X1, Y: r.Y2}, dirForward, dirBackward)
	for {
		mid := row
		if mid.region.X1 < r.X1 {
			mid = p.splitX(row, r.X1)
			sides = append(sides, row)
		}
		if mid.region.X2 > r.X2 {
			sides = append(sides, p.splitX(mid, r.X2))
		}
		if solid != nil {
			p.mergeY(mid, solid)
		}
		solid = mid
		if solid.region.Y1 <= r.Y1 {
			break
		}
		row = p.at(solid.lo)
	}

	for _, t := range sides {
		if t.mode == ModeClear {
			p.mergeClearVertical(t)
		}
	}

	solid.MakeSolid(data...)
	p.repoint(solid, nil)
	p.mostRecentSolid = solid.id
	return p.mergeSolidCorners(solid)
}
