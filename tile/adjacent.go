package tile

import (
	"slices"

	"github.com/eak1mov/go-cornerstitch/geom"
)

var sides = [...]Side{SideLeft, SideRight, SideLower, SideUpper}

// HasNeighbor reports whether a tile matching mode lies along side of t.
func (p *Plane[D]) HasNeighbor(t *Tile[D], side Side, mode Mode) bool {
	it := p.scratch
	it.InitSide(t, side)
	return it.Next(mode) != nil
}

// HasAdjacents reports whether t shares an edge with a tile of the same mode
// and, for SOLID tiles, the same data.
func (p *Plane[D]) HasAdjacents(t *Tile[D]) bool {
	it := p.scratch
	for _, side := range sides {
		it.InitSide(t, side)
		for n := it.Next(t.mode); n != nil; n = it.Next(t.mode) {
			if peer(t, n) {
				return true
			}
		}
	}
	return false
}

// MergeAdjacents returns the largest rectangle obtained by repeatedly joining
// t's region with a single peer tile covering a whole side. The plane is not
// modified.
func (p *Plane[D]) MergeAdjacents(t *Tile[D]) geom.Region {
	r := t.region
	it := p.scratch
	for grown := true; grown; {
		grown = false
		for _, side := range sides {
			it.InitSideRegion(r, side)
			n := it.Next(ModeAny)
			if n == nil || !peer(t, n) || !coversSide(n.region, r, side) {
				continue
			}
			r = r.Union(n.region)
			grown = true
		}
	}
	return r
}

func coversSide(n, r geom.Region, side Side) bool {
	switch side {
	case SideLeft:
		return n.X2 == r.X1 && n.Y1 == r.Y1 && n.Y2 == r.Y2
	case SideRight:
		return n.X1 == r.X2 && n.Y1 == r.Y1 && n.Y2 == r.Y2
	case SideLower:
		return n.Y2 == r.Y1 && n.X1 == r.X1 && n.X2 == r.X2
	case SideUpper:
		return n.Y1 == r.Y2 && n.X1 == r.X1 && n.X2 == r.X2
	}
	return false
}

// JoinAdjacents collects the connected area of peer tiles around t and
// returns it as rectangles, joining regions pairwise while their union is a
// rectangle. Regions are ordered bottom to top, then left to right.
func (p *Plane[D]) JoinAdjacents(t *Tile[D]) []geom.Region {
	seen := map[TileID]bool{t.id: true}
	queue := []*Tile[D]{t}
	var regions []geom.Region
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		regions = append(regions, u.region)
		for _, side := range sides {
			for n := range p.Neighbors(u, side, t.mode) {
				if !seen[n.id] && peer(t, n) {
					seen[n.id] = true
					queue = append(queue, n)
				}
			}
		}
	}

	for joined := true; joined; {
		joined = false
		for i := 0; i < len(regions) && !joined; i++ {
			for j := i + 1; j < len(regions); j++ {
				if u, ok := joinRegions(regions[i], regions[j]); ok {
					regions[i] = u
					regions = slices.Delete(regions, j, j+1)
					joined = true
					break
				}
			}
		}
	}

	slices.SortFunc(regions, func(a, b geom.Region) int {
		return a.Compare(b, geom.Vertical)
	})
	return regions
}

// joinRegions returns the union of a and b when it is a rectangle made of
// exactly the two.
func joinRegions(a, b geom.Region) (geom.Region, bool) {
	switch {
	case a.Y1 == b.Y1 && a.Y2 == b.Y2 && (a.X2 == b.X1 || b.X2 == a.X1):
		return a.Union(b), true
	case a.X1 == b.X1 && a.X2 == b.X2 && (a.Y2 == b.Y1 || b.Y2 == a.Y1):
		return a.Union(b), true
	}
	return geom.Region{}, false
}
