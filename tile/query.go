package tile

import (
	"fmt"
	"math"

	"github.com/eak1mov/go-cornerstitch/geom"
)

// QueryMode selects how a region query combines the tiles it inspects.
type QueryMode uint8

const (
	// QueryMatch requires a single tile whose region equals the query region.
	QueryMatch QueryMode = iota
	// QueryAny requires at least one matching tile intersecting the region.
	QueryAny
	// QueryAll requires every tile intersecting the region to match.
	QueryAll
	// QueryMax requires the region to lie within a single matching tile.
	QueryMax
)

func (m QueryMode) String() string {
	switch m {
	case QueryMatch:
		return "match"
	case QueryAny:
		return "any"
	case QueryAll:
		return "all"
	case QueryMax:
		return "max"
	default:
		return fmt.Sprintf("QueryMode(%d)", uint8(m))
	}
}

// IsClear reports whether region is CLEAR according to mode.
func (p *Plane[D]) IsClear(region geom.Region, mode QueryMode) bool {
	return p.query(region, mode, func(t *Tile[D]) bool {
		return t.mode == ModeClear
	})
}

// IsSolid reports whether region is SOLID according to mode. With data given,
// matching tiles must carry exactly that data set.
func (p *Plane[D]) IsSolid(region geom.Region, mode QueryMode, data ...D) bool {
	return p.query(region, mode, func(t *Tile[D]) bool {
		return t.mode == ModeSolid && (len(data) == 0 || equalData(t.data, data))
	})
}

// IsSolidNot reports whether a SOLID tile intersecting region carries a data
// set other than data.
func (p *Plane[D]) IsSolidNot(region geom.Region, data ...D) bool {
	return p.query(region, QueryAny, func(t *Tile[D]) bool {
		return t.mode == ModeSolid && !equalData(t.data, data)
	})
}

// IsIntersecting reports whether any SOLID tile intersects region.
func (p *Plane[D]) IsIntersecting(region geom.Region) bool {
	return p.IsSolid(region, QueryAny)
}

// IsWithin reports whether region lies inside the plane.
func (p *Plane[D]) IsWithin(region geom.Region) bool {
	return p.grid.SnapRegion(region).IsWithin(p.region)
}

func (p *Plane[D]) IsClearAt(pt geom.Point) bool {
	t := p.Find(pt)
	return t != nil && t.mode == ModeClear
}

// IsSolidAt reports whether the tile at pt is SOLID, and with data given,
// carries exactly that data set.
func (p *Plane[D]) IsSolidAt(pt geom.Point, data ...D) bool {
	t := p.Find(pt)
	return t != nil && t.mode == ModeSolid && (len(data) == 0 || equalData(t.data, data))
}

func (p *Plane[D]) query(region geom.Region, mode QueryMode, match func(*Tile[D]) bool) bool {
	r := p.grid.SnapRegion(region)
	if !r.IsWithin(p.region) {
		return false
	}
	if !r.IsValid() {
		// Points and lines are answered by the tile at their lower-left end.
		t := p.Find(r.LowerLeft())
		return t != nil && match(t)
	}

	switch mode {
	case QueryMatch:
		t := p.FindRegion(r)
		return t != nil && match(t)
	case QueryMax:
		t := p.Find(r.LowerLeft())
		return t != nil && r.IsWithin(t.region) && match(t)
	case QueryAny:
		for _, t := range p.collect(r, ModeAny) {
			if match(t) {
				return true
			}
		}
		return false
	case QueryAll:
		for _, t := range p.collect(r, ModeAny) {
			if !match(t) {
				return false
			}
		}
		return true
	}
	return false
}

// FindCount returns the number of tiles of the plane matching mode.
func (p *Plane[D]) FindCount(mode Mode) int {
	return p.FindCountIn(p.region, mode)
}

// FindCountIn returns the number of tiles intersecting region matching mode.
func (p *Plane[D]) FindCountIn(region geom.Region, mode Mode) int {
	n := 0
	it := p.scratch
	it.InitRegion(region)
	for t := it.Next(mode); t != nil; t = it.Next(mode) {
		n++
	}
	return n
}

// FindMax returns the largest tile intersecting region matching mode. Ties go
// to the tile visited first.
func (p *Plane[D]) FindMax(region geom.Region, mode Mode) *Tile[D] {
	return p.findMax(p.grid.SnapRegion(region), mode)
}

func (p *Plane[D]) findMax(r geom.Region, mode Mode) *Tile[D] {
	var best *Tile[D]
	it := p.scratch
	it.InitRegion(r)
	for t := it.Next(mode); t != nil; t = it.Next(mode) {
		if best == nil || t.region.Area() > best.region.Area() {
			best = t
		}
	}
	return best
}

// NearestOptions restrict FindNearest.
type NearestOptions struct {
	// MaxDistance bounds the search; zero means unbounded.
	MaxDistance float64
	// Side limits candidates to tiles entirely on one side of the region.
	Side Side
}

// FindNearest returns the SOLID tile closest to region together with its
// distance. Tiles overlapping region are skipped. It returns nil when no
// candidate lies within opts.MaxDistance, the bound itself included.
//
// The search box around region doubles until it holds a candidate, then
// widens once more to the candidate's distance so closer tiles outside the
// box are not missed.
func (p *Plane[D]) FindNearest(region geom.Region, opts NearestOptions) (*Tile[D], float64) {
	r := p.grid.SnapRegion(region)
	if !r.IsWithin(p.region) {
		return nil, 0
	}
	limit := opts.MaxDistance
	if !(limit > 0) {
		limit = math.Inf(1)
	}

	b := p.region
	radius := max(r.Width(), r.Height(), (b.Width()+b.Height())/64, p.grid.Min())
	radius = min(radius, limit)
	for {
		box := r.Expand(radius)
		var best *Tile[D]
		bestDist := math.Inf(1)
		// Tiles exactly at radius only touch box, so collect a grid step wider.
		for _, t := range p.collect(box.Expand(p.grid.Min()).Intersect(b), ModeSolid) {
			if (r.IsValid() && t.region.IsIntersecting(r)) || !onSide(t.region, r, opts.Side) {
				continue
			}
			if d := t.region.Distance(r); d < bestDist && d <= limit {
				best, bestDist = t, d
			}
		}

		switch {
		case best != nil && bestDist <= radius:
			p.remember(best)
			return best, bestDist
		case radius >= limit, best == nil && b.IsWithin(box):
			return nil, 0
		case best != nil:
			radius = min(bestDist, limit)
		default:
			radius = min(radius*2, limit)
		}
	}
}

func onSide(t, r geom.Region, side Side) bool {
	switch side {
	case SideLeft:
		return t.X2 <= r.X1
	case SideRight:
		return t.X1 >= r.X2
	case SideLower:
		return t.Y2 <= r.Y1
	case SideUpper:
		return t.Y1 >= r.Y2
	default:
		return true
	}
}
