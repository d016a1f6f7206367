package tile

import (
	"errors"
	"fmt"
	"math"

	"github.com/eak1mov/go-cornerstitch/geom"
)

// Validate checks the whole mosaic: tiles are well formed and exactly cover
// the plane, every stitch points at the tile it should, and the CLEAR area is
// in strip form. It is meant for tests and debugging and costs quadratic time
// in the number of tiles.
func (p *Plane[D]) Validate() error {
	if p.lowerLeft == NoTile {
		return fmt.Errorf("%w: plane has no tiles", ErrIllegal)
	}

	var tiles []*Tile[D]
	it := NewIterator(p)
	it.InitRegion(p.region)
	for t := it.Next(ModeAny); t != nil; t = it.Next(ModeAny) {
		if len(tiles) >= p.tiles.live {
			return fmt.Errorf("%w: traversal visits more than %d live tiles", ErrIllegal, p.tiles.live)
		}
		tiles = append(tiles, t)
	}
	if len(tiles) != p.tiles.live {
		return fmt.Errorf("%w: traversal visits %d of %d live tiles", ErrIllegal, len(tiles), p.tiles.live)
	}

	var errs []error
	area := 0.0
	for i, t := range tiles {
		r := t.region
		area += r.Area()
		switch {
		case !r.IsValid():
			errs = append(errs, fmt.Errorf("%v: degenerate region", t))
		case !r.IsWithin(p.region):
			errs = append(errs, fmt.Errorf("%v: outside plane %v", t, p.region))
		case t.mode != ModeClear && t.mode != ModeSolid:
			errs = append(errs, fmt.Errorf("%v: invalid mode", t))
		case t.mode == ModeClear && len(t.data) > 0:
			errs = append(errs, fmt.Errorf("%v: clear tile carries data", t))
		}
		for _, o := range tiles[i+1:] {
			if r.IsIntersecting(o.region) {
				errs = append(errs, fmt.Errorf("%v overlaps %v", t, o))
			}
		}
	}
	if want := p.region.Area(); math.Abs(area-want) > want*1e-9 {
		errs = append(errs, fmt.Errorf("tiles cover area %v of %v", area, want))
	}
	if ll := p.at(p.lowerLeft); ll.region.LowerLeft() != p.region.LowerLeft() {
		errs = append(errs, fmt.Errorf("lower-left tile %v misses plane corner", ll))
	}

	for _, t := range tiles {
		errs = append(errs, p.validateStitches(t, tiles)...)
		if t.mode == ModeClear {
			errs = append(errs, p.validateStrip(t)...)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrIllegal, err)
	}
	return nil
}

// IsLegal reports whether Validate succeeds and logs the violations if not.
func (p *Plane[D]) IsLegal() bool {
	if err := p.Validate(); err != nil {
		p.logger.Error("cornerstitch: illegal plane", "error", err)
		return false
	}
	return true
}

func (p *Plane[D]) validateStitches(t *Tile[D], tiles []*Tile[D]) []error {
	r, b := t.region, p.region
	var errs []error
	check := func(name string, got TileID, inside bool, pt geom.Point, dx, dy dirMode) {
		var want *Tile[D]
		if inside {
			want = bruteFind(tiles, pt, b, dx, dy)
		}
		if got != idOf(want) {
			errs = append(errs, fmt.Errorf("%v: %s stitch = %v, want %v", t, name, p.at(got), want))
		}
	}
	check("ll", t.ll, r.X1 > b.X1, r.LowerLeft(), dirBackward, dirForward)
	check("lo", t.lo, r.Y1 > b.Y1, r.LowerLeft(), dirForward, dirBackward)
	check("ru", t.ru, r.Y2 < b.Y2, r.UpperRight(), dirBackward, dirForward)
	check("ur", t.ur, r.X2 < b.X2, r.UpperRight(), dirForward, dirBackward)
	return errs
}

func bruteFind[D comparable](tiles []*Tile[D], pt geom.Point, b geom.Region, dx, dy dirMode) *Tile[D] {
	for _, t := range tiles {
		r := t.region
		if position(pt.X, r.X1, r.X2, b.X1, b.X2, dx) == 0 && position(pt.Y, r.Y1, r.Y2, b.Y1, b.Y2, dy) == 0 {
			return t
		}
	}
	return nil
}

// validateStrip checks that the CLEAR tile t has no CLEAR neighbor on its
// left or right and no CLEAR neighbor of equal width directly below or above.
func (p *Plane[D]) validateStrip(t *Tile[D]) []error {
	var errs []error
	for _, side := range [...]Side{SideLeft, SideRight} {
		for n := range p.Neighbors(t, side, ModeClear) {
			errs = append(errs, fmt.Errorf("%v: clear %v neighbor %v", t, side, n))
		}
	}
	r := t.region
	for _, id := range [...]TileID{t.lo, t.ru} {
		if n := p.at(id); n != nil && n.mode == ModeClear && n.region.X1 == r.X1 && n.region.X2 == r.X2 {
			errs = append(errs, fmt.Errorf("%v: unmerged clear tile %v", t, n))
		}
	}
	return errs
}
