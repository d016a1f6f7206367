package tile

import (
	"fmt"
	"log/slog"

	"github.com/eak1mov/go-cornerstitch/geom"
)

// Plane is a corner-stitched mosaic of tiles exactly covering a bounding
// region. CLEAR tiles are kept as maximal horizontal strips: no two CLEAR
// tiles share a vertical edge, and vertically adjacent CLEAR tiles with the
// same horizontal extent are merged.
//
// Each tile owns [X1,X2)x[Y1,Y2); the right and top borders of the plane
// belong to the tiles touching them. A Plane is not safe for concurrent use,
// and mutating it invalidates running iterators.
type Plane[D comparable] struct {
	region geom.Region
	grid   geom.Grid
	logger *slog.Logger

	tiles   arena[D]
	scratch *Iterator[D]

	lowerLeft       TileID
	mostRecentClear TileID
	mostRecentSolid TileID
}

type config struct {
	MinGrid float64
	Logger  *slog.Logger
}

type Option func(*config)

// WithMinGrid sets the smallest distinguishable coordinate step. Every
// coordinate passed to the plane is snapped to this grid.
func WithMinGrid(step float64) Option {
	return func(c *config) { c.MinGrid = step }
}

// WithLogger sets the logger receiving contract violations and diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.Logger = logger }
}

// New creates a plane covering region with a single CLEAR tile.
func New[D comparable](region geom.Region, opts ...Option) (*Plane[D], error) {
	config := config{
		MinGrid: geom.DefaultMinGrid,
		Logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&config)
	}

	p := &Plane[D]{
		grid:   geom.NewGrid(config.MinGrid),
		logger: config.Logger,
	}
	p.scratch = NewIterator(p)
	if err := p.Init(region); err != nil {
		return nil, err
	}
	return p, nil
}

// Init drops every tile and covers region with a single CLEAR tile.
func (p *Plane[D]) Init(region geom.Region) error {
	r := p.grid.SnapRegion(region)
	if !r.IsValid() {
		return p.report("Init", fmt.Errorf("%w: %v", ErrInvalidRegion, region), region)
	}

	p.Reset()
	p.region = r

	t := p.tiles.alloc()
	t.mode = ModeClear
	t.region = r
	p.lowerLeft = t.id
	p.mostRecentClear = t.id

	p.logger.Debug("cornerstitch: init", "region", r)
	return nil
}

// Reset releases every tile. The plane keeps its region but holds no tiles
// until the next Init.
func (p *Plane[D]) Reset() {
	p.tiles.reset()
	p.lowerLeft = NoTile
	p.mostRecentClear = NoTile
	p.mostRecentSolid = NoTile
}

// Clear resets the plane to a single CLEAR tile over its current region.
func (p *Plane[D]) Clear() error {
	return p.Init(p.region)
}

func (p *Plane[D]) Region() geom.Region { return p.region }
func (p *Plane[D]) MinGrid() float64    { return p.grid.Min() }

// Count returns the number of live tiles.
func (p *Plane[D]) Count() int {
	return p.tiles.live
}

// Tile resolves a stitch handle; it returns nil for NoTile.
func (p *Plane[D]) Tile(id TileID) *Tile[D] {
	return p.at(id)
}

// LowerLeftTile returns the tile at the lower-left corner of the plane.
func (p *Plane[D]) LowerLeftTile() *Tile[D] {
	return p.at(p.lowerLeft)
}

func (p *Plane[D]) at(id TileID) *Tile[D] {
	return p.tiles.get(id)
}

func idOf[D comparable](t *Tile[D]) TileID {
	if t == nil {
		return NoTile
	}
	return t.id
}

// Find returns the tile containing pt, or nil when pt lies outside the plane.
func (p *Plane[D]) Find(pt geom.Point) *Tile[D] {
	return p.FindFrom(nil, pt)
}

// FindFrom is Find with a starting hint. A hint close to pt shortens the
// walk; any tile of the plane, or nil, is acceptable.
func (p *Plane[D]) FindFrom(hint *Tile[D], pt geom.Point) *Tile[D] {
	pt = p.grid.SnapPoint(pt)
	if p.lowerLeft == NoTile || !p.region.Contains(pt) {
		return nil
	}
	t := p.locate(p.seed(hint, pt), pt, dirForward, dirForward)
	p.remember(t)
	return t
}

// FindRegion returns the tile whose region equals region, or nil.
func (p *Plane[D]) FindRegion(region geom.Region) *Tile[D] {
	r := p.grid.SnapRegion(region)
	t := p.Find(r.LowerLeft())
	if t == nil || t.region != r {
		return nil
	}
	return t
}

// dirMode tells on which side of a boundary a located point lies.
type dirMode uint8

const (
	// dirForward nudges the point towards +inf: tiles own [lo, hi).
	dirForward dirMode = iota
	// dirBackward nudges the point towards -inf: tiles own (lo, hi].
	dirBackward
)

// position returns -1 when v lies before the span [lo, hi], +1 when after
// and 0 when inside. The plane borders min and max are always closed.
func position(v, lo, hi, min, max float64, dir dirMode) int {
	if dir == dirForward {
		switch {
		case v < lo:
			return -1
		case v >= hi && !(v == max && hi == max):
			return 1
		}
		return 0
	}
	switch {
	case v > hi:
		return 1
	case v <= lo && !(v == min && lo == min):
		return -1
	}
	return 0
}

// locate walks the stitches from t to the tile containing pt. It alternates
// vertical passes along RU/LO with horizontal passes along UR/LL until both
// extents contain the point. pt must lie inside the plane.
func (p *Plane[D]) locate(t *Tile[D], pt geom.Point, dx, dy dirMode) *Tile[D] {
	b := p.region
	for {
		for s := position(pt.Y, t.region.Y1, t.region.Y2, b.Y1, b.Y2, dy); s != 0; s = position(pt.Y, t.region.Y1, t.region.Y2, b.Y1, b.Y2, dy) {
			if s < 0 {
				t = p.at(t.lo)
			} else {
				t = p.at(t.ru)
			}
		}
		s := position(pt.X, t.region.X1, t.region.X2, b.X1, b.X2, dx)
		if s == 0 {
			return t
		}
		for ; s != 0; s = position(pt.X, t.region.X1, t.region.X2, b.X1, b.X2, dx) {
			if s < 0 {
				t = p.at(t.ll)
			} else {
				t = p.at(t.ur)
			}
		}
		if position(pt.Y, t.region.Y1, t.region.Y2, b.Y1, b.Y2, dy) == 0 {
			return t
		}
	}
}

// seed picks the closest known tile to start a walk towards pt.
func (p *Plane[D]) seed(hint *Tile[D], pt geom.Point) *Tile[D] {
	best := p.at(p.lowerLeft)
	bestDist := best.region.DistanceToPoint(pt)
	for _, c := range [...]*Tile[D]{hint, p.at(p.mostRecentClear), p.at(p.mostRecentSolid)} {
		if c == nil || c.mode == ModeUndefined {
			continue
		}
		if d := c.region.DistanceToPoint(pt); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// remember updates the most recent cache slot of t's mode. CLEAR strips that
// span the whole plane width are reachable from anywhere by a vertical walk,
// so they do not evict a cached CLEAR tile.
func (p *Plane[D]) remember(t *Tile[D]) {
	switch t.mode {
	case ModeSolid:
		p.mostRecentSolid = t.id
	case ModeClear:
		fullSpan := t.region.X1 == p.region.X1 && t.region.X2 == p.region.X2
		if !fullSpan || p.mostRecentClear == NoTile {
			p.mostRecentClear = t.id
		}
	}
}

// repoint moves every cache slot referring to t to survivor, or to a stitch
// neighbor of t of the slot's mode, or clears it. It must run whenever t is
// released or changes mode.
func (p *Plane[D]) repoint(t, survivor *Tile[D]) {
	if p.lowerLeft == t.id && survivor != nil {
		p.lowerLeft = survivor.id
	}
	if p.mostRecentClear == t.id && (t.mode != ModeClear || survivor != nil) {
		p.mostRecentClear = p.replacement(t, survivor, ModeClear)
	}
	if p.mostRecentSolid == t.id && (t.mode != ModeSolid || survivor != nil) {
		p.mostRecentSolid = p.replacement(t, survivor, ModeSolid)
	}
}

func (p *Plane[D]) replacement(t, survivor *Tile[D], mode Mode) TileID {
	if survivor != nil && survivor.mode == mode {
		return survivor.id
	}
	for _, id := range [...]TileID{t.ll, t.lo, t.ru, t.ur} {
		if n := p.at(id); n != nil && n.mode == mode {
			return n.id
		}
	}
	return NoTile
}

// deallocate releases t whose area now belongs to survivor.
func (p *Plane[D]) deallocate(t, survivor *Tile[D]) {
	p.repoint(t, survivor)
	p.tiles.release(t)
}
