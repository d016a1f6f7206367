package tile

import (
	"iter"

	"github.com/eak1mov/go-cornerstitch/geom"
)

// Tiles yields the tiles intersecting region whose mode matches mode.
func (p *Plane[D]) Tiles(region geom.Region, mode Mode) iter.Seq[*Tile[D]] {
	return func(yield func(*Tile[D]) bool) {
		it := NewIterator(p)
		it.InitRegion(region)
		for t := it.Next(mode); t != nil; t = it.Next(mode) {
			if !yield(t) {
				return
			}
		}
	}
}

// AllTiles yields every tile of the plane whose mode matches mode.
func (p *Plane[D]) AllTiles(mode Mode) iter.Seq[*Tile[D]] {
	return p.Tiles(p.region, mode)
}

// Neighbors yields the tiles along the given side of t whose mode matches mode.
func (p *Plane[D]) Neighbors(t *Tile[D], side Side, mode Mode) iter.Seq[*Tile[D]] {
	return func(yield func(*Tile[D]) bool) {
		it := NewIterator(p)
		it.InitSide(t, side)
		for n := it.Next(mode); n != nil; n = it.Next(mode) {
			if !yield(n) {
				return
			}
		}
	}
}

// collect gathers the tiles intersecting r using the plane's scratch iterator.
func (p *Plane[D]) collect(r geom.Region, mode Mode) []*Tile[D] {
	var result []*Tile[D]
	it := p.scratch
	it.InitRegion(r)
	for t := it.Next(mode); t != nil; t = it.Next(mode) {
		result = append(result, t)
	}
	return result
}
