package tile

// CacheSlots exposes the point location caches to tests.
func (p *Plane[D]) CacheSlots() (lowerLeft, mostRecentClear, mostRecentSolid TileID) {
	return p.lowerLeft, p.mostRecentClear, p.mostRecentSolid
}
