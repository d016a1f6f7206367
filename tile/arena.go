package tile

const arenaChunkSize = 256

// arena owns the tiles of a plane. Tiles live in fixed-size chunks that are
// never moved, so *Tile pointers stay valid until the tile is released.
// Released slots are recycled through a free list.
type arena[D comparable] struct {
	chunks [][]Tile[D]
	free   []TileID
	used   int // slots handed out at least once
	live   int
}

func (a *arena[D]) get(id TileID) *Tile[D] {
	if id == NoTile {
		return nil
	}
	i := int(id) - 1
	return &a.chunks[i/arenaChunkSize][i%arenaChunkSize]
}

func (a *arena[D]) alloc() *Tile[D] {
	var id TileID
	if n := len(a.free); n > 0 {
		id = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		if a.used == len(a.chunks)*arenaChunkSize {
			a.chunks = append(a.chunks, make([]Tile[D], arenaChunkSize))
		}
		a.used++
		id = TileID(a.used)
	}
	a.live++

	t := a.get(id)
	*t = Tile[D]{id: id}
	return t
}

// release returns the tile's slot to the free list. The tile is zeroed apart
// from its id so stale pointers observe ModeUndefined.
func (a *arena[D]) release(t *Tile[D]) {
	id := t.id
	*t = Tile[D]{id: id}
	a.free = append(a.free, id)
	a.live--
}

// reset drops every tile but keeps the allocated chunks for reuse.
func (a *arena[D]) reset() {
	for _, chunk := range a.chunks {
		clear(chunk)
	}
	a.free = a.free[:0]
	a.used = 0
	a.live = 0
}
