// Package tile implements a corner-stitched tile plane: a mosaic of
// non-overlapping rectangular tiles, CLEAR or SOLID, linked to their
// neighbors by four stitches.
package tile

import (
	"fmt"
	"slices"

	"github.com/eak1mov/go-cornerstitch/geom"
)

// Mode is the occupancy of a tile.
type Mode uint8

const (
	ModeUndefined Mode = iota
	ModeClear
	ModeSolid

	// ModeAny matches both CLEAR and SOLID tiles in filters.
	ModeAny
)

func (m Mode) String() string {
	switch m {
	case ModeClear:
		return "clear"
	case ModeSolid:
		return "solid"
	case ModeAny:
		return "any"
	default:
		return "undefined"
	}
}

func (m Mode) matches(o Mode) bool {
	return m == ModeAny || m == o
}

// TileID is a handle to a tile in its plane's arena. The zero value refers to
// no tile.
type TileID uint32

const NoTile TileID = 0

// Tile is a rectangle of a plane. SOLID tiles carry a list of data values;
// CLEAR tiles carry none.
//
// The four stitches point at neighboring tiles:
//   - LL: left neighbor at the lower-left corner,
//   - LO: lower neighbor at the lower-left corner,
//   - RU: upper neighbor at the upper-right corner,
//   - UR: right neighbor at the upper-right corner.
//
// Accessors never validate the mosaic; keeping it consistent is the plane's job.
type Tile[D comparable] struct {
	id     TileID
	mode   Mode
	region geom.Region
	data   []D

	ll TileID
	lo TileID
	ru TileID
	ur TileID
}

func (t *Tile[D]) ID() TileID              { return t.id }
func (t *Tile[D]) Region() geom.Region     { return t.region }
func (t *Tile[D]) SetRegion(r geom.Region) { t.region = r }
func (t *Tile[D]) Mode() Mode              { return t.mode }
func (t *Tile[D]) SetMode(m Mode)          { t.mode = m }

func (t *Tile[D]) IsClear() bool { return t.mode == ModeClear }
func (t *Tile[D]) IsSolid() bool { return t.mode == ModeSolid }

func (t *Tile[D]) LowerLeft() TileID       { return t.ll }
func (t *Tile[D]) LeftLower() TileID       { return t.lo }
func (t *Tile[D]) RightUpper() TileID      { return t.ru }
func (t *Tile[D]) UpperRight() TileID      { return t.ur }
func (t *Tile[D]) SetLowerLeft(id TileID)  { t.ll = id }
func (t *Tile[D]) SetLeftLower(id TileID)  { t.lo = id }
func (t *Tile[D]) SetRightUpper(id TileID) { t.ru = id }
func (t *Tile[D]) SetUpperRight(id TileID) { t.ur = id }

func (t *Tile[D]) String() string {
	if t.mode == ModeSolid {
		return fmt.Sprintf("tile#%d[%v %v %v]", t.id, t.mode, t.region, t.data)
	}
	return fmt.Sprintf("tile#%d[%v %v]", t.id, t.mode, t.region)
}

// Data returns the tile's data values. The slice must not be modified.
func (t *Tile[D]) Data() []D {
	return t.data
}

func (t *Tile[D]) DataCount() int {
	return len(t.data)
}

// DataAt returns the i-th data value.
func (t *Tile[D]) DataAt(i int) (D, bool) {
	if i < 0 || i >= len(t.data) {
		var zero D
		return zero, false
	}
	return t.data[i], true
}

// SetData replaces the data values with a copy of data. Data values form a
// set: repeated values are kept once.
func (t *Tile[D]) SetData(data ...D) {
	t.data = unionData(nil, data)
}

// AddData appends d unless it is already present.
func (t *Tile[D]) AddData(d D) {
	if !slices.Contains(t.data, d) {
		t.data = append(t.data, d)
	}
}

// ReplaceData overwrites the i-th data value. When d is already present at
// another index, the i-th value is dropped instead.
func (t *Tile[D]) ReplaceData(i int, d D) bool {
	if i < 0 || i >= len(t.data) {
		return false
	}
	if j := slices.Index(t.data, d); j >= 0 && j != i {
		t.data = slices.Delete(t.data, i, i+1)
		return true
	}
	t.data[i] = d
	return true
}

// FindData returns the index of the first data value equal to d.
func (t *Tile[D]) FindData(d D) (int, bool) {
	i := slices.Index(t.data, d)
	return i, i >= 0
}

// DeleteData removes d.
func (t *Tile[D]) DeleteData(d D) bool {
	i := slices.Index(t.data, d)
	if i < 0 {
		return false
	}
	t.data = slices.Delete(t.data, i, i+1)
	if len(t.data) == 0 {
		t.data = nil
	}
	return true
}

// HasData reports whether every value of data is present. Without arguments
// it reports whether the tile carries any data at all.
func (t *Tile[D]) HasData(data ...D) bool {
	if len(data) == 0 {
		return len(t.data) > 0
	}
	for _, d := range data {
		if !slices.Contains(t.data, d) {
			return false
		}
	}
	return true
}

// IsEqualData reports whether both tiles carry the same set of data values.
func (t *Tile[D]) IsEqualData(o *Tile[D]) bool {
	return t.IsEqualDataSlice(o.data)
}

// IsEqualDataSlice reports whether the tile carries exactly the values of
// data, in any order.
func (t *Tile[D]) IsEqualDataSlice(data []D) bool {
	return equalData(t.data, data)
}

// MakeClear turns the tile CLEAR and drops its data.
func (t *Tile[D]) MakeClear() {
	t.mode = ModeClear
	t.data = nil
}

// MakeSolid turns the tile SOLID with a copy of data.
func (t *Tile[D]) MakeSolid(data ...D) {
	t.mode = ModeSolid
	t.SetData(data...)
}

// IsLessThan reports whether the tile orders before r along orient, see
// geom.Region.Compare.
func (t *Tile[D]) IsLessThan(r geom.Region, orient geom.Orient) bool {
	return t.region.Compare(r, orient) < 0
}

func (t *Tile[D]) IsGreaterThan(r geom.Region, orient geom.Orient) bool {
	return t.region.Compare(r, orient) > 0
}

// IsLessThanPoint reports whether the tile lies strictly before p along
// orient: left of p for Horizontal, below p for Vertical.
func (t *Tile[D]) IsLessThanPoint(p geom.Point, orient geom.Orient) bool {
	if orient == geom.Vertical {
		return t.region.Y2 <= p.Y
	}
	return t.region.X2 <= p.X
}

func (t *Tile[D]) IsGreaterThanPoint(p geom.Point, orient geom.Orient) bool {
	if orient == geom.Vertical {
		return t.region.Y1 > p.Y
	}
	return t.region.X1 > p.X
}

func (t *Tile[D]) IsWithin(r geom.Region) bool {
	return t.region.IsWithin(r)
}

func (t *Tile[D]) IsIntersecting(r geom.Region) bool {
	return t.region.IsIntersecting(r)
}

// FindOrient classifies the tile as wide, tall or square.
func (t *Tile[D]) FindOrient() geom.Aspect {
	return t.region.Aspect()
}

func (t *Tile[D]) FindDistance(r geom.Region) float64 {
	return t.region.Distance(r)
}

func (t *Tile[D]) FindDistanceToPoint(p geom.Point) float64 {
	return t.region.DistanceToPoint(p)
}

// equalData reports whether a and b hold the same set of values, ignoring
// order and repetition.
func equalData[D comparable](a, b []D) bool {
	for _, d := range a {
		if !slices.Contains(b, d) {
			return false
		}
	}
	for _, d := range b {
		if !slices.Contains(a, d) {
			return false
		}
	}
	return true
}

// unionData returns a followed by the values of b missing from a. The
// result is nil when both are empty.
func unionData[D comparable](a, b []D) []D {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	result := slices.Clone(a)
	for _, d := range b {
		if !slices.Contains(result, d) {
			result = append(result, d)
		}
	}
	return result
}
