package tile_test

import (
	"testing"

	"github.com/eak1mov/go-cornerstitch/geom"
	"github.com/eak1mov/go-cornerstitch/tile"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestTileData(t *testing.T) {
	var tl tile.Tile[string]
	require.False(t, tl.HasData())

	tl.MakeSolid("a", "b")
	require.True(t, tl.IsSolid())
	require.Equal(t, 2, tl.DataCount())
	require.True(t, tl.HasData("b", "a"))
	require.False(t, tl.HasData("c"))

	tl.AddData("c")
	if i, ok := tl.FindData("c"); !ok || i != 2 {
		t.Errorf("FindData(c) = %v, %v, want = 2, true", i, ok)
	}
	require.True(t, tl.ReplaceData(0, "z"))
	require.False(t, tl.ReplaceData(5, "z"))
	if d, ok := tl.DataAt(0); !ok || d != "z" {
		t.Errorf("DataAt(0) = %v, %v, want = z, true", d, ok)
	}
	if _, ok := tl.DataAt(3); ok {
		t.Errorf("DataAt(3) succeeded, want failure")
	}

	require.True(t, tl.DeleteData("b"))
	require.False(t, tl.DeleteData("b"))
	if diff := cmp.Diff([]string{"z", "c"}, tl.Data()); diff != "" {
		t.Errorf("Data mismatch (-want +got):\n%v", diff)
	}
	require.True(t, tl.IsEqualDataSlice([]string{"c", "z"}))
	require.True(t, tl.IsEqualDataSlice([]string{"c", "z", "z"}))
	require.False(t, tl.IsEqualDataSlice([]string{"c"}))

	tl.MakeClear()
	require.True(t, tl.IsClear())
	require.Zero(t, tl.DataCount())
}

func TestTileDataIsSet(t *testing.T) {
	var tl tile.Tile[int]
	tl.MakeSolid(1, 1, 2)
	if diff := cmp.Diff([]int{1, 2}, tl.Data()); diff != "" {
		t.Errorf("Data mismatch (-want +got):\n%v", diff)
	}

	tl.AddData(2)
	require.Equal(t, 2, tl.DataCount())

	require.True(t, tl.ReplaceData(0, 2))
	if diff := cmp.Diff([]int{2}, tl.Data()); diff != "" {
		t.Errorf("Data mismatch (-want +got):\n%v", diff)
	}

	require.True(t, tl.DeleteData(2))
	require.False(t, tl.HasData())
}

func TestTileSetDataCopies(t *testing.T) {
	data := []int{1, 2}
	var tl tile.Tile[int]
	tl.SetData(data...)
	data[0] = 9
	if diff := cmp.Diff([]int{1, 2}, tl.Data()); diff != "" {
		t.Errorf("Data mismatch (-want +got):\n%v", diff)
	}
}

func TestTileGeometry(t *testing.T) {
	var tl tile.Tile[int]
	tl.SetRegion(geom.Region{X1: 0, Y1: 0, X2: 10, Y2: 4})

	require.Equal(t, geom.AspectWide, tl.FindOrient())
	require.True(t, tl.IsLessThan(geom.Region{X1: 5, Y1: 0, X2: 10, Y2: 4}, geom.Horizontal))
	require.True(t, tl.IsGreaterThan(geom.Region{X1: 0, Y1: -4, X2: 10, Y2: 0}, geom.Vertical))
	require.True(t, tl.IsLessThanPoint(geom.Point{X: 10, Y: 0}, geom.Horizontal))
	require.False(t, tl.IsLessThanPoint(geom.Point{X: 9, Y: 0}, geom.Horizontal))
	require.True(t, tl.IsGreaterThanPoint(geom.Point{X: 0, Y: -1}, geom.Vertical))
	require.True(t, tl.IsWithin(geom.Region{X1: 0, Y1: 0, X2: 10, Y2: 10}))
	require.False(t, tl.IsIntersecting(geom.Region{X1: 10, Y1: 0, X2: 20, Y2: 4}))
	require.Equal(t, 5.0, tl.FindDistance(geom.Region{X1: 13, Y1: 8, X2: 20, Y2: 9}))
	require.Equal(t, 0.0, tl.FindDistanceToPoint(geom.Point{X: 3, Y: 3}))
}

func TestModeString(t *testing.T) {
	for _, tc := range []struct {
		mode tile.Mode
		want string
	}{
		{tile.ModeUndefined, "undefined"},
		{tile.ModeClear, "clear"},
		{tile.ModeSolid, "solid"},
		{tile.ModeAny, "any"},
	} {
		if got := tc.mode.String(); got != tc.want {
			t.Errorf("Mode(%d).String() = %v, want = %v", tc.mode, got, tc.want)
		}
	}
}
