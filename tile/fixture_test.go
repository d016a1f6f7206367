package tile_test

import (
	"testing"

	"github.com/eak1mov/go-cornerstitch/geom"
	"github.com/eak1mov/go-cornerstitch/internal"
	"github.com/eak1mov/go-cornerstitch/record"
	"github.com/eak1mov/go-cornerstitch/tile"
	"github.com/stretchr/testify/require"
)

func loadLayout(t *testing.T, mode tile.AddMode) (*tile.Plane[string], error) {
	t.Helper()
	records := internal.ReadFixture(t, "../internal/testdata/layout.txt")
	p, err := tile.New[string](rect(0, 0, 200, 200))
	require.NoError(t, err)
	seq := func(yield func(geom.Region, []string) bool) {
		for _, rec := range records {
			if !yield(rec.Region, rec.Data) {
				return
			}
		}
	}
	return p, p.AddAll(seq, mode)
}

func TestLayoutOverlap(t *testing.T) {
	p, err := loadLayout(t, tile.AddOverlap)
	require.NoError(t, err)
	requireLegal(t, p)

	require.True(t, p.IsSolidAt(geom.Point{X: 92, Y: 150}, "poly", "via"))
	require.True(t, p.IsSolidAt(geom.Point{X: 92, Y: 100}, "via"))
	require.True(t, p.IsSolidAt(geom.Point{X: 130, Y: 110}, "diff"))
	require.True(t, p.IsClearAt(geom.Point{X: 5, Y: 5}))

	// The three poly bars of equal height join into one tile.
	bar := p.Find(geom.Point{X: 100, Y: 50})
	require.Equal(t, rect(40, 40, 160, 60), bar.Region())

	require.NoError(t, p.Delete(p.Region(), tile.DeleteAny))
	require.Equal(t, 1, p.Count())
}

func TestLayoutMergeConflict(t *testing.T) {
	p, err := loadLayout(t, tile.AddMerge)
	require.ErrorIs(t, err, tile.ErrConflict)
	requireLegal(t, p)
	require.True(t, p.IsSolidAt(geom.Point{X: 130, Y: 110}, "diff"))
}

func TestLayoutRecords(t *testing.T) {
	records := internal.ReadFixture(t, "../internal/testdata/layout.txt")
	p, err := tile.New[string](rect(0, 0, 200, 200))
	require.NoError(t, err)
	require.NoError(t, p.AddAll(record.IterRegions(func(yield func(record.Record) bool) {
		for _, rec := range records {
			if !yield(rec) {
				return
			}
		}
	}), tile.AddOverlap))
	requireLegal(t, p)
}
