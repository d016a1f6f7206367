package internal_test

import (
	"slices"
	"testing"

	"github.com/eak1mov/go-cornerstitch/geom"
	"github.com/eak1mov/go-cornerstitch/internal"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestRandomRegions(t *testing.T) {
	bounds := geom.Region{X1: -5.5, Y1: 0, X2: 50, Y2: 30}
	got := slices.Collect(internal.RandomRegions(1, bounds, 500, 8))
	require.Len(t, got, 500)
	for _, r := range got {
		require.True(t, r.IsValid(), "region %v", r)
		require.True(t, r.IsWithin(bounds), "region %v", r)
		require.LessOrEqual(t, r.Width(), 8.0)
		require.LessOrEqual(t, r.Height(), 8.0)
	}

	again := slices.Collect(internal.RandomRegions(1, bounds, 500, 8))
	if diff := cmp.Diff(got, again); diff != "" {
		t.Errorf("RandomRegions not deterministic (-first +second):\n%v", diff)
	}
}

func TestReadFixture(t *testing.T) {
	records := internal.ReadFixture(t, "testdata/layout.txt")
	require.NotEmpty(t, records)
	for _, rec := range records {
		require.True(t, rec.Region.IsValid(), "record %v", rec)
		require.NotEmpty(t, rec.Data, "record %v", rec)
	}
}
