package tile_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/eak1mov/go-cornerstitch/geom"
	"github.com/eak1mov/go-cornerstitch/tile"
	"github.com/stretchr/testify/require"
)

const cells = 40

// cellMap mirrors a plane on a unit grid: every cell holds the data set of
// the area covering it.
type cellMap [cells][cells][]int

func (m *cellMap) apply(r geom.Region, f func([]int) []int) {
	for x := int(r.X1); x < int(r.X2); x++ {
		for y := int(r.Y1); y < int(r.Y2); y++ {
			m[x][y] = f(m[x][y])
		}
	}
}

func (m *cellMap) check(t *testing.T, p *tile.Plane[int]) {
	t.Helper()
	for x := range cells {
		for y := range cells {
			pt := geom.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			tl := p.Find(pt)
			require.NotNil(t, tl, "Find(%v)", pt)
			want := m[x][y]
			if len(want) == 0 {
				require.True(t, tl.IsClear(), "tile %v at %v", tl, pt)
				continue
			}
			require.True(t, tl.IsSolid(), "tile %v at %v", tl, pt)
			require.True(t, tl.IsEqualDataSlice(want), "tile %v at %v, want data %v", tl, pt, want)
		}
	}
}

func randomRegion(rng *rand.Rand) geom.Region {
	x, y := rng.IntN(cells), rng.IntN(cells)
	w, h := 1+rng.IntN(12), 1+rng.IntN(12)
	return rect(float64(x), float64(y), float64(min(x+w, cells)), float64(min(y+h, cells)))
}

func TestRandomOperations(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3} {
		rng := rand.New(rand.NewPCG(seed, 42))
		p, err := tile.New[int](rect(0, 0, cells, cells))
		require.NoError(t, err)
		var m cellMap

		for i := range 150 {
			r := randomRegion(rng)
			switch op := rng.IntN(10); {
			case op < 6:
				require.NoError(t, p.Add(r, tile.AddOverlap, i))
				m.apply(r, func(data []int) []int { return append(data, i) })
			case op < 8:
				require.NoError(t, p.Delete(r, tile.DeleteClip))
				m.apply(r, func([]int) []int { return nil })
			default:
				tl := p.FindMax(r, tile.ModeSolid)
				if tl == nil {
					continue
				}
				d := tl.Data()[0]
				require.NoError(t, p.DeleteData(r, d))
				m.apply(r, func(data []int) []int {
					return slices.DeleteFunc(data, func(v int) bool { return v == d })
				})
			}
			if err := p.Validate(); err != nil {
				t.Fatalf("seed %v step %v: %v", seed, i, err)
			}
			m.check(t, p)
		}

		require.NoError(t, p.Delete(p.Region(), tile.DeleteAny))
		require.Equal(t, 1, p.Count())
		require.Equal(t, p.Region(), p.LowerLeftTile().Region())
		requireLegal(t, p)
	}
}

func TestRandomAddNewDeleteExact(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 8))
	p, err := tile.New[int](rect(0, 0, cells, cells))
	require.NoError(t, err)

	var added []geom.Region
	for i := range 200 {
		r := randomRegion(rng)
		err := p.Add(r, tile.AddNew, i)
		if p.IsSolid(r, tile.QueryMatch, i) {
			require.NoError(t, err)
			added = append(added, r)
		} else {
			require.ErrorIs(t, err, tile.ErrExists)
		}
		requireLegal(t, p)
	}
	require.NotEmpty(t, added)

	rng.Shuffle(len(added), func(i, j int) { added[i], added[j] = added[j], added[i] })
	for _, r := range added {
		require.NoError(t, p.Delete(r, tile.DeleteExact))
		require.True(t, p.IsClear(r, tile.QueryAll))
		requireLegal(t, p)
	}
	require.Equal(t, 1, p.Count())
}
