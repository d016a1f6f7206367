// Package internal provides random workloads and fixture loading shared by
// tests and the command line tools.
package internal

import (
	"iter"
	"math"
	"math/rand/v2"

	"github.com/eak1mov/go-cornerstitch/geom"
)

// RandomRegions yields n regions inside bounds with integer corners and sides
// of at most maxSize. The same seed yields the same sequence.
func RandomRegions(seed uint64, bounds geom.Region, n int, maxSize float64) iter.Seq[geom.Region] {
	return func(yield func(geom.Region) bool) {
		rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		x0, y0 := math.Ceil(bounds.X1), math.Ceil(bounds.Y1)
		w, h := int(math.Floor(bounds.X2)-x0), int(math.Floor(bounds.Y2)-y0)
		size := max(1, int(maxSize))
		if w < 1 || h < 1 {
			return
		}
		for range n {
			x, y := rng.IntN(w), rng.IntN(h)
			dx, dy := 1+rng.IntN(min(size, w-x)), 1+rng.IntN(min(size, h-y))
			r := geom.Region{
				X1: x0 + float64(x),
				Y1: y0 + float64(y),
				X2: x0 + float64(x+dx),
				Y2: y0 + float64(y+dy),
			}
			if !yield(r) {
				return
			}
		}
	}
}
