package tile

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/eak1mov/go-cornerstitch/geom"
)

// hilbertOrder is the number of curve cells per plane side used by AddAll.
const hilbertOrder = 1 << 10

// AddAll adds every region of seq with its data using mode. Failing regions
// are skipped and reported together in the returned error.
//
// With AddOverlap the result does not depend on the insertion order, so
// regions are inserted in Hilbert curve order of their centers to keep
// consecutive insertions close and the point location caches warm. The other
// modes let earlier regions win over later overlapping ones and insert in the
// order of seq.
func (p *Plane[D]) AddAll(seq iter.Seq2[geom.Region, []D], mode AddMode) error {
	curve, err := geom.NewHilbertCurve(p.region, hilbertOrder)
	if err != nil {
		return err
	}

	type item struct {
		region geom.Region
		data   []D
		key    int
	}
	var items []item
	for region, data := range seq {
		items = append(items, item{region, data, curve.Index(region.Center())})
	}
	if mode == AddOverlap {
		slices.SortStableFunc(items, func(a, b item) int {
			return cmp.Compare(a.key, b.key)
		})
	}

	p.logger.Debug("cornerstitch: bulk add", "count", len(items), "mode", mode)
	var errs []error
	for _, it := range items {
		if err := p.Add(it.region, mode, it.data...); err != nil {
			errs = append(errs, fmt.Errorf("%v: %w", it.region, err))
		}
	}
	return errors.Join(errs...)
}
