package record

import (
	"errors"
	"iter"

	"github.com/eak1mov/go-cornerstitch/geom"
)

var errVisitCancelled = errors.New("visit cancelled")

// IterRecords returns an iterator over all records of the region list.
// Iteration panics on read errors; use VisitRecords to handle them.
func IterRecords(v Visitor) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		err := v.VisitRecords(func(rec Record) error {
			if !yield(rec) {
				return errVisitCancelled
			}
			return nil
		})
		if err != nil && err != errVisitCancelled {
			panic(err)
		}
	}
}

// IterRegions adapts a record iterator to the region and data pairs accepted
// by tile.Plane.AddAll.
func IterRegions(records iter.Seq[Record]) iter.Seq2[geom.Region, []string] {
	return func(yield func(geom.Region, []string) bool) {
		for rec := range records {
			if !yield(rec.Region, rec.Data) {
				return
			}
		}
	}
}
