package record_test

import (
	"errors"
	"maps"
	"slices"
	"testing"

	"github.com/eak1mov/go-cornerstitch/geom"
	"github.com/eak1mov/go-cornerstitch/record"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type sliceVisitor struct {
	records []record.Record
	err     error
}

func (v *sliceVisitor) VisitRecords(visitor func(record.Record) error) error {
	for _, rec := range v.records {
		if err := visitor(rec); err != nil {
			return err
		}
	}
	return v.err
}

var testRecords = []record.Record{
	{Region: geom.Region{X1: 0, Y1: 0, X2: 10, Y2: 10}, Data: []string{"a"}},
	{Region: geom.Region{X1: 5, Y1: 5, X2: 20, Y2: 8}, Data: []string{"b", "c"}},
	{Region: geom.Region{X1: 1, Y1: 2, X2: 3, Y2: 4}},
}

func TestIterRecords(t *testing.T) {
	v := &sliceVisitor{records: testRecords}
	if diff := cmp.Diff(testRecords, slices.Collect(record.IterRecords(v))); diff != "" {
		t.Errorf("IterRecords mismatch (-want +got):\n%v", diff)
	}

	var first []record.Record
	for rec := range record.IterRecords(v) {
		first = append(first, rec)
		break
	}
	require.Len(t, first, 1)
}

func TestIterRecordsPanics(t *testing.T) {
	v := &sliceVisitor{records: testRecords, err: errors.New("broken input")}
	require.PanicsWithError(t, "broken input", func() {
		for range record.IterRecords(v) {
		}
	})
}

func TestIterRegions(t *testing.T) {
	v := &sliceVisitor{records: testRecords}
	got := maps.Collect(record.IterRegions(record.IterRecords(v)))
	require.Len(t, got, len(testRecords))
	require.Equal(t, []string{"b", "c"}, got[geom.Region{X1: 5, Y1: 5, X2: 20, Y2: 8}])
}
