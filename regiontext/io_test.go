package regiontext_test

import (
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/eak1mov/go-cornerstitch/geom"
	"github.com/eak1mov/go-cornerstitch/record"
	"github.com/eak1mov/go-cornerstitch/regiontext"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var testRecords = []record.Record{
	{Region: geom.Region{X1: 0, Y1: 0, X2: 10, Y2: 10}, Data: []string{"metal1"}},
	{Region: geom.Region{X1: 2.5, Y1: -3, X2: 20, Y2: 8.125}, Data: []string{"poly", "via"}},
	{Region: geom.Region{X1: 1, Y1: 2, X2: 3, Y2: 4}},
}

func TestWriterReader(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "nested", "regions.txt")

	writer, err := regiontext.NewWriter(filePath)
	require.NoError(t, err)
	for _, rec := range testRecords {
		if err := writer.WriteRecord(rec); err != nil {
			t.Errorf("WriteRecord(%v) failed: %v", rec, err)
		}
	}
	require.NoError(t, writer.Finalize())
	require.NoError(t, writer.Close())

	reader, err := regiontext.NewReader(filePath)
	require.NoError(t, err)
	if diff := cmp.Diff(testRecords, slices.Collect(record.IterRecords(reader))); diff != "" {
		t.Errorf("VisitRecords mismatch (-want +got):\n%v", diff)
	}
	// A file-backed reader can be visited again.
	require.Len(t, slices.Collect(record.IterRecords(reader)), len(testRecords))
}

func TestReaderFrom(t *testing.T) {
	input := `
# bounds 0 0 100 100
10 10 20 20 A

  30 30 40 40   B C
# trailing comment
`
	reader := regiontext.NewReaderFrom(strings.NewReader(input))
	want := []record.Record{
		{Region: geom.Region{X1: 10, Y1: 10, X2: 20, Y2: 20}, Data: []string{"A"}},
		{Region: geom.Region{X1: 30, Y1: 30, X2: 40, Y2: 40}, Data: []string{"B", "C"}},
	}
	if diff := cmp.Diff(want, slices.Collect(record.IterRecords(reader))); diff != "" {
		t.Errorf("VisitRecords mismatch (-want +got):\n%v", diff)
	}
}

func TestReaderInvalidLine(t *testing.T) {
	for _, tc := range []struct {
		input string
		line  string
	}{
		{"1 2 3\n", "line 1"},
		{"# ok\n1 2 3 4\n1 2 x 4 A\n", "line 3"},
	} {
		reader := regiontext.NewReaderFrom(strings.NewReader(tc.input))
		err := reader.VisitRecords(func(record.Record) error { return nil })
		require.ErrorIs(t, err, regiontext.ErrInvalidLine)
		require.ErrorContains(t, err, tc.line)
	}
}

func TestReaderMissingFile(t *testing.T) {
	_, err := regiontext.NewReader(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestWriterInvalidData(t *testing.T) {
	writer, err := regiontext.NewWriter(filepath.Join(t.TempDir(), "regions.txt"))
	require.NoError(t, err)
	defer writer.Close()

	for _, d := range []string{"", "two words", "tab\tbed"} {
		err := writer.WriteRecord(record.Record{Region: geom.Region{X2: 1, Y2: 1}, Data: []string{d}})
		require.ErrorIs(t, err, regiontext.ErrInvalidData)
	}
}
