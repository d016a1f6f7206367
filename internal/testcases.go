package internal

import (
	"testing"

	"github.com/eak1mov/go-cornerstitch/record"
	"github.com/eak1mov/go-cornerstitch/regiontext"
)

// ReadFixture loads the records of a text region list, failing the test on
// any read error.
func ReadFixture(t testing.TB, filePath string) []record.Record {
	t.Helper()

	reader, err := regiontext.NewReader(filePath)
	if err != nil {
		t.Fatal(err)
	}

	var records []record.Record
	err = reader.VisitRecords(func(rec record.Record) error {
		records = append(records, rec)
		return nil
	})
	if err != nil {
		t.Fatalf("ReadFixture(%v): %v", filePath, err)
	}
	return records
}
