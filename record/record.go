// Package record provides the region record type shared by the region list
// loaders and the interfaces they implement.
package record

import "github.com/eak1mov/go-cornerstitch/geom"

// Record is a single input region together with the data values carried by
// the area it covers.
type Record struct {
	Region geom.Region
	Data   []string
}

// Writer defines an interface for writing records to a region list.
type Writer interface {
	// WriteRecord appends a single record.
	WriteRecord(rec Record) error

	// Finalize completes the writing process: flushes buffers and writes indices.
	// It must be called before closing the Writer.
	Finalize() error
}

type Visitor interface {
	// VisitRecords visits all records in input order, calling the visitor for each.
	// It returns the first error returned by the visitor or met while reading.
	VisitRecords(visitor func(Record) error) error
}
