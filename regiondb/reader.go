// Package regiondb provides API for reading and writing region lists stored
// in SQLite databases.
//
// Regions live in a "regions" table with one row per record; data values are
// joined with ','. A "metadata" table holds name/value pairs such as
// MetadataBounds and MetadataMinGrid.
//
// Note: User must properly initialize the sqlite3 library generic driver
// (e.g. import _ "github.com/mattn/go-sqlite3") before using this package.
package regiondb

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/eak1mov/go-cornerstitch/geom"
	"github.com/eak1mov/go-cornerstitch/record"
)

var (
	ErrNoTable     = errors.New("cornerstitch: regions table not found")
	ErrInvalidData = errors.New("cornerstitch: invalid data value")
)

const (
	MetadataBounds  = "bounds"
	MetadataMinGrid = "min_grid"
)

const dataSeparator = ","

// Reader implements record.Visitor interface for SQLite region lists.
type Reader struct {
	db *sql.DB
}

// NewReader opens the database at filePath read-only.
//
// The returned Reader must be closed after use to release database resources.
func NewReader(filePath string) (*Reader, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", filePath))
	if err != nil {
		return nil, err
	}

	var name string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'regions'").Scan(&name)
	if err != nil {
		db.Close()
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %v", ErrNoTable, filePath)
		}
		return nil, err
	}

	return &Reader{db: db}, nil
}

func (r *Reader) Close() error {
	return r.db.Close()
}

func (r *Reader) ReadMetadata() (map[string]string, error) {
	metadata := make(map[string]string)

	rows, err := r.db.Query("SELECT name, value FROM metadata")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		metadata[name] = value
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return metadata, nil
}

// VisitRecords visits the records in insertion order.
func (r *Reader) VisitRecords(visitor func(record.Record) error) error {
	rows, err := r.db.Query("SELECT x1, y1, x2, y2, data FROM regions ORDER BY rowid")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var rec record.Record
		var data string
		region := &rec.Region
		if err := rows.Scan(&region.X1, &region.Y1, &region.X2, &region.Y2, &data); err != nil {
			return err
		}
		if data != "" {
			rec.Data = strings.Split(data, dataSeparator)
		}

		if err := visitor(rec); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		return err
	}

	return nil
}

// FormatBounds encodes a region as a MetadataBounds value.
func FormatBounds(r geom.Region) string {
	return fmt.Sprintf("%g,%g,%g,%g", r.X1, r.Y1, r.X2, r.Y2)
}

// ParseBounds decodes a MetadataBounds value.
func ParseBounds(s string) (geom.Region, error) {
	var r geom.Region
	if _, err := fmt.Sscanf(s, "%g,%g,%g,%g", &r.X1, &r.Y1, &r.X2, &r.Y2); err != nil {
		return geom.Region{}, fmt.Errorf("invalid bounds %q: %w", s, err)
	}
	return r, nil
}
