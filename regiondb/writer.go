package regiondb

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/eak1mov/go-cornerstitch/record"
)

// Writer implements record.Writer interface for SQLite region lists.
type Writer struct {
	db     *sql.DB
	stmt   *sql.Stmt
	logger *slog.Logger
}

type writerConfig struct {
	Metadata map[string]string
	Logger   *slog.Logger
}

type WriterOption func(*writerConfig)

func WithMetadata(metadata map[string]string) WriterOption {
	return func(c *writerConfig) { c.Metadata = metadata }
}

func WithLogger(logger *slog.Logger) WriterOption {
	return func(c *writerConfig) { c.Logger = logger }
}

// NewWriter creates a new Writer for a fresh database at filePath.
// It applies given options and creates the tables.
func NewWriter(filePath string, opts ...WriterOption) (*Writer, error) {
	config := writerConfig{
		Logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&config)
	}

	var err error
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			db.Close()
		}
	}()

	_, err = db.Exec(`
		CREATE TABLE metadata (name TEXT, value TEXT);
		CREATE TABLE regions (
			x1 REAL,
			y1 REAL,
			x2 REAL,
			y2 REAL,
			data TEXT
		);
	`)
	if err != nil {
		return nil, err
	}

	for k, v := range config.Metadata {
		_, err = db.Exec("INSERT INTO metadata (name, value) VALUES (?, ?)", k, v)
		if err != nil {
			return nil, err
		}
	}

	stmt, err := db.Prepare("INSERT INTO regions (x1, y1, x2, y2, data) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return nil, err
	}

	return &Writer{db, stmt, config.Logger}, nil
}

func (w *Writer) Close() error {
	return errors.Join(w.stmt.Close(), w.db.Close())
}

// WriteRecord inserts rec. Data values must not contain the ',' separator.
func (w *Writer) WriteRecord(rec record.Record) error {
	for _, d := range rec.Data {
		if d == "" || strings.Contains(d, dataSeparator) {
			return fmt.Errorf("%w: %q", ErrInvalidData, d)
		}
	}
	r := rec.Region
	_, err := w.stmt.Exec(r.X1, r.Y1, r.X2, r.Y2, strings.Join(rec.Data, dataSeparator))
	return err
}

func (w *Writer) Finalize() error {
	w.logger.Debug("cornerstitch: creating index")
	_, err := w.db.Exec("CREATE INDEX region_index ON regions (y1, x1)")
	w.logger.Debug("cornerstitch: done!")
	return err
}
