package regiontext

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"

	"github.com/eak1mov/go-cornerstitch/record"
)

// Writer implements record.Writer interface for text region lists.
type Writer struct {
	file   *os.File
	writer *bufio.Writer
}

// NewWriter creates the file at filePath, along with missing parent
// directories, and returns a Writer for it.
//
// The returned Writer must be closed after use.
func NewWriter(filePath string) (*Writer, error) {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, err
	}
	file, err := os.Create(filePath)
	if err != nil {
		return nil, err
	}
	return &Writer{file, bufio.NewWriter(file)}, nil
}

func (w *Writer) Close() error {
	return w.file.Close()
}

func (w *Writer) WriteRecord(rec record.Record) error {
	line, err := formatRecord(rec)
	if err != nil {
		return err
	}
	_, err = w.writer.WriteString(line + "\n")
	return err
}

func (w *Writer) Finalize() error {
	return errors.Join(w.writer.Flush(), w.file.Sync())
}
