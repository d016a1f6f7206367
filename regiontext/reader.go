package regiontext

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/eak1mov/go-cornerstitch/record"
)

// Reader implements record.Visitor interface for text region lists.
type Reader struct {
	filePath string
	src      io.Reader
}

// NewReader creates a new Reader for the given file path. The file is opened
// on every VisitRecords call.
func NewReader(filePath string) (*Reader, error) {
	if _, err := os.Stat(filePath); err != nil {
		return nil, err
	}
	return &Reader{filePath: filePath}, nil
}

// NewReaderFrom creates a new Reader consuming src. Such a Reader can only be
// visited once.
func NewReaderFrom(src io.Reader) *Reader {
	return &Reader{src: src}
}

func (r *Reader) VisitRecords(visitor func(record.Record) error) error {
	src := r.src
	if r.filePath != "" {
		file, err := os.Open(r.filePath)
		if err != nil {
			return err
		}
		defer file.Close()
		src = file
	}

	scanner := bufio.NewScanner(src)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		rec, ok, err := parseLine(scanner.Text())
		if err != nil {
			return fmt.Errorf("%w: line %d: %w", ErrInvalidLine, lineNo, err)
		}
		if !ok {
			continue
		}
		if err := visitor(rec); err != nil {
			return err
		}
	}
	return scanner.Err()
}
