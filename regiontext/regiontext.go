// Package regiontext provides API for reading and writing region lists in a
// line-oriented text format:
//
//	# comment
//	x1 y1 x2 y2 [data...]
//
// Fields are separated by white space; blank lines and lines starting with
// '#' are ignored.
package regiontext

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/eak1mov/go-cornerstitch/geom"
	"github.com/eak1mov/go-cornerstitch/record"
)

var (
	ErrInvalidLine = errors.New("cornerstitch: invalid region line")
	ErrInvalidData = errors.New("cornerstitch: invalid data value")
)

func parseLine(line string) (record.Record, bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return record.Record{}, false, nil
	}

	fields := strings.Fields(line)
	if len(fields) < 4 {
		return record.Record{}, false, fmt.Errorf("want at least 4 fields, got %d", len(fields))
	}
	var coords [4]float64
	for i := range coords {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return record.Record{}, false, err
		}
		coords[i] = v
	}

	rec := record.Record{
		Region: geom.Region{X1: coords[0], Y1: coords[1], X2: coords[2], Y2: coords[3]},
	}
	if len(fields) > 4 {
		rec.Data = fields[4:]
	}
	return rec, true, nil
}

func formatRecord(rec record.Record) (string, error) {
	r := rec.Region
	fields := make([]string, 0, 4+len(rec.Data))
	for _, v := range []float64{r.X1, r.Y1, r.X2, r.Y2} {
		fields = append(fields, strconv.FormatFloat(v, 'g', -1, 64))
	}
	for _, d := range rec.Data {
		if d == "" || strings.ContainsFunc(d, unicode.IsSpace) {
			return "", fmt.Errorf("%w: %q", ErrInvalidData, d)
		}
		fields = append(fields, d)
	}
	return strings.Join(fields, " "), nil
}
