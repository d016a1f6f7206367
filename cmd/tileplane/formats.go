package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/eak1mov/go-cornerstitch/geom"
	"github.com/eak1mov/go-cornerstitch/record"
	"github.com/eak1mov/go-cornerstitch/regiondb"
	"github.com/eak1mov/go-cornerstitch/regiontext"
	"github.com/eak1mov/go-cornerstitch/tile"
)

func deduceFormat(format, filePath string) string {
	if format == "" && (strings.HasSuffix(filePath, ".db") || strings.HasSuffix(filePath, ".sqlite")) {
		return "sqlite"
	}
	if format == "" {
		return "text"
	}
	return format
}

func openReader(format, filePath string) (record.Visitor, error) {
	switch deduceFormat(format, filePath) {
	case "sqlite":
		return regiondb.NewReader(filePath)
	case "text":
		return regiontext.NewReader(filePath)
	default:
		return nil, fmt.Errorf("invalid input format: %q", format)
	}
}

func openWriter(format, filePath string, bounds geom.Region) (record.Writer, error) {
	switch deduceFormat(format, filePath) {
	case "sqlite":
		return regiondb.NewWriter(filePath, regiondb.WithMetadata(map[string]string{
			regiondb.MetadataBounds: regiondb.FormatBounds(bounds),
		}))
	case "text":
		return regiontext.NewWriter(filePath)
	default:
		return nil, fmt.Errorf("invalid output format: %q", format)
	}
}

func closeAll(values ...any) error {
	var errs []error
	for _, v := range values {
		if closer, ok := v.(io.Closer); ok {
			errs = append(errs, closer.Close())
		}
	}
	return errors.Join(errs...)
}

var addModes = map[string]tile.AddMode{
	"new":        tile.AddNew,
	"merge":      tile.AddMerge,
	"overlap":    tile.AddOverlap,
	"difference": tile.AddDifference,
}

func parseAddMode(s string) (tile.AddMode, error) {
	mode, ok := addModes[s]
	if !ok {
		return 0, fmt.Errorf("invalid add mode: %q", s)
	}
	return mode, nil
}
