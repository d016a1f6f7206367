package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"strconv"

	"github.com/eak1mov/go-cornerstitch/geom"
	"github.com/eak1mov/go-cornerstitch/record"
	"github.com/eak1mov/go-cornerstitch/regiondb"
	"github.com/eak1mov/go-cornerstitch/tile"
	"github.com/google/subcommands"
	"github.com/schollz/progressbar/v3"
)

type loadCmd struct {
	inputFormat string
	inputPath   string
	mode        string
	bounds      string
	grid        float64
	verbose     bool
}

func (c *loadCmd) Name() string     { return "load" }
func (c *loadCmd) Synopsis() string { return "build a tile plane from a region list and validate it" }
func (c *loadCmd) Usage() string {
	return "tileplane load -i <path> [-if <format> -mode <mode> -bounds x1,y1,x2,y2 -grid <step> -v]\n"
}
func (c *loadCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input path")
	f.StringVar(&c.inputFormat, "if", "", "Input format (text, sqlite)")
	f.StringVar(&c.mode, "mode", "overlap", "Add mode (new, merge, overlap, difference); earlier records win except in overlap mode")
	f.StringVar(&c.bounds, "bounds", "", "Plane bounds; defaults to the stored bounds or the records' extent")
	f.Float64Var(&c.grid, "grid", 0, "Minimum grid step")
	f.BoolVar(&c.verbose, "v", false, "Log plane diagnostics")
}

// planeParams resolves the plane bounds and grid from the flags, the input
// metadata and finally the extent of the records.
func (c *loadCmd) planeParams(reader record.Visitor, records []record.Record) (geom.Region, float64, error) {
	bounds, grid := geom.Region{}, c.grid
	if c.bounds != "" {
		b, err := regiondb.ParseBounds(c.bounds)
		return b, grid, err
	}

	if dbReader, ok := reader.(*regiondb.Reader); ok {
		metadata, err := dbReader.ReadMetadata()
		if err != nil {
			return geom.Region{}, 0, err
		}
		if value, found := metadata[regiondb.MetadataMinGrid]; found && grid == 0 {
			if grid, err = strconv.ParseFloat(value, 64); err != nil {
				return geom.Region{}, 0, err
			}
		}
		if value, found := metadata[regiondb.MetadataBounds]; found {
			b, err := regiondb.ParseBounds(value)
			return b, grid, err
		}
	}

	for i, rec := range records {
		if i == 0 {
			bounds = rec.Region
		} else {
			bounds = bounds.Union(rec.Region)
		}
	}
	return bounds, grid, nil
}

func (c *loadCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	mode, err := parseAddMode(c.mode)
	if err != nil {
		log.Println(err)
		return subcommands.ExitUsageError
	}

	reader, err := openReader(c.inputFormat, c.inputPath)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	defer closeAll(reader)

	var records []record.Record
	bar := progressbar.NewOptions(-1, progressbar.OptionSetDescription("reading"), progressbar.OptionShowIts(), progressbar.OptionShowCount())
	err = reader.VisitRecords(func(rec record.Record) error {
		records = append(records, rec)
		return bar.Add(1)
	})
	bar.Finish()
	fmt.Println()
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	bounds, grid, err := c.planeParams(reader, records)
	if err != nil {
		log.Println("failed to resolve plane bounds:", err)
		return subcommands.ExitFailure
	}

	opts := []tile.Option{tile.WithMinGrid(grid)}
	if c.verbose {
		opts = append(opts, tile.WithLogger(slog.Default()))
	}
	plane, err := tile.New[string](bounds, opts...)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	if err := plane.AddAll(record.IterRegions(func(yield func(record.Record) bool) {
		for _, rec := range records {
			if !yield(rec) {
				return
			}
		}
	}), mode); err != nil {
		log.Println("some regions were rejected:", err)
	}

	if err := plane.Validate(); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	fmt.Printf("bounds: %v\n", plane.Region())
	fmt.Printf("records: %d\n", len(records))
	fmt.Printf("tiles: %d (solid %d, clear %d)\n",
		plane.Count(), plane.FindCount(tile.ModeSolid), plane.FindCount(tile.ModeClear))
	return subcommands.ExitSuccess
}
