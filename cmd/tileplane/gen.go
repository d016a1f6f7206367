package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/eak1mov/go-cornerstitch/internal"
	"github.com/eak1mov/go-cornerstitch/record"
	"github.com/eak1mov/go-cornerstitch/regiondb"
	"github.com/google/subcommands"
	"github.com/schollz/progressbar/v3"
)

type genCmd struct {
	outputFormat string
	outputPath   string
	count        int
	bounds       string
	maxSize      float64
	layers       int
	seed         uint64
}

func (c *genCmd) Name() string     { return "gen" }
func (c *genCmd) Synopsis() string { return "generate a random region list" }
func (c *genCmd) Usage() string {
	return "tileplane gen -o <path> [-of <format> -n <count> -bounds x1,y1,x2,y2 -max <size> -layers <count> -seed <seed>]\n"
}
func (c *genCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputPath, "o", "", "Output path")
	f.StringVar(&c.outputFormat, "of", "", "Output format (text, sqlite)")
	f.IntVar(&c.count, "n", 1000, "Number of regions")
	f.StringVar(&c.bounds, "bounds", "0,0,1000,1000", "Region bounds")
	f.Float64Var(&c.maxSize, "max", 50, "Maximum region side")
	f.IntVar(&c.layers, "layers", 4, "Number of distinct data values")
	f.Uint64Var(&c.seed, "seed", 1, "Random seed")
}

func (c *genCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	bounds, err := regiondb.ParseBounds(c.bounds)
	if err != nil {
		log.Println(err)
		return subcommands.ExitUsageError
	}
	layers := max(1, c.layers)

	writer, err := openWriter(c.outputFormat, c.outputPath, bounds)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	defer closeAll(writer)

	bar := progressbar.NewOptions(c.count, progressbar.OptionSetDescription("writing"), progressbar.OptionShowIts(), progressbar.OptionShowCount())
	i := 0
	for region := range internal.RandomRegions(c.seed, bounds, c.count, c.maxSize) {
		rec := record.Record{Region: region, Data: []string{fmt.Sprintf("layer%d", i%layers)}}
		if err := writer.WriteRecord(rec); err != nil {
			log.Println(err)
			return subcommands.ExitFailure
		}
		bar.Add(1)
		i++
	}
	bar.Finish()
	fmt.Println()

	if err := writer.Finalize(); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
