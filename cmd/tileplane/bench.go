package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/eak1mov/go-cornerstitch/internal"
	"github.com/eak1mov/go-cornerstitch/regiondb"
	"github.com/eak1mov/go-cornerstitch/tile"
	"github.com/google/subcommands"
	"github.com/schollz/progressbar/v3"
)

type benchCmd struct {
	count   int
	bounds  string
	maxSize float64
	seed    uint64
	check   int
}

func (c *benchCmd) Name() string     { return "bench" }
func (c *benchCmd) Synopsis() string { return "run random add and delete cycles on a tile plane" }
func (c *benchCmd) Usage() string {
	return "tileplane bench [-n <count> -bounds x1,y1,x2,y2 -max <size> -seed <seed> -check <period>]\n"
}
func (c *benchCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.count, "n", 100000, "Number of operations")
	f.StringVar(&c.bounds, "bounds", "0,0,10000,10000", "Plane bounds")
	f.Float64Var(&c.maxSize, "max", 100, "Maximum region side")
	f.Uint64Var(&c.seed, "seed", 1, "Random seed")
	f.IntVar(&c.check, "check", 0, "Validate the plane every given number of operations (0 disables)")
}

func (c *benchCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	bounds, err := regiondb.ParseBounds(c.bounds)
	if err != nil {
		log.Println(err)
		return subcommands.ExitUsageError
	}
	plane, err := tile.New[int](bounds)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	rng := rand.New(rand.NewPCG(c.seed, c.seed+1))
	var adds, deletes, rejected int
	var elapsed time.Duration

	bar := progressbar.NewOptions(c.count, progressbar.OptionSetDescription("bench"), progressbar.OptionShowIts(), progressbar.OptionShowCount())
	i := 0
	for region := range internal.RandomRegions(c.seed, bounds, c.count, c.maxSize) {
		start := time.Now()
		if rng.IntN(3) == 0 {
			err = plane.Delete(region, tile.DeleteClip)
			deletes++
		} else {
			err = plane.Add(region, tile.AddOverlap, i%16)
			adds++
		}
		elapsed += time.Since(start)
		if err != nil {
			rejected++
		}

		i++
		if c.check > 0 && i%c.check == 0 {
			if err := plane.Validate(); err != nil {
				bar.Finish()
				log.Printf("operation %d: %v", i, err)
				return subcommands.ExitFailure
			}
		}
		bar.Add(1)
	}
	bar.Finish()
	fmt.Println()

	ops := max(1, adds+deletes)
	fmt.Printf("operations: %d (add %d, delete %d, rejected %d)\n", adds+deletes, adds, deletes, rejected)
	fmt.Printf("elapsed: %v (%v per operation)\n", elapsed, elapsed/time.Duration(ops))
	fmt.Printf("tiles: %d (solid %d, clear %d)\n",
		plane.Count(), plane.FindCount(tile.ModeSolid), plane.FindCount(tile.ModeClear))
	return subcommands.ExitSuccess
}
