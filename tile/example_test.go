package tile_test

import (
	"fmt"

	"github.com/eak1mov/go-cornerstitch/geom"
	"github.com/eak1mov/go-cornerstitch/tile"
)

func ExamplePlane_Add() {
	p, err := tile.New[string](geom.Region{X1: 0, Y1: 0, X2: 100, Y2: 100})
	if err != nil {
		panic(err)
	}
	if err := p.Add(geom.Region{X1: 10, Y1: 10, X2: 40, Y2: 40}, tile.AddNew, "metal1"); err != nil {
		panic(err)
	}
	if err := p.Add(geom.Region{X1: 40, Y1: 10, X2: 60, Y2: 40}, tile.AddMerge, "metal1"); err != nil {
		panic(err)
	}
	for t := range p.AllTiles(tile.ModeSolid) {
		fmt.Println(t.Region(), t.Data())
	}
	fmt.Println(p.FindCount(tile.ModeClear))
	// Output:
	// (10,10)-(60,40) [metal1]
	// 4
}

func ExamplePlane_FindNearest() {
	p, err := tile.New[string](geom.Region{X1: 0, Y1: 0, X2: 100, Y2: 100})
	if err != nil {
		panic(err)
	}
	_ = p.Add(geom.Region{X1: 10, Y1: 10, X2: 20, Y2: 20}, tile.AddNew, "A")
	_ = p.Add(geom.Region{X1: 70, Y1: 70, X2: 80, Y2: 80}, tile.AddNew, "B")

	t, dist := p.FindNearest(geom.Region{X1: 30, Y1: 30, X2: 30, Y2: 30}, tile.NearestOptions{})
	fmt.Printf("%v %.2f\n", t.Data(), dist)
	// Output:
	// [A] 14.14
}
