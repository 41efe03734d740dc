package main

import (
	"fmt"

	"github.com/tobyhm/lattice/grid"
)

// seed plants a named starter pattern and selects an envelope around it, so
// a rule step works out of the box.
func seed(g *grid.Grid, name string) error {
	var pts []grid.Pos
	switch name {
	case "glider":
		pts = []grid.Pos{{Row: 0, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}
	case "blinker":
		pts = []grid.Pos{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}}
	case "block":
		pts = []grid.Pos{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}
	case "rowseed":
		// A three-cell frontier on row 0 for the growth rule.
		g.Put(grid.Pos{Row: 0, Col: 3}, "1")
		g.Put(grid.Pos{Row: 0, Col: 4}, "0")
		g.Put(grid.Pos{Row: 0, Col: 5}, "1")
		g.MoveMark(grid.Pos{})
		g.MoveCursor(grid.Pos{Row: 12, Col: 12})
		return nil
	default:
		return fmt.Errorf("unknown seed %q", name)
	}

	for _, p := range pts {
		g.Put(p, "1")
	}
	g.MoveMark(grid.Pos{})
	g.MoveCursor(grid.Pos{Row: 12, Col: 12})
	return nil
}
