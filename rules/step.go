package rules

import (
	"fmt"

	"github.com/tobyhm/lattice/grid"
)

// Step advances the current selection of g by one generation under v.
//
// Every position in the envelope is evaluated against the pre-step grid
// before any result is applied, so each cell's next value is a function of
// the current generation only. An evaluation error aborts the batch before
// the first write, leaving g untouched.
func Step(g *grid.Grid, v Variant) error {
	type result struct {
		pos grid.Pos
		val *string
	}

	positions := g.SelectedPositions(true)
	results := make([]result, 0, len(positions))
	for _, p := range positions {
		val, err := Evaluate(g, p, v)
		if err != nil {
			return fmt.Errorf("step %s: %w", v, err)
		}
		results = append(results, result{pos: p, val: val})
	}

	for _, r := range results {
		g.Set(r.pos, r.val)
	}
	return nil
}

// DeleteSelection removes every occupied cell inside the envelope.
func DeleteSelection(g *grid.Grid) {
	for _, p := range g.SelectedPositions(false) {
		g.Delete(p)
	}
}
