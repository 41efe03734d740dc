package rules

import (
	"github.com/tobyhm/lattice/cell"
	"github.com/tobyhm/lattice/grid"
)

// growthTable is the fixed elementary rule: one output bit per 3-bit parent
// pattern, MSB-first (index 0 is pattern 111, index 7 is pattern 000).
const growthTable = "01101110"

func evalGrowth(g *grid.Grid, p grid.Pos) *string {
	// Already-set cells are frozen; the rule only fills forward.
	if raw, ok := g.Get(p); ok {
		return &raw
	}

	var parents [3]string
	valid := 0
	for i, dc := range [3]int{-1, 0, 1} {
		raw, ok := g.Get(grid.Pos{Row: p.Row - 1, Col: p.Col + dc})
		if !ok {
			continue
		}
		_, _, content := cell.Decode(raw)
		if content == "0" || content == "1" {
			parents[i] = content
			valid++
		}
	}

	switch valid {
	case 0:
		// No ancestry, no growth.
		return nil
	case 3:
		out := cell.Colorize(growthBit(parents[0] + parents[1] + parents[2]))
		return &out
	default:
		// Partial ancestry never produces a live cell.
		out := cell.Colorize("0")
		return &out
	}
}

func growthBit(pattern string) string {
	n := 0
	for _, r := range pattern {
		n <<= 1
		if r == '1' {
			n |= 1
		}
	}
	return string(growthTable[7-n])
}
