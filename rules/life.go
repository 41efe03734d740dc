package rules

import (
	"fmt"
	"strconv"

	"github.com/tobyhm/lattice/cell"
	"github.com/tobyhm/lattice/grid"
)

func evalLife(g *grid.Grid, p grid.Pos) (*string, error) {
	self, err := lifeState(g, p)
	if err != nil {
		return nil, err
	}

	sum := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			s, err := lifeState(g, grid.Pos{Row: p.Row + dr, Col: p.Col + dc})
			if err != nil {
				return nil, err
			}
			sum += s
		}
	}

	alive := sum == 3 || (self == 1 && sum == 2)
	if !alive {
		// Dead cells are cleared from storage, never stored as "0".
		return nil, nil
	}
	out := cell.Colorize("1")
	return &out, nil
}

// lifeState decodes the numeric automaton state at p. Absent cells are 0;
// for stored cells the content segment (the whole string when no tag is
// present) must parse as an integer, and a parse failure propagates to the
// caller.
func lifeState(g *grid.Grid, p grid.Pos) (int, error) {
	raw, ok := g.Get(p)
	if !ok {
		return 0, nil
	}
	_, _, content := cell.Decode(raw)
	n, err := strconv.Atoi(content)
	if err != nil {
		return 0, fmt.Errorf("cell (%d,%d): %w", p.Row, p.Col, err)
	}
	return n, nil
}
