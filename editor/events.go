package editor

import "github.com/tobyhm/lattice/grid"

// ChangeEvent describes the grid state after a change, for host integration.
type ChangeEvent struct {
	Version  uint64
	Cursor   grid.Pos
	Mark     grid.Pos
	Envelope grid.Rect
	Occupied int
}

func buildChangeEvent(g *grid.Grid) ChangeEvent {
	return ChangeEvent{
		Version:  g.Version(),
		Cursor:   g.Cursor(),
		Mark:     g.Mark(),
		Envelope: g.BoundingBox(),
		Occupied: g.Len(),
	}
}
