package grid

type MoveDir int

const (
	DirUp MoveDir = iota
	DirDown
	DirLeft
	DirRight
)

type Move struct {
	Dir    MoveDir
	Extend bool // if true, the mark stays anchored and the envelope grows
}

// Move shifts the cursor one cell in m.Dir, clamped to the grid bounds.
// Without Extend the mark snaps to the same target, collapsing the envelope
// back to a single cell.
func (g *Grid) Move(m Move) {
	target := g.cursor
	switch m.Dir {
	case DirUp:
		target.Row--
	case DirDown:
		target.Row++
	case DirLeft:
		target.Col--
	case DirRight:
		target.Col++
	}
	target = ClampPos(target, g.opt.MaxRow, g.opt.MaxCol)

	nextMark := g.mark
	if !m.Extend {
		nextMark = target
	}

	if target == g.cursor && nextMark == g.mark {
		return
	}
	g.cursor = target
	g.mark = nextMark
	g.version++
}
