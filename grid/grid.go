package grid

// Options configures a Grid.
type Options struct {
	MaxRow int // inclusive row bound for cursor/mark; default: 99
	MaxCol int // inclusive column bound for cursor/mark; default: 99
}

// Grid is the pure sheet state: sparse cells, cursor, and mark.
//
// The mark follows the cursor unless a move extends the selection, so the
// envelope between them is always well-defined and covers at least the
// cursor's own cell.
type Grid struct {
	cells   map[Pos]string
	version uint64

	cursor Pos
	mark   Pos

	opt Options
}

func New(opt Options) *Grid {
	if opt.MaxRow <= 0 {
		opt.MaxRow = 99
	}
	if opt.MaxCol <= 0 {
		opt.MaxCol = 99
	}
	return &Grid{
		cells: make(map[Pos]string),
		opt:   opt,
	}
}

// Version increases on every observable state change: a cell write or
// delete that changes stored content, or a cursor/mark movement. Hosts use
// it to invalidate render caches exactly.
func (g *Grid) Version() uint64 { return g.version }

// Len returns the number of occupied cells.
func (g *Grid) Len() int { return len(g.cells) }

// Bounds returns the inclusive cursor bounds (MaxRow, MaxCol).
func (g *Grid) Bounds() (maxRow, maxCol int) { return g.opt.MaxRow, g.opt.MaxCol }

// Get returns the raw value stored at p. Absence is an ordinary result,
// never an error; an empty string is a valid stored value.
func (g *Grid) Get(p Pos) (string, bool) {
	v, ok := g.cells[p]
	return v, ok
}

// Set stores *v at p when v is non-nil, and deletes the entry when v is nil.
// Deleting an absent entry is a no-op. The nil form exists so a batch apply
// can write and clear cells through a single contract.
func (g *Grid) Set(p Pos, v *string) {
	if v == nil {
		if _, ok := g.cells[p]; !ok {
			return
		}
		delete(g.cells, p)
		g.version++
		return
	}
	if cur, ok := g.cells[p]; ok && cur == *v {
		return
	}
	g.cells[p] = *v
	g.version++
}

// Put stores s at p.
func (g *Grid) Put(p Pos, s string) { g.Set(p, &s) }

// Delete removes the entry at p, if any.
func (g *Grid) Delete(p Pos) { g.Set(p, nil) }

func (g *Grid) Cursor() Pos { return g.cursor }

func (g *Grid) Mark() Pos { return g.mark }

// MoveCursor places the cursor at p, clamped to the grid bounds. The mark
// stays where it is.
func (g *Grid) MoveCursor(p Pos) {
	next := ClampPos(p, g.opt.MaxRow, g.opt.MaxCol)
	if next == g.cursor {
		return
	}
	g.cursor = next
	g.version++
}

// MoveMark places the mark at p, clamped to the grid bounds.
func (g *Grid) MoveMark(p Pos) {
	next := ClampPos(p, g.opt.MaxRow, g.opt.MaxCol)
	if next == g.mark {
		return
	}
	g.mark = next
	g.version++
}

// BoundingBox returns the inclusive selection envelope spanned by cursor and
// mark. It is derived on every call, never cached.
func (g *Grid) BoundingBox() Rect {
	return Envelope(g.cursor, g.mark)
}

// SelectedPositions enumerates the envelope in row-major order (ascending
// row, then ascending column). With includeEmpty, every position in the
// rectangle is yielded; otherwise only occupied ones. A region with no
// occupied cells yields nothing.
func (g *Grid) SelectedPositions(includeEmpty bool) []Pos {
	box := g.BoundingBox()
	var out []Pos
	if includeEmpty {
		out = make([]Pos, 0, box.Area())
	}
	for row := box.Min.Row; row <= box.Max.Row; row++ {
		for col := box.Min.Col; col <= box.Max.Col; col++ {
			p := Pos{Row: row, Col: col}
			if !includeEmpty {
				if _, ok := g.cells[p]; !ok {
					continue
				}
			}
			out = append(out, p)
		}
	}
	return out
}
