package grid

// Pos points to a grid cell by (row, col). Row and Col are 0-based.
type Pos struct {
	Row int
	Col int
}

// Rect is an inclusive rectangle of grid positions: both Min and Max are
// inside the rectangle, so the smallest possible Rect spans a single cell.
type Rect struct {
	Min Pos
	Max Pos
}

func ComparePos(a, b Pos) int {
	if a.Row < b.Row {
		return -1
	}
	if a.Row > b.Row {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

// Envelope returns the inclusive bounding rectangle spanned by a and b,
// regardless of their relative order.
func Envelope(a, b Pos) Rect {
	return Rect{
		Min: Pos{Row: minInt(a.Row, b.Row), Col: minInt(a.Col, b.Col)},
		Max: Pos{Row: maxInt(a.Row, b.Row), Col: maxInt(a.Col, b.Col)},
	}
}

func (r Rect) Contains(p Pos) bool {
	return p.Row >= r.Min.Row && p.Row <= r.Max.Row &&
		p.Col >= r.Min.Col && p.Col <= r.Max.Col
}

// Rows returns the inclusive row extent of r.
func (r Rect) Rows() int { return r.Max.Row - r.Min.Row + 1 }

// Cols returns the inclusive column extent of r.
func (r Rect) Cols() int { return r.Max.Col - r.Min.Col + 1 }

// Area returns the number of positions inside r.
func (r Rect) Area() int { return r.Rows() * r.Cols() }

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// ClampPos clamps p into [0, maxRow] x [0, maxCol].
func ClampPos(p Pos, maxRow, maxCol int) Pos {
	return Pos{
		Row: clampInt(p.Row, 0, maxRow),
		Col: clampInt(p.Col, 0, maxCol),
	}
}
