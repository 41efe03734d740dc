package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tobyhm/lattice/cell"
	"github.com/tobyhm/lattice/grid"

	graphemeutil "github.com/tobyhm/lattice/internal/grapheme"
)

// gutterWidth is the width of the row-number gutter, including its trailing
// space. Zero when coordinates are hidden.
func (m Model) gutterWidth() int {
	if !m.cfg.ShowCoords {
		return 0
	}
	return len(strconv.Itoa(m.cfg.MaxRow)) + 1
}

func (m *Model) renderContent() string {
	cols := m.visibleCols()
	if cols <= 0 {
		return ""
	}

	box := m.g.BoundingBox()
	cur := m.g.Cursor()
	gutter := m.gutterWidth()

	var sb strings.Builder
	for row := 0; row <= m.cfg.MaxRow; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		if gutter > 0 {
			style := m.cfg.Style.Coord
			if row == cur.Row {
				style = m.cfg.Style.CoordActive
			}
			sb.WriteString(style.Render(fmt.Sprintf("%*d ", gutter-1, row)))
		}
		for col := m.xOffset; col < m.xOffset+cols && col <= m.cfg.MaxCol; col++ {
			p := grid.Pos{Row: row, Col: col}
			ov := overlayNone
			if p == cur {
				ov = overlayCursor
			} else if box.Area() > 1 && box.Contains(p) {
				ov = overlaySelected
			}
			sb.WriteString(m.renderCell(p, ov))
		}
	}
	return sb.String()
}

// renderCell returns the styled text for one cell. Results are cached by the
// exact raw string, occupancy, and overlay; the styles are fixed for the
// model's lifetime, so entries stay valid and repopulate lazily on miss.
func (m *Model) renderCell(p grid.Pos, ov overlayKind) string {
	raw, ok := m.g.Get(p)
	k := cellKey{raw: raw, occupied: ok, overlay: ov}
	if s, hit := m.cellCache[k]; hit {
		return s
	}

	cw := m.cfg.CellWidth
	var base lipgloss.Style
	var text string
	if ok {
		v := cell.ParseValue(raw)
		text = graphemeutil.Pad(v.Content, cw)
		base = m.cfg.Style.Cell
		if v.Style != nil {
			base = base.Foreground(v.Style.Fg.Color())
			if v.Style.Bg != nil {
				base = base.Background(v.Style.Bg.Color())
			}
		}
	} else {
		text = strings.Repeat(" ", cw)
		base = m.cfg.Style.EmptyCell
	}

	style := base
	switch ov {
	case overlayCursor:
		style = m.cfg.Style.Cursor.Inherit(base)
	case overlaySelected:
		style = m.cfg.Style.Selection.Inherit(base)
	}

	out := style.Render(text)
	m.cellCache[k] = out
	return out
}

func (m Model) coordHeader() string {
	cols := m.visibleCols()
	if cols <= 0 {
		return ""
	}
	cur := m.g.Cursor()

	var sb strings.Builder
	if g := m.gutterWidth(); g > 0 {
		sb.WriteString(strings.Repeat(" ", g))
	}
	for col := m.xOffset; col < m.xOffset+cols && col <= m.cfg.MaxCol; col++ {
		style := m.cfg.Style.Coord
		if col == cur.Col {
			style = m.cfg.Style.CoordActive
		}
		sb.WriteString(style.Render(graphemeutil.Pad(strconv.Itoa(col), m.cfg.CellWidth)))
	}
	return sb.String()
}

func (m Model) statusLine() string {
	if m.mode == ModeEdit {
		return m.cfg.Style.EditBox.Render("edit: " + m.pending + "▏")
	}

	cur, mark := m.g.Cursor(), m.g.Mark()
	box := m.g.BoundingBox()
	s := fmt.Sprintf("(%d,%d)", cur.Row, cur.Col)
	if mark != cur {
		s += fmt.Sprintf(" mark (%d,%d) sel %dx%d", mark.Row, mark.Col, box.Rows(), box.Cols())
	}
	s += fmt.Sprintf("  cells %d  rule %s", m.g.Len(), m.rule)
	if m.lastErr != nil {
		s += "  error: " + m.lastErr.Error()
	}
	return m.cfg.Style.Status.Render(s)
}

func (m Model) View() string {
	sections := make([]string, 0, 3)
	if m.cfg.ShowCoords {
		sections = append(sections, m.coordHeader())
	}
	sections = append(sections, m.viewport.View(), m.statusLine())
	base := strings.Join(sections, "\n")

	if m.showHelp {
		return m.compositeHelp(base)
	}
	return base
}
