package editor

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/tobyhm/lattice/cell"
	"github.com/tobyhm/lattice/grid"
)

func pinnedRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)
	return r
}

func testStyle(r *lipgloss.Renderer) Style {
	return Style{
		Cell:        r.NewStyle(),
		EmptyCell:   r.NewStyle(),
		Cursor:      r.NewStyle().Reverse(true),
		Selection:   r.NewStyle().Background(lipgloss.Color("237")),
		Coord:       r.NewStyle(),
		CoordActive: r.NewStyle().Bold(true),
		Status:      r.NewStyle(),
		EditBox:     r.NewStyle(),
		Help:        r.NewStyle(),
	}
}

func TestRender_ColorizedCellUsesDirectiveColors(t *testing.T) {
	st := testStyle(pinnedRenderer())
	m := New(Config{MaxRow: 1, MaxCol: 1, CellWidth: 3, Style: st})
	m = m.SetSize(20, 5)
	m.Grid().Put(grid.Pos{Row: 0, Col: 1}, cell.Colorize("1"))

	got := m.renderContent()

	black := cell.RGB{}.Color()
	live := st.Cell.Foreground(black).Background(black).Render("1  ")
	row0 := st.Cursor.Inherit(st.EmptyCell).Render("   ") + live
	row1 := st.EmptyCell.Render("   ") + st.EmptyCell.Render("   ")
	want := row0 + "\n" + row1

	if got != want {
		t.Fatalf("unexpected render:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_SelectionOverlay(t *testing.T) {
	st := testStyle(pinnedRenderer())
	m := New(Config{MaxRow: 1, MaxCol: 1, CellWidth: 2, Style: st})
	m = m.SetSize(20, 5)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})

	got := m.renderContent()

	row0 := st.Selection.Inherit(st.EmptyCell).Render("  ") +
		st.Cursor.Inherit(st.EmptyCell).Render("  ")
	row1 := st.EmptyCell.Render("  ") + st.EmptyCell.Render("  ")
	want := row0 + "\n" + row1

	if got != want {
		t.Fatalf("unexpected render:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_ContentTruncatedToCellWidth(t *testing.T) {
	st := testStyle(pinnedRenderer())
	m := New(Config{MaxRow: 1, MaxCol: 1, CellWidth: 4, Style: st})
	m = m.SetSize(20, 5)
	m.Grid().Put(grid.Pos{}, "overflowing")

	got := m.renderContent()
	empty := st.EmptyCell.Render("    ")
	want := st.Cursor.Inherit(st.Cell).Render("over") + empty + "\n" + empty + empty
	if got != want {
		t.Fatalf("unexpected render:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_CoordHeaderAndGutter(t *testing.T) {
	st := testStyle(pinnedRenderer())
	m := New(Config{MaxRow: 9, MaxCol: 9, CellWidth: 3, ShowCoords: true, Style: st})
	m = m.SetSize(14, 6) // gutter 2 + 4 visible cells

	header := m.coordHeader()
	wantHeader := "  " +
		st.CoordActive.Render("0  ") +
		st.Coord.Render("1  ") +
		st.Coord.Render("2  ") +
		st.Coord.Render("3  ")
	if header != wantHeader {
		t.Fatalf("header:\n got: %q\nwant: %q", header, wantHeader)
	}

	content := m.renderContent()
	firstLine := strings.SplitN(content, "\n", 2)[0]
	if !strings.HasPrefix(firstLine, st.CoordActive.Render("0 ")) {
		t.Fatalf("first line %q does not start with active row gutter", firstLine)
	}
}

func TestRender_StatusLine(t *testing.T) {
	st := testStyle(pinnedRenderer())
	m := New(Config{Style: st})
	m = m.SetSize(80, 24)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftDown})
	status := m.statusLine()
	for _, want := range []string{"(1,0)", "mark (0,0)", "sel 2x1", "rule growth"} {
		if !strings.Contains(status, want) {
			t.Fatalf("status %q missing %q", status, want)
		}
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	if got := m.statusLine(); !strings.Contains(got, "edit: a") {
		t.Fatalf("edit status %q missing pending buffer", got)
	}
}

func TestRender_HelpOverlayComposite(t *testing.T) {
	st := testStyle(pinnedRenderer())
	m := New(Config{Style: st})
	m = m.SetSize(80, 24)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	view := m.View()
	if !strings.Contains(view, "toggle help") {
		t.Fatalf("help overlay missing binding text")
	}
}

func TestRender_CellCacheReuse(t *testing.T) {
	st := testStyle(pinnedRenderer())
	m := New(Config{MaxRow: 4, MaxCol: 4, CellWidth: 3, Style: st})
	m = m.SetSize(30, 8)
	m.Grid().Put(grid.Pos{Row: 2, Col: 2}, cell.Colorize("1"))

	first := m.renderContent()
	if len(m.cellCache) == 0 {
		t.Fatalf("expected populated cache")
	}
	if second := m.renderContent(); second != first {
		t.Fatalf("cached render differs from first render")
	}
}
