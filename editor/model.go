package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tobyhm/lattice/grid"
	"github.com/tobyhm/lattice/rules"
)

// Mode is the editor's input mode.
type Mode int

const (
	// ModeNavigate routes keys to cursor movement and grid commands.
	ModeNavigate Mode = iota
	// ModeEdit routes printable keys into the pending cell buffer.
	ModeEdit
)

// Model is a Bubble Tea component that renders and interacts with a grid.
type Model struct {
	cfg Config
	g   *grid.Grid

	mode    Mode
	pending string

	rule    rules.Variant
	lastErr error

	showHelp bool

	viewport viewport.Model
	width    int
	height   int
	xOffset  int // leftmost visible grid column

	lastVersion uint64
	cellCache   map[cellKey]string
}

type cellKey struct {
	raw      string
	occupied bool
	overlay  overlayKind
}

type overlayKind uint8

const (
	overlayNone overlayKind = iota
	overlaySelected
	overlayCursor
)

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	m := Model{
		cfg:       cfg,
		g:         grid.New(grid.Options{MaxRow: cfg.MaxRow, MaxCol: cfg.MaxCol}),
		rule:      cfg.Rule,
		viewport:  viewport.New(0, 0),
		cellCache: make(map[cellKey]string),
	}
	m.lastVersion = m.g.Version()
	m.rebuildContent()
	return m
}

// Grid exposes the backing grid so hosts can seed cells or drive edits
// directly.
func (m Model) Grid() *grid.Grid { return m.g }

// Rule returns the active rule variant.
func (m Model) Rule() rules.Variant { return m.rule }

// Mode returns the current input mode.
func (m Model) Mode() Mode { return m.mode }

// Pending returns the uncommitted edit buffer.
func (m Model) Pending() string { return m.pending }

// Err returns the error from the most recent rule step, if any. It is
// cleared by the next successful step.
func (m Model) Err() error { return m.lastErr }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height

	m.viewport.Width = width
	m.viewport.Height = maxInt(height-m.chromeHeight(), 0)

	m.rebuildContent()
	m.followCursor()
	return m
}

// chromeHeight counts the fixed lines around the viewport: the status line
// and, when enabled, the column coordinate header.
func (m Model) chromeHeight() int {
	h := 1
	if m.cfg.ShowCoords {
		h++
	}
	return h
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	prevVersion := m.g.Version()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		m = m.handleKey(msg)
	case tea.MouseMsg:
		// Allow manual scrolling via the mouse wheel.
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if ver := m.g.Version(); ver != m.lastVersion {
		m.lastVersion = ver
		m.rebuildContent()
		m.followCursor()
	}
	if m.cfg.OnChange != nil && m.g.Version() != prevVersion {
		m.cfg.OnChange(buildChangeEvent(m.g))
	}
	return m, nil
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

// followCursor scrolls the viewport and horizontal offset so the cursor
// cell stays visible.
func (m *Model) followCursor() {
	cur := m.g.Cursor()

	h := m.viewport.Height
	if h > 0 {
		y := m.viewport.YOffset
		if cur.Row < y {
			m.viewport.SetYOffset(cur.Row)
		} else if cur.Row >= y+h {
			m.viewport.SetYOffset(cur.Row - h + 1)
		}
	}

	cols := m.visibleCols()
	if cols <= 0 {
		return
	}
	rebuilt := false
	if cur.Col < m.xOffset {
		m.xOffset = cur.Col
		rebuilt = true
	} else if cur.Col >= m.xOffset+cols {
		m.xOffset = cur.Col - cols + 1
		rebuilt = true
	}
	if rebuilt {
		m.rebuildContent()
	}
}

// visibleCols reports how many whole cells fit beside the row gutter.
func (m Model) visibleCols() int {
	w := m.viewport.Width - m.gutterWidth()
	if w <= 0 || m.cfg.CellWidth <= 0 {
		return 0
	}
	return w / m.cfg.CellWidth
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
