package editor

import "github.com/tobyhm/lattice/rules"

// Config configures the editor Model.
type Config struct {
	// Grid bounds (inclusive maxima for cursor and mark).
	MaxRow int
	MaxCol int

	// CellWidth is the rendered width of one cell in terminal columns.
	CellWidth int

	// ShowCoords draws row and column coordinate gutters.
	ShowCoords bool

	// Rule is the initially selected rule variant.
	Rule rules.Variant

	// Rendering options.
	Style  Style
	KeyMap KeyMap

	// OnChange, when set, is called after any update that changed grid
	// state (cells, cursor, or mark).
	OnChange func(ChangeEvent)
}

const defaultCellWidth = 8

func (c Config) withDefaults() Config {
	if c.CellWidth <= 0 {
		c.CellWidth = defaultCellWidth
	}
	if c.MaxRow <= 0 {
		c.MaxRow = 99
	}
	if c.MaxCol <= 0 {
		c.MaxCol = 99
	}
	c.KeyMap = normalizeKeyMap(c.KeyMap)
	return c
}
