package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tobyhm/lattice/grid"
	"github.com/tobyhm/lattice/rules"

	graphemeutil "github.com/tobyhm/lattice/internal/grapheme"
)

func (m Model) handleKey(msg tea.KeyMsg) Model {
	km := m.cfg.KeyMap

	if m.showHelp {
		if key.Matches(msg, km.Help) || key.Matches(msg, km.Cancel) {
			m.showHelp = false
		}
		return m
	}

	if m.mode == ModeEdit {
		return m.handleEditKey(msg)
	}

	switch {
	case key.Matches(msg, km.Left):
		m.g.Move(grid.Move{Dir: grid.DirLeft})
	case key.Matches(msg, km.Right):
		m.g.Move(grid.Move{Dir: grid.DirRight})
	case key.Matches(msg, km.Up):
		m.g.Move(grid.Move{Dir: grid.DirUp})
	case key.Matches(msg, km.Down):
		m.g.Move(grid.Move{Dir: grid.DirDown})

	case key.Matches(msg, km.ShiftLeft):
		m.g.Move(grid.Move{Dir: grid.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		m.g.Move(grid.Move{Dir: grid.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		m.g.Move(grid.Move{Dir: grid.DirUp, Extend: true})
	case key.Matches(msg, km.ShiftDown):
		m.g.Move(grid.Move{Dir: grid.DirDown, Extend: true})

	case key.Matches(msg, km.Edit):
		m.mode = ModeEdit
		m.pending = ""

	case key.Matches(msg, km.DeleteSelection):
		rules.DeleteSelection(m.g)

	case key.Matches(msg, km.Evolve):
		m.lastErr = rules.Step(m.g, m.rule)

	case key.Matches(msg, km.CycleRule):
		m.rule = nextVariant(m.rule)

	case key.Matches(msg, km.Help):
		m.showHelp = true
	}

	return m
}

func (m Model) handleEditKey(msg tea.KeyMsg) Model {
	km := m.cfg.KeyMap

	switch {
	case key.Matches(msg, km.Edit):
		// Commit. An empty buffer clears the cell.
		if m.pending == "" {
			m.g.Delete(m.g.Cursor())
		} else {
			m.g.Put(m.g.Cursor(), m.pending)
		}
		m.pending = ""
		m.mode = ModeNavigate
		return m

	case key.Matches(msg, km.Cancel):
		m.pending = ""
		m.mode = ModeNavigate
		return m

	case key.Matches(msg, km.Backspace):
		m.pending = graphemeutil.PopLast(m.pending)
		return m
	}

	if msg.Type == tea.KeySpace {
		m.pending += " "
		return m
	}
	if msg.Type == tea.KeyRunes && !msg.Alt {
		for _, r := range msg.Runes {
			if acceptRune(r) {
				m.pending += string(r)
			}
		}
	}
	return m
}

func nextVariant(v rules.Variant) rules.Variant {
	switch v {
	case rules.DirectionalGrowth:
		return rules.LifeLike
	default:
		return rules.DirectionalGrowth
	}
}
