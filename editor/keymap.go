package editor

import (
	"reflect"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the editor key bindings.
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding

	Edit      key.Binding // toggle edit mode / commit the pending buffer
	Cancel    key.Binding
	Backspace key.Binding

	DeleteSelection key.Binding
	Evolve          key.Binding
	CycleRule       key.Binding

	Help key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "extend left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "extend right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "extend up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "extend down")),

		Edit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit cell / commit")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel edit")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete last char")),

		DeleteSelection: key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "delete selection")),
		Evolve:          key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "evolve selection")),
		CycleRule:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "cycle rule")),

		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
	}
}

func normalizeKeyMap(km KeyMap) KeyMap {
	if reflect.DeepEqual(km, KeyMap{}) {
		return DefaultKeyMap()
	}
	return km
}

// helpBindings lists the bindings shown on the help overlay, in display
// order.
func (km KeyMap) helpBindings() []key.Binding {
	return []key.Binding{
		km.Left, km.Right, km.Up, km.Down,
		km.ShiftLeft, km.ShiftRight, km.ShiftUp, km.ShiftDown,
		km.Edit, km.Cancel, km.Backspace,
		km.DeleteSelection, km.Evolve, km.CycleRule,
		km.Help,
	}
}
