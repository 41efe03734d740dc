package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Cell      lipgloss.Style
	EmptyCell lipgloss.Style
	Cursor    lipgloss.Style
	Selection lipgloss.Style

	Coord       lipgloss.Style
	CoordActive lipgloss.Style

	Status  lipgloss.Style
	EditBox lipgloss.Style
	Help    lipgloss.Style
}

func DefaultStyle() Style {
	coord := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Cell:      lipgloss.NewStyle(),
		EmptyCell: lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		Cursor:    lipgloss.NewStyle().Reverse(true),
		Selection: lipgloss.NewStyle().Background(lipgloss.Color("237")),

		Coord:       coord,
		CoordActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),

		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		EditBox: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("236")),
		Help:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}
