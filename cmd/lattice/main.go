package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tobyhm/lattice/editor"
	"github.com/tobyhm/lattice/rules"
)

type model struct {
	editor editor.Model
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }

func main() {
	rows := flag.Int("rows", 100, "grid row count")
	cols := flag.Int("cols", 100, "grid column count")
	cellWidth := flag.Int("cell-width", 8, "cell width in terminal columns")
	ruleName := flag.String("rule", "growth", "rule variant: growth or life")
	seedName := flag.String("seed", "", "starter pattern: glider, blinker, block, or rowseed")
	flag.Parse()

	if os.Getenv("LATTICE_DEBUG") != "" {
		f, err := tea.LogToFile("lattice-debug.log", "lattice")
		if err != nil {
			fmt.Fprintln(os.Stderr, "debug log:", err)
			os.Exit(1)
		}
		defer f.Close()
		log.Printf("starting: rows=%d cols=%d rule=%s seed=%q", *rows, *cols, *ruleName, *seedName)
	}

	rule, err := rules.ParseVariant(*ruleName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ed := editor.New(editor.Config{
		MaxRow:     *rows - 1,
		MaxCol:     *cols - 1,
		CellWidth:  *cellWidth,
		ShowCoords: true,
		Rule:       rule,
		Style:      editor.DefaultStyle(),
	})
	if *seedName != "" {
		if err := seed(ed.Grid(), *seedName); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	p := tea.NewProgram(model{editor: ed}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
