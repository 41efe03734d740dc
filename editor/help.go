package editor

import (
	"fmt"
	"strings"

	overlay "github.com/rmhubbert/bubbletea-overlay"
)

func (m Model) helpView() string {
	lines := make([]string, 0, 16)
	for _, b := range m.cfg.KeyMap.helpBindings() {
		h := b.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-12s %s", h.Key, h.Desc))
	}
	return m.cfg.Style.Help.Render(strings.Join(lines, "\n"))
}

func (m Model) compositeHelp(base string) string {
	return overlay.Composite(
		m.helpView(),
		base,
		overlay.Center,
		overlay.Center,
		0,
		0,
	)
}
