// Package grapheme provides grapheme-cluster helpers for fixed-width cell
// rendering and input editing.
package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len([]rune(text)))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// Width returns the display width of text in terminal columns.
func Width(text string) int {
	w := 0
	for _, c := range Split(text) {
		w += runewidth.StringWidth(c)
	}
	return w
}

// Truncate cuts text at grapheme boundaries so its display width does not
// exceed width. A cluster that would straddle the limit is dropped whole.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	var sb strings.Builder
	used := 0
	for _, c := range Split(text) {
		w := runewidth.StringWidth(c)
		if used+w > width {
			break
		}
		sb.WriteString(c)
		used += w
	}
	return sb.String()
}

// Pad truncates text to width and right-pads the remainder with spaces, so
// the result always occupies exactly width columns.
func Pad(text string, width int) string {
	if width <= 0 {
		return ""
	}
	out := Truncate(text, width)
	if w := Width(out); w < width {
		out += strings.Repeat(" ", width-w)
	}
	return out
}

// PopLast removes the final grapheme cluster from text.
func PopLast(text string) string {
	clusters := Split(text)
	if len(clusters) == 0 {
		return text
	}
	return strings.Join(clusters[:len(clusters)-1], "")
}
