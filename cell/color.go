package cell

import (
	"regexp"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit-per-channel color carried by a cell's formatting tag.
type RGB struct {
	R, G, B uint8
}

// Black is the foreground fallback when no fg directive matches.
var Black = RGB{}

var (
	fgPattern = regexp.MustCompile(`fg\((\d{1,3}),(\d{1,3}),(\d{1,3})\)`)
	bgPattern = regexp.MustCompile(`bg\((\d{1,3}),(\d{1,3}),(\d{1,3})\)`)
)

// ExtractColors searches tag for fg(r,g,b) and bg(r,g,b) directives anywhere
// in the string; the first match of each wins and directive order is
// irrelevant. A malformed or out-of-range directive simply fails to match:
// fg falls back to black, bg to nil (no fill). It never fails.
func ExtractColors(tag string, tagOK bool) (bg *RGB, fg RGB) {
	fg = Black
	if !tagOK {
		return nil, fg
	}
	if c, ok := firstMatch(fgPattern, tag); ok {
		fg = c
	}
	if c, ok := firstMatch(bgPattern, tag); ok {
		bg = &c
	}
	return bg, fg
}

func firstMatch(re *regexp.Regexp, tag string) (RGB, bool) {
	m := re.FindStringSubmatch(tag)
	if m == nil {
		return RGB{}, false
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(m[i+1])
		if err != nil || n > 255 {
			return RGB{}, false
		}
		ch[i] = uint8(n)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, true
}

// Color converts c to a true-color lipgloss value.
func (c RGB) Color() lipgloss.Color {
	h := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	return lipgloss.Color(h.Hex())
}
