package cell

import "fmt"

// Style is the display formatting a cell tag carries.
type Style struct {
	Fg RGB
	Bg *RGB // nil means no fill
}

// Value is the eagerly decoded form of a raw cell value. Style is nil when
// the raw string carried no formatting tag.
type Value struct {
	Content string
	Style   *Style
}

// ParseValue decodes raw into its content and formatting.
func ParseValue(raw string) Value {
	tag, tagOK, content := Decode(raw)
	if !tagOK {
		return Value{Content: content}
	}
	bg, fg := ExtractColors(tag, tagOK)
	return Value{Content: content, Style: &Style{Fg: fg, Bg: bg}}
}

// Raw re-encodes v into its stored string form.
func (v Value) Raw() string {
	if v.Style == nil {
		return v.Content
	}
	return Encode(v.Style.Tag(), v.Content)
}

// Tag renders the directive string for s. The ";" between directives is
// cosmetic; extraction matches directives anywhere in the tag.
func (s Style) Tag() string {
	fg := fmt.Sprintf("fg(%d,%d,%d)", s.Fg.R, s.Fg.G, s.Fg.B)
	if s.Bg == nil {
		return fg
	}
	return fmt.Sprintf("bg(%d,%d,%d);%s", s.Bg.R, s.Bg.G, s.Bg.B, fg)
}
