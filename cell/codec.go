package cell

import "strings"

// Separator joins the formatting tag and the content segment inside a raw
// cell value. A raw value without it is all content.
const Separator = "??"

// Decode splits raw on the first occurrence of the separator token. tagOK
// reports whether a formatting tag was present; without one the whole string
// is content.
func Decode(raw string) (tag string, tagOK bool, content string) {
	if i := strings.Index(raw, Separator); i >= 0 {
		return raw[:i], true, raw[i+len(Separator):]
	}
	return "", false, raw
}

// Encode fuses tag and content back into the stored form.
func Encode(tag, content string) string {
	return tag + Separator + content
}

// Colorize produces the fused cell value for an automaton bit: state and
// presentation are set atomically by the rule that emits it. "1" renders
// black-on-black, anything else white-on-white "0".
func Colorize(bit string) string {
	if bit == "1" {
		return Encode("bg(0,0,0);fg(0,0,0)", "1")
	}
	return Encode("bg(255,255,255);fg(255,255,255)", "0")
}
