package editor

import "strings"

// The fixed printable-key alphabet of the cell editor: the unshifted key set
// and its shifted counterpart, index-aligned so position i of one maps to
// position i of the other.
const (
	unshiftedChars = " `1234567890-=qwertyuiop[]\\asdfghjkl;'zxcvbnm,./"
	shiftedChars   = ` ~!@#$%^&*()_+QWERTYUIOP{}|ASDFGHJKL:"ZXCVBNM<>?`
)

// acceptRune reports whether r belongs to the editable alphabet. Terminals
// deliver shifted characters pre-composed, so membership is checked against
// the union of both sets.
func acceptRune(r rune) bool {
	return strings.ContainsRune(unshiftedChars, r) || strings.ContainsRune(shiftedChars, r)
}

// shifted maps an unshifted printable key to its shifted character.
func shifted(r rune) (rune, bool) {
	i := strings.IndexRune(unshiftedChars, r)
	if i < 0 {
		return 0, false
	}
	return []rune(shiftedChars)[i], true
}
