// Package cell implements the raw cell-value encoding for Lattice.
//
// A stored cell value is a single string that optionally fuses a formatting
// tag (color directives such as fg(r,g,b) and bg(r,g,b)) with a content
// segment via the "??" separator token. The fused form is confined to the
// storage boundary; readers decode eagerly into Value.
package cell
