// Package rules implements the cell-evolution rule engine for Lattice.
//
// A rule is a pure function of a position and the current grid generation:
// it reads neighbor cells, never writes, and reports the position's next raw
// value (or nil for "absent"). Step applies one rule over the active
// selection as a read-then-apply batch, so no evaluation ever observes a
// value already rewritten for the same generation.
package rules
