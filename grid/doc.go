// Package grid implements the pure, sparse sheet model for Lattice.
//
// Coordinates are 0-based (Row, Col). The grid stores raw cell strings in a
// sparse map; absence of an entry means the cell is empty, which is distinct
// from an empty string. Two positions, the cursor and the mark, span the
// active selection envelope.
package grid
