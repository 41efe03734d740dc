package rules

import (
	"errors"
	"strconv"
	"testing"

	"github.com/tobyhm/lattice/cell"
	"github.com/tobyhm/lattice/grid"
)

func TestLife_LoneCellDies(t *testing.T) {
	g := grid.New(grid.Options{})
	g.Put(grid.Pos{Row: 2, Col: 2}, "1")

	got, err := Evaluate(g, grid.Pos{Row: 2, Col: 2}, LifeLike)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("got %q, want absent", *got)
	}
}

func TestLife_LShapeBirth(t *testing.T) {
	g := grid.New(grid.Options{})
	g.Put(grid.Pos{Row: 0, Col: 0}, "1")
	g.Put(grid.Pos{Row: 1, Col: 0}, "1")
	g.Put(grid.Pos{Row: 1, Col: 1}, "1")

	// (0,1) sees exactly three live neighbors and is born.
	got, err := Evaluate(g, grid.Pos{Row: 0, Col: 1}, LifeLike)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || *got != cell.Colorize("1") {
		t.Fatalf("got %v, want colorized 1", got)
	}

	// The existing members each see two live neighbors and survive.
	for _, p := range []grid.Pos{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}} {
		got, err := Evaluate(g, p, LifeLike)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", p, err)
		}
		if got == nil || *got != cell.Colorize("1") {
			t.Fatalf("%v: got %v, want survival", p, got)
		}
	}
}

func TestLife_BlockIsStable(t *testing.T) {
	g := grid.New(grid.Options{})
	block := []grid.Pos{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}
	for _, p := range block {
		g.Put(p, "1")
	}
	g.MoveMark(grid.Pos{Row: 0, Col: 0})
	g.MoveCursor(grid.Pos{Row: 3, Col: 3})

	if err := Step(g, LifeLike); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Every member survives, nothing around is born.
	if g.Len() != 4 {
		t.Fatalf("len=%d, want 4", g.Len())
	}
	for _, p := range block {
		if v, ok := g.Get(p); !ok || v != cell.Colorize("1") {
			t.Fatalf("%v: got (%q,%v), want colorized 1", p, v, ok)
		}
	}
}

func TestLife_ReadsTaggedAndPlainStates(t *testing.T) {
	g := grid.New(grid.Options{})
	// A mix of plain and colorized encodings around a dead center.
	g.Put(grid.Pos{Row: 0, Col: 0}, "1")
	g.Put(grid.Pos{Row: 0, Col: 1}, cell.Colorize("1"))
	g.Put(grid.Pos{Row: 0, Col: 2}, cell.Colorize("1"))

	got, err := Evaluate(g, grid.Pos{Row: 1, Col: 1}, LifeLike)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || *got != cell.Colorize("1") {
		t.Fatalf("got %v, want birth", got)
	}
}

func TestLife_ParseErrorPropagates(t *testing.T) {
	g := grid.New(grid.Options{})
	g.Put(grid.Pos{Row: 0, Col: 0}, "not a number")

	_, err := Evaluate(g, grid.Pos{Row: 1, Col: 1}, LifeLike)
	if err == nil {
		t.Fatalf("expected error")
	}
	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Fatalf("expected *strconv.NumError in chain, got %v", err)
	}
}

func TestLife_DeadResultClearsStoredZero(t *testing.T) {
	// A stored "0" with no live neighbors stays dead; the result is absence,
	// not a stored zero.
	g := grid.New(grid.Options{})
	g.Put(grid.Pos{Row: 0, Col: 0}, cell.Colorize("0"))
	g.MoveCursor(grid.Pos{Row: 0, Col: 0})

	if err := Step(g, LifeLike); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := g.Get(grid.Pos{Row: 0, Col: 0}); ok {
		t.Fatalf("expected cleared cell")
	}
}
