// Package editor provides a Bubble Tea grid editor component backed by the
// grid, cell, and rules packages.
//
// The package is responsible for input handling (navigation, selection
// extension, edit mode), viewport behavior, color-aware cell rendering with
// version-keyed caches, rule stepping over the selection, and the help
// overlay.
package editor
