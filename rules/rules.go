package rules

import (
	"errors"
	"fmt"

	"github.com/tobyhm/lattice/grid"
)

// Variant selects one rule of the closed rule set.
type Variant int

const (
	// DirectionalGrowth fills empty cells from their three upper parents
	// through a fixed elementary rule table. Occupied cells are frozen.
	DirectionalGrowth Variant = iota
	// LifeLike applies the two-state birth/survival law over the Moore
	// neighborhood.
	LifeLike
)

func (v Variant) String() string {
	switch v {
	case DirectionalGrowth:
		return "growth"
	case LifeLike:
		return "life"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// ParseVariant maps a variant name (as accepted on the command line) back to
// its Variant.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "growth":
		return DirectionalGrowth, nil
	case "life":
		return LifeLike, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}

// ErrUnknownVariant reports a variant outside the closed rule set.
var ErrUnknownVariant = errors.New("rules: unknown variant")

// Evaluate computes the next raw value for p under v against the current
// generation of g. A nil result means the cell is absent next generation.
// Evaluate never mutates g.
func Evaluate(g *grid.Grid, p grid.Pos, v Variant) (*string, error) {
	switch v {
	case DirectionalGrowth:
		return evalGrowth(g, p), nil
	case LifeLike:
		return evalLife(g, p)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
}
