package tile

import (
	"errors"
	"fmt"

	"tilt/pkg/engine/world"
)

// Catalog precondition faults. These indicate a programming error in the
// caller, not an exhausted search.
var (
	// ErrNoOpenings indicates a selection without any required opening.
	ErrNoOpenings = errors.New("tile: selection requires at least one opening")
	// ErrTooManyClosings indicates a selection closing all four sides.
	ErrTooManyClosings = errors.New("tile: selection allows at most 3 closings")
)

// Random is the source of uniform choices. *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
}

// selectable lists the corridor kinds in filter order
var selectable = []Kind{BottomLeft, BottomRight, TopLeft, TopRight, TopBottom, LeftRight}

// Selectable returns the kinds the generator may place between Start and Finish
func Selectable() []Kind {
	out := make([]Kind, len(selectable))
	copy(out, selectable)
	return out
}

// KindsOpenOn returns the selectable kinds that are open on side when open
// is true, or closed on side when open is false
func KindsOpenOn(side world.Side, open bool) []Kind {
	var out []Kind
	for _, k := range selectable {
		if k.IsOpen(side) == open {
			out = append(out, k)
		}
	}
	return out
}

// Matching returns the selectable kinds open on every side in openings and
// closed on every side in closings, in catalog order
func Matching(openings, closings world.SideSet) []Kind {
	var out []Kind
	for _, k := range selectable {
		if satisfies(k, openings, closings) {
			out = append(out, k)
		}
	}
	return out
}

func satisfies(k Kind, openings, closings world.SideSet) bool {
	for _, side := range world.AllSides() {
		if openings.Has(side) && !k.IsOpen(side) {
			return false
		}
		if closings.Has(side) && k.IsOpen(side) {
			return false
		}
	}
	return true
}

// SelectRandom picks uniformly among the kinds matching openings and
// closings. ok is false when no kind matches.
func SelectRandom(rng Random, openings, closings world.SideSet) (k Kind, ok bool, err error) {
	if openings.Size() == 0 {
		return 0, false, ErrNoOpenings
	}
	if closings.Size() > 3 {
		return 0, false, fmt.Errorf("%w: got %d", ErrTooManyClosings, closings.Size())
	}

	candidates := Matching(openings, closings)
	if len(candidates) == 0 {
		return 0, false, nil
	}
	return candidates[rng.Intn(len(candidates))], true, nil
}
