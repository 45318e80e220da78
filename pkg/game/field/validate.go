package field

import (
	"errors"
	"fmt"

	"github.com/spakin/disjoint"

	"tilt/pkg/engine/world"
	"tilt/pkg/game/tile"
)

// Validation errors, one per corridor invariant.
var (
	ErrEmpty        = errors.New("field: no segments")
	ErrDuplicate    = errors.New("field: two segments share a coordinate")
	ErrMismatch     = errors.New("field: adjacent segments disagree on a shared side")
	ErrBoundary     = errors.New("field: segment open toward the grid edge")
	ErrStart        = errors.New("field: corridor must begin with a single Start at (0, 0)")
	ErrFinish       = errors.New("field: corridor must end with a single Finish")
	ErrBrokenChain  = errors.New("field: consecutive segments are not joined")
	ErrDisconnected = errors.New("field: corridor is not a single connected piece")
)

// Validate checks f against the corridor invariants: unique coordinates,
// mutual openness of every adjacent pair, no opening across the grid edge,
// a single Start at (0, 0) placed first, a single Finish placed last, and a
// single connected, non-branching chain in placement order.
func Validate(f *Field) error {
	if f == nil || f.Len() == 0 {
		return ErrEmpty
	}
	if len(f.index) != len(f.segments) {
		return ErrDuplicate
	}

	if err := validateTerminals(f); err != nil {
		return err
	}

	for _, s := range f.segments {
		for _, side := range world.AllSides() {
			if f.size.Exits(s.Coordinate, side) {
				if s.IsOpen(side) {
					return fmt.Errorf("%w: %v on %v", ErrBoundary, s, side)
				}
				continue
			}
			n, ok := f.At(s.Coordinate.Neighbor(side))
			if ok && s.IsOpen(side) != n.IsOpen(side.Opposite()) {
				return fmt.Errorf("%w: %v %v / %v", ErrMismatch, s, side, n)
			}
		}
	}

	if err := validateChain(f); err != nil {
		return err
	}
	return validateConnectivity(f)
}

func validateTerminals(f *Field) error {
	starts, finishes := 0, 0
	for _, s := range f.segments {
		switch s.Kind {
		case tile.Start:
			starts++
		case tile.Finish:
			finishes++
		}
	}
	first, _ := f.First()
	if starts != 1 || first.Kind != tile.Start || first.Coordinate != (world.Coordinate{}) {
		return ErrStart
	}
	if finishes != 1 || !f.Finished() {
		return ErrFinish
	}
	return nil
}

// validateChain checks that every segment after Start is entered from its
// predecessor and that the predecessor leaves toward it.
func validateChain(f *Field) error {
	for i := 1; i < len(f.segments); i++ {
		prev, cur := f.segments[i-1], f.segments[i]
		side, adjacent := cur.Coordinate.SideToward(prev.Coordinate)
		if !adjacent || side != cur.Entry || !cur.IsOpen(side) || !prev.IsOpen(side.Opposite()) {
			return fmt.Errorf("%w: %v -> %v", ErrBrokenChain, prev, cur)
		}
		if i < len(f.segments)-1 && cur.Openings().Size() != 2 {
			return fmt.Errorf("%w: %v branches", ErrBrokenChain, cur)
		}
	}
	return nil
}

// validateConnectivity unions every pair of segments joined through a shared
// opening and checks a single set remains.
func validateConnectivity(f *Field) error {
	elems := make([]*disjoint.Element, len(f.segments))
	for i := range f.segments {
		elems[i] = disjoint.NewElement()
	}
	for i, s := range f.segments {
		for _, side := range []world.Side{world.Up, world.Right} {
			j, ok := f.index[s.Coordinate.Neighbor(side)]
			if ok && s.IsOpen(side) && f.segments[j].IsOpen(side.Opposite()) {
				disjoint.Union(elems[i], elems[j])
			}
		}
	}
	root := elems[0].Find()
	for i, e := range elems {
		if e.Find() != root {
			return fmt.Errorf("%w: %v", ErrDisconnected, f.segments[i])
		}
	}
	return nil
}
