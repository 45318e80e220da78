// Package field holds the ordered corridor produced by one generation run.
package field

import (
	"fmt"

	"tilt/pkg/engine/world"
	"tilt/pkg/game/tile"
)

// Segment is one placed cell of the corridor. Segments are values and are
// never mutated once placed.
type Segment struct {
	Coordinate world.Coordinate
	Kind       tile.Kind
	// Entry is the side facing the previous segment. It is unset for Start
	// and, for Finish, selects the orientation of the cap.
	Entry world.Side
}

// IsOpen reports whether the segment is open on side. A Finish segment is
// open only toward the side it was entered by.
func (s Segment) IsOpen(side world.Side) bool {
	if s.Kind == tile.Finish {
		return side == s.Entry
	}
	return s.Kind.IsOpen(side)
}

// Openings returns the sides the segment is open on
func (s Segment) Openings() world.SideSet {
	out := world.NewSideSet()
	for _, side := range world.AllSides() {
		if s.IsOpen(side) {
			out.Put(side)
		}
	}
	return out
}

// Rotation returns the rotation in degrees a renderer applies to the piece
func (s Segment) Rotation() int {
	if s.Kind == tile.Finish {
		return tile.FinishRotation(s.Entry)
	}
	return s.Kind.Rotation()
}

// String returns "Kind@(x, y)"
func (s Segment) String() string {
	return fmt.Sprintf("%v@%v", s.Kind, s.Coordinate)
}
