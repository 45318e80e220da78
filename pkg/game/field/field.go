package field

import (
	"errors"
	"fmt"

	"tilt/pkg/engine/world"
	"tilt/pkg/game/tile"
)

// Placement errors.
var (
	ErrOccupied    = errors.New("field: coordinate already holds a segment")
	ErrOutOfBounds = errors.New("field: coordinate outside the grid")
	ErrFinished    = errors.New("field: corridor already ends in a Finish segment")
)

// Field is the ordered sequence of segments placed by one generation run,
// indexed by coordinate for neighbor lookups
type Field struct {
	size     world.GridSize
	segments []Segment
	index    map[world.Coordinate]int
}

// New creates an empty field for a grid of the given size
func New(size world.GridSize) *Field {
	return &Field{
		size:     size,
		segments: make([]Segment, 0, size.Cells()),
		index:    make(map[world.Coordinate]int, size.Cells()),
	}
}

// Size returns the grid dimensions the field was built for
func (f *Field) Size() world.GridSize {
	return f.size
}

// Len returns the number of placed segments
func (f *Field) Len() int {
	return len(f.segments)
}

// Place appends s to the field
func (f *Field) Place(s Segment) error {
	if f.Finished() {
		return ErrFinished
	}
	if !f.size.Contains(s.Coordinate) {
		return fmt.Errorf("%w: %v in %v", ErrOutOfBounds, s.Coordinate, f.size)
	}
	if _, taken := f.index[s.Coordinate]; taken {
		return fmt.Errorf("%w: %v", ErrOccupied, s.Coordinate)
	}
	f.index[s.Coordinate] = len(f.segments)
	f.segments = append(f.segments, s)
	return nil
}

// At returns the segment placed at c
func (f *Field) At(c world.Coordinate) (Segment, bool) {
	i, ok := f.index[c]
	if !ok {
		return Segment{}, false
	}
	return f.segments[i], true
}

// Has checks if a segment is placed at c
func (f *Field) Has(c world.Coordinate) bool {
	_, ok := f.index[c]
	return ok
}

// Segment returns the i-th placed segment
func (f *Field) Segment(i int) Segment {
	return f.segments[i]
}

// Segments returns a copy of the placed segments in placement order
func (f *Field) Segments() []Segment {
	out := make([]Segment, len(f.segments))
	copy(out, f.segments)
	return out
}

// Each calls fn for every segment in placement order
func (f *Field) Each(fn func(i int, s Segment)) {
	for i, s := range f.segments {
		fn(i, s)
	}
}

// First returns the first placed segment
func (f *Field) First() (Segment, bool) {
	if len(f.segments) == 0 {
		return Segment{}, false
	}
	return f.segments[0], true
}

// Last returns the most recently placed segment
func (f *Field) Last() (Segment, bool) {
	if len(f.segments) == 0 {
		return Segment{}, false
	}
	return f.segments[len(f.segments)-1], true
}

// Finished checks if the last placed segment is a Finish
func (f *Field) Finished() bool {
	last, ok := f.Last()
	return ok && last.Kind == tile.Finish
}

// Neighbors returns the placed segments adjacent to c, keyed by the side of
// c they sit on
func (f *Field) Neighbors(c world.Coordinate) map[world.Side]Segment {
	out := make(map[world.Side]Segment, 4)
	for _, side := range world.AllSides() {
		if s, ok := f.At(c.Neighbor(side)); ok {
			out[side] = s
		}
	}
	return out
}
