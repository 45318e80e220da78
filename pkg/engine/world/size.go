package world

import (
	"errors"
	"fmt"
)

// MinGridDimension is the smallest width or height a maze can be generated on
const MinGridDimension = 3

// ErrGridTooSmall indicates a grid narrower or shorter than MinGridDimension.
var ErrGridTooSmall = errors.New("world: grid must be at least 3x3")

// GridSize holds the width and height of a lattice
type GridSize struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Size is shorthand for GridSize{Width: w, Height: h}
func Size(w, h int) GridSize {
	return GridSize{Width: w, Height: h}
}

// Validate returns ErrGridTooSmall if either dimension is below MinGridDimension
func (s GridSize) Validate() error {
	if s.Width < MinGridDimension || s.Height < MinGridDimension {
		return fmt.Errorf("%w: got %v", ErrGridTooSmall, s)
	}
	return nil
}

// Contains checks if c lies within [0, Width) x [0, Height)
func (s GridSize) Contains(c Coordinate) bool {
	return c.X >= 0 && c.X < s.Width && c.Y >= 0 && c.Y < s.Height
}

// Exits returns true if stepping from c toward side leaves the grid
func (s GridSize) Exits(c Coordinate, side Side) bool {
	return !s.Contains(c.Neighbor(side))
}

// BoundarySides returns the sides of c that face out of the grid
func (s GridSize) BoundarySides(c Coordinate) SideSet {
	out := NewSideSet()
	for _, side := range AllSides() {
		if s.Exits(c, side) {
			out.Put(side)
		}
	}
	return out
}

// Cells returns Width * Height
func (s GridSize) Cells() int {
	return s.Width * s.Height
}

// String returns "WxH"
func (s GridSize) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
