package world

import "fmt"

// Coordinate identifies a cell in the lattice. Bounds are a property of the
// active GridSize, not of the coordinate.
type Coordinate struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// C is shorthand for Coordinate{X: x, Y: y}
func C(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// Neighbor returns the coordinate one step toward side
func (c Coordinate) Neighbor(side Side) Coordinate {
	dx, dy := side.Delta()
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// SideToward returns the side of c that faces o, if o is adjacent
func (c Coordinate) SideToward(o Coordinate) (Side, bool) {
	for _, s := range AllSides() {
		if c.Neighbor(s) == o {
			return s, true
		}
	}
	return 0, false
}

// String returns "(x, y)"
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}
