// Package world provides generic 2D lattice primitives: sides, coordinates,
// grid sizes and a cell grid that corridor layouts can be projected onto.
// The lattice is y-up: (0, 0) is the bottom-left cell.
package world

// Cell represents a single cell of the lattice
type Cell struct {
	// Basic identification
	Name string

	// Grid position
	X int
	Y int

	// Openings toward neighboring cells
	Openings SideSet

	// Navigation - links to adjacent cells
	Up    *Cell
	Right *Cell
	Down  *Cell
	Left  *Cell

	// Cell type flags
	Room      bool // Is this cell part of the corridor?
	StartCell bool // Is this the corridor entrance?
	ExitCell  bool // Is this the corridor end?

	// Label is free-form data for renderers (e.g. a piece identifier)
	Label string
}

// NewCell creates a new, closed cell at the given position
func NewCell(x, y int, name string) *Cell {
	return &Cell{
		Name:     name,
		X:        x,
		Y:        y,
		Openings: NewSideSet(),
	}
}

// Coordinate returns the lattice position of the cell
func (c *Cell) Coordinate() Coordinate {
	return Coordinate{X: c.X, Y: c.Y}
}

// IsOpen returns true if the cell has an opening toward side
func (c *Cell) IsOpen(side Side) bool {
	if c == nil {
		return false
	}
	return c.Openings.Has(side)
}

// GetNeighbor returns the neighboring cell in the given direction
func (c *Cell) GetNeighbor(side Side) *Cell {
	if c == nil {
		return nil
	}
	switch side {
	case Up:
		return c.Up
	case Right:
		return c.Right
	case Down:
		return c.Down
	case Left:
		return c.Left
	default:
		return nil
	}
}

// SetNeighbor sets the neighboring cell in the given direction
func (c *Cell) SetNeighbor(side Side, neighbor *Cell) {
	if c == nil {
		return
	}
	switch side {
	case Up:
		c.Up = neighbor
	case Right:
		c.Right = neighbor
	case Down:
		c.Down = neighbor
	case Left:
		c.Left = neighbor
	}
}

// GetNeighbors returns all non-nil adjacent cells
func (c *Cell) GetNeighbors() []*Cell {
	var neighbors []*Cell
	for _, side := range AllSides() {
		if n := c.GetNeighbor(side); n != nil {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// ConnectedNeighbors returns adjacent corridor cells reachable through a
// shared opening on both sides
func (c *Cell) ConnectedNeighbors() []*Cell {
	var out []*Cell
	for _, side := range AllSides() {
		n := c.GetNeighbor(side)
		if n != nil && n.Room && c.IsOpen(side) && n.IsOpen(side.Opposite()) {
			out = append(out, n)
		}
	}
	return out
}
