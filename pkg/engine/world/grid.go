package world

import (
	"errors"
	"fmt"
)

// Grid is a lattice of cells with encapsulated cell storage
type Grid struct {
	cellMap map[int]map[int]*Cell
	cellDir map[string]*Cell
	size    GridSize

	startCell *Cell
	exitCell  *Cell
}

// NewGrid creates a new grid with the given dimensions
func NewGrid(size GridSize) *Grid {
	g := &Grid{}
	g.Build(size)
	return g
}

// Size returns the grid dimensions
func (g *Grid) Size() GridSize {
	return g.size
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.size.Width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.size.Height
}

// StartCell returns the starting cell
func (g *Grid) StartCell() *Cell {
	return g.startCell
}

// ExitCell returns the exit cell
func (g *Grid) ExitCell() *Cell {
	return g.exitCell
}

// IsValidPosition checks if an x/y position is within grid bounds
func (g *Grid) IsValidPosition(x, y int) bool {
	return g.size.Contains(Coordinate{X: x, Y: y})
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(x, y int) bool {
	return g.IsValidPosition(x, y) &&
		(x == 0 || y == 0 || x == g.size.Width-1 || y == g.size.Height-1)
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(x, y int) *Cell {
	if !g.IsValidPosition(x, y) {
		return nil
	}

	if g.cellMap == nil {
		return nil
	}

	col, found := g.cellMap[x]
	if !found {
		return nil
	}

	return col[y]
}

// GetCellAt returns the cell at c, or nil if out of bounds
func (g *Grid) GetCellAt(c Coordinate) *Cell {
	return g.GetCell(c.X, c.Y)
}

// GetCellByName returns a cell by its name, or nil if not found
func (g *Grid) GetCellByName(name string) *Cell {
	if g.cellDir == nil {
		return nil
	}
	return g.cellDir[name]
}

// GetCellRelative returns the cell adjacent to the given cell in the specified direction
func (g *Grid) GetCellRelative(c *Cell, side Side) *Cell {
	if c == nil {
		return nil
	}
	if !side.IsValid() {
		return nil
	}
	return g.GetCellAt(c.Coordinate().Neighbor(side))
}

// SetStartCellAt sets the starting cell by position. Returns false if out of bounds.
func (g *Grid) SetStartCellAt(x, y int) bool {
	cell := g.GetCell(x, y)
	if cell == nil {
		return false
	}
	g.startCell = cell
	cell.StartCell = true
	return true
}

// SetExitCellAt sets the exit cell by position. Returns false if out of bounds.
func (g *Grid) SetExitCellAt(x, y int) bool {
	cell := g.GetCell(x, y)
	if cell == nil {
		return false
	}
	g.exitCell = cell
	cell.ExitCell = true
	return true
}

// MarkAsRoom marks the cell at the given position as corridor with the given
// openings. Returns false if out of bounds.
func (g *Grid) MarkAsRoom(x, y int, openings ...Side) bool {
	cell := g.GetCell(x, y)
	if cell == nil {
		return false
	}
	cell.Room = true
	for _, side := range openings {
		cell.Openings.Put(side)
	}
	return true
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(size GridSize) {
	if size.Width <= 0 || size.Height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.size = size

	g.cellMap = make(map[int]map[int]*Cell, size.Width)
	g.cellDir = make(map[string]*Cell)
	g.startCell = nil
	g.exitCell = nil

	for x := 0; x < size.Width; x++ {
		g.cellMap[x] = make(map[int]*Cell, size.Height)

		for y := 0; y < size.Height; y++ {
			name := fmt.Sprintf("%v:%v", x, y)

			c := NewCell(x, y, name)

			g.cellMap[x][y] = c
			g.cellDir[name] = c
		}
	}
}

// BuildAllCellConnections connects all cells to their neighbors
func (g *Grid) BuildAllCellConnections() {
	g.ForEachCell(func(x, y int, cell *Cell) {
		g.buildCellConnections(cell)
	})
}

func (g *Grid) buildCellConnections(current *Cell) {
	if current == nil {
		return
	}

	for _, side := range AllSides() {
		adj := g.GetCellRelative(current, side)

		if adj == nil {
			continue
		}

		current.SetNeighbor(side, adj)
		adj.SetNeighbor(side.Opposite(), current)
	}
}

// ForEachCell iterates over all cells bottom row first, calling fn for each
func (g *Grid) ForEachCell(fn func(x, y int, cell *Cell)) {
	for y := 0; y < g.size.Height; y++ {
		for x := 0; x < g.size.Width; x++ {
			cell := g.GetCell(x, y)
			if cell != nil {
				fn(x, y, cell)
			}
		}
	}
}

// ForEachRowTopDown iterates over rows from the top (y = Height-1) down,
// which is the order a terminal prints them in
func (g *Grid) ForEachRowTopDown(fn func(y int, row []*Cell)) {
	for y := g.size.Height - 1; y >= 0; y-- {
		row := make([]*Cell, 0, g.size.Width)
		for x := 0; x < g.size.Width; x++ {
			row = append(row, g.GetCell(x, y))
		}
		fn(y, row)
	}
}

// Grid validation errors.
var (
	ErrNoStartCell = errors.New("world: grid has no start cell")
	ErrNoExitCell  = errors.New("world: grid has no exit cell")
	ErrNotRoom     = errors.New("world: start or exit cell is not part of the corridor")
)

// Validate checks the grid for common issues
func (g *Grid) Validate() error {
	if g.size.Width <= 0 || g.size.Height <= 0 {
		return fmt.Errorf("world: grid has invalid dimensions %v", g.size)
	}

	if g.startCell == nil {
		return ErrNoStartCell
	}

	if g.exitCell == nil {
		return ErrNoExitCell
	}

	if !g.startCell.Room || !g.exitCell.Room {
		return ErrNotRoom
	}

	return nil
}
