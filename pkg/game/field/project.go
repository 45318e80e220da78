package field

import (
	"tilt/pkg/engine/world"
)

// Project lays the field out on a fresh lattice: every placed segment becomes
// a corridor cell carrying the segment's openings and identifier, Start and
// Finish become the grid's start and exit cells
func (f *Field) Project() *world.Grid {
	grid := world.NewGrid(f.size)

	for _, s := range f.segments {
		grid.MarkAsRoom(s.Coordinate.X, s.Coordinate.Y, world.SortedSides(s.Openings())...)
		grid.GetCellAt(s.Coordinate).Label = s.Kind.Identifier()
	}

	if first, ok := f.First(); ok {
		grid.SetStartCellAt(first.Coordinate.X, first.Coordinate.Y)
	}
	if f.Finished() {
		last, _ := f.Last()
		grid.SetExitCellAt(last.Coordinate.X, last.Coordinate.Y)
	}

	grid.BuildAllCellConnections()
	return grid
}
