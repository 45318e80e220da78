package tile

import "tilt/pkg/engine/world"

// growthRules maps a corridor kind and the side it was entered by to the side
// the corridor leaves through. Straights keep heading, corners turn 90°.
var growthRules = map[Kind]map[world.Side]world.Side{
	BottomLeft:  {world.Down: world.Left, world.Left: world.Down},
	BottomRight: {world.Down: world.Right, world.Right: world.Down},
	TopLeft:     {world.Up: world.Left, world.Left: world.Up},
	TopRight:    {world.Up: world.Right, world.Right: world.Up},
	TopBottom:   {world.Up: world.Down, world.Down: world.Up},
	LeftRight:   {world.Left: world.Right, world.Right: world.Left},
}

// Exit returns the side a corridor entering a segment of kind k through entry
// leaves by. Start has no entry and always exits up; Finish never exits.
func (k Kind) Exit(entry world.Side) (world.Side, bool) {
	if k == Start {
		return world.Up, true
	}
	exit, ok := growthRules[k][entry]
	return exit, ok
}

// Step returns the coordinate the corridor moves to after a segment of kind
// k at c entered through entry, and the side the next segment is entered by
func (k Kind) Step(c world.Coordinate, entry world.Side) (next world.Coordinate, nextEntry world.Side, ok bool) {
	exit, ok := k.Exit(entry)
	if !ok {
		return c, entry, false
	}
	return c.Neighbor(exit), exit.Opposite(), true
}
