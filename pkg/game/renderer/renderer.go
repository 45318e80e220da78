// Package renderer draws generated corridors for humans: a glyph per cell,
// localized labels, and a pluggable backend for the terminal.
package renderer

import (
	"tilt/pkg/engine/world"
)

// Version is shown in the preview title
var Version = "dev"

// Icon constants for the corridor preview
const (
	IconStart  = "◉"
	IconVoid   = "·"
	IconClosed = "■"

	IconUpDown    = "│"
	IconLeftRight = "─"
	IconUpRight   = "└"
	IconUpLeft    = "┘"
	IconDownRight = "┌"
	IconDownLeft  = "┐"
)

// finishIcons point back toward the side the corridor arrived from
var finishIcons = map[world.Side]string{
	world.Up:    "╹",
	world.Right: "╺",
	world.Down:  "╻",
	world.Left:  "╸",
}

// cornerIcons maps a pair of openings to its box-drawing glyph
var cornerIcons = map[[2]world.Side]string{
	{world.Up, world.Down}:    IconUpDown,
	{world.Right, world.Left}: IconLeftRight,
	{world.Up, world.Right}:   IconUpRight,
	{world.Up, world.Left}:    IconUpLeft,
	{world.Right, world.Down}: IconDownRight,
	{world.Down, world.Left}:  IconDownLeft,
}

// FinishIcon returns the Finish glyph for a corridor arriving through entry
func FinishIcon(entry world.Side) string {
	return finishIcons[entry]
}

// Glyph returns the single-character picture of a projected cell
func Glyph(c *world.Cell) string {
	if c == nil || !c.Room {
		return IconVoid
	}
	if c.StartCell {
		return IconStart
	}
	open := world.SortedSides(c.Openings)
	if c.ExitCell && len(open) == 1 {
		return finishIcons[open[0]]
	}
	if len(open) == 2 {
		if icon, ok := cornerIcons[[2]world.Side{open[0], open[1]}]; ok {
			return icon
		}
	}
	return IconClosed
}

// MapLines returns the grid as text rows, top row first. style is applied to
// every corridor glyph; pass nil for plain output.
func MapLines(grid *world.Grid, style func(c *world.Cell, glyph string) string) []string {
	lines := make([]string, 0, grid.Height())
	grid.ForEachRowTopDown(func(_ int, row []*world.Cell) {
		line := ""
		for _, c := range row {
			g := Glyph(c)
			if style != nil && c != nil && c.Room {
				g = style(c, g)
			}
			line += g
		}
		lines = append(lines, line)
	})
	return lines
}
