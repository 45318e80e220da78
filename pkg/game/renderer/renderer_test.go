package renderer

import (
	"testing"

	"github.com/leonelquinteros/gotext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tilt/pkg/engine/world"
	"tilt/pkg/game/field"
	"tilt/pkg/game/tile"
)

func serpentine(t *testing.T) *field.Field {
	t.Helper()
	f := field.New(world.Size(3, 3))
	for _, s := range []field.Segment{
		{Coordinate: world.C(0, 0), Kind: tile.Start},
		{Coordinate: world.C(0, 1), Kind: tile.BottomRight, Entry: world.Down},
		{Coordinate: world.C(1, 1), Kind: tile.BottomLeft, Entry: world.Left},
		{Coordinate: world.C(1, 0), Kind: tile.TopRight, Entry: world.Up},
		{Coordinate: world.C(2, 0), Kind: tile.TopLeft, Entry: world.Left},
		{Coordinate: world.C(2, 1), Kind: tile.TopBottom, Entry: world.Down},
		{Coordinate: world.C(2, 2), Kind: tile.BottomLeft, Entry: world.Down},
		{Coordinate: world.C(1, 2), Kind: tile.LeftRight, Entry: world.Right},
		{Coordinate: world.C(0, 2), Kind: tile.Finish, Entry: world.Right},
	} {
		require.NoError(t, f.Place(s))
	}
	return f
}

func TestMapLines(t *testing.T) {
	lines := MapLines(serpentine(t).Project(), nil)
	assert.Equal(t, []string{
		"╺─┐",
		"┌┐│",
		"◉└┘",
	}, lines)
}

func TestMapLinesLeavesUnvisitedCellsEmpty(t *testing.T) {
	f := field.New(world.Size(3, 3))
	require.NoError(t, f.Place(field.Segment{Coordinate: world.C(0, 0), Kind: tile.Start}))
	require.NoError(t, f.Place(field.Segment{Coordinate: world.C(0, 1), Kind: tile.Finish, Entry: world.Down}))

	styled := 0
	lines := MapLines(f.Project(), func(c *world.Cell, glyph string) string {
		styled++
		return glyph
	})
	assert.Equal(t, []string{"···", "╻··", "◉··"}, lines)
	assert.Equal(t, 2, styled, "only corridor cells are styled")
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, IconVoid, Glyph(nil))

	c := world.NewCell(0, 0, "")
	assert.Equal(t, IconVoid, Glyph(c))

	c.Room = true
	c.Openings = world.NewSideSet(world.Up, world.Left)
	assert.Equal(t, IconUpLeft, Glyph(c))

	c.Openings = world.NewSideSet(world.Up, world.Right, world.Down)
	assert.Equal(t, IconClosed, Glyph(c))

	c.ExitCell = true
	c.Openings = world.NewSideSet(world.Left)
	assert.Equal(t, FinishIcon(world.Left), Glyph(c))
}

func TestLocale(t *testing.T) {
	InitLocale()
	assert.Equal(t, "10x10 Grid", gotext.Get("GRID_10X10"))
	assert.Equal(t, "Seed", gotext.Get("SEED"))
	assert.Equal(t, "NOT_A_KEY", gotext.Get("NOT_A_KEY"))
}

func TestWrappersWithoutRenderer(t *testing.T) {
	SetRenderer(nil)
	assert.Equal(t, "abc", StyleText("abc", StyleTitle))
	assert.Equal(t, "GT{SEED}", FormatText("GT{SEED}"))
	Clear()
	ShowMessage("ignored")
}
