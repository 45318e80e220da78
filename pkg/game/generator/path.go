// Package generator grows corridors over a lattice. The path generator places
// a Start at (0, 0), then repeatedly steps out of the newest segment and picks
// a random catalog kind compatible with the grid edge and every segment
// already placed around the new cell. When no kind fits, a Finish caps the
// corridor and the run ends.
package generator

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"tilt/pkg/engine/world"
	"tilt/pkg/game/field"
	"tilt/pkg/game/tile"
)

// ErrInvalidField indicates a finished field failed its invariant check.
var ErrInvalidField = errors.New("generator: produced an invalid field")

// PathGenerator generates a single non-branching corridor
type PathGenerator struct {
	rng      tile.Random
	log      logrus.FieldLogger
	validate bool
}

// NewPathGenerator creates a path generator. Without options it draws from
// the math/rand package source, logs to the logrus standard logger and
// validates every field it returns.
func NewPathGenerator(opts ...Option) *PathGenerator {
	g := &PathGenerator{
		rng:      globalRandom{},
		log:      logrus.StandardLogger(),
		validate: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Name returns the name of this generator
func (g *PathGenerator) Name() string {
	return "Path Walker"
}

// Generate grows a corridor on a grid of the given size. Sizes below 3x3 are
// rejected with world.ErrGridTooSmall. Running out of compatible kinds is not
// an error: it is how every corridor ends.
func (g *PathGenerator) Generate(size world.GridSize) (*field.Field, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}

	f := field.New(size)
	current := field.Segment{Coordinate: world.Coordinate{}, Kind: tile.Start}
	if err := f.Place(current); err != nil {
		return nil, err
	}
	g.logPlacement(f, current)

	for !f.Finished() {
		next, entry, ok := current.Kind.Step(current.Coordinate, current.Entry)
		if !ok {
			return nil, fmt.Errorf("generator: %v has no exit when entered from %v", current, current.Entry)
		}

		openings, closings := Constraints(f, next, entry)
		kind, found, err := tile.SelectRandom(g.rng, openings, closings)
		if err != nil {
			return nil, fmt.Errorf("generator: selecting segment at %v: %w", next, err)
		}

		seg := field.Segment{Coordinate: next, Kind: tile.Finish, Entry: entry}
		if found {
			seg.Kind = kind
		}
		if err := f.Place(seg); err != nil {
			return nil, fmt.Errorf("generator: placing %v: %w", seg, err)
		}
		g.logPlacement(f, seg)
		current = seg
	}

	if g.validate {
		if err := field.Validate(f); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidField, err)
		}
	}

	last, _ := f.Last()
	g.log.WithFields(logrus.Fields{
		"size":     size.String(),
		"segments": f.Len(),
		"finish":   last.Coordinate.String(),
		"coverage": float64(f.Len()) / float64(size.Cells()),
	}).Debug("corridor generated")

	return f, nil
}

func (g *PathGenerator) logPlacement(f *field.Field, s field.Segment) {
	g.log.WithFields(logrus.Fields{
		"step":  f.Len() - 1,
		"x":     s.Coordinate.X,
		"y":     s.Coordinate.Y,
		"kind":  s.Kind.String(),
		"entry": s.Entry.String(),
	}).Debug("segment placed")
}

// Constraints derives the sides a segment entering c through entry must have
// open and closed. The entry side is always open. Every other side is closed
// if it faces out of the grid, and otherwise copies the openness of the
// segment already placed across it, if any.
func Constraints(f *field.Field, c world.Coordinate, entry world.Side) (openings, closings world.SideSet) {
	openings = world.NewSideSet(entry)
	closings = world.NewSideSet()

	size := f.Size()
	for _, side := range world.AllSides() {
		if side == entry {
			continue
		}
		if size.Exits(c, side) {
			closings.Put(side)
			continue
		}
		neighbor, ok := f.At(c.Neighbor(side))
		if !ok {
			continue
		}
		if neighbor.IsOpen(side.Opposite()) {
			openings.Put(side)
		} else {
			closings.Put(side)
		}
	}
	return openings, closings
}
