package generator

import (
	"tilt/pkg/engine/world"
	"tilt/pkg/game/field"
)

// GridGenerator is an interface for corridor generation algorithms
type GridGenerator interface {
	Generate(size world.GridSize) (*field.Field, error)
	Name() string
}

// Factory builds the generator for one run from that run's seed
type Factory func(seed int64) GridGenerator

// PathFactory returns a Factory of seeded path generators with opts applied
// after the seed
func PathFactory(opts ...Option) Factory {
	return func(seed int64) GridGenerator {
		all := append([]Option{WithSeed(seed)}, opts...)
		return NewPathGenerator(all...)
	}
}
