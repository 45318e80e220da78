package generator

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"tilt/pkg/game/tile"
)

// defaultSeed is used when a caller asks for seed 0, so that the zero value
// still yields a reproducible stream.
const defaultSeed int64 = 1

// Option configures a PathGenerator
type Option func(*PathGenerator)

// WithRandom makes the generator draw every choice from rng
func WithRandom(rng tile.Random) Option {
	return func(g *PathGenerator) {
		g.rng = rng
	}
}

// WithSeed makes the generator draw from a private stream seeded with seed.
// Seed 0 maps to a fixed default seed.
func WithSeed(seed int64) Option {
	return func(g *PathGenerator) {
		g.rng = RandomFromSeed(seed)
	}
}

// WithLogger sets the logger placements and run summaries are written to
func WithLogger(log logrus.FieldLogger) Option {
	return func(g *PathGenerator) {
		g.log = log
	}
}

// WithValidation toggles the invariant check run on every finished field
func WithValidation(enabled bool) Option {
	return func(g *PathGenerator) {
		g.validate = enabled
	}
}

// RandomFromSeed returns a deterministic *rand.Rand for seed
func RandomFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// globalRandom draws from the math/rand package source, which is safe for
// concurrent use.
type globalRandom struct{}

func (globalRandom) Intn(n int) int {
	return rand.Intn(n)
}
