// Package state holds the generation session: the grid size in play, the
// seed of the current corridor and the corridor itself.
package state

import (
	"time"

	"github.com/sirupsen/logrus"

	"tilt/pkg/engine/world"
	"tilt/pkg/game/field"
	"tilt/pkg/game/generator"
)

// SeedFunc returns a fresh seed for each regeneration
type SeedFunc func() int64

// TimeSeed seeds from the wall clock
func TimeSeed() int64 {
	return time.Now().UnixNano()
}

// Session represents one player's run of generated grids
type Session struct {
	Size  world.GridSize
	Seed  int64
	Field *field.Field

	Generations int // Number of corridors generated so far

	Messages []string

	nextSeed     SeedFunc
	newGenerator generator.Factory
	log          logrus.FieldLogger
}

// NewSession creates a session for the given size. nextSeed supplies the seed
// of every regeneration; nil uses TimeSeed.
func NewSession(size world.GridSize, nextSeed SeedFunc, log logrus.FieldLogger) *Session {
	if nextSeed == nil {
		nextSeed = TimeSeed
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Session{
		Size:         size,
		Messages:     make([]string, 0),
		nextSeed:     nextSeed,
		newGenerator: generator.PathFactory(generator.WithLogger(log)),
		log:          log,
	}
}

// SetGenerator replaces the factory every later generation builds its
// generator with
func (s *Session) SetGenerator(f generator.Factory) {
	s.newGenerator = f
}

// Generate builds a corridor with the given seed, replacing the current one
func (s *Session) Generate(seed int64) error {
	g := s.newGenerator(seed)
	f, err := g.Generate(s.Size)
	if err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"generator": g.Name(),
		"seed":      seed,
		"size":      s.Size.String(),
	}).Debug("corridor ready")
	s.Seed = seed
	s.Field = f
	s.Generations++
	return nil
}

// Regenerate discards the current corridor and builds a new one from a
// fresh seed
func (s *Session) Regenerate() error {
	return s.Generate(s.nextSeed())
}

// Resize switches to a new grid size and regenerates
func (s *Session) Resize(size world.GridSize) error {
	if err := size.Validate(); err != nil {
		return err
	}
	s.Size = size
	return s.Regenerate()
}

// AddMessage adds a message to the session's message log
func (s *Session) AddMessage(msg string) {
	const maxMessages = 5
	s.Messages = append(s.Messages, msg)

	// Keep only the last maxMessages
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (s *Session) ClearMessages() {
	s.Messages = make([]string, 0)
}
