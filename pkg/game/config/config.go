// Package config loads the grid-size presets offered to players.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tilt/pkg/engine/world"
)

//go:embed presets.yaml
var defaultPresets []byte

// Config errors.
var (
	ErrNoPresets       = errors.New("config: no presets defined")
	ErrDuplicatePreset = errors.New("config: duplicate preset name")
	ErrUnknownPreset   = errors.New("config: unknown preset")
)

// Preset is a named grid size
type Preset struct {
	Name   string `yaml:"name"`
	Label  string `yaml:"label"` // translation key shown in menus
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Size returns the preset's grid size
func (p Preset) Size() world.GridSize {
	return world.Size(p.Width, p.Height)
}

// Config is the preset catalogue
type Config struct {
	Default string   `yaml:"default"`
	Presets []Preset `yaml:"presets"`
}

// Default returns the built-in presets
func Default() *Config {
	c, err := Parse(defaultPresets)
	if err != nil {
		panic("built-in presets are invalid: " + err.Error())
	}
	return c
}

// Load reads presets from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML preset document
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks every preset has a unique name and a usable grid size, and
// that the default names one of them
func (c *Config) Validate() error {
	if len(c.Presets) == 0 {
		return ErrNoPresets
	}
	seen := make(map[string]bool, len(c.Presets))
	for _, p := range c.Presets {
		if seen[p.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicatePreset, p.Name)
		}
		seen[p.Name] = true
		if err := p.Size().Validate(); err != nil {
			return fmt.Errorf("config: preset %q: %w", p.Name, err)
		}
	}
	if c.Default != "" && !seen[c.Default] {
		return fmt.Errorf("%w: default %q", ErrUnknownPreset, c.Default)
	}
	return nil
}

// Lookup returns the preset called name. An empty name selects the default,
// or the first preset when no default is set.
func (c *Config) Lookup(name string) (Preset, error) {
	if name == "" {
		name = c.Default
	}
	if name == "" {
		return c.Presets[0], nil
	}
	for _, p := range c.Presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Names returns the preset names in declaration order
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Presets))
	for _, p := range c.Presets {
		names = append(names, p.Name)
	}
	return names
}

// Marshal encodes the config back to YAML
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
