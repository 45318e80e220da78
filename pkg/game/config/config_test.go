package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tilt/pkg/engine/world"
)

func TestDefaultPresets(t *testing.T) {
	c := Default()
	assert.Equal(t, []string{"small", "medium", "large"}, c.Names())

	p, err := c.Lookup("")
	require.NoError(t, err)
	assert.Equal(t, world.Size(3, 3), p.Size())

	p, err = c.Lookup("large")
	require.NoError(t, err)
	assert.Equal(t, world.Size(10, 10), p.Size())
	assert.Equal(t, "GRID_10X10", p.Label)

	_, err = c.Lookup("huge")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", "presets: []\n", ErrNoPresets},
		{"duplicate", "presets:\n  - {name: a, width: 3, height: 3}\n  - {name: a, width: 4, height: 4}\n", ErrDuplicatePreset},
		{"too small", "presets:\n  - {name: a, width: 2, height: 3}\n", world.ErrGridTooSmall},
		{"bad default", "default: b\npresets:\n  - {name: a, width: 3, height: 3}\n", ErrUnknownPreset},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := Parse([]byte("presets: ["))
	assert.Error(t, err)
}

func TestLoadRoundTrip(t *testing.T) {
	data, err := Default().Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLookupWithoutDefault(t *testing.T) {
	c, err := Parse([]byte("presets:\n  - {name: wide, width: 12, height: 4}\n"))
	require.NoError(t, err)
	p, err := c.Lookup("")
	require.NoError(t, err)
	assert.Equal(t, "wide", p.Name)
}
