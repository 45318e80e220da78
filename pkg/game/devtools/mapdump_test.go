package devtools

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tilt/pkg/engine/world"
	"tilt/pkg/game/state"
)

func session(t *testing.T) *state.Session {
	t.Helper()
	s := state.NewSession(world.Size(5, 5), func() int64 { return 11 }, nil)
	require.NoError(t, s.Regenerate())
	return s
}

func TestWriteDump(t *testing.T) {
	s := session(t)

	var buf bytes.Buffer
	require.NoError(t, WriteDump(&buf, s))
	out := buf.String()

	assert.Contains(t, out, "seed: 11\n")
	assert.Contains(t, out, "grid_width: 5\n")
	assert.Contains(t, out, "validation: ok\n")
	assert.Contains(t, out, "  step: 0 x: 0 y: 0 kind: Start entry: - openings: up rotation: 0\n")
	assert.Equal(t, s.Field.Len(), bytes.Count(buf.Bytes(), []byte("  step: ")))
}

func TestWriteDumpMapOrientation(t *testing.T) {
	var buf bytes.Buffer
	writeMapGrid(&buf, session(t).Field)

	lines := bytes.Split(bytes.TrimSuffix(buf.Bytes(), []byte("\n")), []byte("\n"))
	require.Len(t, lines, 5)
	assert.Equal(t, byte('S'), lines[4][0], "start is drawn bottom left")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("E")))
}

func TestWriteDumpWithoutField(t *testing.T) {
	s := state.NewSession(world.Size(3, 3), nil, nil)
	assert.Error(t, WriteDump(&bytes.Buffer{}, s))
}

func TestDumpToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.txt")
	got, err := DumpToFile(session(t), path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "=== END MAP DUMP ===")
}
