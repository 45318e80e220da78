package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tilt/pkg/engine/input"
	"tilt/pkg/engine/world"
	"tilt/pkg/game/config"
	"tilt/pkg/game/export"
	"tilt/pkg/game/state"
)

func runCLI(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunJSON(t *testing.T) {
	code, out, _ := runCLI(t, "", "-preset", "medium", "-seed", "5", "-format", "json")
	require.Equal(t, 0, code)

	var doc export.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 5, doc.Width)
	assert.Equal(t, 5, doc.Height)
	assert.Equal(t, int64(5), doc.Seed)
	require.NotEmpty(t, doc.Segments)
	assert.Equal(t, "Start", doc.Segments[0].Kind)
	assert.Equal(t, "Finish", doc.Segments[len(doc.Segments)-1].Kind)
}

func TestRunJSONKeepsSeedZero(t *testing.T) {
	code, out, _ := runCLI(t, "", "-seed", "0", "-format", "json")
	require.Equal(t, 0, code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Contains(t, doc, "seed")
	assert.Equal(t, float64(0), doc["seed"])
}

func TestRunIsReproducibleWithSeed(t *testing.T) {
	_, a, _ := runCLI(t, "", "-width", "7", "-height", "4", "-seed", "99", "-format", "yaml")
	_, b, _ := runCLI(t, "", "-width", "7", "-height", "4", "-seed", "99", "-format", "yaml")
	assert.Equal(t, a, b)
	assert.Contains(t, a, "width: 7\n")
}

func TestRunMap(t *testing.T) {
	code, out, _ := runCLI(t, "", "-preset", "small", "-seed", "1", "-plain")
	require.Equal(t, 0, code)
	assert.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), 3)
	assert.True(t, strings.HasPrefix(strings.Split(strings.TrimSuffix(out, "\n"), "\n")[2], "◉"))
}

func TestRunSchemaAndDump(t *testing.T) {
	code, out, _ := runCLI(t, "", "-format", "schema")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "\"segments\"")

	code, out, _ = runCLI(t, "", "-seed", "3", "-format", "dump")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "validation: ok")
}

func TestRunRejectsBadInput(t *testing.T) {
	code, _, _ := runCLI(t, "", "-width", "2")
	assert.Equal(t, 2, code)

	code, _, _ = runCLI(t, "", "-format", "png")
	assert.Equal(t, 2, code)

	code, _, errOut := runCLI(t, "", "-preset", "huge")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "unknown preset")

	code, _, _ = runCLI(t, "", "-interactive", "-format", "json")
	assert.Equal(t, 2, code)

	code, _, _ = runCLI(t, "", "-config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, 1, code)
}

func TestRunWritesDumpFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "first.txt")
	code, out, errOut := runCLI(t, "", "-seed", "6", "-format", "json", "-dump", path)
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, "debug dump written")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "seed: 6\n")
	assert.True(t, json.Valid([]byte(out)), "the dump does not leak into stdout")
}

func TestRunWithConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte("presets:\n  - name: strip\n    width: 8\n    height: 3\n"), 0o644))

	code, out, _ := runCLI(t, "", "-config", path, "-seed", "2", "-format", "json")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "\"width\": 8")
}

func TestRunInteractive(t *testing.T) {
	code, out, _ := runCLI(t, "r\nsize large\nsize huge\ndance\n?\nq\n", "-interactive", "-plain", "-seed", "4")
	require.Equal(t, 0, code)

	assert.Contains(t, out, "Seed: 4")
	assert.Contains(t, out, "Grid: 10x10")
	assert.Contains(t, out, "10x10 Grid")
	assert.Contains(t, out, "Unknown grid preset: huge")
	assert.Contains(t, out, "Unknown command: dance")
	assert.Contains(t, out, "size small|medium|large")
	assert.True(t, strings.HasSuffix(out, "Goodbye\n"))
}

func TestRunInteractiveSizeWithoutName(t *testing.T) {
	code, out, _ := runCLI(t, "size\nq\n", "-interactive", "-plain", "-seed", "4", "-preset", "medium")
	require.Equal(t, 0, code)

	assert.Contains(t, out, "Choose a preset: size small|medium|large")
	assert.NotContains(t, out, "3x3 Grid")
	assert.NotContains(t, out, "Grid: 3x3")
}

func TestRunInteractiveDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.txt")
	code, out, _ := runCLI(t, "dump "+path+"\nq\n", "-interactive", "-plain", "-seed", "9")
	require.Equal(t, 0, code)

	assert.Contains(t, out, "Debug dump written: "+path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "seed: 9\n")
}

func TestProcessInput(t *testing.T) {
	s := state.NewSession(world.Size(3, 3), func() int64 { return 8 }, nil)
	require.NoError(t, s.Generate(1))
	cfg := config.Default()
	log := newLogger(&bytes.Buffer{}, false)

	assert.True(t, processInput(s, cfg, input.Intent{Action: input.ActionRegenerate}, log))
	assert.Equal(t, int64(8), s.Seed)
	assert.Equal(t, 2, s.Generations)

	assert.True(t, processInput(s, cfg, input.Intent{Action: input.ActionResize, Arg: "medium"}, log))
	assert.Equal(t, world.Size(5, 5), s.Size)

	assert.True(t, processInput(s, cfg, input.Intent{Action: input.ActionResize}, log))
	assert.Equal(t, world.Size(5, 5), s.Size, "size without a name keeps the grid")

	assert.False(t, processInput(s, cfg, input.Intent{Action: input.ActionQuit}, log))
}
