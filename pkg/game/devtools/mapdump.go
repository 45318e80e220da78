// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"tilt/pkg/engine/world"
	"tilt/pkg/game/field"
	"tilt/pkg/game/state"
	"tilt/pkg/game/tile"
)

const mapDumpFilename = "map.txt"

// cellSymbol returns the single-character ASCII symbol for a grid cell.
func cellSymbol(f *field.Field, c world.Coordinate) rune {
	s, ok := f.At(c)
	if !ok {
		return '#'
	}
	switch s.Kind {
	case tile.Start:
		return 'S'
	case tile.Finish:
		return 'E'
	case tile.TopBottom:
		return '|'
	case tile.LeftRight:
		return '-'
	default:
		return '+'
	}
}

// writeMapGrid writes the grid top row first so up is up.
func writeMapGrid(w io.Writer, f *field.Field) {
	size := f.Size()
	for y := size.Height - 1; y >= 0; y-- {
		for x := 0; x < size.Width; x++ {
			fmt.Fprintf(w, "%c", cellSymbol(f, world.C(x, y)))
		}
		fmt.Fprintln(w)
	}
}

// WriteDump writes a full debug dump of the session's corridor: metadata,
// legend, map, and the placement order with every segment's openings.
// Format is human- and LLM-readable (sections, key: value, consistent structure).
func WriteDump(w io.Writer, s *state.Session) error {
	if s.Field == nil {
		return fmt.Errorf("no field")
	}
	f := s.Field

	validation := "ok"
	if err := field.Validate(f); err != nil {
		validation = err.Error()
	}

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (corridor layout) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "seed: %d\n", s.Seed)
	fmt.Fprintf(w, "generation: %d\n", s.Generations)
	fmt.Fprintf(w, "grid_width: %d\n", f.Size().Width)
	fmt.Fprintf(w, "grid_height: %d\n", f.Size().Height)
	fmt.Fprintln(w, "coordinate_system: x,y (0-based, x=horizontal, y=vertical, y grows upward)")
	fmt.Fprintf(w, "segments: %d\n", f.Len())
	fmt.Fprintf(w, "coverage: %.2f\n", float64(f.Len())/float64(f.Size().Cells()))
	fmt.Fprintf(w, "validation: %s\n", validation)
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, "S = start  E = finish  | = vertical straight  - = horizontal straight  + = corner  # = empty")
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map (top row first) ---")
	writeMapGrid(w, f)
	fmt.Fprintln(w, "")

	// --- Segments ---
	fmt.Fprintln(w, "--- Segments (placement order) ---")
	f.Each(func(i int, seg field.Segment) {
		open := make([]string, 0, 2)
		for _, side := range world.SortedSides(seg.Openings()) {
			open = append(open, side.String())
		}
		entry := seg.Entry.String()
		if seg.Kind == tile.Start {
			entry = "-"
		}
		fmt.Fprintf(w, "  step: %d x: %d y: %d kind: %s entry: %s openings: %s rotation: %d\n",
			i, seg.Coordinate.X, seg.Coordinate.Y, seg.Kind, entry, strings.Join(open, ","), seg.Rotation())
	})
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "=== END MAP DUMP ===")
	return nil
}

// DumpToFile writes the debug dump to path, or map.txt in the working
// directory when path is empty, and returns the absolute path written.
func DumpToFile(s *state.Session, path string) (string, error) {
	if path == "" {
		path = mapDumpFilename
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteDump(f, s); err != nil {
		return "", err
	}
	return absPath, nil
}
