// Package export turns a generated field into read-only records for the
// collaborators that draw, collide and steer through the corridor.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"tilt/pkg/game/field"
	"tilt/pkg/game/tile"
)

// Record describes one placed segment
type Record struct {
	X          int    `json:"x" yaml:"x"`
	Y          int    `json:"y" yaml:"y"`
	Kind       string `json:"kind" yaml:"kind" jsonschema:"enum=Start,enum=Finish,enum=BottomLeft,enum=BottomRight,enum=TopLeft,enum=TopRight,enum=TopBottom,enum=LeftRight"`
	Piece      string `json:"piece" yaml:"piece" jsonschema:"enum=start,enum=finish,enum=corner,enum=straight"`
	Identifier string `json:"identifier" yaml:"identifier"`
	Rotation   int    `json:"rotation" yaml:"rotation" jsonschema:"enum=0,enum=90,enum=180,enum=270"`
	// Arrival is set on the Finish record only
	Arrival string `json:"arrival,omitempty" yaml:"arrival,omitempty" jsonschema:"enum=up,enum=right,enum=down,enum=left"`
}

// Document is a full corridor in placement order
type Document struct {
	Width    int      `json:"width" yaml:"width"`
	Height   int      `json:"height" yaml:"height"`
	Seed     int64    `json:"seed" yaml:"seed"`
	Segments []Record `json:"segments" yaml:"segments"`
}

// NewRecord converts a segment
func NewRecord(s field.Segment) Record {
	r := Record{
		X:          s.Coordinate.X,
		Y:          s.Coordinate.Y,
		Kind:       s.Kind.String(),
		Piece:      s.Kind.Piece().String(),
		Identifier: s.Kind.Identifier(),
		Rotation:   s.Rotation(),
	}
	if s.Kind == tile.Finish {
		r.Arrival = s.Entry.String()
	}
	return r
}

// NewDocument converts a field generated from seed
func NewDocument(f *field.Field, seed int64) Document {
	doc := Document{
		Width:    f.Size().Width,
		Height:   f.Size().Height,
		Seed:     seed,
		Segments: make([]Record, 0, f.Len()),
	}
	f.Each(func(_ int, s field.Segment) {
		doc.Segments = append(doc.Segments, NewRecord(s))
	})
	return doc
}

// WriteJSON writes doc as indented JSON
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// WriteYAML writes doc as YAML
func WriteYAML(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return enc.Close()
}

// WriteSchema writes the JSON Schema of Document
func WriteSchema(w io.Writer) error {
	schema := jsonschema.Reflect(&Document{})
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
