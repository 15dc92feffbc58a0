package canvas

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/matzehuels/kintree/pkg/layout"
	"github.com/matzehuels/kintree/pkg/tree"
)

// Node is one positioned person element on a canvas. ID is a fresh UUID per
// element, as the canvas format requires; PersonID links back to the record.
type Node struct {
	ID       string  `json:"id"`
	PersonID string  `json:"person_id"`
	Label    string  `json:"label"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
}

// Edge connects two canvas nodes by their element IDs.
type Edge struct {
	ID       string `json:"id"`
	FromNode string `json:"from_node"`
	ToNode   string `json:"to_node"`
	Kind     string `json:"kind"`
	Label    string `json:"label,omitempty"`
}

// Canvas is the positioned output format: every placed person as a node
// plus the family edges between placed people.
type Canvas struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// FromLayout builds a canvas from a computed layout. One node is emitted
// per positioned person, in ID order; edges whose endpoints were both
// placed are carried over. Unplaced people are simply absent, matching
// their absence from the position map.
func FromLayout(t *tree.Tree, result layout.Result, opts layout.Options) Canvas {
	opts.SetDefaults()

	var c Canvas
	elements := make(map[string]string, len(result.Positions))
	for _, id := range t.IDs() {
		pos, ok := result.Positions[id]
		if !ok {
			continue
		}
		eid := uuid.NewString()
		elements[id] = eid
		c.Nodes = append(c.Nodes, Node{
			ID:       eid,
			PersonID: id,
			Label:    nodeLabel(t, id),
			X:        pos.X,
			Y:        pos.Y,
			Width:    opts.NodeWidth,
			Height:   opts.NodeHeight,
		})
	}

	for _, e := range t.Edges() {
		from, okF := elements[e.From]
		to, okT := elements[e.To]
		if !okF || !okT {
			continue
		}
		c.Edges = append(c.Edges, Edge{
			ID:       uuid.NewString(),
			FromNode: from,
			ToNode:   to,
			Kind:     edgeKindToString(e.Kind),
			Label:    e.Label,
		})
	}
	return c
}

// nodeLabel is the person's display text: name with life dates when known.
func nodeLabel(t *tree.Tree, id string) string {
	p, ok := t.Person(id)
	if !ok {
		return id
	}
	label := p.Name
	if label == "" {
		label = p.ID
	}
	switch {
	case p.BirthDate != "" && p.DeathDate != "":
		return fmt.Sprintf("%s\n%s - %s", label, p.BirthDate, p.DeathDate)
	case p.BirthDate != "":
		return fmt.Sprintf("%s\n%s", label, p.BirthDate)
	}
	return label
}

// MarshalCanvas converts a canvas to indented JSON bytes.
func MarshalCanvas(c Canvas) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeCanvasTo(c, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteCanvasFile writes a canvas to a JSON file.
func WriteCanvasFile(c Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeCanvasTo(c, f)
}

// ReadCanvasFile reads a JSON canvas file.
func ReadCanvasFile(path string) (Canvas, error) {
	f, err := os.Open(path)
	if err != nil {
		return Canvas{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readCanvasFrom(f)
}

func writeCanvasTo(c Canvas, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readCanvasFrom(r io.Reader) (Canvas, error) {
	var c Canvas
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return Canvas{}, fmt.Errorf("decode: %w", err)
	}
	return c, nil
}
