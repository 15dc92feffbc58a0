package canvas

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/kintree/pkg/tree"
)

// MarshalTree converts a tree to JSON bytes.
// Records are sorted by ID for deterministic output.
func MarshalTree(t *tree.Tree) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTreeTo(t, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTreeFile writes a tree to a JSON file.
// The file is created with 0644 permissions.
func WriteTreeFile(t *tree.Tree, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeTreeTo(t, f)
}

// WriteTree writes a tree as JSON to an io.Writer.
// Use MarshalTree for in-memory serialization or WriteTreeFile for files.
func WriteTree(t *tree.Tree, w io.Writer) error {
	return writeTreeTo(t, w)
}

// ReadTreeFile reads a JSON file and returns the decoded tree.
func ReadTreeFile(path string) (*tree.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readTreeFrom(f)
}

// ReadTree decodes a JSON tree from an io.Reader.
// Use ReadTreeFile for files or pass bytes.NewReader for in-memory data.
func ReadTree(r io.Reader) (*tree.Tree, error) {
	return readTreeFrom(r)
}

func writeTreeTo(t *tree.Tree, w io.Writer) error {
	out := FromTree(t)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readTreeFrom(r io.Reader) (*tree.Tree, error) {
	var data TreeFile
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ToTree(data)
}
