package topology

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteJSON encodes topologies as indented JSON and writes them to w.
// The format matches the lssea extractor output and can be re-imported
// with [ReadJSON] for round-trip processing.
func WriteJSON(topos []Topology, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(topos); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadJSON decodes a topology sequence from r.
//
// The input must be a JSON array of host objects:
//
//	[{"hostname": "vios1", "sea_sections": [...]}]
//
// ReadJSON does not close r. The returned slice is independent of r and
// safe to modify.
func ReadJSON(r io.Reader) ([]Topology, error) {
	var topos []Topology
	if err := json.NewDecoder(r).Decode(&topos); err != nil {
		return nil, fmt.Errorf("decode topology: %w", err)
	}
	return topos, nil
}

// Marshal encodes a single topology as compact JSON. The encoding is
// deterministic for a given topology, so its hash can serve as a cache key.
func Marshal(t Topology) ([]byte, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("encode topology: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a single topology produced by [Marshal].
func Unmarshal(data []byte) (Topology, error) {
	var t Topology
	if err := json.Unmarshal(data, &t); err != nil {
		return Topology{}, fmt.Errorf("decode topology: %w", err)
	}
	return t, nil
}

// ExportJSON writes topologies to a JSON file at path.
func ExportJSON(topos []Topology, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(topos, f)
}

// ImportJSON reads topologies from a JSON file at path.
func ImportJSON(path string) ([]Topology, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
