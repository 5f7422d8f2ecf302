package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Supported graph description formats.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
	FormatJSON = "json"
)

// Spec is the on-disk description of a graph.
//
//	vertices: 5
//	directed: false
//	edges:
//	  - {from: 0, to: 1, weight: 2}
type Spec struct {
	Vertices int    `json:"vertices" yaml:"vertices" toml:"vertices"`
	Directed bool   `json:"directed" yaml:"directed" toml:"directed"`
	Edges    []Edge `json:"edges" yaml:"edges" toml:"edges"`
}

// Build materializes the description. Edges of an undirected description are mirrored.
// The first invalid edge aborts the build and is reported by its index.
func (s Spec) Build() (*AdjacencyList, error) {
	g, err := New(s.Vertices)
	if err != nil {
		return nil, err
	}
	for i, e := range s.Edges {
		if s.Directed {
			err = g.AddEdge(e.From, e.To, e.Weight)
		} else {
			err = g.AddUndirectedEdge(e.From, e.To, e.Weight)
		}
		if err != nil {
			return nil, fmt.Errorf("graph: edge #%d: %w", i, err)
		}
	}

	return g, nil
}

// Decode reads a Spec in the given format from r and builds it.
// Unknown keys are rejected for YAML and JSON.
func Decode(r io.Reader, format string) (*AdjacencyList, error) {
	var s Spec
	switch strings.ToLower(format) {
	case FormatYAML, "yml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("graph: decode yaml: %w", err)
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
			return nil, fmt.Errorf("graph: decode toml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("graph: decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return s.Build()
}

// Load opens path and decodes it using the format implied by its extension
// (.yaml, .yml, .toml or .json).
func Load(path string) (*AdjacencyList, error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "" {
		return nil, fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graph: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f, format)
}
