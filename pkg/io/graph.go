package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/fordview/pkg/graph"
)

type document struct {
	Mode  string   `json:"mode" toml:"mode" yaml:"mode"`
	Nodes []string `json:"nodes" toml:"nodes" yaml:"nodes"`
	Edges []edge   `json:"edges" toml:"edges" yaml:"edges"`
}

type edge struct {
	From   string  `json:"from" toml:"from" yaml:"from"`
	To     string  `json:"to" toml:"to" yaml:"to"`
	Weight float64 `json:"weight" toml:"weight" yaml:"weight"`
}

// Read decodes a graph document in format f from r.
//
// Nodes are added in document order, then edges in document order, so the
// adjacency order of the result matches the order edges were listed.
// Read does not close r.
func Read(r io.Reader, f Format) (*graph.Graph[string], error) {
	var doc document
	var err error
	switch f {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&doc)
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(&doc)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode %s: %w", f, err)
	}
	return doc.build()
}

// Write encodes g in format f and writes it to w.
func Write(g *graph.Graph[string], w io.Writer, f Format) error {
	doc := newDocument(g)
	var err error
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(doc)
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(doc); err == nil {
			err = enc.Close()
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	return nil
}

// ImportFile reads the graph file at path, choosing the format from its
// extension.
func ImportFile(path string) (*graph.Graph[string], error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	g, err := Read(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// ExportFile writes g to path, choosing the format from its extension.
func ExportFile(g *graph.Graph[string], path string) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Write(g, &buf, f); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Canonical returns the compact JSON encoding of g. Equal graphs, including
// adjacency order, produce equal bytes.
func Canonical(g *graph.Graph[string]) []byte {
	b, err := json.Marshal(newDocument(g))
	if err != nil {
		// Weights are finite and IDs are strings; Marshal cannot fail.
		panic(fmt.Sprintf("io: canonical encoding: %v", err))
	}
	return b
}

// Marshal encodes g as indented JSON.
func Marshal(g *graph.Graph[string]) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(g, &buf, FormatJSON); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a JSON graph document.
func Unmarshal(data []byte) (*graph.Graph[string], error) {
	return Read(bytes.NewReader(data), FormatJSON)
}

func newDocument(g *graph.Graph[string]) document {
	doc := document{
		Mode:  g.Mode().String(),
		Nodes: g.Nodes(),
		Edges: []edge{},
	}
	for _, e := range g.InsertionOrder() {
		doc.Edges = append(doc.Edges, edge{From: e.From, To: e.To, Weight: e.Weight})
	}
	return doc
}

func (d document) build() (*graph.Graph[string], error) {
	if strings.TrimSpace(d.Mode) == "" {
		return nil, fmt.Errorf("%w: mode is required", graph.ErrInvalidMode)
	}
	mode, err := graph.ParseMode(d.Mode)
	if err != nil {
		return nil, err
	}
	g := graph.NewFunc[string](mode, graph.CompareNatural)
	for _, n := range d.Nodes {
		g.AddNode(n)
	}
	for i, e := range d.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("edges[%d]: %w", i, err)
		}
	}
	return g, nil
}
