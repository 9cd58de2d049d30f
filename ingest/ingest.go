// Package ingest turns construction input into scenes: it parses edge
// lists from JSON or CSV and scatters initial vertex positions uniformly
// within the window bounds. Construction-time data is assumed well-formed;
// anything malformed aborts construction instead of being dropped.
package ingest

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/forceviz/forceviz/graph"
	"github.com/forceviz/forceviz/scene"
)

// EdgeList is the raw construction input: unordered (v1, v2) pairs.
type EdgeList [][2]graph.Vertex

// Processor parses raw bytes into an edge list.
type Processor interface {
	Process(data []byte) (EdgeList, error)
	Name() string
}

// ForExtension returns the processor matching a data file's extension.
func ForExtension(path string) (Processor, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return &JSONProcessor{}, nil
	case ".csv":
		return &CSVProcessor{}, nil
	default:
		return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}

// JSONProcessor parses {"edges": [[1,2], [2,3], ...]}.
type JSONProcessor struct{}

func (p *JSONProcessor) Name() string { return "json" }

func (p *JSONProcessor) Process(data []byte) (EdgeList, error) {
	var doc struct {
		Edges [][2]graph.Vertex `json:"edges"`
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse edge list: %w", err)
	}
	if doc.Edges == nil {
		return nil, fmt.Errorf("edge list missing %q key", "edges")
	}
	return EdgeList(doc.Edges), nil
}

// CSVProcessor parses one "v1,v2" record per line.
type CSVProcessor struct{}

func (p *CSVProcessor) Name() string { return "csv" }

func (p *CSVProcessor) Process(data []byte) (EdgeList, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = 2

	var edges EdgeList
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse edge list: %w", err)
		}
		v1, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			return nil, fmt.Errorf("bad vertex id %q: %w", record[0], err)
		}
		v2, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("bad vertex id %q: %w", record[1], err)
		}
		edges = append(edges, [2]graph.Vertex{graph.Vertex(v1), graph.Vertex(v2)})
	}
	return edges, nil
}

// Sample is the built-in demo graph used when no data file is given:
// a hub with two attached cycles.
func Sample() EdgeList {
	return EdgeList{
		{1, 2}, {2, 3}, {3, 4}, {4, 1},
		{1, 5},
		{5, 6}, {6, 7}, {7, 8}, {8, 5},
		{2, 6}, {4, 8},
	}
}

// Build constructs a scene from an edge list. Every referenced vertex is
// placed at a uniformly random point inside width×height before any edge
// is inserted, satisfying the scene's position invariant. Invalid edges
// (self-loops) abort construction.
func Build(edges EdgeList, width, height float64, rng *rand.Rand) (*scene.Scene, error) {
	s := scene.New()

	seen := make(map[graph.Vertex]struct{})
	for _, e := range edges {
		for _, v := range []graph.Vertex{e[0], e[1]} {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			s.AddVertex(v, r2.Vec{
				X: rng.Float64() * width,
				Y: rng.Float64() * height,
			})
		}
	}

	for _, e := range edges {
		if err := s.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("edge (%d,%d): %w", e[0], e[1], err)
		}
	}
	return s, nil
}
