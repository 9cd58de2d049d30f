// Package graph provides adjacency-set storage for undirected simple graphs.
// It is the bottom layer of the visualizer: vertices are bare integer ids,
// edges carry no payload, and adjacency is kept symmetric at all times.
package graph

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for graph operations.
var (
	// ErrVertexNotFound indicates a lookup referenced a vertex absent
	// from the graph.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrInvalidEdge indicates an attempt to add a self-loop.
	ErrInvalidEdge = errors.New("graph: invalid edge")
)

// Vertex identifies a node in the graph. Ids are unique within a Graph.
type Vertex int

// Edge is an undirected edge in canonical orientation: A is always the
// larger id, so (a,b) and (b,a) compare equal after canonicalization.
type Edge struct {
	A Vertex `json:"a"`
	B Vertex `json:"b"`
}

// canonical orders an endpoint pair larger-id-first.
func canonical(v1, v2 Vertex) Edge {
	if v1 < v2 {
		v1, v2 = v2, v1
	}
	return Edge{A: v1, B: v2}
}

// Graph maps each vertex to its neighbor set. Adjacency is symmetric:
// v2 ∈ Neighbors(v1) ⇔ v1 ∈ Neighbors(v2), and every vertex referenced
// as a neighbor has its own entry.
//
// The visualizer's event model is strictly serial (one logical owner per
// Scene), so Graph carries no lock.
type Graph struct {
	adjacency map[Vertex]map[Vertex]struct{}
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		adjacency: make(map[Vertex]map[Vertex]struct{}),
	}
}

// AddVertex inserts v with an empty neighbor set. Re-adding an existing
// vertex is a no-op.
func (g *Graph) AddVertex(v Vertex) {
	if _, ok := g.adjacency[v]; !ok {
		g.adjacency[v] = make(map[Vertex]struct{})
	}
}

// AddEdge connects v1 and v2, inserting either endpoint first if absent.
// Self-loops are not modeled and are rejected with ErrInvalidEdge.
func (g *Graph) AddEdge(v1, v2 Vertex) error {
	if v1 == v2 {
		return fmt.Errorf("%w: self-loop on vertex %d", ErrInvalidEdge, v1)
	}
	g.AddVertex(v1)
	g.AddVertex(v2)
	g.adjacency[v1][v2] = struct{}{}
	g.adjacency[v2][v1] = struct{}{}
	return nil
}

// Has reports whether v is present in the graph.
func (g *Graph) Has(v Vertex) bool {
	_, ok := g.adjacency[v]
	return ok
}

// Neighbors returns the neighbor set of v. Callers must guarantee v
// exists; a missing vertex yields ErrVertexNotFound.
func (g *Graph) Neighbors(v Vertex) (map[Vertex]struct{}, error) {
	set, ok := g.adjacency[v]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	return set, nil
}

// Vertices returns all vertex ids in ascending order.
func (g *Graph) Vertices() []Vertex {
	vs := make([]Vertex, 0, len(g.adjacency))
	for v := range g.adjacency {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	return vs
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	return len(g.adjacency)
}

// Edges returns the de-duplicated edge set, each edge canonicalized
// larger-id-first so an undirected edge appears exactly once regardless
// of insertion order. The result is sorted for deterministic iteration.
func (g *Graph) Edges() []Edge {
	seen := make(map[Edge]struct{})
	for v, neighbors := range g.adjacency {
		for u := range neighbors {
			seen[canonical(v, u)] = struct{}{}
		}
	}
	edges := make([]Edge, 0, len(seen))
	for e := range seen {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].A != edges[j].A {
			return edges[i].A < edges[j].A
		}
		return edges[i].B < edges[j].B
	})
	return edges
}
