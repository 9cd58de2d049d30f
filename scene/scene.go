// Package scene composes the graph, the per-vertex layout positions, the
// current selection, and the view transform into the single mutable unit
// the rest of the system operates on. One logical owner mutates a Scene;
// events and ticks are applied strictly one at a time.
package scene

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/forceviz/forceviz/graph"
	"github.com/forceviz/forceviz/view"
)

// ErrMissingPosition indicates an edge insertion referenced a vertex that
// was never placed via AddVertex.
var ErrMissingPosition = errors.New("scene: vertex has no position")

// Selection is the optional currently-dragged vertex: either no selection
// or exactly one vertex. It is deliberately not a nullable reference.
type Selection struct {
	vertex graph.Vertex
	active bool
}

// NoSelection is the empty selection.
func NoSelection() Selection {
	return Selection{}
}

// Select returns a Selection holding v.
func Select(v graph.Vertex) Selection {
	return Selection{vertex: v, active: true}
}

// Vertex returns the selected vertex and whether one is selected.
func (s Selection) Vertex() (graph.Vertex, bool) {
	return s.vertex, s.active
}

// Is reports whether v is the selected vertex.
func (s Selection) Is(v graph.Vertex) bool {
	return s.active && s.vertex == v
}

// Scene is the complete mutable state of one visualizer session.
//
// Invariant: every vertex in Graph has an entry in the position table.
// AddEdge guards this by refusing endpoints that were never placed.
type Scene struct {
	ID    uuid.UUID
	Graph *graph.Graph
	View  *view.Transform

	positions map[graph.Vertex]r2.Vec
	selection Selection
}

// New creates an empty Scene with an identity view transform.
func New() *Scene {
	return &Scene{
		ID:        uuid.New(),
		Graph:     graph.New(),
		View:      view.NewTransform(),
		positions: make(map[graph.Vertex]r2.Vec),
	}
}

// AddVertex adds v to the graph and records its position. Re-adding an
// existing vertex overwrites its position; this is only exercised at
// construction time.
func (s *Scene) AddVertex(v graph.Vertex, pt r2.Vec) {
	s.Graph.AddVertex(v)
	s.positions[v] = pt
}

// AddEdge connects two previously placed vertices. An endpoint without a
// recorded position yields ErrMissingPosition, keeping the position table
// a superset of the graph's vertex set.
func (s *Scene) AddEdge(v1, v2 graph.Vertex) error {
	for _, v := range []graph.Vertex{v1, v2} {
		if _, ok := s.positions[v]; !ok {
			return fmt.Errorf("%w: %d", ErrMissingPosition, v)
		}
	}
	return s.Graph.AddEdge(v1, v2)
}

// PositionOf returns the layout position of v.
func (s *Scene) PositionOf(v graph.Vertex) (r2.Vec, error) {
	pt, ok := s.positions[v]
	if !ok {
		return r2.Vec{}, fmt.Errorf("%w: %d", graph.ErrVertexNotFound, v)
	}
	return pt, nil
}

// SetPosition moves an already placed vertex. Unknown vertices are
// ignored; placement happens through AddVertex only.
func (s *Scene) SetPosition(v graph.Vertex, pt r2.Vec) {
	if _, ok := s.positions[v]; ok {
		s.positions[v] = pt
	}
}

// Snapshot copies the position table. The layout engine reads one
// snapshot per tick so iteration order cannot affect the result.
func (s *Scene) Snapshot() map[graph.Vertex]r2.Vec {
	snap := make(map[graph.Vertex]r2.Vec, len(s.positions))
	for v, pt := range s.positions {
		snap[v] = pt
	}
	return snap
}

// Selection returns the current selection.
func (s *Scene) Selection() Selection {
	return s.selection
}

// SetSelection replaces the selection. Mutated only by the interaction
// controller; the layout engine never touches it.
func (s *Scene) SetSelection(sel Selection) {
	s.selection = sel
}
