// Package render projects a scene through its view transform into a flat
// list of screen-space draw primitives: one ring per vertex, one line
// segment per canonical edge. Hosts (the window loop, the browser canvas
// bridge, the snapshot exporters) consume frames without touching the
// scene itself.
package render

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/forceviz/forceviz/scene"
)

// Fixed palette. Vertices render red, edges translucent white.
var (
	VertexColor = color.RGBA{R: 0xE5, G: 0x39, B: 0x35, A: 0xFF}
	EdgeColor   = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x60}
)

// Ring is a filled vertex disc in screen coordinates.
type Ring struct {
	Center r2.Vec  `json:"center"`
	Radius float64 `json:"radius"`
}

// Segment is an edge line in screen coordinates.
type Segment struct {
	From r2.Vec `json:"from"`
	To   r2.Vec `json:"to"`
}

// Frame is everything a host needs to draw one scene state. Segments
// come first so vertices draw on top.
type Frame struct {
	Segments []Segment `json:"segments"`
	Rings    []Ring    `json:"rings"`
}

// Compose projects the scene into a frame. The ring radius is the world
// vertex radius scaled by the current zoom. A vertex without a position
// is a broken invariant and fails the whole frame rather than silently
// dropping the vertex.
func Compose(s *scene.Scene, vertexRadius float64) (Frame, error) {
	edges := s.Graph.Edges()
	vertices := s.Graph.Vertices()

	frame := Frame{
		Segments: make([]Segment, 0, len(edges)),
		Rings:    make([]Ring, 0, len(vertices)),
	}

	for _, e := range edges {
		pa, err := s.PositionOf(e.A)
		if err != nil {
			return Frame{}, err
		}
		pb, err := s.PositionOf(e.B)
		if err != nil {
			return Frame{}, err
		}
		frame.Segments = append(frame.Segments, Segment{
			From: s.View.Project(pa),
			To:   s.View.Project(pb),
		})
	}

	for _, v := range vertices {
		p, err := s.PositionOf(v)
		if err != nil {
			return Frame{}, err
		}
		frame.Rings = append(frame.Rings, Ring{
			Center: s.View.Project(p),
			Radius: vertexRadius * s.View.Scale,
		})
	}

	return frame, nil
}
