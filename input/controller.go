package input

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/forceviz/forceviz/graph"
	"github.com/forceviz/forceviz/scene"
)

// DefaultVertexRadius is the rendered vertex radius in world units.
const DefaultVertexRadius = 8.0

// wheelDivisor converts raw wheel deltas into a bounded zoom factor,
// 1 ± 0.5 at the extremes.
const wheelDivisor = 500.0

// Controller is the Idle ↔ Dragging(v) state machine. The state is not
// duplicated here: Dragging(v) is exactly "the scene's selection holds v",
// so the controller itself stays stateless and any number of scenes can
// share one.
type Controller struct {
	// VertexRadius is the hit-test base radius, scaled by the current
	// zoom so the clickable area follows the rendered vertex size.
	VertexRadius float64
}

// NewController returns a controller using the default vertex radius.
func NewController() *Controller {
	return &Controller{VertexRadius: DefaultVertexRadius}
}

// Apply processes one event against the scene. Graph, positions and
// selection are only touched by the select/drag paths; every other event
// goes to the view transform's gesture handlers.
func (c *Controller) Apply(s *scene.Scene, ev Event) {
	switch e := ev.(type) {
	case PointerDown:
		if e.Button == ButtonPrimary && e.Modifiers != 0 {
			if v, ok := c.hitTest(s, e.Pos); ok {
				s.SetSelection(scene.Select(v))
			}
			// No vertex under the pointer: state and scene unchanged.
			return
		}
		if e.Button == ButtonPrimary {
			s.View.BeginPan(e.Pos)
		}

	case PointerUp:
		if e.Button != ButtonPrimary {
			return
		}
		if _, dragging := s.Selection().Vertex(); dragging {
			s.SetSelection(scene.NoSelection())
			return
		}
		s.View.EndPan()

	case PointerMove:
		if v, dragging := s.Selection().Vertex(); dragging {
			// Drag tracks the pointer exactly: no smoothing, no inertia.
			s.SetPosition(v, s.View.Unproject(e.Pos))
			return
		}
		s.View.PanTo(e.Pos)

	case Wheel:
		delta := math.Max(-0.5, math.Min(0.5, e.Delta/wheelDivisor))
		s.View.ZoomAround(e.Pos, 1-delta)

	case Rotate:
		s.View.RotateAround(e.Pos, e.Delta)
	}
}

// hitTest maps the screen point into world space and returns the nearest
// vertex within VertexRadius·scale of it. Nearest-vertex is the
// tie-break when several qualify; any deterministic choice is valid and
// this one is the least surprising.
func (c *Controller) hitTest(s *scene.Scene, screenPos r2.Vec) (graph.Vertex, bool) {
	w := s.View.Unproject(screenPos)
	limit := c.VertexRadius * s.View.Scale

	var (
		best     graph.Vertex
		bestDist = math.Inf(1)
		found    bool
	)
	for _, v := range s.Graph.Vertices() {
		p, err := s.PositionOf(v)
		if err != nil {
			continue
		}
		dist := r2.Norm(r2.Sub(p, w))
		if dist <= limit && dist < bestDist {
			best, bestDist, found = v, dist, true
		}
	}
	return best, found
}
