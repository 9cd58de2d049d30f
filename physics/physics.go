// Package physics implements the force-directed layout engine. Each tick
// every vertex is pushed away from every other vertex by a charge falling
// off with distance and pulled toward its direct neighbors by a linear
// spring; the
// resulting sum is integrated with explicit Euler. Forces act as
// instantaneous velocities: no velocity state survives a tick.
package physics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/forceviz/forceviz/scene"
)

// Reference force constants.
const (
	DefaultCharge    = 100000.0
	DefaultStiffness = 0.5
)

// Layout advances a scene's vertex positions by one simulation step of
// dt seconds.
type Layout interface {
	Tick(s *scene.Scene, dt float64)
}

// ForceDirected is the charge-and-spring layout.
type ForceDirected struct {
	// Charge scales the pairwise repulsion, d·CHARGE/|d|² — displacement
	// magnitude CHARGE/|d|.
	Charge float64
	// Stiffness in (0,1] scales the linear spring toward each neighbor.
	Stiffness float64
}

// NewForceDirected returns a layout with the reference constants.
func NewForceDirected() *ForceDirected {
	return &ForceDirected{
		Charge:    DefaultCharge,
		Stiffness: DefaultStiffness,
	}
}

// Tick recomputes every non-selected vertex position from a single
// consistent snapshot taken at tick start, so iteration order never
// affects the result. The selected vertex keeps whatever position the
// controller last set: its motion is driven by the pointer, not physics,
// and the two must never fight over one tick.
func (f *ForceDirected) Tick(s *scene.Scene, dt float64) {
	snap := s.Snapshot()
	sel := s.Selection()

	for _, v := range s.Graph.Vertices() {
		if sel.Is(v) {
			continue
		}
		p := snap[v]
		var vel r2.Vec

		// Repulsion against all other vertices, adjacent or not.
		// O(V²) per tick by design. Coincident vertices contribute
		// zero force rather than dividing by zero.
		for u, q := range snap {
			if u == v {
				continue
			}
			d := r2.Sub(p, q)
			dist := r2.Norm(d)
			if dist == 0 {
				continue
			}
			// Displacement magnitude is Charge/dist: normalize(d)
			// cancels one factor of dist, so d · Charge/dist².
			vel = r2.Add(vel, r2.Scale(f.Charge/(dist*dist), d))
		}

		// Linear spring toward each direct neighbor.
		neighbors, err := s.Graph.Neighbors(v)
		if err != nil {
			continue // v came from the graph; cannot happen
		}
		for u := range neighbors {
			vel = r2.Add(vel, r2.Scale(f.Stiffness, r2.Sub(snap[u], p)))
		}

		s.SetPosition(v, r2.Add(p, r2.Scale(dt, vel)))
	}
}
