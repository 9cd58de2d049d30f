package physics

import (
	opensimplex "github.com/ojrac/opensimplex-go"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/forceviz/forceviz/scene"
)

// noiseFrequency controls how quickly the drift field varies across the
// layout plane.
const noiseFrequency = 0.03

// Noise decorates a base layout with a smooth simplex drift field,
// giving an otherwise settled layout a slow organic wobble. The dragged
// vertex is left alone for the same reason the base layout skips it.
type Noise struct {
	base      Layout
	gen       opensimplex.Noise
	intensity float64
	t         float64
}

// NewNoise wraps base with a drift field of the given displacement
// intensity (world units per tick). Intensity <= 0 disables the drift,
// leaving base untouched.
func NewNoise(base Layout, seed int64, intensity float64) *Noise {
	return &Noise{
		base:      base,
		gen:       opensimplex.New(seed),
		intensity: intensity,
	}
}

// Tick runs the base layout, then displaces each non-selected vertex
// along the drift field sampled at its position.
func (n *Noise) Tick(s *scene.Scene, dt float64) {
	n.base.Tick(s, dt)
	if n.intensity <= 0 {
		return
	}

	sel := s.Selection()
	for _, v := range s.Graph.Vertices() {
		if sel.Is(v) {
			continue
		}
		p, err := s.PositionOf(v)
		if err != nil {
			continue
		}
		drift := r2.Vec{
			X: n.gen.Eval3(p.X*noiseFrequency, p.Y*noiseFrequency, n.t),
			Y: n.gen.Eval3(p.X*noiseFrequency+100, p.Y*noiseFrequency+100, n.t),
		}
		s.SetPosition(v, r2.Add(p, r2.Scale(n.intensity, drift)))
	}
	n.t += dt
}
