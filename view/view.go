// Package view holds the pan/zoom/rotation state of the viewport and the
// forward and inverse mappings between world (layout) space and screen
// space. Pointer coordinates arrive in screen space; the inverse mapping
// converts them back to world space for hit-testing and dragging.
package view

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Scale clamp bounds. Matching limits keep wheel zoom from collapsing the
// transform into a non-invertible state.
const (
	MinScale = 0.1
	MaxScale = 10.0
)

// Transform composes translation, uniform scale and rotation, plus the
// state of an in-progress pan gesture. The forward mapping is
//
//	screen = rotate(world, Angle) * Scale + Offset
//
// and Unproject is its exact inverse.
type Transform struct {
	Offset r2.Vec
	Scale  float64
	Angle  float64 // radians

	panning bool
	anchor  r2.Vec // last pointer position while panning, screen space
}

// NewTransform returns the identity transform.
func NewTransform() *Transform {
	return &Transform{Scale: 1}
}

// Project maps a world point to screen space.
func (t *Transform) Project(w r2.Vec) r2.Vec {
	return r2.Add(r2.Scale(t.Scale, r2.Rotate(w, t.Angle, r2.Vec{})), t.Offset)
}

// Unproject maps a screen point back to world space. It satisfies
// Unproject(Project(p)) == p up to floating-point tolerance.
func (t *Transform) Unproject(s r2.Vec) r2.Vec {
	return r2.Rotate(r2.Scale(1/t.Scale, r2.Sub(s, t.Offset)), -t.Angle, r2.Vec{})
}

// BeginPan starts a pan gesture anchored at the given screen point.
func (t *Transform) BeginPan(s r2.Vec) {
	t.panning = true
	t.anchor = s
}

// PanTo continues an active pan gesture, translating the view by the
// screen-space delta since the previous anchor. A no-op when no pan is
// in progress.
func (t *Transform) PanTo(s r2.Vec) {
	if !t.panning {
		return
	}
	t.Offset = r2.Add(t.Offset, r2.Sub(s, t.anchor))
	t.anchor = s
}

// EndPan finishes an active pan gesture.
func (t *Transform) EndPan() {
	t.panning = false
}

// Panning reports whether a pan gesture is in progress.
func (t *Transform) Panning() bool {
	return t.panning
}

// ZoomAround multiplies the scale by factor, clamped to
// [MinScale, MaxScale], keeping the world point under the given screen
// point fixed on screen.
func (t *Transform) ZoomAround(s r2.Vec, factor float64) {
	w := t.Unproject(s)
	t.Scale = math.Min(MaxScale, math.Max(MinScale, t.Scale*factor))
	t.Offset = r2.Sub(s, r2.Scale(t.Scale, r2.Rotate(w, t.Angle, r2.Vec{})))
}

// RotateAround adds delta (radians) to the rotation, pivoting on the
// world point under the given screen point.
func (t *Transform) RotateAround(s r2.Vec, delta float64) {
	w := t.Unproject(s)
	t.Angle += delta
	t.Offset = r2.Sub(s, r2.Scale(t.Scale, r2.Rotate(w, t.Angle, r2.Vec{})))
}
