package view

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

const tolerance = 1e-9

func assertVecNear(t *testing.T, want, got r2.Vec) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tolerance)
	assert.InDelta(t, want.Y, got.Y, tolerance)
}

func TestIdentityRoundTrip(t *testing.T) {
	tr := NewTransform()
	p := r2.Vec{X: 12.5, Y: -7.25}
	assertVecNear(t, p, tr.Unproject(tr.Project(p)))
	assertVecNear(t, p, tr.Project(tr.Unproject(p)))
}

func TestRoundTripAcrossStates(t *testing.T) {
	states := []*Transform{
		{Offset: r2.Vec{X: 100, Y: -40}, Scale: 1},
		{Offset: r2.Vec{X: -3, Y: 8}, Scale: 2.5},
		{Scale: 0.25, Angle: math.Pi / 3},
		{Offset: r2.Vec{X: 320, Y: 240}, Scale: 4, Angle: -1.2},
		{Offset: r2.Vec{X: 1e3, Y: 1e3}, Scale: 0.1, Angle: 2 * math.Pi / 7},
	}
	points := []r2.Vec{
		{},
		{X: 1, Y: 1},
		{X: -500, Y: 250},
		{X: 0.001, Y: -0.001},
	}
	for _, tr := range states {
		for _, p := range points {
			assertVecNear(t, p, tr.Unproject(tr.Project(p)))
			assertVecNear(t, p, tr.Project(tr.Unproject(p)))
		}
	}
}

func TestPanTranslatesScreenSpace(t *testing.T) {
	tr := NewTransform()
	tr.Scale = 2

	tr.BeginPan(r2.Vec{X: 10, Y: 10})
	require.True(t, tr.Panning())
	tr.PanTo(r2.Vec{X: 25, Y: -5})
	tr.EndPan()
	require.False(t, tr.Panning())

	assertVecNear(t, r2.Vec{X: 15, Y: -15}, tr.Offset)
}

func TestPanToWithoutBeginIsNoop(t *testing.T) {
	tr := NewTransform()
	tr.PanTo(r2.Vec{X: 50, Y: 50})
	assertVecNear(t, r2.Vec{}, tr.Offset)
}

func TestZoomAroundKeepsCursorFixed(t *testing.T) {
	tr := NewTransform()
	tr.Offset = r2.Vec{X: 30, Y: 40}
	tr.Angle = 0.4

	cursor := r2.Vec{X: 200, Y: 150}
	world := tr.Unproject(cursor)

	tr.ZoomAround(cursor, 1.8)

	assert.InDelta(t, 1.8, tr.Scale, tolerance)
	assertVecNear(t, cursor, tr.Project(world))
}

func TestZoomClampsScale(t *testing.T) {
	tr := NewTransform()
	tr.ZoomAround(r2.Vec{}, 1e6)
	assert.Equal(t, MaxScale, tr.Scale)
	tr.ZoomAround(r2.Vec{}, 1e-9)
	assert.Equal(t, MinScale, tr.Scale)
}

func TestRotateAroundKeepsCursorFixed(t *testing.T) {
	tr := NewTransform()
	tr.Scale = 2
	tr.Offset = r2.Vec{X: -10, Y: 5}

	cursor := r2.Vec{X: 64, Y: 48}
	world := tr.Unproject(cursor)

	tr.RotateAround(cursor, math.Pi/5)

	assert.InDelta(t, math.Pi/5, tr.Angle, tolerance)
	assertVecNear(t, cursor, tr.Project(world))
}
