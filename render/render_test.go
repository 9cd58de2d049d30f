package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/forceviz/forceviz/scene"
)

func testScene(t *testing.T) *scene.Scene {
	t.Helper()
	s := scene.New()
	s.AddVertex(1, r2.Vec{X: 0, Y: 0})
	s.AddVertex(2, r2.Vec{X: 10, Y: 0})
	s.AddVertex(3, r2.Vec{X: 5, Y: 10})
	require.NoError(t, s.AddEdge(1, 2))
	require.NoError(t, s.AddEdge(2, 3))
	return s
}

func TestComposeCounts(t *testing.T) {
	frame, err := Compose(testScene(t), 8)
	require.NoError(t, err)
	assert.Len(t, frame.Rings, 3)
	assert.Len(t, frame.Segments, 2)
}

func TestComposeProjectsThroughView(t *testing.T) {
	s := testScene(t)
	s.View.Offset = r2.Vec{X: 100, Y: 50}
	s.View.Scale = 2

	frame, err := Compose(s, 8)
	require.NoError(t, err)

	// Vertex 1 sits at world origin: screen position equals the offset.
	assert.Equal(t, r2.Vec{X: 100, Y: 50}, frame.Rings[0].Center)
	// Ring radius follows the zoom level.
	assert.Equal(t, 16.0, frame.Rings[0].Radius)

	// Edge (2,1) projects both endpoints.
	assert.Equal(t, r2.Vec{X: 120, Y: 50}, frame.Segments[0].From)
	assert.Equal(t, r2.Vec{X: 100, Y: 50}, frame.Segments[0].To)
}

func TestComposeDeterministicOrder(t *testing.T) {
	a, err := Compose(testScene(t), 8)
	require.NoError(t, err)
	b, err := Compose(testScene(t), 8)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestJSONExporterRoundTrips(t *testing.T) {
	frame, err := Compose(testScene(t), 8)
	require.NoError(t, err)

	exp, err := GetExporter("json")
	require.NoError(t, err)
	out, err := exp.Export(frame)
	require.NoError(t, err)

	var decoded Frame
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, frame, decoded)
}

func TestSVGExporterEmitsPrimitives(t *testing.T) {
	frame, err := Compose(testScene(t), 8)
	require.NoError(t, err)

	exp, err := GetExporter("svg")
	require.NoError(t, err)
	out, err := exp.Export(frame)
	require.NoError(t, err)

	svg := string(out)
	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.Equal(t, 3, strings.Count(svg, "<circle"))
	assert.Equal(t, 2, strings.Count(svg, "<line"))
}

func TestGetExporterUnknownFormat(t *testing.T) {
	_, err := GetExporter("webgl")
	assert.Error(t, err)
}
