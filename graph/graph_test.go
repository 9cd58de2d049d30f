package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddVertexIdempotent(t *testing.T) {
	g := New()
	g.AddVertex(1)
	g.AddVertex(1)
	assert.Equal(t, 1, g.Order())
	assert.True(t, g.Has(1))
}

func TestAddEdgeSymmetric(t *testing.T) {
	g := New()
	require.NoError(t, g.AddEdge(1, 2))

	n1, err := g.Neighbors(1)
	require.NoError(t, err)
	n2, err := g.Neighbors(2)
	require.NoError(t, err)

	assert.Contains(t, n1, Vertex(2))
	assert.Contains(t, n2, Vertex(1))
}

func TestAddEdgeImplicitVertices(t *testing.T) {
	g := New()
	require.NoError(t, g.AddEdge(7, 3))
	assert.True(t, g.Has(7))
	assert.True(t, g.Has(3))
	assert.Equal(t, 2, g.Order())
}

func TestAddEdgeRejectsSelfLoop(t *testing.T) {
	g := New()
	err := g.AddEdge(4, 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidEdge)
	assert.False(t, g.Has(4))
}

func TestNeighborsMissingVertex(t *testing.T) {
	g := New()
	_, err := g.Neighbors(99)
	assert.ErrorIs(t, err, ErrVertexNotFound)
}

func TestEdgesCanonicalAndDeduplicated(t *testing.T) {
	g := New()
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 1)) // same edge, reversed
	require.NoError(t, g.AddEdge(2, 3))

	edges := g.Edges()
	require.Len(t, edges, 2)
	// Canonical orientation is larger-id-first, sorted output.
	assert.Equal(t, []Edge{{A: 2, B: 1}, {A: 3, B: 2}}, edges)
}

func TestEdgesNoSelfEntries(t *testing.T) {
	g := New()
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(1, 3))
	for _, e := range g.Edges() {
		assert.NotEqual(t, e.A, e.B)
	}
}

func TestEdgeCountMatchesDistinctPairs(t *testing.T) {
	g := New()
	pairs := [][2]Vertex{{1, 2}, {2, 3}, {3, 1}, {1, 2}, {3, 2}}
	for _, p := range pairs {
		require.NoError(t, g.AddEdge(p[0], p[1]))
	}
	assert.Len(t, g.Edges(), 3)
}

func TestVerticesSorted(t *testing.T) {
	g := New()
	g.AddVertex(5)
	g.AddVertex(1)
	g.AddVertex(3)
	assert.Equal(t, []Vertex{1, 3, 5}, g.Vertices())
}
