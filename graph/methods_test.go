// SPDX-License-Identifier: MIT
// Package graph_test verifies Graph vertex/edge contracts.

package graph_test

import (
	"testing"

	"github.com/katalvlaran/lvcolor/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	vA = "A"
	vB = "B"
	vC = "C"
	vD = "D"
	vX = "X"
)

// newGraphWith builds a string graph holding ids with room for exactly len(ids) vertices.
func newGraphWith(t *testing.T, maxColors int, ids ...string) *graph.Graph[string] {
	t.Helper()
	g := graph.NewGraph[string](len(ids), maxColors)
	for _, id := range ids {
		require.NoError(t, g.AddVertex(id), "AddVertex(%s)", id)
	}

	return g
}

func TestNewGraph_Bounds(t *testing.T) {
	g := graph.NewGraph[int](5, 3)
	assert.Equal(t, 5, g.MaxVertices())
	assert.Equal(t, 3, g.MaxColors())
	assert.Equal(t, 0, g.NumVertices())
	assert.Equal(t, 0, g.NumEdges())
	assert.Empty(t, g.Vertices())

	neg := graph.NewGraph[int](-1, -7)
	assert.Equal(t, 0, neg.MaxVertices())
	assert.Equal(t, 0, neg.MaxColors())
	require.ErrorIs(t, neg.AddVertex(1), graph.ErrCapacityExceeded)
}

func TestGraph_AddVertexCapacity(t *testing.T) {
	const capacity = 4
	g := graph.NewGraph[int](capacity, 2)

	for i := 0; i < capacity; i++ {
		require.NoError(t, g.AddVertex(i))
		require.True(t, g.HasVertex(i))
		require.Equal(t, i+1, g.NumVertices())
	}

	err := g.AddVertex(capacity)
	require.ErrorIs(t, err, graph.ErrCapacityExceeded)
	assert.Equal(t, capacity, g.NumVertices(), "failed AddVertex must not change count")
	assert.False(t, g.HasVertex(capacity))
	assert.Equal(t, []int{0, 1, 2, 3}, g.Vertices())
}

func TestGraph_AddVertexDuplicateIsNoop(t *testing.T) {
	g := newGraphWith(t, 2, vA, vB)

	// graph is full, but re-adding an existing payload is not an insertion
	require.NoError(t, g.AddVertex(vA))
	assert.Equal(t, 2, g.NumVertices())
	assert.Equal(t, []string{vA, vB}, g.Vertices())
}

func TestGraph_HasVertex(t *testing.T) {
	g := graph.NewGraph[string](2, 1)
	assert.False(t, g.HasVertex(vA))
	require.NoError(t, g.AddVertex(vA))
	assert.True(t, g.HasVertex(vA))
	assert.False(t, g.HasVertex(vB))
}

func TestGraph_AddEdgeSymmetry(t *testing.T) {
	g := newGraphWith(t, 2, vA, vB, vC)
	require.NoError(t, g.AddEdge(vA, vB))

	adjA, err := g.AdjacentData(vA)
	require.NoError(t, err)
	assert.Equal(t, []string{vB}, adjA)

	adjB, err := g.AdjacentData(vB)
	require.NoError(t, err)
	assert.Equal(t, []string{vA}, adjB)

	assert.True(t, g.HasEdge(vA, vB))
	assert.True(t, g.HasEdge(vB, vA))
	assert.False(t, g.HasEdge(vA, vC))
	assert.False(t, g.HasEdge(vA, vX))
}

func TestGraph_AddEdgeMissingEndpoint(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{name: "both missing", a: vX, b: "Y"},
		{name: "first missing", a: vX, b: vA},
		{name: "second missing", a: vA, b: vX},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGraphWith(t, 2, vA, vB)
			err := g.AddEdge(tc.a, tc.b)
			require.ErrorIs(t, err, graph.ErrVertexNotFound)
			assert.Equal(t, 0, g.NumEdges(), "matrix must be untouched")

			adj, err := g.AdjacentData(vA)
			require.NoError(t, err)
			assert.Empty(t, adj)
		})
	}
}

func TestGraph_AddEdgeIdempotent(t *testing.T) {
	g := newGraphWith(t, 2, vA, vB)
	require.NoError(t, g.AddEdge(vA, vB))
	require.NoError(t, g.AddEdge(vB, vA))
	require.NoError(t, g.AddEdge(vA, vB))

	assert.Equal(t, 1, g.NumEdges())
	deg, err := g.Degree(vA)
	require.NoError(t, err)
	assert.Equal(t, 1, deg)
}

func TestGraph_SelfLoop(t *testing.T) {
	g := newGraphWith(t, 2, vA, vB)
	require.NoError(t, g.AddEdge(vA, vA))

	assert.True(t, g.HasEdge(vA, vA))
	assert.Equal(t, 1, g.NumEdges())

	adj, err := g.AdjacentData(vA)
	require.NoError(t, err)
	assert.Equal(t, []string{vA}, adj)
}

func TestGraph_AdjacentDataOrder(t *testing.T) {
	g := newGraphWith(t, 4, vA, vB, vC, vD)
	// insert edges out of index order; result must follow index order
	require.NoError(t, g.AddEdge(vA, vD))
	require.NoError(t, g.AddEdge(vC, vA))
	require.NoError(t, g.AddEdge(vA, vB))

	adj, err := g.AdjacentData(vA)
	require.NoError(t, err)
	assert.Equal(t, []string{vB, vC, vD}, adj)

	isolated := newGraphWith(t, 1, vX)
	adj, err = isolated.AdjacentData(vX)
	require.NoError(t, err)
	assert.NotNil(t, adj)
	assert.Empty(t, adj)
}

func TestGraph_AdjacentDataNotFound(t *testing.T) {
	g := newGraphWith(t, 1, vA)
	adj, err := g.AdjacentData(vX)
	require.ErrorIs(t, err, graph.ErrVertexNotFound)
	assert.Nil(t, adj)

	_, err = g.Degree(vX)
	require.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestGraph_NumEdgesIsIdempotent(t *testing.T) {
	// Path A-B-C: the count must not change across calls.
	g := newGraphWith(t, 3, vA, vB, vC)
	require.NoError(t, g.AddEdge(vA, vB))
	require.NoError(t, g.AddEdge(vB, vC))

	assert.Equal(t, 2, g.NumEdges())
	assert.Equal(t, 2, g.NumEdges(), "second call")

	require.NoError(t, g.AddEdge(vC, vA))
	assert.Equal(t, 3, g.NumEdges())
}

func TestGraph_Degree(t *testing.T) {
	g := newGraphWith(t, 3, vA, vB, vC, vD)
	require.NoError(t, g.AddEdge(vA, vB))
	require.NoError(t, g.AddEdge(vA, vC))
	require.NoError(t, g.AddEdge(vA, vD))

	tests := []struct {
		id   string
		want int
	}{
		{vA, 3}, {vB, 1}, {vC, 1}, {vD, 1},
	}
	for _, tc := range tests {
		got, err := g.Degree(tc.id)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Degree(%s)", tc.id)
	}
}

func TestGraph_VerticesIsCopy(t *testing.T) {
	g := newGraphWith(t, 1, vA, vB)
	vs := g.Vertices()
	vs[0] = vX

	assert.True(t, g.HasVertex(vA))
	assert.Equal(t, []string{vA, vB}, g.Vertices())
}

func TestGraph_StructPayload(t *testing.T) {
	type city struct {
		Name string
		Zip  int
	}
	kyiv := city{"Kyiv", 1001}
	lviv := city{"Lviv", 79000}

	g := graph.NewGraph[city](2, 2)
	require.NoError(t, g.AddVertex(kyiv))
	require.NoError(t, g.AddVertex(lviv))
	require.NoError(t, g.AddEdge(kyiv, lviv))

	adj, err := g.AdjacentData(city{"Kyiv", 1001})
	require.NoError(t, err)
	assert.Equal(t, []city{lviv}, adj)
}

func TestGraph_AddVertexCountsDistinctPayloads(t *testing.T) {
	g := graph.NewGraph[string](3, 1)
	for _, id := range []string{vA, vA, vB, vA, vB} {
		require.NoError(t, g.AddVertex(id))
	}
	assert.Equal(t, 2, g.NumVertices(), "five calls, two distinct payloads")

	require.NoError(t, g.AddVertex(vC))
	assert.Equal(t, 3, g.NumVertices())
}
