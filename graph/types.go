// SPDX-License-Identifier: MIT
// Package: lvcolor/graph
//
// types.go — Graph and vertex types plus the NewGraph constructor.

package graph

// NoColor marks a vertex that has not been assigned a color yet.
const NoColor = -1

// vertex is a single graph node. It is owned by its Graph and never handed out;
// callers only ever see copies of data.
type vertex[T comparable] struct {
	data  T
	color int // NoColor until ChromaticNumber assigns one
}

// Graph is an undirected, unweighted graph over distinct payloads of type T.
//
// vertices and the rows/columns of adj share one index space: insertion order.
// index maps a payload back to that position so lookups are O(1).
// adj is allocated once at maxVertices×maxVertices and is always symmetric.
type Graph[T comparable] struct {
	maxVertices int
	maxColors   int

	vertices []vertex[T]
	index    map[T]int
	adj      [][]bool
}

// NewGraph returns an empty Graph able to hold up to maxVertices vertices and
// to color them with up to maxColors colors. Negative bounds are treated as 0.
//
// The adjacency matrix is allocated in full here; later operations never grow it.
// Complexity: O(maxVertices²) time and space.
func NewGraph[T comparable](maxVertices, maxColors int) *Graph[T] {
	if maxVertices < 0 {
		maxVertices = 0
	}
	if maxColors < 0 {
		maxColors = 0
	}

	// rows share one backing array
	cells := make([]bool, maxVertices*maxVertices)
	adj := make([][]bool, maxVertices)
	for i := range adj {
		adj[i] = cells[i*maxVertices : (i+1)*maxVertices : (i+1)*maxVertices]
	}

	return &Graph[T]{
		maxVertices: maxVertices,
		maxColors:   maxColors,
		vertices:    make([]vertex[T], 0, maxVertices),
		index:       make(map[T]int, maxVertices),
		adj:         adj,
	}
}

// MaxVertices reports the fixed vertex capacity.
func (g *Graph[T]) MaxVertices() int { return g.maxVertices }

// MaxColors reports the fixed size of the color palette.
func (g *Graph[T]) MaxColors() int { return g.maxColors }
