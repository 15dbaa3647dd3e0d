// File: methods_vertices.go
// Role: vertex catalog (insertion, membership, enumeration).
//
// Determinism:
//   - Vertices() returns payloads in insertion order, which is also index order.
package graph

import "fmt"

// AddVertex appends a vertex holding data at the next free index.
//
// Adding a payload that is already present is a no-op and returns nil;
// payloads stay distinct and the vertex count is unchanged. NumVertices
// therefore equals the number of successful calls only for distinct payloads.
//
// Errors:
//   - ErrCapacityExceeded: the graph already holds MaxVertices vertices.
//     Nothing is added.
//
// Complexity: O(1) amortized.
func (g *Graph[T]) AddVertex(data T) error {
	if _, exists := g.index[data]; exists {
		return nil
	}
	if len(g.vertices) >= g.maxVertices {
		return fmt.Errorf("AddVertex(%v): %d/%d vertices: %w",
			data, len(g.vertices), g.maxVertices, ErrCapacityExceeded)
	}

	g.index[data] = len(g.vertices)
	g.vertices = append(g.vertices, vertex[T]{data: data, color: NoColor})

	return nil
}

// HasVertex reports whether some vertex holds data.
// Complexity: O(1).
func (g *Graph[T]) HasVertex(data T) bool {
	_, ok := g.index[data]
	return ok
}

// NumVertices returns the number of vertices currently in the graph.
// Complexity: O(1).
func (g *Graph[T]) NumVertices() int { return len(g.vertices) }

// Vertices returns a copy of all payloads in insertion order.
// Complexity: O(V).
func (g *Graph[T]) Vertices() []T {
	out := make([]T, len(g.vertices))
	for i := range g.vertices {
		out[i] = g.vertices[i].data
	}

	return out
}

// lookup resolves data to its index or wraps ErrVertexNotFound with method context.
func (g *Graph[T]) lookup(method string, data T) (int, error) {
	i, ok := g.index[data]
	if !ok {
		return 0, fmt.Errorf("%s: %v: %w", method, data, ErrVertexNotFound)
	}

	return i, nil
}
