// Package graph provides a generic, undirected, unweighted graph stored as a
// fixed-capacity adjacency matrix, together with a greedy vertex-coloring
// routine that bounds the chromatic number from above.
//
// A Graph is parameterized over any comparable payload type T. Each distinct
// payload becomes one vertex; the vertex index is its insertion position and
// doubles as the row/column in the adjacency matrix. Capacity (MaxVertices)
// and the color palette size (MaxColors) are fixed by NewGraph and never change.
//
// Operations:
//
//	AddVertex / HasVertex / Vertices / NumVertices   — vertex catalog
//	AddEdge / HasEdge / AdjacentData / Degree / NumEdges — adjacency
//	ChromaticNumber / Color / Coloring / ResetColors — greedy coloring
//
// Quick ASCII example (a 4-cycle colors with two colors):
//
//	A(0)───B(1)
//	 │      │
//	D(1)───C(0)
//
// Errors:
//
//	ErrCapacityExceeded - AddVertex beyond MaxVertices.
//	ErrVertexNotFound   - edge or adjacency query on an absent payload.
//	ErrColorsExhausted  - no free color in [0, MaxColors) for some vertex.
//
// Concurrency:
//
//	Graph has no internal locking. Callers that share a Graph across
//	goroutines must serialize every call, reads included: ChromaticNumber
//	mutates vertex colors in place.
package graph
