// Package builder: shared helpers for Constructor implementations.
//
// Graph errors already name the operation and payload; helpers only prefix
// the constructor name: "<Method>: AddVertex(id): <cause>".
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/graph"
)

// centerVertexID is the hub of Star and Wheel.
const centerVertexID = "Center"

// gridIDFmt is the fixed "r,c" coordinate ID scheme used by Grid.
const gridIDFmt = "%d,%d"

// addVertices inserts ids in order.
func addVertices(method string, g *graph.Graph[string], ids []string) error {
	for _, id := range ids {
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}

	return nil
}

// addEdge connects u and v.
func addEdge(method string, g *graph.Graph[string], u, v string) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return nil
}

// makeIDs returns idFn(0..n-1).
func makeIDs(idFn IDFn, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = idFn(i)
	}

	return ids
}

// prefixedIDs returns prefix+"0" .. prefix+"n-1".
func prefixedIDs(prefix string, n int) []string {
	return makeIDs(SymbolNumberIDFn(prefix), n)
}

// gridVertexID renders the coordinate ID "r,c".
func gridVertexID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// errorf wraps a sentinel as "<Method>: <msg>: <sentinel>".
func errorf(method, msg string, sentinel error) error {
	return fmt.Errorf("%s: %s: %w", method, msg, sentinel)
}
