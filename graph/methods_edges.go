// File: methods_edges.go
// Role: edge insertion and adjacency queries over the matrix.
//
// Invariant: adj[i][j] == adj[j][i] for every i, j.
package graph

const (
	methodAddEdge      = "AddEdge"
	methodAdjacentData = "AdjacentData"
	methodDegree       = "Degree"
)

// AddEdge connects the vertices holding a and b.
//
// Both endpoints must already exist; if either is absent the matrix is left
// untouched. a == b records a self-loop on the diagonal. Re-adding an existing
// edge is a no-op.
//
// Errors:
//   - ErrVertexNotFound: a or b is not in the graph.
//
// Complexity: O(1).
func (g *Graph[T]) AddEdge(a, b T) error {
	i, err := g.lookup(methodAddEdge, a)
	if err != nil {
		return err
	}
	j, err := g.lookup(methodAddEdge, b)
	if err != nil {
		return err
	}

	g.adj[i][j] = true
	g.adj[j][i] = true

	return nil
}

// HasEdge reports whether a and b are adjacent. Absent endpoints yield false.
// Complexity: O(1).
func (g *Graph[T]) HasEdge(a, b T) bool {
	i, ok := g.index[a]
	if !ok {
		return false
	}
	j, ok := g.index[b]
	if !ok {
		return false
	}

	return g.adj[i][j]
}

// AdjacentData returns the payloads of all vertices adjacent to data, in
// ascending index order. The slice is empty, not nil, when data has no
// neighbors.
//
// Errors:
//   - ErrVertexNotFound: data is not in the graph.
//
// Complexity: O(V).
func (g *Graph[T]) AdjacentData(data T) ([]T, error) {
	i, err := g.lookup(methodAdjacentData, data)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0)
	for _, j := range g.neighbors(i) {
		out = append(out, g.vertices[j].data)
	}

	return out, nil
}

// Degree returns the number of vertices adjacent to data.
// A self-loop contributes one.
func (g *Graph[T]) Degree(data T) (int, error) {
	i, err := g.lookup(methodDegree, data)
	if err != nil {
		return 0, err
	}

	return len(g.neighbors(i)), nil
}

// NumEdges returns the number of undirected edges, counting each {i, j} once
// and each self-loop once. Only the upper triangle (i <= j) is scanned, so the
// call is read-only and returns the same value every time.
//
// Complexity: O(V²).
func (g *Graph[T]) NumEdges() int {
	n := len(g.vertices)
	count := 0
	for i := 0; i < n; i++ {
		row := g.adj[i]
		for j := i; j < n; j++ {
			if row[j] {
				count++
			}
		}
	}

	return count
}

// neighbors returns the indices adjacent to i in ascending order.
func (g *Graph[T]) neighbors(i int) []int {
	row := g.adj[i]
	var out []int
	for j := 0; j < len(g.vertices); j++ {
		if row[j] {
			out = append(out, j)
		}
	}

	return out
}
