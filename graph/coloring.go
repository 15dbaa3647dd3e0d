// SPDX-License-Identifier: MIT
// Package: lvcolor/graph
//
// coloring.go — greedy sequential vertex coloring.
//
// Contract:
//   • Vertices are visited in insertion order; no reordering heuristic.
//   • Each uncolored vertex gets the smallest color not held by a colored neighbor.
//   • Colors are sticky: a colored vertex is skipped until ResetColors.
//   • On ErrColorsExhausted, vertices colored before the failing one keep
//     their colors; the failing vertex and all later ones stay as they were.
//
// Complexity:
//   • Time: O(V·(V + C)) where C = MaxColors.
//   • Space: O(C) for the per-vertex usage table.

package graph

import "fmt"

const methodChromaticNumber = "ChromaticNumber"

// ChromaticNumber colors every uncolored vertex greedily and returns the number
// of colors in use, i.e. 1 + the highest color held by any vertex (0 for an
// empty graph). The result is an upper bound on the true chromatic number.
//
// Repeated calls return the same value unless vertices or edges were added
// in between; in that case only the new, uncolored vertices are colored and
// existing colors may no longer be a proper coloring (use ResetColors first).
//
// Errors:
//   - ErrColorsExhausted: some vertex has neighbors covering all of
//     [0, MaxColors). The error names the vertex.
func (g *Graph[T]) ChromaticNumber() (int, error) {
	highest := NoColor
	for i := range g.vertices {
		v := &g.vertices[i]
		if v.color == NoColor {
			c, err := g.colorToUse(i)
			if err != nil {
				return 0, fmt.Errorf("%s: vertex %v (index %d): %w", methodChromaticNumber, v.data, i, err)
			}
			v.color = c
		}
		if v.color > highest {
			highest = v.color
		}
	}

	return highest + 1, nil
}

// colorToUse returns the smallest color in [0, maxColors) not held by any
// colored neighbor of vertex i.
func (g *Graph[T]) colorToUse(i int) (int, error) {
	used := make([]bool, g.maxColors)
	for _, j := range g.neighbors(i) {
		if c := g.vertices[j].color; c != NoColor {
			used[c] = true
		}
	}

	for c := 0; c < g.maxColors; c++ {
		if !used[c] {
			return c, nil
		}
	}

	return NoColor, fmt.Errorf("%d colors taken by neighbors: %w", g.maxColors, ErrColorsExhausted)
}

// Color returns the color assigned to data. ok is false when data is absent
// or has not been colored yet.
func (g *Graph[T]) Color(data T) (color int, ok bool) {
	i, found := g.index[data]
	if !found || g.vertices[i].color == NoColor {
		return NoColor, false
	}

	return g.vertices[i].color, true
}

// Coloring returns a snapshot of every colored vertex's color, keyed by payload.
// Uncolored vertices are omitted.
func (g *Graph[T]) Coloring() map[T]int {
	out := make(map[T]int, len(g.vertices))
	for _, v := range g.vertices {
		if v.color != NoColor {
			out[v.data] = v.color
		}
	}

	return out
}

// ResetColors clears every vertex back to NoColor.
func (g *Graph[T]) ResetColors() {
	for i := range g.vertices {
		g.vertices[i].color = NoColor
	}
}
