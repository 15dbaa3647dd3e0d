// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_complete.go — Complete(n).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Each unordered pair {i,j}, i<j, is emitted once in lexicographic order.
//
// Complexity: O(n) vertices + O(n²) edges.

package builder

import "github.com/katalvlaran/lvcolor/graph"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *graph.Graph[string], cfg builderConfig) error {
		if err := validateMin(methodComplete, "n", n, minCompleteNodes); err != nil {
			return err
		}

		ids := makeIDs(cfg.idFn, n)
		if err := addVertices(methodComplete, g, ids); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, g, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
