// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_path.go — Path(n): vertices 0..n-1, edges (i-1)—i.

package builder

import "github.com/katalvlaran/lvcolor/graph"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the simple path P_n (n ≥ 2).
func Path(n int) Constructor {
	return func(g *graph.Graph[string], cfg builderConfig) error {
		if err := validateMin(methodPath, "n", n, minPathNodes); err != nil {
			return err
		}

		ids := makeIDs(cfg.idFn, n)
		if err := addVertices(methodPath, g, ids); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodPath, g, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
