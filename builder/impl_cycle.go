// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_cycle.go — Cycle(n).
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Vertices cfg.idFn(0..n-1) in ascending order.
//   • Edges i—(i+1)%n for i=0..n-1.

package builder

import "github.com/katalvlaran/lvcolor/graph"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *graph.Graph[string], cfg builderConfig) error {
		if err := validateMin(methodCycle, "n", n, minCycleNodes); err != nil {
			return err
		}

		ids := makeIDs(cfg.idFn, n)
		if err := addVertices(methodCycle, g, ids); err != nil {
			return err
		}

		// close the ring on the last step
		for i := 0; i < n; i++ {
			if err := addEdge(methodCycle, g, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
