// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_bipartite.go — CompleteBipartite(n1, n2).
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left IDs cfg.leftPrefix+i inserted first, then right IDs cfg.rightPrefix+j.
//   • Every left—right pair is connected, left-major order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/graph"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *graph.Graph[string], cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}

		left := prefixedIDs(cfg.leftPrefix, n1)
		right := prefixedIDs(cfg.rightPrefix, n2)
		if err := addVertices(methodCompleteBipartite, g, left); err != nil {
			return err
		}
		if err := addVertices(methodCompleteBipartite, g, right); err != nil {
			return err
		}

		for _, u := range left {
			for _, v := range right {
				if err := addEdge(methodCompleteBipartite, g, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
