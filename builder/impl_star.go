// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_star.go — Star(n).
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Hub "Center" is inserted first, then leaves cfg.idFn(1..n-1).
//   • Edges Center—leaf in ascending leaf order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/graph"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds K_{1,n-1} with hub "Center".
func Star(n int) Constructor {
	return func(g *graph.Graph[string], cfg builderConfig) error {
		if err := validateMin(methodStar, "n", n, minStarNodes); err != nil {
			return err
		}

		if g.HasVertex(centerVertexID) {
			return fmt.Errorf("%s: hub %q already present: %w", methodStar, centerVertexID, ErrConstructFailed)
		}
		if err := addVertices(methodStar, g, []string{centerVertexID}); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if leaf == centerVertexID {
				return fmt.Errorf("%s: leaf %d collides with hub %q: %w", methodStar, i, centerVertexID, ErrConstructFailed)
			}
			if err := addVertices(methodStar, g, []string{leaf}); err != nil {
				return err
			}
			if err := addEdge(methodStar, g, centerVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
