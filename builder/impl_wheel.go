// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_wheel.go — Wheel(n) = Cycle(n-1) + hub "Center".
//
// The rim is inserted before the hub, so greedy coloring gives the rim its
// cycle colors (2 or 3) and the hub one more.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/graph"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // rim C_{n-1} needs ≥ 3 vertices
)

// Wheel returns a Constructor that builds the wheel W_n on n vertices.
func Wheel(n int) Constructor {
	return func(g *graph.Graph[string], cfg builderConfig) error {
		if err := validateMin(methodWheel, "n", n, minWheelNodes); err != nil {
			return err
		}

		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		if g.HasVertex(centerVertexID) {
			return fmt.Errorf("%s: hub %q already present: %w", methodWheel, centerVertexID, ErrConstructFailed)
		}
		if err := addVertices(methodWheel, g, []string{centerVertexID}); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(methodWheel, g, centerVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
