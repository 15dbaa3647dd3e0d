// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// api.go — the single orchestrator BuildGraph and the Constructor type.
// Topology factories live in impl_*.go.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/graph"
)

// Constructor applies a deterministic mutation to g using the resolved
// builderConfig. Constructors validate parameters first and return sentinel
// errors; they never panic.
type Constructor func(g *graph.Graph[string], cfg builderConfig) error

// BuildGraph creates a graph with the given capacity and palette, resolves the
// builder configuration from bopts, and applies cons in order.
//
// Any constructor error is wrapped as "BuildGraph: %w" and returned at once;
// no partial cleanup is attempted.
//
// Complexity: O(maxVertices²) for the matrix plus the cost of each constructor.
func BuildGraph(maxVertices, maxColors int, bopts []BuilderOption, cons ...Constructor) (*graph.Graph[string], error) {
	g := graph.NewGraph[string](maxVertices, maxColors)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs cons against an existing graph, e.g. to overlay a second
// topology onto one that was built earlier.
func Apply(g *graph.Graph[string], bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}
