// SPDX-License-Identifier: MIT
// Package: lvcolor/graph
//
// errors.go — sentinel errors for the graph package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package graph

import "errors"

var (
	// ErrCapacityExceeded indicates AddVertex was called on a full graph.
	ErrCapacityExceeded = errors.New("graph: vertex capacity exceeded")

	// ErrVertexNotFound indicates an operation referenced an absent payload.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrColorsExhausted indicates greedy coloring found no free color
	// within [0, MaxColors) for some vertex.
	ErrColorsExhausted = errors.New("graph: all colors have been used")
)
