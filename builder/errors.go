// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with %w, prefixed by the constructor name.
//   • Errors from the graph package are wrapped, never replaced.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols, partition)
// below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (see WithSeed / WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error in composing constructors,
// such as a nil Constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
