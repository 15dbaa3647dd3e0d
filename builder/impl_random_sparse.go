// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_random_sparse.go — RandomSparse(n, p), an Erdős–Rényi G(n,p) sample.
//
// Contract:
//   • n ≥ 1, p ∈ [0,1].
//   • cfg.rng is required when 0 < p < 1; p ∈ {0,1} is deterministic.
//   • Pairs {i,j}, i<j, are tried in lexicographic order; no self-loops.
//
// Determinism: fixed trial order ⇒ identical graphs for a fixed seed.

package builder

import "github.com/katalvlaran/lvcolor/graph"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *graph.Graph[string], cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, "n", n, minRandomSparseVertices); err != nil {
			return err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > minProbability && p < maxProbability {
			return errorf(methodRandomSparse, "rng is required", ErrNeedRandSource)
		}

		ids := makeIDs(cfg.idFn, n)
		if err := addVertices(methodRandomSparse, g, ids); err != nil {
			return err
		}
		if p == minProbability {
			return nil
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				// p == 1 never draws, so a nil rng is fine there
				if p < maxProbability && cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(methodRandomSparse, g, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
