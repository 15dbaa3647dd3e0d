// Package builder provides deterministic, functional-options style fixtures
// that populate a *graph.Graph[string] with well-known topologies.
//
// The fixtures double as oracles for greedy coloring: for each topology the
// insertion order is fixed, so the color count ChromaticNumber reports is
// known in advance.
//
//	Cycle(n)               C_n, n ≥ 3        2 colors if n even, 3 if odd
//	Path(n)                P_n, n ≥ 2        2 colors
//	Star(n)                K_{1,n-1}, n ≥ 2  2 colors
//	Wheel(n)               C_{n-1} + hub     3 colors if n-1 even, 4 if odd
//	Complete(n)            K_n, n ≥ 1        n colors
//	CompleteBipartite(a,b) K_{a,b}           2 colors
//	Grid(r,c)              r×c lattice       2 colors (1 for a single cell)
//	RandomSparse(n,p)      G(n,p)            seed-dependent
//
// Configuration primitives:
//   - BuilderOption: a function that mutates builderConfig before use.
//   - ID schemes (IDFn): DefaultIDFn, SymbolIDFn, ExcelColumnIDFn,
//     AlphanumericIDFn, HexIDFn, SymbolNumberIDFn.
//   - RNG: WithSeed / WithRand, required by RandomSparse for 0 < p < 1.
//
// Guarantees:
//   - Option constructors panic on nil input; constructors never panic and
//     return sentinel errors wrapped with the constructor name.
//   - Same inputs, options, seed and constructor order ⇒ identical graphs.
//   - graph errors (e.g. graph.ErrCapacityExceeded) pass through wrapped.
package builder
