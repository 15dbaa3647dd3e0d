// Package lvcolor is an in-memory playground for greedy graph coloring over a
// fixed-capacity adjacency-matrix graph.
//
// What is inside:
//
//	graph/       — generic Graph[T comparable]: vertices, edges, adjacency
//	               queries and greedy coloring (an upper bound on χ(G))
//	builder/     — deterministic fixtures (cycle, path, star, wheel, complete,
//	               bipartite, grid, random sparse) with known color counts
//	cmd/lvcolor/ — CLI that builds a fixture and reports its coloring
//	examples/    — runnable programs (exam timetabling)
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    D───C
//
// is a 4-cycle; greedy coloring in insertion order A,B,C,D gives 0,1,0,1,
// so ChromaticNumber reports 2.
//
//	go get github.com/katalvlaran/lvcolor/graph
package lvcolor
