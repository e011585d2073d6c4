// Package feasibility implements the lower-bounded max-flow oracle that
// package mcf treats as an external collaborator (spec.md §6,
// "Feasibility oracle contract"). Given nodes, [lower, upper]-bounded
// arcs, and signed node supplies, Solve reports whether any flow exists
// that respects every bound and balances every supply — without regard
// to cost.
//
// # Method
//
// Solve applies the classical super-source/super-sink reduction for
// lower bounds: each arc (u, v, lower, upper) is replaced by a residual
// arc (u, v, upper-lower), with lower routed directly as an excess
// transfer (excess[v] += lower, excess[u] -= lower). A synthetic source
// S connects to every node left with positive excess after that
// transfer; every node left with negative excess connects to a synthetic
// sink T. The instance is feasible iff a max flow from S to T saturates
// every arc leaving S.
//
// The max flow itself is computed with Dinic's algorithm: repeated
// level-graph construction (BFS) followed by blocking-flow search (DFS
// with a per-node scan cursor), grounded on the level-graph/blocking-flow
// structure of katalvlaran/lvlath's flow.Dinic but rebuilt over an
// indexed adjacency representation (int64 capacities, integer node IDs)
// instead of that package's string-keyed capacity maps — the structural
// idea is the teacher's, the data layout is mcf's.
package feasibility
