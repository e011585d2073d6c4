// Package mcf implements a minimum-cost flow solver for directed graphs
// with per-arc capacity bounds (including non-zero lower bounds) and
// integer costs, using the cost-scaling push-relabel algorithm (Goldberg
// & Tarjan). It computes a feasible integral flow that conserves mass at
// every node and minimises total cost, together with optimal node
// potentials (dual variables) suitable for reduced-cost queries.
//
// # Algorithm
//
// The solver maintains an ε-optimal pseudo-flow and repeatedly tightens
// ε by a constant factor α (default 5) via Refine, which saturates every
// negatively-reduced arc and then discharges active nodes (push/relabel)
// until no excess remains. Three independent heuristics may be toggled:
//
//   - Look-ahead: pre-relabel a push target before committing to it, to
//     avoid wasted admissible-edge scans.
//   - Price-update: a periodic bucketed reverse BFS from deficit nodes
//     that corrects many node potentials at once.
//   - Price-refinement: a Bellman-Ford pass that may certify the current
//     flow ε-optimal without running Refine at all.
//
// # API
//
//	s := mcf.NewSolver[int64](n)
//	id := s.AddDirectedEdge(u, v, lower, upper, cost)
//	s.AddSupply(node, supply)
//	status := s.Solve()
//	cost, ok := s.OptimalCost()
//
// # Complexity
//
// O(n²·m·log(n·γ)) time in the worst case (γ = max arc cost magnitude),
// O(n+m) space for the adjacency lists and scratch vectors.
//
// # Errors
//
// Solve never panics on malformed network data it can represent as a
// Status; it returns Unbalanced, Infeasible, or BadCostRange as
// appropriate. Precondition violations that indicate a caller bug
// (lower > upper, out-of-range node index, alpha < 2) panic instead, per
// the contract documented on each method.
package mcf
