package feasibility

// Solve reports whether a flow exists over numNodes nodes, the given
// lower/upper-bounded arcs, and the given per-node supplies (supply[i] is
// node i's signed initial excess, as in mcf.AddSupply), respecting every
// arc's bound and every node's balance.
//
// supply must have length numNodes; arcs' From/To must be in
// [0, numNodes).
func Solve(numNodes int, arcs []Arc, supply []int64) bool {
	// Two synthetic nodes appended after the caller's numNodes: source
	// at index numNodes, sink at numNodes+1.
	source := numNodes
	sink := numNodes + 1
	g := newGraph(numNodes + 2)

	excess := make([]int64, numNodes)
	copy(excess, supply)

	for _, a := range arcs {
		if a.Lower != 0 {
			excess[a.To] += a.Lower
			excess[a.From] -= a.Lower
		}
		if residual := a.Upper - a.Lower; residual > 0 {
			g.addEdge(a.From, a.To, residual)
		}
	}

	var lowerBoundDemand int64
	for u := 0; u < numNodes; u++ {
		switch {
		case excess[u] > 0:
			g.addEdge(source, u, excess[u])
			lowerBoundDemand += excess[u]
		case excess[u] < 0:
			g.addEdge(u, sink, -excess[u])
		}
	}

	return dinic(g, source, sink) == lowerBoundDemand
}
