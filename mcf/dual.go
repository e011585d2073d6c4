package mcf

// reconstructDuals recomputes potentials from scratch against the
// unscaled, final optimal flow (spec.md §4.9). The ε-scaling loop only
// ever maintains potentials that are ε-optimal for the *scaled* costs at
// whatever ε it last ran; once costs are unscaled those potentials no
// longer certify anything, so Solve throws them away and derives a clean
// dual solution here via Bellman-Ford shortest paths over the residual
// graph, seeded from every node at once (equivalent to a virtual source
// connected to all nodes at distance 0).
//
// Because the flow is already optimal, the residual graph has no
// negative cycle under raw cost weights, so this always converges within
// numNodes-1 passes.
func (s *Solver[F]) reconstructDuals() {
	n := s.numNodes
	dist := make([]F, n)

	for iter := 0; iter < n-1; iter++ {
		changed := false
		for u := 0; u < n; u++ {
			for i := range s.graph[u] {
				a := &s.graph[u][i]
				if a.residualCapacity() <= 0 {
					continue
				}
				if candidate := dist[u] + a.cost; candidate < dist[a.to] {
					dist[a.to] = candidate
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	copy(s.potentials, dist)
}
