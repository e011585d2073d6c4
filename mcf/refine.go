package mcf

// refine turns the current 0-optimal flow into an ε-optimal feasible flow
// (spec.md §4.4). It first saturates or drains every forward arc whose
// reduced cost is not already zero, producing a 0-optimal pseudo-flow,
// then discharges every node left with positive excess until none
// remains or the instance proves infeasible.
func (s *Solver[F]) refine(epsilon F) {
	for u := 0; u < s.numNodes; u++ {
		for i := range s.graph[u] {
			a := &s.graph[u][i]
			if a.isReverse {
				continue
			}
			switch {
			case s.reducedCost(a) < 0:
				if delta := a.residualCapacity(); delta != 0 {
					s.pushFlow(u, i, delta)
				}
			case s.reducedCost(a) > 0:
				if delta := a.lower - a.flow; delta != 0 {
					s.pushFlow(u, i, delta)
				}
			}
		}
	}

	for u := range s.currentEdges {
		s.currentEdges[u] = 0
	}

	s.activeNodes = s.activeNodes[:0]
	for u := 0; u < s.numNodes; u++ {
		if s.isActive(u) {
			s.activeNodes = append(s.activeNodes, u)
		}
	}

	relabelsSinceUpdate := 0
	for len(s.activeNodes) > 0 {
		u := s.activeNodes[len(s.activeNodes)-1]
		s.activeNodes = s.activeNodes[:len(s.activeNodes)-1]

		relabelsSinceUpdate += s.discharge(u, epsilon)
		if s.status == Infeasible {
			return
		}

		if s.priceUpdate && relabelsSinceUpdate >= s.priceUpdateEvery {
			s.runPriceUpdate(epsilon)
			relabelsSinceUpdate = 0
		}
	}
}
