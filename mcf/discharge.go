package mcf

// discharge repeatedly pushes from u and relabels it until its excess is
// exhausted or the instance proves infeasible (spec.md §4.5). It returns
// the number of relabels performed, so Refine can drive the price-update
// heuristic's "every n relabels" cadence.
func (s *Solver[F]) discharge(u int, epsilon F) int {
	relabels := 0
	for s.status != Infeasible && s.isActive(u) {
		s.push(u, epsilon)
		if s.isActive(u) {
			s.relabel(u, epsilon)
			relabels++
			s.trace(func(t Tracer) { t.OnRelabel(u) })
			s.numRelabel++
		}
	}
	return relabels
}

// push scans u's arcs starting at the discharge cursor currentEdges[u],
// pushing flow along every admissible one until u's excess is exhausted
// or the scan runs out of arcs (spec.md §4.5, "Push").
func (s *Solver[F]) push(u int, epsilon F) {
	arcs := s.graph[u]
	for i := s.currentEdges[u]; i < len(arcs); i++ {
		a := &arcs[i]
		if a.residualCapacity() <= 0 || s.reducedCost(a) >= 0 {
			continue
		}

		if s.lookAhead {
			if !s.lookAheadCheck(a.to, epsilon) && !s.isAdmissible(a) {
				continue
			}
		}

		delta := a.residualCapacity()
		if s.excess[u] < delta {
			delta = s.excess[u]
		}
		to := a.to
		wasInactive := s.excess[to] <= 0
		s.pushFlow(u, i, delta)

		if wasInactive && s.excess[to] > 0 {
			s.activeNodes = append(s.activeNodes, to)
		}

		if !s.isActive(u) {
			s.currentEdges[u] = i
			return
		}
	}
	s.currentEdges[u] = len(arcs)
}

// relabel raises (decreases) π(u) by the smallest amount that restores
// progress: either exactly ε, if one existing candidate arc tolerates it,
// or enough to make the single best candidate admissible (spec.md §4.5,
// "Relabel"). If no residual-capable arc leaves u at all, u cannot
// dispose of its excess: that is Infeasible unless its excess is already
// zero.
func (s *Solver[F]) relabel(u int, epsilon F) {
	guaranteedNewPotential := s.potentials[u] - epsilon

	maxPotential := MinOf[F]()
	secondMaxPotential := MinOf[F]()
	maxIndex := -1

	arcs := s.graph[u]
	for i := range arcs {
		a := &arcs[i]
		if a.residualCapacity() <= 0 {
			continue
		}
		candidate := s.potentials[a.to] - a.cost
		if candidate > maxPotential {
			if candidate > guaranteedNewPotential {
				s.potentials[u] = guaranteedNewPotential
				s.currentEdges[u] = i
				return
			}
			secondMaxPotential = maxPotential
			maxPotential = candidate
			maxIndex = i
		}
	}

	if maxIndex < 0 {
		if s.excess[u] != 0 {
			s.status = Infeasible
			return
		}
		s.potentials[u] = guaranteedNewPotential
		s.currentEdges[u] = 0
		return
	}

	s.potentials[u] = maxPotential - epsilon
	if secondMaxPotential >= s.potentials[u] {
		s.currentEdges[u] = 0
	} else {
		s.currentEdges[u] = maxIndex
	}
}
