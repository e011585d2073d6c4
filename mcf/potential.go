package mcf

// reducedCost is cost + π(from) − π(to), the quantity every admissibility
// test and every relabel computation is built on (spec.md §4.2).
func (s *Solver[F]) reducedCost(a *arc[F]) F {
	return a.cost + s.potentials[a.from] - s.potentials[a.to]
}

// isAdmissible reports whether an arc has positive residual capacity and
// strictly negative reduced cost — the two conditions that define a
// productive push target (spec.md glossary, "Admissible arc").
func (s *Solver[F]) isAdmissible(a *arc[F]) bool {
	return a.residualCapacity() > 0 && s.reducedCost(a) < 0
}

// isActive reports whether a node carries positive excess and therefore
// belongs on the discharge worklist.
func (s *Solver[F]) isActive(u int) bool {
	return s.excess[u] > 0
}
