package mcf

import "fmt"

// ErrNotSolved is returned by IncreaseCapacityUnit and
// DecreaseCapacityUnit when called before Solve has reached Optimal.
var ErrNotSolved = fmt.Errorf("mcf: %w", errNotSolved)

var errNotSolved = fmt.Errorf("incremental edit requires a prior Optimal Solve")

// ErrNoAugmentingPath is returned when an incremental edit cannot find a
// residual path to absorb the unit of flow it needs to move. The edit is
// rolled back before this is returned, leaving the solver exactly as it
// was.
var ErrNoAugmentingPath = fmt.Errorf("mcf: %w", errNoAugmentingPath)

var errNoAugmentingPath = fmt.Errorf("no augmenting path found for incremental edit")

// step identifies one arc traversed by a reroute: the arc at adjacency
// slot `slot` of node `node`.
type step struct {
	node, slot int
}

// IncreaseCapacityUnit raises the upper bound of a solved instance's edge
// by one unit (spec.md §4.10). If the edge was already unsaturated this
// is a no-op; if it was saturated and the extra unit is profitable (the
// arc's reduced cost goes negative) one unit is pushed along it and the
// resulting single-unit imbalance is cancelled via a shortest augmenting
// path from the arc's head back to its tail, completing the
// successive-shortest-paths option spec.md §9 leaves open.
func (s *Solver[F]) IncreaseCapacityUnit(id EdgeID) (Status, error) {
	if s.status != Optimal {
		return s.status, ErrNotSolved
	}

	a := &s.graph[id.node][id.slot]
	wasSaturated := a.residualCapacity() == 0
	a.upper++

	if !wasSaturated || s.reducedCost(a) >= 0 {
		return s.status, nil
	}

	s.pushFlow(id.node, id.slot, 1)
	if !s.reroute(a.to, a.from) {
		s.pushFlow(id.node, id.slot, -1)
		a.upper--
		return s.status, ErrNoAugmentingPath
	}

	s.recomputeOptimalCost()
	s.reconstructDuals()
	return s.status, nil
}

// DecreaseCapacityUnit lowers the upper bound of a solved instance's edge
// by one unit (spec.md §4.10). If the edge's flow already fits under the
// new bound this is a no-op; otherwise one unit of flow is pulled off the
// arc and rerouted via a shortest augmenting path from the arc's tail to
// its head to keep every node balanced.
func (s *Solver[F]) DecreaseCapacityUnit(id EdgeID) (Status, error) {
	if s.status != Optimal {
		return s.status, ErrNotSolved
	}

	a := &s.graph[id.node][id.slot]
	a.upper--

	if a.flow <= a.upper {
		return s.status, nil
	}

	s.pushFlow(id.node, id.slot, -1)
	if !s.reroute(a.from, a.to) {
		s.pushFlow(id.node, id.slot, 1)
		a.upper++
		return s.status, ErrNoAugmentingPath
	}

	s.recomputeOptimalCost()
	s.reconstructDuals()
	return s.status, nil
}

// reroute pushes one unit of flow from source to sink along a
// minimum-cost residual path, found by Bellman-Ford on raw arc costs.
// Unlike the scaling loop's internal heuristics, an incremental edit is
// rare enough that a plain shortest-path search is the right tool: no
// potentials are assumed valid going in, since the edit itself is what
// just broke them.
func (s *Solver[F]) reroute(source, sink int) bool {
	path, ok := s.shortestResidualPath(source, sink)
	if !ok {
		return false
	}
	for _, st := range path {
		s.pushFlow(st.node, st.slot, 1)
	}
	return true
}

func (s *Solver[F]) shortestResidualPath(source, sink int) ([]step, bool) {
	n := s.numNodes
	dist := make([]F, n)
	fromNode := make([]int, n)
	fromSlot := make([]int, n)
	reached := make([]bool, n)
	for i := range fromNode {
		fromNode[i] = -1
	}
	dist[source] = 0
	reached[source] = true

	for iter := 0; iter < n-1; iter++ {
		changed := false
		for u := 0; u < n; u++ {
			if !reached[u] {
				continue
			}
			for i := range s.graph[u] {
				a := &s.graph[u][i]
				if a.residualCapacity() <= 0 {
					continue
				}
				candidate := dist[u] + a.cost
				if !reached[a.to] || candidate < dist[a.to] {
					dist[a.to] = candidate
					fromNode[a.to] = u
					fromSlot[a.to] = i
					reached[a.to] = true
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	if !reached[sink] {
		return nil, false
	}

	var path []step
	for v := sink; v != source; {
		u, slot := fromNode[v], fromSlot[v]
		path = append(path, step{node: u, slot: slot})
		v = u
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

// recomputeOptimalCost re-sums flow*cost over every arc, the same way
// Solve does at the end of the scaling loop. Incremental edits are rare
// enough that an O(n+m) re-sum is simpler and safer than tracking the
// delta through both the direct push and the reroute path.
func (s *Solver[F]) recomputeOptimalCost() {
	s.optimalCost = newWidenedCost()
	for u := 0; u < s.numNodes; u++ {
		for i := range s.graph[u] {
			a := &s.graph[u][i]
			s.optimalCost.add(int64(a.flow), int64(a.cost))
		}
	}
}
