package mcf

// lookAheadCheck pre-checks whether pushing into v would leave v able to
// forward the flow productively (spec.md §4.6). A deficit node always
// absorbs; otherwise v needs an admissible outgoing arc of its own, and
// if it has none it is relabelled here so the caller's subsequent
// admissibility check on its own arc reflects the fresh potential.
func (s *Solver[F]) lookAheadCheck(v int, epsilon F) bool {
	if s.excess[v] < 0 {
		return true
	}

	arcs := s.graph[v]
	for i := s.currentEdges[v]; i < len(arcs); i++ {
		if s.isAdmissible(&arcs[i]) {
			s.currentEdges[v] = i
			return true
		}
	}

	s.relabel(v, epsilon)
	return false
}

// runPriceRefinement runs a Bellman-Ford pass over the residual graph
// with edge weight cost+ε (spec.md §4.7). If a full pass produces no
// further relaxation, the resulting distances are themselves a valid
// potential vector certifying the current flow ε-optimal, and Refine can
// be skipped for this ε. If distances keep improving past n-1 passes, a
// negative cycle exists under this weighting and the flow is not yet
// ε-optimal.
func (s *Solver[F]) runPriceRefinement(epsilon F) bool {
	n := s.numNodes
	dist := make([]F, n)

	relaxOnce := func() bool {
		changed := false
		for u := 0; u < n; u++ {
			for i := range s.graph[u] {
				a := &s.graph[u][i]
				if a.residualCapacity() <= 0 {
					continue
				}
				if candidate := dist[u] + a.cost + epsilon; candidate < dist[a.to] {
					dist[a.to] = candidate
					changed = true
				}
			}
		}
		return changed
	}

	for iter := 0; iter < n-1; iter++ {
		if !relaxOnce() {
			copy(s.potentials, dist)
			return true
		}
	}
	if relaxOnce() {
		return false
	}
	copy(s.potentials, dist)
	return true
}

// runPriceUpdate performs a global potential correction (spec.md §4.8):
// a bucketed reverse search from deficit nodes along (near-)admissible
// residual arcs, labelling every node with its admissible-arc distance
// to the nearest deficit, then decrementing every potential by ε times
// its label. Unreached nodes receive the sentinel label n.
//
// The search uses n+1 Dial buckets indexed by distance. Strictly
// admissible arcs contribute weight 1; an arc that is not yet admissible
// but is within reach of becoming so after further ε-decrements
// contributes a larger integer weight, ⌈reducedCost/ε⌉ clamped to
// [1, n] — so one global update can account for potentials several
// relabels would otherwise have reached individually.
func (s *Solver[F]) runPriceUpdate(epsilon F) {
	n := s.numNodes
	if n == 0 {
		return
	}

	incoming := s.buildIncomingResidual()

	label := make([]int, n)
	for u := range label {
		label[u] = n
	}

	buckets := make([][]int, n+1)
	runningExcess := int64(0)
	for u := 0; u < n; u++ {
		if s.excess[u] < 0 {
			label[u] = 0
			buckets[0] = append(buckets[0], u)
			runningExcess += int64(s.excess[u])
		}
	}

	for d := 0; d <= n && runningExcess < 0; d++ {
		for len(buckets[d]) > 0 {
			u := buckets[d][len(buckets[d])-1]
			buckets[d] = buckets[d][:len(buckets[d])-1]
			if label[u] != d {
				continue // stale entry from a since-improved label
			}
			if s.excess[u] > 0 {
				runningExcess += int64(s.excess[u])
			}

			for _, pred := range incoming[u] {
				if pred.arc.residualCapacity() <= 0 {
					continue
				}
				weight := ceilDiv(s.reducedCost(pred.arc), epsilon)
				if weight < 1 {
					weight = 1
				} else if weight > F(n) {
					weight = F(n)
				}
				candidate := d + int(weight)
				if candidate < label[pred.from] && candidate <= n {
					label[pred.from] = candidate
					buckets[candidate] = append(buckets[candidate], pred.from)
				}
			}

			if runningExcess >= 0 {
				break
			}
		}
	}

	for u := 0; u < n; u++ {
		s.potentials[u] -= epsilon * F(label[u])
	}
}

// incomingArc is one predecessor relationship used by runPriceUpdate: a
// residual arc from `from` into the node whose incoming list it appears
// in.
type incomingArc[F Flow] struct {
	from int
	arc  *arc[F]
}

// buildIncomingResidual groups every arc in the graph by its destination,
// giving runPriceUpdate O(1) access to a node's residual predecessors
// without a persistent reverse index (this is rebuilt once per price
// update call, not once per relabel).
func (s *Solver[F]) buildIncomingResidual() [][]incomingArc[F] {
	incoming := make([][]incomingArc[F], s.numNodes)
	for u := 0; u < s.numNodes; u++ {
		for i := range s.graph[u] {
			a := &s.graph[u][i]
			incoming[a.to] = append(incoming[a.to], incomingArc[F]{from: u, arc: a})
		}
	}
	return incoming
}

// ceilDiv computes ⌈a/b⌉ for b>0 using integer arithmetic only.
func ceilDiv[F Flow](a, b F) F {
	q := a / b
	if a%b != 0 && (a > 0) == (b > 0) {
		q++
	}
	return q
}
