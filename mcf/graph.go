package mcf

// arc is one direction of a paired forward/reverse arc pair, stored
// inside the adjacency slice of its "from" node (spec.md §3, "Arc").
//
// Every user-facing edge produces two arcs: a forward arc carrying the
// caller's (lower, upper, cost), and a reverse arc with lower=0,
// upper=-lowerForward, cost=-costForward, flow always equal to
// -forward.flow. rev is the index of the sibling arc inside the
// adjacency slice of "to" — the paired-arc trick that avoids pointers
// between the two halves of one logical edge.
type arc[F Flow] struct {
	from, to, rev int
	flow          F
	lower         F
	upper         F
	cost          F
	isReverse     bool
}

// residualCapacity is the amount of additional flow this arc can carry:
// upper-flow for a forward arc (remaining push capacity), upper-flow for
// a reverse arc too (by construction this equals the amount of forward
// flow that can be cancelled).
func (a *arc[F]) residualCapacity() F {
	return a.upper - a.flow
}

// EdgeID is an opaque handle returned by AddDirectedEdge, used to query
// the final flow on an edge and to drive incremental capacity edits. Its
// fields are unexported. The zero value equals the handle of the first
// edge added from node 0, so it does not mean "no edge".
type EdgeID struct {
	node int
	slot int
}

// Arc is the caller-visible snapshot of one user edge: its endpoints,
// bounds, cost, and (once Solve has run) its final flow.
type Arc[F Flow] struct {
	From, To   int
	Flow       F
	Lower      F
	Upper      F
	Cost       F
}

// addDirectedEdge appends the forward/reverse arc pair for one user edge,
// records the edge's EdgeID in s.edgeIndex, and returns that EdgeID,
// which AddDirectedEdge hands to the caller. Preconditions (lower<=upper, valid node indices) are the
// caller's responsibility — see AddDirectedEdge.
func (s *Solver[F]) addDirectedEdge(from, to int, lower, upper, cost F) EdgeID {
	e := len(s.graph[from])
	var re int
	if from == to {
		// Self-loop: both halves of the pair live in the same
		// adjacency slice, at consecutive indices (spec.md §4.1).
		re = e + 1
	} else {
		re = len(s.graph[to])
	}

	s.graph[from] = append(s.graph[from], arc[F]{
		from: from, to: to, rev: re, flow: 0, lower: lower, upper: upper, cost: cost,
	})
	s.graph[to] = append(s.graph[to], arc[F]{
		from: to, to: from, rev: e, flow: 0, lower: 0, upper: -lower, cost: -cost, isReverse: true,
	})

	if cost < 0 {
		if -cost > s.gamma {
			s.gamma = -cost
		}
	} else if cost > s.gamma {
		s.gamma = cost
	}

	s.edgeIndex = append(s.edgeIndex, EdgeID{node: from, slot: e})
	return s.edgeIndex[len(s.edgeIndex)-1]
}

// pushFlow moves δ units of flow along arc i of node u's adjacency list,
// updating the paired reverse arc and both endpoints' excess in lock
// step. This is the sole mutator of arc.flow in the whole package
// (spec.md §4.1): every push, saturation, and incremental edit routes
// through it so paired-arc consistency can never drift.
func (s *Solver[F]) pushFlow(u, i int, delta F) {
	if delta == 0 {
		return
	}
	a := &s.graph[u][i]
	to, rev := a.to, a.rev
	a.flow += delta
	s.graph[to][rev].flow -= delta
	s.excess[u] -= delta
	s.excess[to] += delta
}
