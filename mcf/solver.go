package mcf

// CostScalingMode selects the formula used to compute the cost-scaling
// factor S in step 4 of the Scaling Controller (spec.md §4.3, §9 "Open
// question — 3+n vs α·n"). AlphaN is the textbook choice and the
// default; ThreePlusN is retained for parity with the early variant seen
// in the original source, and converges correctly but more slowly.
type CostScalingMode int

const (
	// CostScalingAlphaN uses S = alpha * n.
	CostScalingAlphaN CostScalingMode = iota
	// CostScalingThreePlusN uses S = 3 + n.
	CostScalingThreePlusN
)

// Tracer receives solve-progress notifications. It is pure observability:
// no control-flow or optimality decision in the solver depends on whether
// a Tracer is attached, or on what it does with the calls (spec.md §5).
// mcflog.Logger is the reference implementation.
type Tracer interface {
	// OnPhase is called once at the start of every ε-phase of the
	// scaling loop, including phases in which price refinement skips
	// Refine.
	OnPhase(epsilon int64, activeNodes int)
	// OnRelabel is called once per Relabel, after the new potential has
	// been committed.
	OnRelabel(node int)
	// OnStatus is called exactly once, when Solve reaches its terminal
	// Status.
	OnStatus(status Status)
}

// FeasibilityOracle decides whether a feasible flow exists for a set of
// lower/upper-bounded arcs and node supplies, without regard to cost. It
// is the external collaborator spec.md §6 describes; package feasibility
// provides the reference implementation wired in by NewSolver's default
// construction path — see Solver.SetFeasibilityOracle to override it
// (e.g. with a no-op for callers who already know their instance is
// feasible and want to skip the check via SetCheckFeasibility(false)
// instead).
type FeasibilityOracle interface {
	// Feasible reports whether a flow exists respecting every arc's
	// [lower, upper] bound and every node's supply. Arcs and supplies
	// are given as plain int64 regardless of the solver's F, per
	// spec.md §6's "Feasibility oracle contract".
	Feasible(numNodes int, arcs []FeasibilityArc, supply []int64) bool
}

// FeasibilityArc is one arc as presented to a FeasibilityOracle.
type FeasibilityArc struct {
	From, To     int
	Lower, Upper int64
}

// Solver is a minimum-cost flow instance over n nodes, parameterized by
// the integer scalar type F (spec.md §3, "Scalars"). Construct with
// NewSolver, add edges and supplies, then call Solve exactly once.
type Solver[F Flow] struct {
	numNodes int
	graph    [][]arc[F]

	// edgeIndex[i] is the EdgeID of the i-th edge added, locating its
	// forward arc: the node whose adjacency slice it lives in, and its
	// slot within that slice (spec.md §3, "EdgeId").
	edgeIndex []EdgeID

	initialExcess []F
	excess        []F
	potentials    []F

	currentEdges []int
	activeNodes  []int

	gamma             F
	alpha             int
	costScalingMode   CostScalingMode
	costScalingFactor F

	checkFeasibility bool
	lookAhead        bool
	priceUpdate      bool
	priceRefinement  bool
	priceUpdateEvery int

	oracle FeasibilityOracle
	tracer Tracer

	status      Status
	optimalCost *widenedCost

	numRelabel int
}

// NewSolver constructs an empty solver over numNodes nodes (indices
// 0..numNodes-1). Edges and supplies are added afterward; Solve may be
// called exactly once.
func NewSolver[F Flow](numNodes int) *Solver[F] {
	assertf(numNodes >= 0, "NewSolver: numNodes must be non-negative, got %d", numNodes)
	return &Solver[F]{
		numNodes:         numNodes,
		graph:            make([][]arc[F], numNodes),
		initialExcess:    make([]F, numNodes),
		excess:           make([]F, numNodes),
		potentials:       make([]F, numNodes),
		currentEdges:     make([]int, numNodes),
		alpha:            5,
		costScalingMode:  CostScalingAlphaN,
		checkFeasibility: true,
		lookAhead:        true,
		priceUpdate:      false,
		priceRefinement:  false,
		priceUpdateEvery: max(numNodes, 1),
		status:           NotSolved,
	}
}

// AddDirectedEdge inserts an arc from→to with the given lower/upper
// capacity bounds and per-unit cost, materialising the paired
// forward/reverse arcs described in spec.md §3. Panics if lower>upper or
// if from/to are out of range — these are caller bugs, not run-time
// outcomes (spec.md §7).
func (s *Solver[F]) AddDirectedEdge(from, to int, lower, upper, cost F) EdgeID {
	assertf(lower <= upper, "AddDirectedEdge: lower (%v) > upper (%v)", lower, upper)
	assertf(from >= 0 && from < s.numNodes, "AddDirectedEdge: from %d out of range [0,%d)", from, s.numNodes)
	assertf(to >= 0 && to < s.numNodes, "AddDirectedEdge: to %d out of range [0,%d)", to, s.numNodes)
	return s.addDirectedEdge(from, to, lower, upper, cost)
}

// AddSupply adds supply to node's initial excess. A positive value is supply,
// negative is demand. The sum of all supplies must be zero for Solve to
// proceed past the balance check.
func (s *Solver[F]) AddSupply(node int, supply F) {
	assertf(node >= 0 && node < s.numNodes, "AddSupply: node %d out of range [0,%d)", node, s.numNodes)
	s.initialExcess[node] += supply
	s.excess[node] += supply
}

// SetAlpha sets the ε-scaling divisor (spec.md §4.3). Must be >= 2;
// panics otherwise. Default is 5; the literature range 8-24 is also
// common.
func (s *Solver[F]) SetAlpha(alpha int) {
	assertf(alpha >= 2, "SetAlpha: alpha must be >= 2, got %d", alpha)
	s.alpha = alpha
}

// SetCostScalingMode overrides the cost-scaling factor formula; see
// CostScalingMode.
func (s *Solver[F]) SetCostScalingMode(mode CostScalingMode) {
	s.costScalingMode = mode
}

// SetCheckFeasibility toggles the pre-solve feasibility oracle
// (default true). Disable only when the caller already knows the
// instance is feasible with respect to lower bounds. With the check off,
// Solve reports Infeasible only when Relabel, mid-Refine, meets a node
// with excess and no residual arc leaving it; other infeasible instances
// are not detected.
func (s *Solver[F]) SetCheckFeasibility(check bool) {
	s.checkFeasibility = check
}

// SetFeasibilityOracle overrides the default feasibility.Solve-backed
// oracle used when SetCheckFeasibility(true) (the default).
func (s *Solver[F]) SetFeasibilityOracle(oracle FeasibilityOracle) {
	s.oracle = oracle
}

// SetLookAhead toggles the look-ahead heuristic (spec.md §4.6, default
// true).
func (s *Solver[F]) SetLookAhead(enabled bool) {
	s.lookAhead = enabled
}

// SetPriceUpdate toggles the price-update heuristic (spec.md §4.8,
// default false).
func (s *Solver[F]) SetPriceUpdate(enabled bool) {
	s.priceUpdate = enabled
}

// SetPriceRefinement toggles the price-refinement heuristic (spec.md
// §4.7, default false).
func (s *Solver[F]) SetPriceRefinement(enabled bool) {
	s.priceRefinement = enabled
}

// SetTracer attaches a Tracer for solve-progress observability. Pass nil
// to detach.
func (s *Solver[F]) SetTracer(t Tracer) {
	s.tracer = t
}

// NumNodes returns the node count this solver was constructed with.
func (s *Solver[F]) NumNodes() int {
	return s.numNodes
}

// Edges returns every edge in insertion order, the way dimacs.Write
// needs them to render arc lines back out.
func (s *Solver[F]) Edges() []Arc[F] {
	out := make([]Arc[F], len(s.edgeIndex))
	for i, id := range s.edgeIndex {
		out[i] = s.GetDirectedEdge(id)
	}
	return out
}

// InitialSupply returns the sum of every supply passed to AddSupply for
// node, the way dimacs.Write needs it to render node lines back out.
func (s *Solver[F]) InitialSupply(node int) F {
	return s.initialExcess[node]
}

// GetDirectedEdge returns the final (or, mid-solve, current) state of the
// edge identified by id.
func (s *Solver[F]) GetDirectedEdge(id EdgeID) Arc[F] {
	a := &s.graph[id.node][id.slot]
	return Arc[F]{From: a.from, To: a.to, Flow: a.flow, Lower: a.lower, Upper: a.upper, Cost: a.cost}
}

// Potentials returns a copy of the node potentials. After a Solve (or an
// incremental edit) that ends Optimal they are the reconstructed dual
// variables; after any other outcome they are whatever the solve left
// behind (all zero if it stopped before the scaling loop) and certify
// nothing.
func (s *Solver[F]) Potentials() []F {
	out := make([]F, len(s.potentials))
	copy(out, s.potentials)
	return out
}

// Status returns the outcome of the last Solve call (NotSolved if Solve
// has not been called).
func (s *Solver[F]) Status() Status {
	return s.status
}

func (s *Solver[F]) trace(fn func(Tracer)) {
	if s.tracer != nil {
		fn(s.tracer)
	}
}
