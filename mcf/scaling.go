package mcf

import (
	"math/big"

	"github.com/kosma-dev/mcflow/feasibility"
)

// Solve runs the scaling controller (spec.md §4.3): it validates supply
// balance and feasibility, pre-scales costs, then repeatedly tightens ε
// by a factor of alpha via Refine until ε=1, before unscaling costs,
// accumulating the optimal cost, and reconstructing dual potentials.
//
// Solve resets the solver to NotSolved on entry and always ends in
// exactly one of Optimal, Infeasible, Unbalanced, or BadCostRange.
// Calling Solve a second time on the same instance is not supported
// (spec.md §5).
func (s *Solver[F]) Solve() Status {
	s.status = NotSolved

	if s.numNodes == 0 {
		s.status = Optimal
		s.optimalCost = newWidenedCost()
		s.trace(func(t Tracer) { t.OnStatus(s.status) })
		return s.status
	}

	if s.isUnbalanced() {
		s.status = Unbalanced
		s.trace(func(t Tracer) { t.OnStatus(s.status) })
		return s.status
	}

	if s.checkFeasibility && s.isInfeasible() {
		s.status = Infeasible
		s.trace(func(t Tracer) { t.OnStatus(s.status) })
		return s.status
	}

	scalingFactor, ok := s.computeCostScalingFactor()
	if !ok {
		s.status = BadCostRange
		s.trace(func(t Tracer) { t.OnStatus(s.status) })
		return s.status
	}
	s.costScalingFactor = scalingFactor

	gammaScaled, ok := checkedMul(s.gamma, scalingFactor)
	if !ok {
		s.status = BadCostRange
		s.trace(func(t Tracer) { t.OnStatus(s.status) })
		return s.status
	}
	epsilon := gammaScaled
	if epsilon < 1 {
		epsilon = 1
	}

	if !s.scaleCosts(scalingFactor) {
		s.status = BadCostRange
		s.trace(func(t Tracer) { t.OnStatus(s.status) })
		return s.status
	}

	s.initializeFlow()

	alphaF := F(s.alpha)
	first := true
	for {
		epsilon = epsilon / alphaF
		if epsilon < 1 {
			epsilon = 1
		}

		s.trace(func(t Tracer) { t.OnPhase(int64(epsilon), len(s.activeNodes)) })

		skip := false
		if !first && s.priceRefinement {
			skip = s.runPriceRefinement(epsilon)
		}
		first = false

		if !skip {
			s.refine(epsilon)
		}

		if s.status == Infeasible {
			s.trace(func(t Tracer) { t.OnStatus(s.status) })
			return s.status
		}
		if epsilon == 1 {
			break
		}
	}

	s.unscaleCosts(scalingFactor)

	s.optimalCost = newWidenedCost()
	for u := 0; u < s.numNodes; u++ {
		for i := range s.graph[u] {
			a := &s.graph[u][i]
			s.optimalCost.add(int64(a.flow), int64(a.cost))
		}
	}

	s.reconstructDuals()

	s.status = Optimal
	s.trace(func(t Tracer) { t.OnStatus(s.status) })
	return s.status
}

// OptimalCost returns the total cost of the minimum-cost flow and true,
// or (nil, false) if the last Solve did not reach Optimal. The result is
// widened to a 128-bit-class accumulator (spec.md §3, "Scalars") so that
// summing flow*cost over many arcs cannot silently overflow F.
func (s *Solver[F]) OptimalCost() (*big.Int, bool) {
	if s.status != Optimal || s.optimalCost == nil {
		return nil, false
	}
	return s.optimalCost.halved(), true
}

func (s *Solver[F]) isUnbalanced() bool {
	var total F
	for _, e := range s.initialExcess {
		total += e
	}
	return total != 0
}

func (s *Solver[F]) isInfeasible() bool {
	oracle := s.oracle
	if oracle == nil {
		oracle = defaultFeasibilityOracle{}
	}
	arcs := make([]FeasibilityArc, 0, len(s.edgeIndex))
	for _, id := range s.edgeIndex {
		a := &s.graph[id.node][id.slot]
		arcs = append(arcs, FeasibilityArc{From: a.from, To: a.to, Lower: int64(a.lower), Upper: int64(a.upper)})
	}
	supply := make([]int64, s.numNodes)
	for i, e := range s.initialExcess {
		supply[i] = int64(e)
	}
	return !oracle.Feasible(s.numNodes, arcs, supply)
}

// defaultFeasibilityOracle adapts package feasibility to the
// FeasibilityOracle interface, keeping feasibility free of any
// dependency back on mcf (see DESIGN.md).
type defaultFeasibilityOracle struct{}

func (defaultFeasibilityOracle) Feasible(numNodes int, arcs []FeasibilityArc, supply []int64) bool {
	converted := make([]feasibility.Arc, len(arcs))
	for i, a := range arcs {
		converted[i] = feasibility.Arc{From: a.From, To: a.To, Lower: a.Lower, Upper: a.Upper}
	}
	return feasibility.Solve(numNodes, converted, supply)
}

// computeCostScalingFactor computes S per s.costScalingMode (spec.md §9).
func (s *Solver[F]) computeCostScalingFactor() (F, bool) {
	n := F(s.numNodes)
	switch s.costScalingMode {
	case CostScalingThreePlusN:
		sum := n + 3
		return sum, sum > 0
	default:
		return checkedMul(F(s.alpha), n)
	}
}

func (s *Solver[F]) scaleCosts(factor F) bool {
	for u := 0; u < s.numNodes; u++ {
		for i := range s.graph[u] {
			scaled, ok := checkedMul(s.graph[u][i].cost, factor)
			if !ok {
				return false
			}
			s.graph[u][i].cost = scaled
		}
	}
	return true
}

func (s *Solver[F]) unscaleCosts(factor F) {
	for u := 0; u < s.numNodes; u++ {
		for i := range s.graph[u] {
			s.graph[u][i].cost /= factor
		}
	}
}

// initializeFlow pushes every forward arc's lower bound as flow, turning
// the all-zero flow into a valid starting point for Refine (spec.md §4.3
// step 7).
func (s *Solver[F]) initializeFlow() {
	for u := 0; u < s.numNodes; u++ {
		for i := range s.graph[u] {
			if !s.graph[u][i].isReverse {
				s.pushFlow(u, i, s.graph[u][i].lower)
			}
		}
	}
}
