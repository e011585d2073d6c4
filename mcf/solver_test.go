package mcf_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/kosma-dev/mcflow/mcf"
)

// SolverSuite exercises the CSPR solver against the concrete scenarios
// and universal invariants of the scaling controller.
type SolverSuite struct {
	suite.Suite
}

// TestAssignment runs scenario S1: a 3x3 assignment problem modelled as
// a balanced bipartite min-cost flow.
func (s *SolverSuite) TestAssignment() {
	cost := [3][3]int64{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	}
	solver := mcf.NewSolver[int64](6)
	for i := 0; i < 3; i++ {
		solver.AddSupply(i, 1)
		solver.AddSupply(3+i, -1)
		for j := 0; j < 3; j++ {
			solver.AddDirectedEdge(i, 3+j, 0, 1, cost[i][j])
		}
	}

	status := solver.Solve()
	require.Equal(s.T(), mcf.Optimal, status)

	optimal, ok := solver.OptimalCost()
	require.True(s.T(), ok)
	require.Equal(s.T(), int64(5), optimal.Int64())
}

// TestAssignmentInvariants re-runs S1 while retaining every EdgeID, so
// checkInvariants can check spec.md §8's universal invariants (all but
// paired-arc consistency, which the public API does not expose) against
// the full edge set rather than a couple of spot-checked flows.
func (s *SolverSuite) TestAssignmentInvariants() {
	cost := [3][3]int64{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	}
	solver := mcf.NewSolver[int64](6)
	supply := map[int]int64{}
	var edges []mcf.EdgeID
	for i := 0; i < 3; i++ {
		solver.AddSupply(i, 1)
		solver.AddSupply(3+i, -1)
		supply[i] = 1
		supply[3+i] = -1
		for j := 0; j < 3; j++ {
			edges = append(edges, solver.AddDirectedEdge(i, 3+j, 0, 1, cost[i][j]))
		}
	}

	require.Equal(s.T(), mcf.Optimal, solver.Solve())
	checkInvariants(s.T(), solver, edges, supply)
}

// TestTrivialPath runs scenario S2.
func (s *SolverSuite) TestTrivialPath() {
	solver := mcf.NewSolver[int64](2)
	solver.AddSupply(0, 1)
	solver.AddSupply(1, -1)
	edge := solver.AddDirectedEdge(0, 1, 0, 1, 7)

	require.Equal(s.T(), mcf.Optimal, solver.Solve())

	optimal, ok := solver.OptimalCost()
	require.True(s.T(), ok)
	require.Equal(s.T(), int64(7), optimal.Int64())
	require.Equal(s.T(), int64(1), solver.GetDirectedEdge(edge).Flow)

	checkInvariants(s.T(), solver, []mcf.EdgeID{edge}, map[int]int64{0: 1, 1: -1})
}

// TestInfeasibleLowerBound runs scenario S3.
func (s *SolverSuite) TestInfeasibleLowerBound() {
	solver := mcf.NewSolver[int64](2)
	solver.AddSupply(0, 1)
	solver.AddSupply(1, -1)
	solver.AddDirectedEdge(0, 1, 2, 3, 0)

	require.Equal(s.T(), mcf.Infeasible, solver.Solve())
}

// TestUnbalanced runs scenario S4.
func (s *SolverSuite) TestUnbalanced() {
	solver := mcf.NewSolver[int64](2)
	solver.AddSupply(0, 1)
	solver.AddSupply(1, 1)
	solver.AddDirectedEdge(0, 1, 0, 5, 1)

	require.Equal(s.T(), mcf.Unbalanced, solver.Solve())
}

// TestNegativeCostSaturation runs scenario S5.
func (s *SolverSuite) TestNegativeCostSaturation() {
	solver := mcf.NewSolver[int64](3)
	solver.AddSupply(0, 2)
	solver.AddSupply(2, -2)
	e01 := solver.AddDirectedEdge(0, 1, 0, 2, -5)
	e12 := solver.AddDirectedEdge(1, 2, 0, 2, 1)
	e02 := solver.AddDirectedEdge(0, 2, 0, 2, 10)

	require.Equal(s.T(), mcf.Optimal, solver.Solve())

	optimal, ok := solver.OptimalCost()
	require.True(s.T(), ok)
	require.Equal(s.T(), int64(-8), optimal.Int64())
	require.Equal(s.T(), int64(2), solver.GetDirectedEdge(e01).Flow)
	require.Equal(s.T(), int64(2), solver.GetDirectedEdge(e12).Flow)

	checkInvariants(s.T(), solver, []mcf.EdgeID{e01, e12, e02}, map[int]int64{0: 2, 2: -2})
}

// TestCostOverflow runs scenario S6: costs at the scalar type's maximum
// with a large node count push the pre-scaling multiplication out of
// range.
func (s *SolverSuite) TestCostOverflow() {
	solver := mcf.NewSolver[int32](1000)
	solver.AddSupply(0, 1)
	solver.AddSupply(1, -1)
	solver.AddDirectedEdge(0, 1, 0, 1, mcf.MaxOf[int32]())

	require.Equal(s.T(), mcf.BadCostRange, solver.Solve())
}

// TestZeroNodes covers the "zero nodes" boundary behaviour.
func (s *SolverSuite) TestZeroNodes() {
	solver := mcf.NewSolver[int64](0)
	require.Equal(s.T(), mcf.Optimal, solver.Solve())
	optimal, ok := solver.OptimalCost()
	require.True(s.T(), ok)
	require.Equal(s.T(), int64(0), optimal.Int64())
}

// TestSingleEdgeFixedBound covers the "lower==upper" boundary: flow is
// forced to exactly that bound regardless of cost.
func (s *SolverSuite) TestSingleEdgeFixedBound() {
	solver := mcf.NewSolver[int64](2)
	solver.AddSupply(0, 3)
	solver.AddSupply(1, -3)
	edge := solver.AddDirectedEdge(0, 1, 3, 3, 9)

	require.Equal(s.T(), mcf.Optimal, solver.Solve())
	require.Equal(s.T(), int64(3), solver.GetDirectedEdge(edge).Flow)

	optimal, ok := solver.OptimalCost()
	require.True(s.T(), ok)
	require.Equal(s.T(), int64(27), optimal.Int64())
}

// TestSelfLoopPositiveCost covers the self-loop boundary: a positive-cost
// self-loop never carries flow.
func (s *SolverSuite) TestSelfLoopPositiveCost() {
	solver := mcf.NewSolver[int64](2)
	solver.AddSupply(0, 1)
	solver.AddSupply(1, -1)
	loop := solver.AddDirectedEdge(0, 0, 0, 5, 3)
	solver.AddDirectedEdge(0, 1, 0, 1, 1)

	require.Equal(s.T(), mcf.Optimal, solver.Solve())
	require.Equal(s.T(), int64(0), solver.GetDirectedEdge(loop).Flow)
}

// TestSelfLoopNegativeCost covers the self-loop boundary: a negative-cost
// self-loop always saturates.
func (s *SolverSuite) TestSelfLoopNegativeCost() {
	solver := mcf.NewSolver[int64](2)
	solver.AddSupply(0, 1)
	solver.AddSupply(1, -1)
	loop := solver.AddDirectedEdge(0, 0, 0, 5, -3)
	solver.AddDirectedEdge(0, 1, 0, 1, 1)

	require.Equal(s.T(), mcf.Optimal, solver.Solve())
	require.Equal(s.T(), int64(5), solver.GetDirectedEdge(loop).Flow)
}

// TestHeuristicsAgreeWithDefault verifies that enabling price-update,
// enabling price-refinement, and disabling look-ahead each leave the
// optimal cost unchanged (spec.md §4, "all
// three heuristics must be correct in isolation; none changes the final
// cost").
func (s *SolverSuite) TestHeuristicsAgreeWithDefault() {
	build := func() *mcf.Solver[int64] {
		solver := mcf.NewSolver[int64](3)
		solver.AddSupply(0, 2)
		solver.AddSupply(2, -2)
		solver.AddDirectedEdge(0, 1, 0, 2, -5)
		solver.AddDirectedEdge(1, 2, 0, 2, 1)
		solver.AddDirectedEdge(0, 2, 0, 2, 10)
		return solver
	}

	baseline := build()
	require.Equal(s.T(), mcf.Optimal, baseline.Solve())
	baselineCost, _ := baseline.OptimalCost()

	withUpdate := build()
	withUpdate.SetPriceUpdate(true)
	require.Equal(s.T(), mcf.Optimal, withUpdate.Solve())
	updateCost, _ := withUpdate.OptimalCost()
	require.Equal(s.T(), baselineCost, updateCost)

	withRefinement := build()
	withRefinement.SetPriceRefinement(true)
	require.Equal(s.T(), mcf.Optimal, withRefinement.Solve())
	refinementCost, _ := withRefinement.OptimalCost()
	require.Equal(s.T(), baselineCost, refinementCost)

	withoutLookAhead := build()
	withoutLookAhead.SetLookAhead(false)
	require.Equal(s.T(), mcf.Optimal, withoutLookAhead.Solve())
	noLookAheadCost, _ := withoutLookAhead.OptimalCost()
	require.Equal(s.T(), baselineCost, noLookAheadCost)
}

// TestIncreaseCapacityUnit exercises the incremental-edit path on an
// already-solved, saturated arc that becomes profitable once widened.
func (s *SolverSuite) TestIncreaseCapacityUnit() {
	solver := mcf.NewSolver[int64](3)
	solver.AddSupply(0, 2)
	solver.AddSupply(2, -2)
	cheap := solver.AddDirectedEdge(0, 1, 0, 1, 1)
	mid := solver.AddDirectedEdge(1, 2, 0, 2, 1)
	direct := solver.AddDirectedEdge(0, 2, 0, 2, 5)

	require.Equal(s.T(), mcf.Optimal, solver.Solve())
	before, _ := solver.OptimalCost()

	status, err := solver.IncreaseCapacityUnit(cheap)
	require.NoError(s.T(), err)
	require.Equal(s.T(), mcf.Optimal, status)

	after, ok := solver.OptimalCost()
	require.True(s.T(), ok)
	require.True(s.T(), after.Cmp(before) <= 0, "widening a cheap saturated arc must not raise cost")

	checkInvariants(s.T(), solver, []mcf.EdgeID{cheap, mid, direct}, map[int]int64{0: 2, 2: -2})
}

// TestDecreaseCapacityUnit exercises the incremental-edit path on a
// saturated arc whose capacity shrinks below its current flow.
func (s *SolverSuite) TestDecreaseCapacityUnit() {
	solver := mcf.NewSolver[int64](3)
	solver.AddSupply(0, 2)
	solver.AddSupply(2, -2)
	cheap := solver.AddDirectedEdge(0, 1, 0, 2, 1)
	mid := solver.AddDirectedEdge(1, 2, 0, 2, 1)
	direct := solver.AddDirectedEdge(0, 2, 0, 2, 5)

	require.Equal(s.T(), mcf.Optimal, solver.Solve())

	status, err := solver.DecreaseCapacityUnit(cheap)
	require.NoError(s.T(), err)
	require.Equal(s.T(), mcf.Optimal, status)
	require.LessOrEqual(s.T(), solver.GetDirectedEdge(cheap).Flow, int64(1))

	checkInvariants(s.T(), solver, []mcf.EdgeID{cheap, mid, direct}, map[int]int64{0: 2, 2: -2})
}

// TestIncrementalEditRequiresSolve ensures the incremental edits refuse
// to run before a successful Solve.
func (s *SolverSuite) TestIncrementalEditRequiresSolve() {
	solver := mcf.NewSolver[int64](2)
	edge := solver.AddDirectedEdge(0, 1, 0, 1, 1)

	_, err := solver.IncreaseCapacityUnit(edge)
	require.ErrorIs(s.T(), err, mcf.ErrNotSolved)
}

func TestSolverSuite(t *testing.T) {
	suite.Run(t, new(SolverSuite))
}

// checkInvariants verifies spec.md §8's universal invariants — flow
// feasibility, conservation, reduced-cost optimality on both residual
// directions of every arc, and that OptimalCost equals
// sum(flow*cost) — against a just-solved instance, using only the
// public API.
func checkInvariants(t *testing.T, solver *mcf.Solver[int64], edges []mcf.EdgeID, supply map[int]int64) {
	potentials := solver.Potentials()
	inflow := make([]int64, len(potentials))
	outflow := make([]int64, len(potentials))
	var totalCost int64

	for _, id := range edges {
		a := solver.GetDirectedEdge(id)
		require.GreaterOrEqual(t, a.Flow, a.Lower, "flow below lower bound")
		require.LessOrEqual(t, a.Flow, a.Upper, "flow above upper bound")

		outflow[a.From] += a.Flow
		inflow[a.To] += a.Flow
		totalCost += a.Flow * a.Cost

		if a.Flow < a.Upper {
			require.GreaterOrEqual(t, a.Cost+potentials[a.From]-potentials[a.To], int64(0),
				"forward residual arc %d->%d violates reduced-cost optimality", a.From, a.To)
		}
		if a.Flow > a.Lower {
			require.GreaterOrEqual(t, -a.Cost+potentials[a.To]-potentials[a.From], int64(0),
				"reverse residual arc %d->%d violates reduced-cost optimality", a.To, a.From)
		}
	}

	for u := range potentials {
		require.Equal(t, int64(0), supply[u]+inflow[u]-outflow[u], "conservation at node %d", u)
	}

	optimal, ok := solver.OptimalCost()
	require.True(t, ok)
	require.Equal(t, totalCost, optimal.Int64(), "optimal cost must equal sum(flow*cost)")
}
