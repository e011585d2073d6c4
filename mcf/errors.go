package mcf

import "fmt"

// Status is the terminal outcome of a Solve call. Every Solve resets the
// solver to NotSolved and ends in exactly one of the other six values.
type Status int

const (
	// NotSolved is the initial state before Solve is called, and the
	// state a solver is reset to at the start of every Solve call.
	NotSolved Status = iota
	// Optimal indicates Solve found a feasible flow of minimum cost.
	Optimal
	// Feasible is reserved for future partial-solve support; Solve
	// currently never returns it.
	Feasible
	// Infeasible indicates no flow respecting all lower/upper bounds
	// exists, or that Relabel found a node it could not drain.
	Infeasible
	// Unbalanced indicates the sum of initial supplies is non-zero.
	Unbalanced
	// BadResult is reserved; Solve never produces it (see DESIGN.md).
	BadResult
	// BadCostRange indicates the cost-scaling or pre-scaling
	// multiplication overflowed F's representable range.
	BadCostRange
)

// String renders the Status the way a log line or test failure wants it.
func (s Status) String() string {
	switch s {
	case NotSolved:
		return "NotSolved"
	case Optimal:
		return "Optimal"
	case Feasible:
		return "Feasible"
	case Infeasible:
		return "Infeasible"
	case Unbalanced:
		return "Unbalanced"
	case BadResult:
		return "BadResult"
	case BadCostRange:
		return "BadCostRange"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// assertf panics with a formatted message when cond is false. It is used
// exclusively for caller-precondition violations (spec.md §7): these are
// programming errors, not run-time outcomes, so they never surface as a
// Status.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("mcf: "+format, args...))
	}
}
