package mcf

import (
	"math/big"
	"unsafe"
)

// Flow is the generic signed-integer scalar the solver operates on. The
// Rust original this package is grounded on (see DESIGN.md) parameterises
// over any two's-complement integer type; Go's generic arithmetic only
// behaves uniformly across types sharing an underlying kind, so the type
// set is restricted to the two practical choices: int32 for compact
// networks, int64 (the expected default) for everything else.
type Flow interface {
	~int32 | ~int64
}

// bitSize returns the width in bits of F, without requiring a type switch
// that would fail to match named types sharing F's underlying kind.
func bitSize[F Flow]() int {
	var zero F
	return int(unsafe.Sizeof(zero)) * 8
}

// MaxOf returns F's maximum representable value.
func MaxOf[F Flow]() F {
	return F(int64(1)<<(bitSize[F]()-1) - 1)
}

// MinOf returns F's minimum representable value (the two's-complement
// sentinel the spec calls MIN).
func MinOf[F Flow]() F {
	return -MaxOf[F]() - 1
}

// checkedMul returns a*b and true, or (0, false) if the product overflows
// F's range. Overflow is detected by dividing the product back out, the
// standard technique for integer types without a built-in wide multiply;
// see DESIGN.md for why this is implemented on the standard library
// rather than an imported big-math package.
func checkedMul[F Flow](a, b F) (F, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if c/b != a {
		return 0, false
	}
	// a*b == MinOf * -1 overflows despite passing the division check on
	// two's-complement hardware (MinOf/-1 traps in other languages; Go
	// wraps it silently, so it must be checked explicitly here).
	if a == MinOf[F]() && b == -1 || b == MinOf[F]() && a == -1 {
		return 0, false
	}
	return c, true
}

// widenedCost accumulates flow*cost for every arc, forward and reverse
// alike, into a ≥128-bit accumulator, as required by spec.md §3
// ("Scalars") to avoid overflow when summing potentially billions of unit
// contributions; halved corrects for the resulting double count.
type widenedCost struct {
	total *big.Int
}

func newWidenedCost() *widenedCost {
	return &widenedCost{total: new(big.Int)}
}

func (w *widenedCost) add(flow, cost int64) {
	term := new(big.Int).Mul(big.NewInt(flow), big.NewInt(cost))
	w.total.Add(w.total, term)
}

// halved returns total/2, correcting for the paired-arc representation's
// double counting of every unit of flow (spec.md §4.3 step 10).
func (w *widenedCost) halved() *big.Int {
	return new(big.Int).Rsh(w.total, 1)
}
