package logmath

import "sync"

// FactorialTableSize is the number of tabulated −log(x!) values, and
// therefore the exclusive upper bound on the atom count of a single
// element in a molecule.
const FactorialTableSize = 1 << 20

var (
	mlfOnce  sync.Once
	mlfTable []float64
)

func fillMinusLogFactorial() {
	mlfTable = make([]float64, FactorialTableSize)
	for i := range mlfTable {
		mlfTable[i] = -LogFactorialUp(i)
	}
}

// MinusLogFactorial returns −log(x!) for 0 ≤ x < FactorialTableSize.
// The table is built once, on first use; afterwards the function is a
// plain read and safe for concurrent callers.
func MinusLogFactorial(x int32) float64 {
	mlfOnce.Do(fillMinusLogFactorial)

	return mlfTable[x]
}
