package marginal_test

import (
	"fmt"
	"math"

	"github.com/moldiscovery/IsoSpec/marginal"
)

// ExampleNewTrek enumerates a symmetric binomial lazily, most probable
// first; bitwise probability ties come out in lexicographic order.
func ExampleNewTrek() {
	m, _ := marginal.New([]float64{1.0, 2.0}, []float64{0.5, 0.5}, 4)
	trek, _ := marginal.NewTrek(m)

	for i := 0; trek.EnsureIndex(i); i++ {
		fmt.Println(trek.Conf(i))
	}
	// Output:
	// [2 2]
	// [1 3]
	// [3 1]
	// [0 4]
	// [4 0]
}

// ExampleNewPrecalculated collects everything above a 10% probability
// cutoff, sorted by descending probability.
func ExampleNewPrecalculated() {
	m, _ := marginal.New([]float64{1.0, 2.0}, []float64{0.5, 0.5}, 4)
	p, _ := marginal.NewPrecalculated(m, math.Log(0.1))

	for i := 0; i < p.Len(); i++ {
		fmt.Println(p.Conf(i))
	}
	// Output:
	// [2 2]
	// [1 3]
	// [3 1]
}

// ExampleLayered lowers the cutoff step by step; every extension keeps
// all prior work and only pays for the newly uncovered layer.
func ExampleLayered() {
	m, _ := marginal.New([]float64{1.0, 2.0}, []float64{0.5, 0.5}, 4)
	l, _ := marginal.NewLayered(m)

	for _, cutoff := range []float64{0.3, 0.2, 0.01} {
		l.Extend(math.Log(cutoff))
		fmt.Println(l.Len())
	}
	// Output:
	// 1
	// 3
	// 5
}
