package marginal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moldiscovery/IsoSpec/conf"
	"github.com/moldiscovery/IsoSpec/marginal"
)

// exhaust advances t until the marginal is fully enumerated.
func exhaust(t *marginal.Trek) {
	for t.Advance() {
	}
}

// TestTrekBinarySymmetric pins the exact emission order of the
// five configurations of Binomial(4, ½), including both tie pairs:
// equal log-probabilities fall back to lexicographic order.
func TestTrekBinarySymmetric(t *testing.T) {
	m, err := marginal.New([]float64{1.0, 2.0}, []float64{0.5, 0.5}, 4)
	require.NoError(t, err)
	trek, err := marginal.NewTrek(m)
	require.NoError(t, err)
	exhaust(trek)

	require.Equal(t, 5, trek.Len())
	wantConfs := []conf.Conf{{2, 2}, {1, 3}, {3, 1}, {0, 4}, {4, 0}}
	wantProbs := []float64{0.375, 0.25, 0.25, 0.0625, 0.0625}
	for i, want := range wantConfs {
		assert.Equal(t, want, trek.Conf(i), "conf %d", i)
		assert.InDelta(t, wantProbs[i], trek.Prob(i), 1e-12, "prob %d", i)
	}
	assert.InDelta(t, 1.0, trek.TotalProb(), 1e-12)

	// The tied pairs are bitwise ties, not near-ties.
	assert.Equal(t, trek.LogProb(1), trek.LogProb(2))
	assert.Equal(t, trek.LogProb(3), trek.LogProb(4))
}

// TestTrekInvariants runs the full C₁₀₀ enumeration and checks the
// emission invariants: non-increasing log-probabilities, simplex
// membership, no duplicates, bit-exact recomputation, mass identity,
// and total probability ≈ 1.
func TestTrekInvariants(t *testing.T) {
	m, err := marginal.New(carbonMasses, carbonProbs, 100)
	require.NoError(t, err)
	trek, err := marginal.NewTrek(m)
	require.NoError(t, err)
	exhaust(trek)

	// A two-isotope marginal of 100 atoms has exactly 101 configurations.
	require.Equal(t, 101, trek.Len())

	seen := make(map[string]struct{}, trek.Len())
	for i := 0; i < trek.Len(); i++ {
		c := trek.Conf(i)

		if i > 0 {
			assert.LessOrEqual(t, trek.LogProb(i), trek.LogProb(i-1),
				"log-probabilities must not increase at %d", i)
		}

		assert.Equal(t, 100, conf.Sum(c), "conf %d off the simplex", i)
		for _, v := range c {
			assert.GreaterOrEqual(t, v, int32(0))
		}

		key := conf.Key(c)
		_, dup := seen[key]
		assert.False(t, dup, "conf %d emitted twice: %v", i, c)
		seen[key] = struct{}{}

		// Property 4: stored log-probability matches recomputation bit-exactly.
		assert.Equal(t, trek.LogProbOf(c), trek.LogProb(i), "lprob %d", i)
		// Property 5: mass identity.
		assert.Equal(t, conf.Mass(c, carbonMasses), trek.Mass(i), "mass %d", i)
		// Property 6: probs are exponentials of lprobs.
		assert.Equal(t, math.Exp(trek.LogProb(i)), trek.Prob(i), "prob %d", i)
	}

	assert.InDelta(t, 1.0, trek.TotalProb(), 1e-9)
	assert.False(t, trek.Advance(), "exhausted trek must refuse to advance")
}

// TestTrekDeterminism: two independent constructions emit identical
// arrays, element for element, bit for bit.
func TestTrekDeterminism(t *testing.T) {
	build := func() *marginal.Trek {
		m, err := marginal.New(carbonMasses, carbonProbs, 40)
		require.NoError(t, err)
		trek, err := marginal.NewTrek(m)
		require.NoError(t, err)
		exhaust(trek)

		return trek
	}

	a, b := build(), build()
	require.Equal(t, a.Len(), b.Len())
	for i := 0; i < a.Len(); i++ {
		assert.Equal(t, a.Conf(i), b.Conf(i), "conf %d", i)
		assert.Equal(t, a.LogProb(i), b.LogProb(i), "lprob %d", i)
		assert.Equal(t, a.Mass(i), b.Mass(i), "mass %d", i)
	}
}

// TestTrekEnsureIndex covers both in-range and out-of-range seeks.
func TestTrekEnsureIndex(t *testing.T) {
	m, err := marginal.New(carbonMasses, carbonProbs, 10)
	require.NoError(t, err)
	trek, err := marginal.NewTrek(m)
	require.NoError(t, err)

	assert.True(t, trek.EnsureIndex(7))
	assert.GreaterOrEqual(t, trek.Len(), 8)
	assert.True(t, trek.EnsureIndex(10), "an 11-configuration marginal has index 10")
	assert.False(t, trek.EnsureIndex(11))
	assert.Equal(t, 11, trek.Len())
}

// TestTrekProcessUntilCutoff checks the returned prefix is minimal for
// the requested probability mass, and that an unreachable target
// exhausts the marginal.
func TestTrekProcessUntilCutoff(t *testing.T) {
	m, err := marginal.New(carbonMasses, carbonProbs, 100)
	require.NoError(t, err)
	trek, err := marginal.NewTrek(m)
	require.NoError(t, err)

	n := trek.ProcessUntilCutoff(0.99)
	require.Greater(t, n, 0)

	sum := 0.0
	for i := 0; i < n; i++ {
		sum += trek.Prob(i)
	}
	assert.GreaterOrEqual(t, sum, 0.99)
	assert.Less(t, sum-trek.Prob(n-1), 0.99, "prefix is not minimal")

	// Re-asking for a smaller mass only scans what is already there.
	already := trek.Len()
	n2 := trek.ProcessUntilCutoff(0.5)
	assert.LessOrEqual(t, n2, n)
	assert.Equal(t, already, trek.Len())

	// 2.0 can never be reached: the trek must exhaust and report all.
	n3 := trek.ProcessUntilCutoff(2.0)
	assert.Equal(t, 101, n3)
	assert.Equal(t, 101, trek.Len())
}

// TestTrekArenaStability advances thousands of times and verifies the
// configurations returned early stay valid and unchanged.
func TestTrekArenaStability(t *testing.T) {
	masses := []float64{31.972071, 32.97145876, 33.9678669}
	probs := []float64{0.9499, 0.0076, 0.0425}

	m, err := marginal.New(masses, probs, 120)
	require.NoError(t, err)
	trek, err := marginal.NewTrek(m, marginal.WithArenaBlockSize(64))
	require.NoError(t, err)

	require.True(t, trek.EnsureIndex(99))
	snapshots := make([]conf.Conf, 100)
	for i := range snapshots {
		snapshots[i] = conf.Clone(trek.Conf(i))
	}

	for i := 0; i < 5000 && trek.Advance(); i++ {
	}

	for i, want := range snapshots {
		assert.Equal(t, want, trek.Conf(i), "conf %d moved or changed", i)
	}
}

// TestTrekMatchesPrecalculated (trek-prefix property): running the
// trek past a cutoff yields exactly the configurations Precalculated
// collects at that cutoff.
func TestTrekMatchesPrecalculated(t *testing.T) {
	masses := []float64{31.972071, 32.97145876, 33.9678669, 35.96708076}
	probs := []float64{0.9499, 0.0075, 0.0425, 0.0001}
	cutoff := math.Log(1e-7)

	mt, err := marginal.New(masses, probs, 20)
	require.NoError(t, err)
	trek, err := marginal.NewTrek(mt)
	require.NoError(t, err)

	trekSet := make(map[string]struct{})
	for {
		last := trek.Len() - 1
		if trek.LogProb(last) >= cutoff {
			trekSet[conf.Key(trek.Conf(last))] = struct{}{}
		} else {
			break
		}
		if !trek.Advance() {
			break
		}
	}

	mp, err := marginal.New(masses, probs, 20)
	require.NoError(t, err)
	prec, err := marginal.NewPrecalculated(mp, cutoff)
	require.NoError(t, err)

	require.Equal(t, prec.Len(), len(trekSet))
	for i := 0; i < prec.Len(); i++ {
		_, ok := trekSet[conf.Key(prec.Conf(i))]
		assert.True(t, ok, "precalculated conf %v missing from trek prefix", prec.Conf(i))
	}
}
