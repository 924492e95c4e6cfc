package spectrum_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moldiscovery/IsoSpec/conf"
	"github.com/moldiscovery/IsoSpec/elements"
	"github.com/moldiscovery/IsoSpec/spectrum"
)

// TestWaterFineStructure pins the H₂O spectrum at a 10⁻⁴ relative
// threshold: the base peak plus H₂¹⁸O, H₂¹⁷O and HD¹⁶O.
func TestWaterFineStructure(t *testing.T) {
	peaks, err := spectrum.FromFormula("H2O", 1e-4)
	require.NoError(t, err)
	require.Len(t, peaks, 4)

	// Base peak: ¹H₂ ¹⁶O, with its per-element breakdown.
	assert.InDelta(t, 18.0105646863, peaks[0].Mass, 1e-6)
	assert.InDelta(t, 0.9973405720928632, peaks[0].Prob, 1e-9)
	require.Len(t, peaks[0].Confs, 2)
	assert.Equal(t, conf.Conf{2, 0}, peaks[0].Confs[0])
	assert.Equal(t, conf.Conf{1, 0, 0}, peaks[0].Confs[1])

	// Every peak's configurations stay on the per-element simplexes:
	// two hydrogen atoms, one oxygen atom.
	for _, p := range peaks {
		require.Len(t, p.Confs, 2)
		assert.Equal(t, 2, conf.Sum(p.Confs[0]))
		assert.Equal(t, 1, conf.Sum(p.Confs[1]))
	}

	// Peaks come out most probable first.
	for i := 1; i < len(peaks); i++ {
		assert.LessOrEqual(t, peaks[i].Prob, peaks[i-1].Prob)
	}

	// Second peak is the ¹⁸O isotopologue, two daltons up.
	assert.InDelta(t, peaks[0].Mass+2.0042, peaks[1].Mass, 1e-3)
	assert.Equal(t, conf.Conf{2, 0}, peaks[1].Confs[0])
	assert.Equal(t, conf.Conf{0, 0, 1}, peaks[1].Confs[1])

	// Total probability is dominated by the listed peaks but never
	// exceeds one.
	sum := 0.0
	for _, p := range peaks {
		assert.Equal(t, math.Exp(p.LogProb), p.Prob)
		sum += p.Prob
	}
	assert.Greater(t, sum, 0.999)
	assert.LessOrEqual(t, sum, 1.0+1e-12)
}

// TestGlucose sanity-checks a multi-element molecule: the top peak is
// the monoisotopic one and ordering is strict.
func TestGlucose(t *testing.T) {
	peaks, err := spectrum.FromFormula("C6H12O6", 1e-3)
	require.NoError(t, err)
	require.NotEmpty(t, peaks)

	assert.InDelta(t, 180.0633881022, peaks[0].Mass, 1e-5)
	for i := 1; i < len(peaks); i++ {
		assert.LessOrEqual(t, peaks[i].Prob, peaks[i-1].Prob)
	}

	// Every reported peak clears the relative threshold.
	for _, p := range peaks {
		assert.GreaterOrEqual(t, p.Prob/peaks[0].Prob, 1e-3*(1-1e-9))
	}
}

// TestAbsoluteThreshold: an absolute threshold equal to the relative
// one scaled by the base peak selects the same set.
func TestAbsoluteThreshold(t *testing.T) {
	rel, err := spectrum.FromFormula("C6H12O6", 1e-3)
	require.NoError(t, err)
	require.NotEmpty(t, rel)

	abs, err := spectrum.FromFormula("C6H12O6", 1e-3*rel[0].Prob*0.999, spectrum.WithAbsolute())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(abs), len(rel))
	for i := range rel {
		assert.InDelta(t, rel[i].Mass, abs[i].Mass, 1e-9)
		assert.InDelta(t, rel[i].Prob, abs[i].Prob, 1e-12)
	}
}

// TestSingleElementMatchesMarginal: a one-element molecule is just its
// marginal.
func TestSingleElementMatchesMarginal(t *testing.T) {
	peaks, err := spectrum.FromFormula("C100", 1e-2, spectrum.WithAbsolute())
	require.NoError(t, err)

	// Binomial(100, 0.0107): five configurations clear 1%.
	require.Len(t, peaks, 5)
	assert.InDelta(t, 0.3688558505542487, peaks[0].Prob, 1e-9)
	assert.InDelta(t, 99*12.0+13.0033548378, peaks[0].Mass, 1e-6)
	require.Len(t, peaks[0].Confs, 1)
	assert.Equal(t, conf.Conf{99, 1}, peaks[0].Confs[0])
}

// TestPeakConfsDeterministic: two independent generations of the same
// molecule report identical per-element configurations, peak for peak.
func TestPeakConfsDeterministic(t *testing.T) {
	a, err := spectrum.FromFormula("C6H12O6", 1e-3)
	require.NoError(t, err)
	b, err := spectrum.FromFormula("C6H12O6", 1e-3)
	require.NoError(t, err)

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Confs, b[i].Confs, "peak %d", i)
		assert.Equal(t, a[i].LogProb, b[i].LogProb, "peak %d", i)
	}
}

// TestThresholdErrors covers the failure modes.
func TestThresholdErrors(t *testing.T) {
	_, err := spectrum.FromFormula("H2O", 0)
	assert.ErrorIs(t, err, spectrum.ErrBadThreshold)

	_, err = spectrum.FromFormula("H2O", 1)
	assert.ErrorIs(t, err, spectrum.ErrBadThreshold)

	_, err = spectrum.FromFormula("", 0.1)
	assert.ErrorIs(t, err, elements.ErrBadFormula)

	_, err = spectrum.FromFormula("Xy2", 0.1)
	assert.ErrorIs(t, err, elements.ErrUnknownElement)

	_, err = spectrum.Threshold(nil, 0.1)
	assert.ErrorIs(t, err, spectrum.ErrEmptyMolecule)

	counts, err := elements.ParseFormula("H2O")
	require.NoError(t, err)
	counts[0].N = 0
	counts[1].N = 0
	_, err = spectrum.Threshold(counts, 0.1)
	assert.ErrorIs(t, err, spectrum.ErrEmptyMolecule)
}
