package marginal

import (
	"fmt"
	"math"

	"github.com/moldiscovery/IsoSpec/conf"
	"github.com/moldiscovery/IsoSpec/elements"
	"github.com/moldiscovery/IsoSpec/logmath"
)

// Marginal is the isotopic distribution of a single element: atomCnt
// atoms spread over isotopeNo stable isotopes. It corresponds to a
// multinomial distribution in which every configuration also carries a
// precise mass.
//
// A Marginal is constructed once from raw parameters and later consumed
// by one of the specialized enumerators (Trek, Precalculated, Layered),
// which absorb it by value. The mode configuration is computed lazily;
// a nil modeConf means "not yet computed".
type Marginal struct {
	isotopeNo  int
	atomCnt    int
	atomLProbs []float64 // log-probabilities of the isotopes: tabulated constant, else rounded up
	atomMasses []float64
	// log(atomCnt!), the constant nominator of every multinomial
	// log-probability of this marginal.
	loggammaNominator float64
	modeConf          conf.Conf
	modeLProb         float64
}

// New builds a Marginal from isotope masses (daltons), natural
// abundances and the atom count of the element in the molecule.
//
// Validation (in order):
//  1. At least one isotope (ErrNoIsotopes).
//  2. len(masses) == len(probs) (ErrLengthMismatch).
//  3. 0 ≤ atomCnt (ErrAtomCountNegative).
//  4. atomCnt < logmath.FactorialTableSize (ErrAtomCountTooLarge).
//  5. Every probability in (0, 1] (ErrProbOutOfRange).
//
// Σ probs = 1 is expected but deliberately not enforced; truncated
// tables are the caller's responsibility.
//
// Abundances that match a tabulated natural-abundance constant
// bit-for-bit take their precomputed logarithm from elements.Table, so
// that identical published inputs always yield bitwise identical
// log-probabilities; everything else goes through logmath.LogUp.
func New(masses, probs []float64, atomCnt int) (*Marginal, error) {
	switch {
	case len(probs) == 0:
		return nil, ErrNoIsotopes
	case len(masses) != len(probs):
		return nil, fmt.Errorf("%w: %d masses vs %d probabilities", ErrLengthMismatch, len(masses), len(probs))
	case atomCnt < 0:
		return nil, fmt.Errorf("%w: %d", ErrAtomCountNegative, atomCnt)
	case atomCnt >= logmath.FactorialTableSize:
		return nil, fmt.Errorf("%w: %d atoms, limit is %d", ErrAtomCountTooLarge, atomCnt, logmath.FactorialTableSize-1)
	}

	lprobs := make([]float64, len(probs))
	for i, p := range probs {
		if p <= 0 || p > 1 {
			return nil, fmt.Errorf("%w: probs[%d] = %g", ErrProbOutOfRange, i, p)
		}
		if lp, ok := elements.LogAbundance(p); ok {
			lprobs[i] = lp
		} else {
			lprobs[i] = logmath.LogUp(p)
		}
	}

	return &Marginal{
		isotopeNo:         len(probs),
		atomCnt:           atomCnt,
		atomLProbs:        lprobs,
		atomMasses:        append([]float64(nil), masses...),
		loggammaNominator: logmath.LogFactorialUp(atomCnt),
	}, nil
}

// IsotopeNo returns the number of stable isotopes of the element.
func (m *Marginal) IsotopeNo() int { return m.isotopeNo }

// AtomCount returns the number of atoms of the element.
func (m *Marginal) AtomCount() int { return m.atomCnt }

// unnormalizedLogProb is Σ (−log(cᵢ!) + cᵢ·log pᵢ); adding the
// loggamma nominator turns it into the full multinomial log-density.
// Keeping the two parts separate lets the mode climb compare candidates
// without the constant term.
func (m *Marginal) unnormalizedLogProb(c conf.Conf) float64 {
	ret := 0.0
	for i, v := range c {
		ret += logmath.MinusLogFactorial(v) + float64(v)*m.atomLProbs[i]
	}

	return ret
}

// LogProbOf returns the multinomial log-probability of configuration c.
func (m *Marginal) LogProbOf(c conf.Conf) float64 {
	return m.loggammaNominator + m.unnormalizedLogProb(c)
}

// MassOf returns the mass of configuration c in daltons.
func (m *Marginal) MassOf(c conf.Conf) float64 {
	return conf.Mass(c, m.atomMasses)
}

// LightestMass is the mass of the all-lightest-isotope configuration.
func (m *Marginal) LightestMass() float64 {
	ret := math.Inf(1)
	for _, am := range m.atomMasses {
		if am < ret {
			ret = am
		}
	}

	return ret * float64(m.atomCnt)
}

// HeaviestMass is the mass of the all-heaviest-isotope configuration.
func (m *Marginal) HeaviestMass() float64 {
	ret := 0.0
	for _, am := range m.atomMasses {
		if am > ret {
			ret = am
		}
	}

	return ret * float64(m.atomCnt)
}

// MonoisotopicMass is the mass of the configuration built solely from
// the most abundant isotope. Frequently, but not always, this equals
// LightestMass.
func (m *Marginal) MonoisotopicMass() float64 {
	foundProb := math.Inf(-1)
	foundMass := 0.0
	for i, lp := range m.atomLProbs {
		if lp > foundProb {
			foundProb = lp
			foundMass = m.atomMasses[i]
		}
	}

	return foundMass * float64(m.atomCnt)
}

// AtomAverageMass is the abundance-weighted mean mass of one atom.
func (m *Marginal) AtomAverageMass() float64 {
	ret := 0.0
	for i, lp := range m.atomLProbs {
		ret += math.Exp(lp) * m.atomMasses[i]
	}

	return ret
}

// TheoreticalAverageMass is the expected mass of the whole marginal.
func (m *Marginal) TheoreticalAverageMass() float64 {
	return m.AtomAverageMass() * float64(m.atomCnt)
}

// Variance is the variance of the marginal's mass distribution.
func (m *Marginal) Variance() float64 {
	mean := m.AtomAverageMass()
	ret := 0.0
	for i, lp := range m.atomLProbs {
		d := m.atomMasses[i] - mean
		ret += math.Exp(lp) * d * d
	}

	return ret * float64(m.atomCnt)
}

// SmallestLProb is the log-probability of the least probable
// configuration: all atoms on the rarest isotope.
func (m *Marginal) SmallestLProb() float64 {
	minLP := math.Inf(1)
	for _, lp := range m.atomLProbs {
		if lp < minLP {
			minLP = lp
		}
	}

	return float64(m.atomCnt) * minLP
}

// ModeConf returns a copy of a most probable configuration. When the
// mode is not unique one representative is returned, the same one on
// every call.
func (m *Marginal) ModeConf() conf.Conf {
	m.ensureMode()

	return conf.Clone(m.modeConf)
}

// ModeLProb returns the log-probability of the mode configuration.
func (m *Marginal) ModeLProb() float64 {
	m.ensureMode()

	return m.modeLProb
}

// ModeMass returns the mass of the mode configuration.
func (m *Marginal) ModeMass() float64 {
	m.ensureMode()

	return conf.Mass(m.modeConf, m.atomMasses)
}

// LogSizeEstimate estimates log |{c : logP(c) ≥ logP(mode) − r}| for an
// ellipsoid radius r (passed as logEllipsoidRadius), via the closed-form
// ratio of the ellipsoid volume to the simplex volume, scaled by the
// number of lattice points on the simplex. Returns −∞ for a
// single-isotope element, whose marginal has exactly one configuration.
func (m *Marginal) LogSizeEstimate(logEllipsoidRadius float64) float64 {
	if m.isotopeNo <= 1 {
		return math.Inf(-1)
	}

	i := float64(m.isotopeNo)
	k := i - 1
	n := float64(m.atomCnt)

	sumLProbs := 0.0
	for _, lp := range m.atomLProbs {
		sumLProbs += lp
	}

	logVSimplex := k*math.Log(n) - lgamma(i)
	logNSimplex := lgamma(n+i) - lgamma(n+1) - lgamma(i)
	logVEllipsoid := (k*(math.Log(n)+logmath.LogPi+logEllipsoidRadius)+sumLProbs)*0.5 - lgamma((i+1)*0.5)

	return logNSimplex + logVEllipsoid - logVSimplex
}

// lgamma strips the sign that math.Lgamma reports; every argument used
// here is positive, where Γ is positive too.
func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)

	return v
}

// ensureMode computes the mode configuration on first use.
func (m *Marginal) ensureMode() {
	if m.modeConf != nil {
		return
	}
	m.modeConf = m.computeModeConf()
	m.modeLProb = m.LogProbOf(m.modeConf)
}
