package spectrum

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/moldiscovery/IsoSpec/conf"
	"github.com/moldiscovery/IsoSpec/elements"
	"github.com/moldiscovery/IsoSpec/marginal"
)

// Sentinel errors for spectrum generation.
var (
	// ErrBadThreshold is returned when the threshold is outside (0, 1).
	ErrBadThreshold = errors.New("spectrum: threshold must be in (0, 1)")

	// ErrEmptyMolecule is returned when the molecule has no atoms.
	ErrEmptyMolecule = errors.New("spectrum: molecule has no atoms")
)

// Peak is one isotopologue of a molecule. Confs breaks the peak down
// per element: one configuration for each element of the molecule, in
// the order of the element counts the spectrum was built from
// (zero-count elements are skipped). The vectors are owned by the
// enumeration and must not be modified.
type Peak struct {
	Mass    float64 // daltons
	Prob    float64
	LogProb float64
	Confs   []conf.Conf
}

// Options tunes spectrum generation.
//
// Absolute — interpret the threshold as an absolute probability instead
// of a fraction of the most probable peak.
type Options struct {
	Absolute bool
}

// Option configures spectrum generation via functional arguments.
type Option func(*Options)

// DefaultOptions returns the standard behavior: threshold relative to
// the most probable peak.
func DefaultOptions() Options {
	return Options{Absolute: false}
}

// WithAbsolute interprets the threshold as an absolute probability.
func WithAbsolute() Option {
	return func(o *Options) {
		o.Absolute = true
	}
}

// partial is a partially assembled isotopologue: the mass,
// log-probability and per-element configurations accumulated over a
// prefix of the molecule's elements.
type partial struct {
	mass  float64
	lprob float64
	confs []conf.Conf
}

// Threshold returns every isotopologue of the molecule described by
// counts whose probability is ≥ threshold, sorted by descending
// probability. With the default relative interpretation the threshold
// is taken as a fraction of the most probable peak's probability.
func Threshold(counts []elements.Count, threshold float64, opts ...Option) ([]Peak, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if threshold <= 0 || threshold >= 1 {
		return nil, fmt.Errorf("%w: %g", ErrBadThreshold, threshold)
	}

	// 1) One marginal per element actually present in the molecule.
	var margs []*marginal.Marginal
	for _, c := range counts {
		if c.N == 0 {
			continue
		}
		m, err := marginal.New(c.Element.Masses(), c.Element.Abundances(), c.N)
		if err != nil {
			return nil, fmt.Errorf("spectrum: element %s: %w", c.Element.Symbol, err)
		}
		margs = append(margs, m)
	}
	if len(margs) == 0 {
		return nil, ErrEmptyMolecule
	}

	// 2) Mode log-probabilities bound each element's contribution; the
	// most probable peak of the molecule is the product of the modes.
	modeSum := 0.0
	modeLPs := make([]float64, len(margs))
	for i, m := range margs {
		modeLPs[i] = m.ModeLProb()
		modeSum += modeLPs[i]
	}

	logT := math.Log(threshold)
	if !o.Absolute {
		logT += modeSum
	}

	// 3) Precalculate each marginal down to the log-probability it
	// would need if every other element sat at its mode.
	precs := make([]*marginal.Precalculated, len(margs))
	for i, m := range margs {
		cutoff := logT - (modeSum - modeLPs[i])
		p, err := marginal.NewPrecalculated(m, cutoff)
		if err != nil {
			return nil, err
		}
		precs[i] = p
	}

	// 4) suffixMode[i] bounds what elements i..end can still add.
	suffixMode := make([]float64, len(precs)+1)
	for i := len(precs) - 1; i >= 0; i-- {
		suffixMode[i] = suffixMode[i+1] + modeLPs[i]
	}

	// 5) Cartesian combination with pruning. Each marginal is sorted by
	// descending log-probability, so once a configuration cannot reach
	// logT even with all remaining elements at their modes, neither can
	// any later one — break, don't skip.
	partials := []partial{{}}
	for i, p := range precs {
		var next []partial
		for _, pt := range partials {
			for idx := 0; idx < p.Len(); idx++ {
				lp := pt.lprob + p.LogProb(idx)
				if lp+suffixMode[i+1] < logT {
					break
				}
				confs := make([]conf.Conf, len(pt.confs), len(pt.confs)+1)
				copy(confs, pt.confs)
				next = append(next, partial{
					mass:  pt.mass + p.Mass(idx),
					lprob: lp,
					confs: append(confs, p.Conf(idx)),
				})
			}
		}
		partials = next
	}

	// 6) Materialize and order the peaks.
	peaks := make([]Peak, 0, len(partials))
	for _, pt := range partials {
		peaks = append(peaks, Peak{
			Mass:    pt.mass,
			Prob:    math.Exp(pt.lprob),
			LogProb: pt.lprob,
			Confs:   pt.confs,
		})
	}
	sort.Slice(peaks, func(i, j int) bool {
		if peaks[i].LogProb != peaks[j].LogProb {
			return peaks[i].LogProb > peaks[j].LogProb
		}

		return peaks[i].Mass < peaks[j].Mass
	})

	return peaks, nil
}

// FromFormula parses formula and returns its threshold spectrum.
func FromFormula(formula string, threshold float64, opts ...Option) ([]Peak, error) {
	counts, err := elements.ParseFormula(formula)
	if err != nil {
		return nil, err
	}

	return Threshold(counts, threshold, opts...)
}
