package marginal

import (
	"math"

	"github.com/moldiscovery/IsoSpec/conf"
)

// Layered is an extendable Precalculated: the log-probability cutoff
// may be lowered repeatedly, and every extension reuses all prior work.
// Configurations whose log-probability fell below the cutoff while
// their parent was accepted wait in a persistent fringe, seeding the
// next extension. It absorbs the Marginal it is built from.
type Layered struct {
	Marginal

	arena        *conf.Arena
	hashCapacity int

	// currentThreshold is the log-probability floor of the accepted
	// set. Before the first Extend no layer exists, which is encoded
	// as +∞: every configuration is below it.
	currentThreshold float64

	confs      []conf.Conf
	fringe     []conf.Conf
	sortedUpTo int // confs[:sortedUpTo] are covered by the arrays below

	// lprobs carries a +∞ sentinel at the front and a −∞ guardian at
	// the back, so LogProb(−1) and LogProb(Len()) are legal branch-free
	// reads.
	lprobs []float64
	probs  []float64
	masses []float64
}

// NewLayered consumes m and returns an extendable enumerator with an
// empty accepted set and the mode waiting in the fringe. m must not be
// used afterwards.
func NewLayered(m *Marginal, opts ...Option) (*Layered, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	l := &Layered{
		Marginal:         *m,
		arena:            conf.NewArena(m.isotopeNo, o.ArenaBlockSize),
		hashCapacity:     o.HashCapacity,
		currentThreshold: math.Inf(1),
		lprobs:           []float64{math.Inf(1), math.Inf(-1)},
	}
	l.ensureMode()
	l.fringe = append(l.fringe, l.arena.Copy(l.modeConf))

	return l, nil
}

// Extend lowers the cutoff to newThreshold, accepting every
// configuration with logP ≥ newThreshold that is not already accepted.
// Returns false iff the fringe is empty, i.e. the marginal is fully
// enumerated. After any Extend the accepted set equals
// {c : logP(c) ≥ newThreshold}, without duplicates, and each layer's
// tail of the storage is sorted by descending log-probability.
func (l *Layered) Extend(newThreshold float64) bool {
	if len(l.fringe) == 0 {
		return false
	}

	// 1) Seed the visited set with the fringe itself; anything in the
	// fringe is already discovered.
	newFringe := make([]conf.Conf, 0, len(l.fringe))
	visited := make(map[string]struct{}, l.hashCapacity)
	for _, c := range l.fringe {
		visited[conf.Key(c)] = struct{}{}
	}

	// 2) Drain the fringe. Still-below-threshold configurations move to
	// the new fringe; the rest are accepted and expanded.
	cand := make(conf.Conf, l.isotopeNo)
	keyBuf := make([]byte, 0, 4*l.isotopeNo)
	for len(l.fringe) > 0 {
		c := l.fringe[len(l.fringe)-1]
		l.fringe = l.fringe[:len(l.fringe)-1]

		opc := l.LogProbOf(c)
		if opc < newThreshold {
			newFringe = append(newFringe, c)

			continue
		}

		l.confs = append(l.confs, c)
		for ii := 0; ii < l.isotopeNo; ii++ {
			for jj := 0; jj < l.isotopeNo; jj++ {
				if ii == jj || c[jj] == 0 {
					continue
				}
				copy(cand, c)
				cand[ii]++
				cand[jj]--

				lpc := l.LogProbOf(cand)
				keyBuf = conf.AppendKey(keyBuf[:0], cand)
				if _, seen := visited[string(keyBuf)]; seen {
					continue
				}
				// Accepted in a previous layer: not ours to touch.
				if lpc >= l.currentThreshold {
					continue
				}
				// Walk only downhill; on a probability plateau the
				// ii > jj tiebreak picks one direction, so two equal
				// neighbors cannot re-discover each other forever.
				if !(opc > lpc || (opc == lpc && ii > jj)) {
					continue
				}

				nc := l.arena.Copy(cand)
				visited[string(keyBuf)] = struct{}{}
				if lpc >= newThreshold {
					l.fringe = append(l.fringe, nc)
				} else {
					newFringe = append(newFringe, nc)
				}
			}
		}
	}

	l.currentThreshold = newThreshold
	l.fringe = newFringe

	// 3) Sort the freshly accepted tail and extend the parallel arrays,
	// keeping the sentinels in place.
	tail := l.confs[l.sortedUpTo:]
	sortConfsByLProb(tail, l.LogProbOf)

	l.lprobs = l.lprobs[:len(l.lprobs)-1] // drop the −∞ guardian
	for _, c := range tail {
		lp := l.LogProbOf(c)
		l.lprobs = append(l.lprobs, lp)
		l.probs = append(l.probs, math.Exp(lp))
		l.masses = append(l.masses, conf.Mass(c, l.atomMasses))
	}
	l.lprobs = append(l.lprobs, math.Inf(-1)) // restore the guardian
	l.sortedUpTo = len(l.confs)

	return true
}

// Len returns the number of accepted configurations.
func (l *Layered) Len() int { return len(l.confs) }

// CurrentThreshold returns the log-probability floor of the accepted
// set; +∞ before the first Extend.
func (l *Layered) CurrentThreshold() float64 { return l.currentThreshold }

// LogProb returns the log-probability of the idx-th configuration.
// idx == −1 and idx == Len() are legal and read the +∞ and −∞
// sentinels respectively.
func (l *Layered) LogProb(idx int) float64 { return l.lprobs[idx+1] }

// Prob returns the probability of the idx-th configuration.
func (l *Layered) Prob(idx int) float64 { return l.probs[idx] }

// Mass returns the mass of the idx-th configuration.
func (l *Layered) Mass(idx int) float64 { return l.masses[idx] }

// Conf returns the idx-th configuration. The returned vector is owned
// by the enumerator's arena and must not be modified.
func (l *Layered) Conf(idx int) conf.Conf { return l.confs[idx] }

// MinMass returns the smallest mass among accepted configurations;
// +∞ when nothing is accepted yet.
func (l *Layered) MinMass() float64 {
	ret := math.Inf(1)
	for _, m := range l.masses {
		if m < ret {
			ret = m
		}
	}

	return ret
}

// MaxMass returns the largest mass among accepted configurations;
// −∞ when nothing is accepted yet.
func (l *Layered) MaxMass() float64 {
	ret := math.Inf(-1)
	for _, m := range l.masses {
		if m > ret {
			ret = m
		}
	}

	return ret
}
