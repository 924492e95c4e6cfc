package marginal

import (
	"math"
	"sort"

	"github.com/moldiscovery/IsoSpec/conf"
)

// Precalculated memoizes every configuration whose log-probability
// clears a fixed cutoff, eagerly, at construction. It absorbs the
// Marginal it is built from. Once built it never mutates, so it may be
// shared across readers.
type Precalculated struct {
	Marginal

	arena  *conf.Arena
	confs  []conf.Conf
	lprobs []float64 // len(confs)+1; the extra slot holds a −∞ sentinel
	probs  []float64
	masses []float64
}

// NewPrecalculated consumes m and memoizes all configurations with
// log-probability ≥ lcutoff, by breadth-first search from the mode over
// unit-transfer neighbors. The feasible set is connected — the
// multinomial log-density is unimodal on the simplex — so the walk
// visits it entirely. With sorting enabled (the default) configurations
// are stored in descending log-probability order. m must not be used
// afterwards.
func NewPrecalculated(m *Marginal, lcutoff float64, opts ...Option) (*Precalculated, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	p := &Precalculated{
		Marginal: *m,
		arena:    conf.NewArena(m.isotopeNo, o.ArenaBlockSize),
	}
	p.ensureMode()

	// 1) Seed with the mode — only if the mode itself clears the cutoff.
	visited := make(map[string]struct{}, o.HashCapacity)
	if p.modeLProb >= lcutoff {
		seed := p.arena.Copy(p.modeConf)
		p.confs = append(p.confs, seed)
		visited[conf.Key(seed)] = struct{}{}
	}

	// 2) BFS; the configurations vector doubles as the queue.
	current := make(conf.Conf, p.isotopeNo)
	keyBuf := make([]byte, 0, 4*p.isotopeNo)
	for idx := 0; idx < len(p.confs); idx++ {
		copy(current, p.confs[idx])
		for ii := 0; ii < p.isotopeNo; ii++ {
			for jj := 0; jj < p.isotopeNo; jj++ {
				if ii == jj || current[jj] == 0 {
					continue
				}
				current[ii]++
				current[jj]--

				keyBuf = conf.AppendKey(keyBuf[:0], current)
				if _, seen := visited[string(keyBuf)]; !seen && p.LogProbOf(current) >= lcutoff {
					accepted := p.arena.Copy(current)
					visited[string(keyBuf)] = struct{}{}
					p.confs = append(p.confs, accepted)
				}

				current[ii]--
				current[jj]++
			}
		}
	}

	// 3) Optional ordering by descending log-probability.
	if o.Sort {
		sortConfsByLProb(p.confs, p.LogProbOf)
	}

	// 4) Materialize the parallel arrays, with the −∞ guardian that
	// lets consumers compare one-past-the-end without branching.
	n := len(p.confs)
	p.lprobs = make([]float64, n+1)
	p.probs = make([]float64, n)
	p.masses = make([]float64, n)
	for i, c := range p.confs {
		p.lprobs[i] = p.LogProbOf(c)
		p.probs[i] = math.Exp(p.lprobs[i])
		p.masses[i] = conf.Mass(c, p.atomMasses)
	}
	p.lprobs[n] = math.Inf(-1)

	return p, nil
}

// Len returns the number of memoized configurations.
func (p *Precalculated) Len() int { return len(p.confs) }

// InRange reports whether idx addresses a memoized configuration.
func (p *Precalculated) InRange(idx int) bool { return idx >= 0 && idx < len(p.confs) }

// LogProb returns the log-probability of the idx-th configuration.
// idx == Len() is legal and reads the −∞ sentinel.
func (p *Precalculated) LogProb(idx int) float64 { return p.lprobs[idx] }

// Prob returns the probability of the idx-th configuration.
func (p *Precalculated) Prob(idx int) float64 { return p.probs[idx] }

// Mass returns the mass of the idx-th configuration.
func (p *Precalculated) Mass(idx int) float64 { return p.masses[idx] }

// Conf returns the idx-th configuration. The returned vector is owned
// by the enumerator's arena and must not be modified.
func (p *Precalculated) Conf(idx int) conf.Conf { return p.confs[idx] }

// confSorter sorts configurations by descending log-probability with
// the lexicographic tiebreak, keeping a cached log-probability per
// configuration so comparisons are O(1).
type confSorter struct {
	confs []conf.Conf
	lps   []float64
}

func (s *confSorter) Len() int { return len(s.confs) }

func (s *confSorter) Less(i, j int) bool {
	if s.lps[i] != s.lps[j] {
		return s.lps[i] > s.lps[j]
	}

	return conf.Less(s.confs[i], s.confs[j])
}

func (s *confSorter) Swap(i, j int) {
	s.confs[i], s.confs[j] = s.confs[j], s.confs[i]
	s.lps[i], s.lps[j] = s.lps[j], s.lps[i]
}

// sortConfsByLProb orders confs in place: descending log-probability,
// ties by ascending lexicographic order.
func sortConfsByLProb(confs []conf.Conf, lprobOf func(conf.Conf) float64) {
	lps := make([]float64, len(confs))
	for i, c := range confs {
		lps[i] = lprobOf(c)
	}
	sort.Sort(&confSorter{confs: confs, lps: lps})
}
