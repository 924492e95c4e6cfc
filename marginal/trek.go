package marginal

import (
	"container/heap"
	"math"

	"github.com/moldiscovery/IsoSpec/conf"
	"github.com/moldiscovery/IsoSpec/logmath"
)

// heapItem pairs an arena-owned configuration with its memoized
// log-probability, so heap comparisons never recompute it.
type heapItem struct {
	c     conf.Conf
	lprob float64
}

// confHeap is a max-heap of heapItem ordered by descending
// log-probability. Equal log-probabilities fall back to ascending
// lexicographic order of the configuration, keeping the pop sequence
// reproducible across runs, platforms and allocators.
type confHeap []heapItem

// Len returns the number of items in the heap.
func (h confHeap) Len() int { return len(h) }

// Less defines the priority: larger lprob first, ties broken
// lexicographically.
func (h confHeap) Less(i, j int) bool {
	if h[i].lprob != h[j].lprob {
		return h[i].lprob > h[j].lprob
	}

	return conf.Less(h[i].c, h[j].c)
}

// Swap swaps two elements in the heap.
func (h confHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (h *confHeap) Push(x interface{}) { *h = append(*h, x.(heapItem)) }

// Pop removes and returns the highest-priority element. Called by heap.Pop.
func (h *confHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// Trek enumerates the configurations of a marginal lazily, in strictly
// non-increasing log-probability order, expanding one configuration per
// Advance call. It absorbs the Marginal it is built from.
type Trek struct {
	Marginal

	arena   *conf.Arena
	pq      confHeap
	visited map[string]struct{}

	confs  []conf.Conf
	lprobs []float64
	masses []float64
	total  logmath.Summator

	candidate conf.Conf // scratch for neighbor generation
	keyBuf    []byte    // scratch for visited-set keys
}

// NewTrek consumes m and returns a lazy best-first enumerator seeded at
// the mode; index 0 is already expanded on return. m must not be used
// afterwards.
func NewTrek(m *Marginal, opts ...Option) (*Trek, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	t := &Trek{
		Marginal:  *m,
		arena:     conf.NewArena(m.isotopeNo, o.ArenaBlockSize),
		visited:   make(map[string]struct{}, o.HashCapacity),
		candidate: make(conf.Conf, m.isotopeNo),
		keyBuf:    make([]byte, 0, 4*m.isotopeNo),
	}
	t.ensureMode()

	seed := t.arena.Copy(t.modeConf)
	heap.Push(&t.pq, heapItem{c: seed, lprob: t.modeLProb})
	t.visited[conf.Key(seed)] = struct{}{}

	t.Advance()

	return t, nil
}

// Advance pops the most probable unvisited configuration, memoizes its
// triple (configuration, log-probability, mass), folds its probability
// into the running total, and pushes all unvisited unit-transfer
// neighbors onto the frontier. It returns false iff the frontier was
// empty on entry, i.e. the whole marginal has been enumerated.
func (t *Trek) Advance() bool {
	if len(t.pq) == 0 {
		return false
	}

	top := heap.Pop(&t.pq).(heapItem)
	t.confs = append(t.confs, top.c)
	t.lprobs = append(t.lprobs, top.lprob)
	t.masses = append(t.masses, conf.Mass(top.c, t.atomMasses))
	t.total.Add(math.Exp(top.lprob))

	for i := 0; i < t.isotopeNo; i++ {
		for j := 0; j < t.isotopeNo; j++ {
			// Growing index differs from the shrinking one, and the
			// transfer stays on the simplex.
			if i == j || top.c[j] == 0 {
				continue
			}
			copy(t.candidate, top.c)
			t.candidate[i]++
			t.candidate[j]--

			t.keyBuf = conf.AppendKey(t.keyBuf[:0], t.candidate)
			if _, seen := t.visited[string(t.keyBuf)]; seen {
				continue
			}
			accepted := t.arena.Copy(t.candidate)
			t.visited[string(t.keyBuf)] = struct{}{}
			heap.Push(&t.pq, heapItem{c: accepted, lprob: t.LogProbOf(accepted)})
		}
	}

	return true
}

// EnsureIndex expands until the idx-th most probable configuration is
// memoized. Returns false if idx is not below the size of the marginal.
func (t *Trek) EnsureIndex(idx int) bool {
	for len(t.confs) <= idx {
		if !t.Advance() {
			return false
		}
	}

	return true
}

// ProcessUntilCutoff expands until the accumulated probability reaches
// target, and returns the length of the prefix that reaches it (or the
// total count if the marginal is exhausted first). Already-memoized
// entries are re-scanned first with a fresh compensated sum, so calling
// with a smaller target after a larger one is cheap.
func (t *Trek) ProcessUntilCutoff(target float64) int {
	var s logmath.Summator
	for i, lp := range t.lprobs {
		s.Add(math.Exp(lp))
		if s.Get() >= target {
			return i + 1
		}
	}

	for t.total.Get() < target && t.Advance() {
	}

	return len(t.lprobs)
}

// Len returns the number of configurations expanded so far.
func (t *Trek) Len() int { return len(t.confs) }

// LogProb returns the log-probability of the idx-th configuration.
func (t *Trek) LogProb(idx int) float64 { return t.lprobs[idx] }

// Prob returns the probability of the idx-th configuration.
func (t *Trek) Prob(idx int) float64 { return math.Exp(t.lprobs[idx]) }

// Mass returns the mass of the idx-th configuration.
func (t *Trek) Mass(idx int) float64 { return t.masses[idx] }

// Conf returns the idx-th configuration. The returned vector is owned
// by the enumerator's arena and must not be modified.
func (t *Trek) Conf(idx int) conf.Conf { return t.confs[idx] }

// TotalProb returns the compensated sum of all probabilities expanded
// so far.
func (t *Trek) TotalProb() float64 { return t.total.Get() }
