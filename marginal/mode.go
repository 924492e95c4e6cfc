package marginal

import (
	"math"

	"github.com/moldiscovery/IsoSpec/conf"
)

// computeModeConf locates a most probable configuration by hill
// climbing on the simplex, seeded near the mean of the multinomial.
//
// Seed: cᵢ = ⌊n·pᵢ⌋ + 1. If the seed assigns too few atoms the deficit
// is added to c₀; if too many, the excess is drained from index 0
// onward, carrying the remainder forward. Either way the seed ends on
// the simplex with non-negative entries.
//
// Climb: scan all ordered pairs (i, j), i ≠ j, and accept the transfer
// cᵢ--, cⱼ++ iff the unnormalized log-probability strictly increases,
// or stays equal with i > j. The tiebreak makes the climb deterministic
// and guarantees termination on probability plateaus: each accepted
// step strictly increases (logP, tiebreak) lexicographically over a
// finite state space.
func (m *Marginal) computeModeConf() conf.Conf {
	res := make(conf.Conf, m.isotopeNo)

	// 1) Seed close to the mean; the mean is close to the mode.
	s := 0
	for i, lp := range m.atomLProbs {
		res[i] = int32(float64(m.atomCnt)*math.Exp(lp)) + 1
		s += int(res[i])
	}

	// 2) Repair the atom count.
	diff := m.atomCnt - s
	if diff > 0 {
		// Too few: enlarge the first index.
		res[0] += int32(diff)
	}
	if diff < 0 {
		// Too many: drain from index 0 onward, hoping the first
		// entries are the largest.
		d := -diff
		for i := 0; d > 0; i++ {
			if int(res[i]) >= d {
				res[i] -= int32(d)
				d = 0
			} else {
				d -= int(res[i])
				res[i] = 0
			}
		}
	}

	// 3) Hill climb the rest of the way.
	lp := m.unnormalizedLogProb(res)
	for modified := true; modified; {
		modified = false
		for ii := range res {
			for jj := range res {
				if ii == jj || res[ii] == 0 {
					continue
				}
				res[ii]--
				res[jj]++
				nlp := m.unnormalizedLogProb(res)
				if nlp > lp || (nlp == lp && ii > jj) {
					modified = true
					lp = nlp
				} else {
					res[ii]++
					res[jj]--
				}
			}
		}
	}

	return res
}
