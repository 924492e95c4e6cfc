package conf

import "encoding/binary"

// Conf is a subisotopologue: counts of atoms assigned to each isotope
// of a single element. Counts are non-negative and sum to the total
// number of atoms of that element.
type Conf []int32

// Clone returns an independent copy of c on the regular heap.
// Use Arena.Copy instead when the copy participates in an enumeration.
func Clone(c Conf) Conf {
	out := make(Conf, len(c))
	copy(out, c)

	return out
}

// Equal reports whether a and b are elementwise equal.
// Vectors of different lengths are never equal.
func Equal(a, b Conf) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Less orders configurations lexicographically. It is the deterministic
// tiebreak used when two configurations carry the same log-probability.
func Less(a, b Conf) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}

// Sum returns the total number of atoms assigned by c.
func Sum(c Conf) int {
	s := 0
	for _, v := range c {
		s += int(v)
	}

	return s
}

// Mass returns the mass of the configuration: Σ cᵢ·massᵢ.
// masses must have the same length as c.
func Mass(c Conf, masses []float64) float64 {
	m := 0.0
	for i, v := range c {
		m += float64(v) * masses[i]
	}

	return m
}

// AppendKey appends a permutation-sensitive byte encoding of c to dst
// and returns the extended slice. The encoding is the little-endian
// concatenation of the counts, so distinct configurations always map to
// distinct keys — membership tests over keys are exact, not probabilistic.
func AppendKey(dst []byte, c Conf) []byte {
	for _, v := range c {
		dst = binary.LittleEndian.AppendUint32(dst, uint32(v))
	}

	return dst
}

// Key returns the byte key of c as a string, for use as a map key.
func Key(c Conf) string {
	return string(AppendKey(make([]byte, 0, 4*len(c)), c))
}
