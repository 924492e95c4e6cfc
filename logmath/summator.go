package logmath

// Summator accumulates floating-point values with Kahan compensation,
// keeping the cumulative rounding error at O(ε) regardless of how many
// terms are added. The zero value is an empty sum, ready for use.
type Summator struct {
	sum  float64
	comp float64 // running compensation of lost low-order bits
}

// Add folds x into the running sum.
func (s *Summator) Add(x float64) {
	y := x - s.comp
	t := s.sum + y
	s.comp = (t - s.sum) - y
	s.sum = t
}

// Get returns the compensated sum so far.
func (s *Summator) Get() float64 { return s.sum }

// Reset empties the accumulator.
func (s *Summator) Reset() { s.sum, s.comp = 0, 0 }
