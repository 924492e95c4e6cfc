// Package marginal: sentinel errors and functional options shared by
// the Trek, Precalculated and Layered enumerators.
package marginal

import (
	"errors"
	"fmt"

	"github.com/moldiscovery/IsoSpec/conf"
)

// Sentinel errors for marginal construction.
var (
	// ErrNoIsotopes is returned when the isotope table is empty.
	ErrNoIsotopes = errors.New("marginal: at least one isotope is required")

	// ErrLengthMismatch is returned when masses and probabilities have
	// different lengths.
	ErrLengthMismatch = errors.New("marginal: masses and probabilities must have equal length")

	// ErrProbOutOfRange is returned when an isotope probability lies
	// outside (0, 1].
	ErrProbOutOfRange = errors.New("marginal: isotope probability must be in (0, 1]")

	// ErrAtomCountNegative is returned for a negative atom count.
	ErrAtomCountNegative = errors.New("marginal: atom count must be non-negative")

	// ErrAtomCountTooLarge is returned when the atom count does not fit
	// the factorial table, the hard cap on exactly tabulated log(n!).
	ErrAtomCountTooLarge = errors.New("marginal: atom count exceeds the factorial table")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("marginal: invalid option supplied")
)

// DefaultHashCapacity is the initial capacity of the visited sets used
// during enumeration.
const DefaultHashCapacity = 1000

// Options tunes the storage behavior of the enumerators.
//
// ArenaBlockSize — configurations per arena block.
// HashCapacity   — initial capacity of visited sets.
// Sort           — Precalculated only: store configurations in
// descending log-probability order.
type Options struct {
	ArenaBlockSize int
	HashCapacity   int
	Sort           bool

	// internal error recorded during option parsing
	err error
}

// Option configures an enumerator via functional arguments. An invalid
// Option is recorded and surfaced as ErrOptionViolation at construction.
type Option func(*Options)

// DefaultOptions returns the standard tuning: arena blocks of
// conf.DefaultBlockSize configurations, visited sets pre-sized to
// DefaultHashCapacity, sorted output.
func DefaultOptions() Options {
	return Options{
		ArenaBlockSize: conf.DefaultBlockSize,
		HashCapacity:   DefaultHashCapacity,
		Sort:           true,
	}
}

// WithArenaBlockSize sets the number of configuration slots per arena
// block. Must be positive.
func WithArenaBlockSize(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: ArenaBlockSize must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.ArenaBlockSize = n
	}
}

// WithHashCapacity pre-sizes the visited sets. Must be positive.
func WithHashCapacity(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: HashCapacity must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.HashCapacity = n
	}
}

// WithoutSort makes Precalculated keep configurations in discovery
// order instead of sorting them by descending log-probability.
func WithoutSort() Option {
	return func(o *Options) {
		o.Sort = false
	}
}
