// Package marginal enumerates the isotopic fine structure of a single
// element: the subisotopologues of n atoms distributed over k stable
// isotopes, together with their masses and multinomial probabilities.
//
// What:
//
//   - Marginal — the distribution itself: scalar observables (lightest,
//     heaviest, monoisotopic and mode masses, variance, a log-size
//     estimate) plus the mode configuration found by hill climbing.
//   - Trek — lazy best-first enumeration in strictly non-increasing
//     log-probability order; advance one configuration at a time.
//   - Precalculated — eager enumeration of every configuration whose
//     log-probability clears a fixed cutoff, optionally sorted.
//   - Layered — the precalculated form made incrementally extendable:
//     lower the cutoff again and again, each extension reusing all
//     prior work through a persistent fringe.
//
// Why:
//
//   - A single element with thousands of atoms has astronomically many
//     subisotopologues. All three enumerators walk the neighbor graph of
//     the simplex {Σcᵢ = n} — two configurations are adjacent iff one
//     unit transfer maps one to the other — starting from the mode, so
//     they only ever touch the configurations they emit plus a thin
//     boundary around them.
//
// Complexity (N = configurations emitted, k = isotope count):
//
//   - Trek.Advance:      O(k² log N) amortized (heap push per neighbor).
//   - NewPrecalculated:  O(N·k²) graph walk + O(N log N) optional sort.
//   - Layered.Extend:    O(ΔN·k²) per layer + O(ΔN log ΔN) tail sort.
//
// Ordering guarantees:
//
//   - Trek emits log-probabilities in non-increasing order; ties between
//     configurations waiting in the frontier together are broken by
//     ascending lexicographic order, so iteration is reproducible across
//     runs and platforms. The mode is always emitted first, even when a
//     lexicographically smaller configuration ties with it.
//   - Precalculated (sorted) and every Layered tail are sorted by
//     descending log-probability with all ties in ascending
//     lexicographic order.
//
// Errors (sentinel):
//
//   - ErrNoIsotopes        — empty isotope table.
//   - ErrLengthMismatch    — masses and probabilities differ in length.
//   - ErrProbOutOfRange    — an abundance outside (0, 1].
//   - ErrAtomCountNegative — negative atom count.
//   - ErrAtomCountTooLarge — atom count ≥ logmath.FactorialTableSize.
//   - ErrOptionViolation   — invalid functional option.
//
// A Marginal is consumed when handed to NewTrek, NewPrecalculated or
// NewLayered and must not be reused afterwards. None of the types in
// this package are safe for concurrent mutation; a fully built
// Precalculated may be read from many goroutines.
package marginal
