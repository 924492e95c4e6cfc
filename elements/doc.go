// Package elements carries the isotope tables and molecular-formula
// parsing that feed isotopic fine-structure computations.
//
// What:
//
//   - Element / Isotope — masses, natural abundances, and precomputed
//     correctly-rounded log-abundances of the stable isotopes of the
//     elements most common in small-molecule and peptide work.
//   - Lookup — fetch an element by symbol.
//   - LogAbundance — bit-for-bit match of a probability against the
//     table, returning its precomputed logarithm.
//   - ParseFormula — "C6H12O6" → ordered element counts.
//
// Why:
//
//   - Two marginals built from the same published abundance must compute
//     bitwise identical log-probabilities, or equal-probability tiebreaks
//     stop being reproducible across runs and machines. Precomputing the
//     logs of the tabulated abundances once, with correct rounding,
//     guarantees that.
//
// Errors:
//
//   - ErrBadFormula      — the formula string is empty or malformed.
//   - ErrUnknownElement  — a symbol has no entry in the table.
//
// Masses and abundances follow the IUPAC/CIAAW recommendations.
package elements
