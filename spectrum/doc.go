// Package spectrum convolves single-element marginals into the
// isotopic fine-structure spectrum of a whole molecule, above a
// probability threshold.
//
// What:
//
//   - Peak — one isotopologue of the molecule: mass, probability,
//     log-probability, and the per-element configurations that
//     produced it.
//   - Threshold — all peaks of a molecule with probability ≥ T,
//     where T is either absolute or relative to the most probable peak.
//   - FromFormula — the same, straight from a formula string.
//
// Why:
//
//   - The log-probability of a molecular isotopologue is the sum of its
//     per-element marginal log-probabilities, and each marginal term is
//     bounded by that marginal's mode. A peak above log T therefore
//     needs every element's term above log T minus the other elements'
//     mode sum — which prunes each marginal to a small Precalculated
//     set before the cartesian combination ever starts.
//
// Complexity: O(Σ Nᵢ·k²) marginal construction plus the size of the
// pruned cartesian product, which is close to the output size.
//
// Errors:
//
//   - ErrBadThreshold  — threshold outside (0, 1).
//   - ErrEmptyMolecule — no atoms to assign isotopes to.
package spectrum
