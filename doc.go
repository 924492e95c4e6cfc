// Package isospec computes the isotopic fine structure of chemical
// molecules — the masses and probabilities of every way nature can
// assign stable isotopes to the atoms of a molecular formula.
//
// What is IsoSpec?
//
//	A pure-Go library that brings together:
//		• conf/      — compact configuration vectors + bulk arena storage
//		• logmath/   — directed-rounding log-probability arithmetic
//		• elements/  — isotope mass & abundance tables, formula parsing
//		• marginal/  — single-element subisotopologue enumeration
//		               (lazy Trek, eager Precalculated, extendable Layered)
//		• spectrum/  — multi-element threshold spectra by convolution
//
// Why IsoSpec?
//
//   - The isotopologue space of a real molecule is astronomically large;
//     enumerating it blindly is hopeless. IsoSpec walks the space in
//     decreasing probability, or above a probability threshold, without
//     ever materializing what it does not need.
//   - Deterministic – identical inputs yield bitwise identical spectra.
//   - Pure Go core – the only cgo dependency is the optional SQLite export.
//
// Quick start:
//
//	m, _ := marginal.New([]float64{12, 13.003355}, []float64{0.9893, 0.0107}, 100)
//	trek, _ := marginal.NewTrek(m)
//	for trek.Advance() && trek.TotalProb() < 0.999 {
//	}
//
// enumerates the isotopic fine structure of C₁₀₀ until 99.9% of the
// probability mass is accounted for.
//
// Dive into cmd/isospec for a ready-made CLI over formulas.
package isospec
