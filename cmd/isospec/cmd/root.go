// Package cmd provides CLI command implementations
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Flags shared by the spectrum-producing commands
	formula    string
	threshold  float64
	absolute   bool
	topN       int
	outputFile string

	// Flags for the marginal command
	elementSymbol string
	atomCount     int
	cutoff        float64
)

var rootCmd = &cobra.Command{
	Use:   "isospec",
	Short: "IsoSpec - isotopic fine-structure calculator",
	Long: `IsoSpec computes the isotopic fine structure of molecules: the masses
and probabilities of their isotopologues, enumerated above a probability
threshold without materializing the full combinatorial space.

Supports:
- Threshold spectra of molecular formulas (relative or absolute)
- Single-element marginal distributions
- SQLite export of computed spectra`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(spectrumCmd)
	rootCmd.AddCommand(marginalCmd)
	rootCmd.AddCommand(exportCmd)

	// Spectrum command flags
	spectrumCmd.Flags().StringVarP(&formula, "formula", "f", "", "Molecular formula, e.g. C6H12O6 (required)")
	spectrumCmd.Flags().Float64VarP(&threshold, "threshold", "t", 0.001, "Probability threshold in (0,1)")
	spectrumCmd.Flags().BoolVar(&absolute, "absolute", false, "Treat threshold as absolute instead of relative to the top peak")
	spectrumCmd.Flags().IntVar(&topN, "top", 0, "Print only the N most probable peaks (0 = all)")
	spectrumCmd.MarkFlagRequired("formula")

	// Marginal command flags
	marginalCmd.Flags().StringVarP(&elementSymbol, "element", "e", "", "Element symbol, e.g. C (required)")
	marginalCmd.Flags().IntVarP(&atomCount, "count", "n", 0, "Atom count (required)")
	marginalCmd.Flags().Float64VarP(&cutoff, "cutoff", "c", 1e-9, "Probability cutoff in (0,1)")
	marginalCmd.MarkFlagRequired("element")
	marginalCmd.MarkFlagRequired("count")

	// Export command flags
	exportCmd.Flags().StringVarP(&formula, "formula", "f", "", "Molecular formula (required)")
	exportCmd.Flags().Float64VarP(&threshold, "threshold", "t", 0.001, "Probability threshold in (0,1)")
	exportCmd.Flags().BoolVar(&absolute, "absolute", false, "Treat threshold as absolute")
	exportCmd.Flags().StringVarP(&outputFile, "out", "o", "", "Output database file (required)")
	exportCmd.MarkFlagRequired("formula")
	exportCmd.MarkFlagRequired("out")
}
