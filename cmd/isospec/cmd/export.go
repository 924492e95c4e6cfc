package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/moldiscovery/IsoSpec/spectrum"
	"github.com/moldiscovery/IsoSpec/writer/sqlite"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Compute a threshold spectrum and export it to SQLite",
	Long: `Compute the threshold spectrum of a molecule and write it to a SQLite
database: one MoleculeTable row plus its PeakTable rows.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts []spectrum.Option
		if absolute {
			opts = append(opts, spectrum.WithAbsolute())
		}

		peaks, err := spectrum.FromFormula(formula, threshold, opts...)
		if err != nil {
			return err
		}

		w, err := sqlite.NewWriter(outputFile)
		if err != nil {
			return err
		}
		defer w.Close()

		if err := w.WriteSpectrum(formula, threshold, absolute, peaks); err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "%s: %s peaks written to %s\n",
			formula, humanize.Comma(int64(len(peaks))), outputFile)

		return nil
	},
}
