package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/moldiscovery/IsoSpec/spectrum"
)

var spectrumCmd = &cobra.Command{
	Use:   "spectrum",
	Short: "Compute the threshold spectrum of a molecular formula",
	Long: `Compute all isotopologues of a molecule with probability above the
threshold and print them as a mass/probability table, most probable first.

By default the threshold is relative to the most probable peak; pass
--absolute to treat it as an absolute probability.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts []spectrum.Option
		if absolute {
			opts = append(opts, spectrum.WithAbsolute())
		}

		peaks, err := spectrum.FromFormula(formula, threshold, opts...)
		if err != nil {
			return err
		}

		shown := peaks
		if topN > 0 && topN < len(shown) {
			shown = shown[:topN]
		}

		fmt.Printf("%-16s %s\n", "mass", "probability")
		for _, p := range shown {
			fmt.Printf("%-16.8f %.6e\n", p.Mass, p.Prob)
		}

		fmt.Fprintf(os.Stderr, "%s: %s peaks above threshold, %s printed\n",
			formula, humanize.Comma(int64(len(peaks))), humanize.Comma(int64(len(shown))))

		return nil
	},
}
