package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/moldiscovery/IsoSpec/elements"
	"github.com/moldiscovery/IsoSpec/marginal"
)

var marginalCmd = &cobra.Command{
	Use:   "marginal",
	Short: "Compute the fine structure of a single element",
	Long: `Enumerate the subisotopologues of n atoms of one element with
probability above the cutoff, most probable first. This exposes the
marginal engine directly: each line shows the isotope counts, the mass
and the probability of one configuration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		elem, ok := elements.Lookup(elementSymbol)
		if !ok {
			return fmt.Errorf("%w: %q", elements.ErrUnknownElement, elementSymbol)
		}
		if cutoff <= 0 || cutoff >= 1 {
			return fmt.Errorf("cutoff must be in (0,1), got %g", cutoff)
		}

		m, err := marginal.New(elem.Masses(), elem.Abundances(), atomCount)
		if err != nil {
			return err
		}
		p, err := marginal.NewPrecalculated(m, math.Log(cutoff))
		if err != nil {
			return err
		}

		fmt.Printf("%-24s %-16s %s\n", "configuration", "mass", "probability")
		for i := 0; i < p.Len(); i++ {
			fmt.Printf("%-24v %-16.8f %.6e\n", p.Conf(i), p.Mass(i), p.Prob(i))
		}

		fmt.Fprintf(os.Stderr, "%s%d: %s configurations above cutoff\n",
			elementSymbol, atomCount, humanize.Comma(int64(p.Len())))

		return nil
	},
}
