package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rmera/gomultipole/internal/logging"
)

var showTerms bool

// potentialCmd evaluates the expanded potential at a point
var potentialCmd = &cobra.Command{
	Use:   "potential FILE X Y Z",
	Short: "Evaluate the multipole expansion of the potential at a point",
	Args:  cobra.ExactArgs(4),
	RunE:  runPotential,
}

func init() {
	potentialCmd.Flags().BoolVar(&showTerms, "terms", false, "also print the contribution of each order")
}

func runPotential(cmd *cobra.Command, args []string) error {
	var p [3]float64
	for i, s := range args[1:] {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid coordinate %q: %w", s, err)
		}
		p[i] = v
	}
	E, err := expansion(args[0])
	if err != nil {
		return err
	}
	terms, err := E.Terms(p[0], p[1], p[2])
	if err != nil {
		return err
	}
	if !E.Valid(p[0], p[1], p[2]) {
		logging.Logger.Warn("the point is inside the charge distribution, the expansion doesn't converge there",
			zap.Float64("r", norm(p)), zap.Float64("extent", E.Extent()))
	}
	var sum float64
	out := cmd.OutOrStdout()
	for l, t := range terms {
		sum += t
		if showTerms {
			fmt.Fprintf(out, "l=%-3d % .10e\n", l, t)
		}
	}
	fmt.Fprintf(out, "%.10e\n", sum)
	return nil
}
