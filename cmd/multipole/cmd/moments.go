package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmera/gomultipole/mpjson"
)

var jsonOutput bool

// momentsCmd prints the multipole moments of a distribution
var momentsCmd = &cobra.Command{
	Use:   "moments FILE",
	Short: "Print the multipole moments of a charge distribution",
	Args:  cobra.ExactArgs(1),
	RunE:  runMoments,
}

func init() {
	momentsCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the moments as JSON")
}

func runMoments(cmd *cobra.Command, args []string) error {
	M, _, err := calculate(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if jsonOutput {
		return mpjson.EncodeMoments(out, M)
	}
	fmt.Fprintf(out, "# lmax %d, total charge %.8g\n", M.LMax(), M.Charge())
	if p, err := M.Dipole(); err == nil {
		fmt.Fprintf(out, "# dipole %.8g %.8g %.8g\n", p[0], p[1], p[2])
	}
	fmt.Fprintln(out, M.String())
	return nil
}
