// Package cmd provides the CLI commands for multipole.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	multipole "github.com/rmera/gomultipole"
	"github.com/rmera/gomultipole/internal/config"
	"github.com/rmera/gomultipole/internal/logging"
)

var (
	cfgFile string
	verbose bool
	lmax    int
	units   string
	center  bool
	cfg     = config.Default()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "multipole",
	Short: "Multipole expansions of charge distributions",
	Long: `multipole computes the spherical multipole moments of discrete or continuous
charge distributions and evaluates the expanded electrostatic potential.

FILE is either a JSON descriptor (.json) or a Gaussian cube file (.cube, .cub,
optionally compressed: .gz, .zst).

Examples:
  multipole moments --lmax 6 water.json
  multipole moments --json density.cube.zst
  multipole potential --units si dipole.json 30.5 30.6 30.7
  multipole profile --dir 1,1,0 --rmin 2 --rmax 20 --out profile.png dipole.json`,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
	PersistentPostRun: func(cmd *cobra.Command, args []string) { logging.Sync() },
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().IntVarP(&lmax, "lmax", "l", cfg.LMax, "truncation order of the expansion")
	rootCmd.PersistentFlags().StringVarP(&units, "units", "u", cfg.Units, "unit convention for the potential (gaussian, si)")
	rootCmd.PersistentFlags().BoolVar(&center, "center", cfg.Center, "move the charge-weighted centroid of the distribution to the origin")

	// Add subcommands
	rootCmd.AddCommand(momentsCmd)
	rootCmd.AddCommand(potentialCmd)
	rootCmd.AddCommand(profileCmd)
}

// initConfig loads the config file, if any, lets the flags given override it and sets up logging.
func initConfig(cmd *cobra.Command, args []string) error {
	if cfgFile != "" {
		c, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = c
	}
	flags := cmd.Flags()
	if flags.Changed("lmax") {
		cfg.LMax = lmax
	}
	if flags.Changed("units") {
		cfg.Units = units
	}
	if flags.Changed("center") {
		cfg.Center = center
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	return nil
}

// options returns the library options for the current configuration.
func options() *multipole.Options {
	return cfg.Options(logging.Logger)
}
