package cmd

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rmera/gomultipole/mpplot"
)

var (
	direction    string
	rmin, rmax   float64
	npoints      int
	plotFile     string
	spectrumFile string
)

// profileCmd plots the potential along a ray from the origin
var profileCmd = &cobra.Command{
	Use:   "profile FILE",
	Short: "Plot the potential along a ray for each truncation order",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfile,
}

func init() {
	profileCmd.Flags().StringVar(&direction, "dir", "0,0,1", "direction of the ray, as x,y,z")
	profileCmd.Flags().Float64Var(&rmin, "rmin", 1, "initial distance from the origin")
	profileCmd.Flags().Float64Var(&rmax, "rmax", 10, "final distance from the origin")
	profileCmd.Flags().IntVarP(&npoints, "points", "n", 200, "number of points in the profile")
	profileCmd.Flags().StringVarP(&plotFile, "out", "o", "profile.png", "output plot (png, svg, pdf)")
	profileCmd.Flags().StringVar(&spectrumFile, "spectrum", "", "if given, also plot the power spectrum of the moments to this file")
}

func runProfile(cmd *cobra.Command, args []string) error {
	dir, err := parseVector(direction)
	if err != nil {
		return err
	}
	E, err := expansion(args[0])
	if err != nil {
		return err
	}
	if rmin < E.Extent() {
		fmt.Fprintf(cmd.ErrOrStderr(), "note: the expansion doesn't converge for r < %.4g\n", E.Extent())
	}
	if err := mpplot.Profile(E, dir, rmin, rmax, npoints, plotFile); err != nil {
		return err
	}
	if spectrumFile != "" {
		if err := mpplot.Spectrum(E.Moments(), spectrumFile); err != nil {
			return err
		}
	}
	return nil
}

func parseVector(s string) ([3]float64, error) {
	var ret [3]float64
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return ret, fmt.Errorf("expected 3 comma-separated values, got %q", s)
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return ret, fmt.Errorf("invalid vector %q: %w", s, err)
		}
		ret[i] = v
	}
	return ret, nil
}

func norm(v [3]float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}
