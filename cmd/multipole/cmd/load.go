package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	multipole "github.com/rmera/gomultipole"
	"github.com/rmera/gomultipole/cube"
	"github.com/rmera/gomultipole/internal/logging"
	"github.com/rmera/gomultipole/mpjson"
)

// isCube returns true if the name, without compression extensions, ends in .cube or .cub
func isCube(name string) bool {
	n := strings.ToLower(filepath.Base(name))
	for _, c := range []string{".gz", ".zst", ".zstd", ".z"} {
		n = strings.TrimSuffix(n, c)
	}
	return strings.HasSuffix(n, ".cube") || strings.HasSuffix(n, ".cub")
}

// calculate reads the distribution in the file and returns its moments up to cfg.LMax,
// and its extent. Cube files are converted to bohr, and the nuclei listed in them are added
// to the density.
func calculate(fname string) (*multipole.Moments, float64, error) {
	O := options()
	if !isCube(fname) {
		d, err := mpjson.ReadDistribution(fname)
		if err != nil {
			return nil, 0, err
		}
		logging.Logger.Debug("read distribution", zap.String("file", fname), zap.Int("points", d.Len()), zap.Float64("charge", d.TotalCharge()))
		if cfg.Center {
			if d, err = centered(d); err != nil {
				return nil, 0, err
			}
		}
		M, err := multipole.Calculate(d, cfg.LMax, O)
		return M, d.Extent(), err
	}
	C, err := cube.Read(fname)
	if err != nil {
		return nil, 0, err
	}
	C.ToBohr()
	if cfg.Center {
		if err := centerCube(C); err != nil {
			return nil, 0, err
		}
	}
	density, err := C.Distribution(cfg.DensityScale)
	if err != nil {
		return nil, 0, err
	}
	M, err := multipole.Calculate(density, cfg.LMax, O)
	if err != nil {
		return nil, 0, err
	}
	extent := density.Extent()
	logging.Logger.Debug("read cube", zap.String("file", fname), zap.Int("atoms", len(C.Atoms)), zap.Float64("density charge", density.TotalCharge()))
	if len(C.Atoms) == 0 {
		return M, extent, nil
	}
	nuclei, err := C.Nuclei()
	if err != nil {
		return nil, 0, err
	}
	Mn, err := multipole.Calculate(nuclei, cfg.LMax, O)
	if err != nil {
		return nil, 0, err
	}
	if nuclei.Extent() > extent {
		extent = nuclei.Extent()
	}
	M, err = M.Add(Mn)
	if err != nil {
		return nil, 0, fmt.Errorf("adding nuclear moments: %w", err)
	}
	return M, extent, nil
}

// expansion returns the multipole expansion of the distribution in the file,
// with the extent of the distribution.
func expansion(fname string) (*multipole.Expansion, error) {
	M, extent, err := calculate(fname)
	if err != nil {
		return nil, err
	}
	E, err := multipole.FromMoments(M, options())
	if err != nil {
		return nil, err
	}
	return E.WithExtent(extent), nil
}

// centered returns a copy of d moved so that its charge-weighted centroid is at the origin.
func centered(d multipole.Distribution) (multipole.Distribution, error) {
	var c [3]float64
	var err error
	switch D := d.(type) {
	case *multipole.Discrete:
		d, c, err = D.Centered()
	case *multipole.Continuous:
		d, c, err = D.Centered()
	}
	if err != nil {
		return nil, fmt.Errorf("centering: %w", err)
	}
	logging.Logger.Debug("centered distribution", zap.Float64s("centroid", c[:]))
	return d, nil
}

// centerCube moves the cube so that the centroid of its nuclear charges is at the origin,
// or the centroid of the density, if there are no atoms.
func centerCube(C *cube.Cube) error {
	var c [3]float64
	if len(C.Atoms) > 0 {
		nuclei, err := C.Nuclei()
		if err != nil {
			return err
		}
		c = nuclei.Centroid()
	} else {
		density, err := C.Distribution(cfg.DensityScale)
		if err != nil {
			return err
		}
		c = density.Centroid()
	}
	C.Translate([3]float64{-c[0], -c[1], -c[2]})
	logging.Logger.Debug("centered cube", zap.Float64s("centroid", c[:]))
	return nil
}
