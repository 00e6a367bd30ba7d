// Package config holds the settings of the multipole command, which can be read from a JSON file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	multipole "github.com/rmera/gomultipole"
	"github.com/rmera/gomultipole/internal/logging"
	"go.uber.org/zap"
)

// Config is the configuration of the multipole command
type Config struct {
	// LMax is the default truncation order
	LMax int `json:"lmax"`

	// Units is the unit convention for potentials (gaussian, si)
	Units string `json:"units"`

	// Cpus is the number of goroutines for the calculations
	Cpus int `json:"cpus"`

	// DensityScale multiplies the values read from cube files. -1 turns electron densities into charge densities
	DensityScale float64 `json:"density_scale"`

	// Center moves distributions so that their charge-weighted centroid is at the origin
	// before calculating. Cube files are centered on their nuclei.
	Center bool `json:"center"`

	Logging logging.Config `json:"logging"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		LMax:         4,
		Units:        "gaussian",
		Cpus:         runtime.NumCPU(),
		DensityScale: -1,
		Logging:      logging.DefaultConfig(),
	}
}

// Load reads the configuration from a JSON file. Settings missing from the
// file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return config, nil
}

// Validate checks the values of the configuration
func (c *Config) Validate() error {
	if c.LMax < 0 {
		return fmt.Errorf("negative lmax %d", c.LMax)
	}
	if _, err := multipole.ParseUnits(c.Units); err != nil {
		return err
	}
	return nil
}

// Options returns the library options for this configuration, logging through logger.
func (c *Config) Options(logger *zap.Logger) *multipole.Options {
	O := multipole.DefaultOptions()
	O.Cpus(c.Cpus)
	u, err := multipole.ParseUnits(c.Units)
	if err == nil {
		O.Units(u)
	}
	O.Logger(logger)
	return O
}
