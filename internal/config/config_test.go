package config

import (
	"os"
	"path/filepath"
	"testing"

	multipole "github.com/rmera/gomultipole"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "multipole.json")
	require.NoError(t, os.WriteFile(fname, []byte(`{"lmax": 8, "units": "si", "logging": {"level": "debug"}}`), 0o644))
	c, err := Load(fname)
	require.NoError(t, err)
	assert.Equal(t, 8, c.LMax)
	assert.Equal(t, -1.0, c.DensityScale)
	assert.Equal(t, "debug", c.Logging.Level)
	O := c.Options(zap.NewNop())
	assert.Equal(t, multipole.SI, O.Units())
	assert.Equal(t, c.Cpus, O.Cpus())

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"lmax": -2}`), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)
	require.NoError(t, os.WriteFile(bad, []byte(`{"units": "imperial"}`), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)
	_, err = Load(filepath.Join(dir, "nothere.json"))
	assert.Error(t, err)
}
