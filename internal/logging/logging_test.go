package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileOutput(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "multipole.log")
	cfg := DefaultConfig()
	cfg.Output = fname
	cfg.Format = "json"
	cfg.Level = "debug"
	require.NoError(t, Initialize(cfg))
	Logger.Debug("moments calculated")
	Logger.Info("potential evaluated")
	Sync()
	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"msg":"moments calculated"`)
	assert.Contains(t, lines[1], `"level":"info"`)
}

func TestLevels(t *testing.T) {
	cfg := DefaultConfig()
	l, err := New(cfg)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(-1)) //debug
	assert.True(t, l.Core().Enabled(1))   //warn
	cfg.Level = "nonsense"
	l, err = New(cfg)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(0)) //info
	cfg.Output = filepath.Join(t.TempDir(), "missing", "dir", "x.log")
	_, err = New(cfg)
	assert.Error(t, err)
}
