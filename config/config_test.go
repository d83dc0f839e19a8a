package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "showroom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, 5, cfg.Index.Order)
	require.Equal(t, 3, cfg.Showrooms.Count)
}

func TestLoadOverridesAndFillsDefaults(t *testing.T) {
	path := writeConfig(t, `
index:
  order: 7
  cache:
    enabled: true
showrooms:
  count: 4
log:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Index.Order)
	require.True(t, cfg.Index.Cache.Enabled)
	require.EqualValues(t, 10000, cfg.Index.Cache.NumCounters)
	require.EqualValues(t, 1000, cfg.Index.Cache.MaxCost)
	require.Equal(t, 4, cfg.Showrooms.Count)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	for name, body := range map[string]string{
		"order":     "index:\n  order: 3\n",
		"showrooms": "showrooms:\n  count: -1\n",
		"level":     "log:\n  level: loud\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestNewLogger(t *testing.T) {
	cfg := Default()
	cfg.Log.Development = true
	logger, err := cfg.NewLogger()
	require.NoError(t, err)
	require.NotNil(t, logger)
}
