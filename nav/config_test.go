package nav

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigPartialOverride(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "nav.yml")
	require.NoError(t, os.WriteFile(filename, []byte(
		"node_spacing: 3\nweights:\n  base_preferred: 20\n"), 0644))

	cfg, err := LoadConfig(filename)
	require.NoError(t, err)
	require.Equal(t, int32(3), cfg.NodeSpacing)
	require.Equal(t, 20.0, cfg.Weights.BasePreferred)
	// untouched keys keep their defaults
	require.Equal(t, DefaultConfig().RegionRadius, cfg.RegionRadius)
	require.Equal(t, DefaultConfig().Weights.MaxCost, cfg.Weights.MaxCost)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "nav.yml")
	require.NoError(t, os.WriteFile(filename, []byte("node_spacing: 0\n"), 0644))

	_, err := LoadConfig(filename)
	require.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}
