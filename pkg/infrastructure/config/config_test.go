package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 200.0, cfg.MinPricePerPart)
	assert.Len(t, cfg.BlockCatalog, 21)
	assert.Equal(t, 350.0, cfg.Milling["coarse"].RemovalRate)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.yaml")
	require.NoError(t, os.WriteFile(path, []byte("min_price_per_part: 250\naluminum_price_per_kg: 6.5\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 250.0, cfg.MinPricePerPart)
	assert.Equal(t, 6.5, cfg.AluminumPricePerKg)
	// Untouched tables keep their defaults.
	assert.Equal(t, 110.0, cfg.Labor["programming"].HourlyRate)
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidOverrideFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.yaml")
	require.NoError(t, os.WriteFile(path, []byte("waste_band_low: 0.9\nwaste_band_max: 0.1\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
