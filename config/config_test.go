package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefault tests the built-in defaults.
func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, CurrentConfigVersion, cfg.Version)
	assert.Equal(t, "CF_", cfg.FormulaPrefix)
	assert.Equal(t, "FT_", cfg.TriggerPrefix)
	assert.Equal(t, "P_", cfg.ParameterPrefix)
	assert.Equal(t, "placeholder", cfg.OnUnsupported)
	assert.NoError(t, cfg.Validate())
}

// TestSaveLoad tests the file round trip.
func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crystalsql.yaml")

	cfg := Default()
	cfg.FormulaPrefix = "FX_"
	cfg.OnUnsupported = "skip"
	cfg.Workers = 4
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

// TestLoad_PartialFile tests that omitted keys keep their defaults.
func TestLoad_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crystalsql.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\nformula_prefix: FX_\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "FX_", cfg.FormulaPrefix)
	assert.Equal(t, "FT_", cfg.TriggerPrefix)
	assert.Equal(t, "placeholder", cfg.OnUnsupported)
}

// TestLoad_Errors tests missing and malformed files.
func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: [not scalar\n"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

// TestValidate tests configuration validation.
func TestValidate(t *testing.T) {
	t.Run("unsupported version", func(t *testing.T) {
		cfg := Default()
		cfg.Version = 99
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown policy", func(t *testing.T) {
		cfg := Default()
		cfg.OnUnsupported = "explode"
		assert.Error(t, cfg.Validate())
	})

	t.Run("negative workers", func(t *testing.T) {
		cfg := Default()
		cfg.Workers = -1
		assert.Error(t, cfg.Validate())
	})

	t.Run("valid policies accepted", func(t *testing.T) {
		for _, policy := range []string{"", "placeholder", "skip", "fail"} {
			cfg := Default()
			cfg.OnUnsupported = policy
			assert.NoError(t, cfg.Validate(), "policy %q", policy)
		}
	})
}
