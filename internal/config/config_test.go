package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears keys for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, "HELPMATE_LANG", "HELPMATE_LOG_FILE", "HELPMATE_LOG_LEVEL", "HELPMATE_REDUCED_MOTION")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Config{Language: "en", LogLevel: "info"}, cfg)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HELPMATE_LANG", "es")
	t.Setenv("HELPMATE_LOG_FILE", "/tmp/helpmate.log")
	t.Setenv("HELPMATE_LOG_LEVEL", "debug")
	t.Setenv("HELPMATE_REDUCED_MOTION", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "es", cfg.Language)
	assert.Equal(t, "/tmp/helpmate.log", cfg.LogFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.ReducedMotion)
}

func TestLoadEnvFile(t *testing.T) {
	unsetEnv(t, "HELPMATE_LANG", "HELPMATE_REDUCED_MOTION")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HELPMATE_LANG=es\nHELPMATE_REDUCED_MOTION=true\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "es", cfg.Language)
	assert.True(t, cfg.ReducedMotion)
}

func TestLoadInvalidBool(t *testing.T) {
	t.Setenv("HELPMATE_REDUCED_MOTION", "sometimes")

	_, err := Load()
	assert.Error(t, err)
}
