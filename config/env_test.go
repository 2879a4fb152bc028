package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tollnet/config"
)

// TestReadEnvFile reads keys from a .env file; the process environment wins.
func TestReadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"TOLLNET_LOG_LEVEL=warn\nTOLLNET_TOLL_WORKERS=3\nUNRELATED=1\n"), 0o600))
	t.Setenv(config.EnvTollWorkers, "6")

	env, err := config.ReadEnv(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", env[config.EnvLogLevel])
	assert.Equal(t, "6", env[config.EnvTollWorkers])
}

// TestReadEnvMissing tolerates a missing default file but not an explicit one.
func TestReadEnvMissing(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(config.EnvDistanceTolerance, "")
	require.NoError(t, os.Unsetenv(config.EnvDistanceTolerance))

	env, err := config.ReadEnv()
	require.NoError(t, err)
	assert.NotContains(t, env, config.EnvDistanceTolerance)

	_, err = config.ReadEnv(filepath.Join(t.TempDir(), "nope.env"))
	require.Error(t, err)
}

// chdir switches the working directory for the rest of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

// TestReadEnvMalformedDefault reports a default .env that exists but cannot be parsed.
func TestReadEnvMalformedDefault(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TOLLNET-LOG-LEVEL=debug\n"), 0o600))
	chdir(t, dir)

	env, err := config.ReadEnv()
	require.Error(t, err)
	assert.Nil(t, env)
}

// TestReadEnvDefaultFile picks up .env from the working directory.
func TestReadEnvDefaultFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TOLLNET_TOLL_PRECISION=4\n"), 0o600))
	chdir(t, dir)
	t.Setenv(config.EnvTollPrecision, "")
	require.NoError(t, os.Unsetenv(config.EnvTollPrecision))

	env, err := config.ReadEnv()
	require.NoError(t, err)
	assert.Equal(t, "4", env[config.EnvTollPrecision])
}

// TestApplyEnvAtomic leaves the config untouched when any value is rejected.
func TestApplyEnvAtomic(t *testing.T) {
	cfg := config.Default()
	want := *cfg

	err := cfg.ApplyEnv(map[string]string{
		config.EnvLogLevel:      "debug",
		config.EnvTollWorkers:   "4",
		config.EnvTollPrecision: "nope",
	})
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Equal(t, want, *cfg)

	err = cfg.ApplyEnv(map[string]string{
		config.EnvLogLevel:          "debug",
		config.EnvDistanceTolerance: "-1",
	})
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Equal(t, want, *cfg, "validation failure must not leak partial values")
}

// TestApplyEnv overrides values and re-validates.
func TestApplyEnv(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.ApplyEnv(map[string]string{
		config.EnvLogLevel:          "debug",
		config.EnvLogPretty:         "true",
		config.EnvTollWorkers:       "2",
		config.EnvTollPrecision:     "3",
		config.EnvDistanceTolerance: "0.2",
	}))
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Pretty)
	assert.Equal(t, 2, cfg.Toll.Workers)
	assert.Equal(t, 3, cfg.Toll.Precision)
	assert.Equal(t, 0.2, cfg.Distance.Tolerance)

	for k, v := range map[string]string{
		config.EnvLogPretty:         "maybe",
		config.EnvTollWorkers:       "many",
		config.EnvTollPrecision:     "-5",
		config.EnvDistanceTolerance: "NaN",
	} {
		err := config.Default().ApplyEnv(map[string]string{k: v})
		assert.ErrorIs(t, err, config.ErrInvalidConfig, k)
	}
}
