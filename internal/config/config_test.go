package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv pins every recognized variable to a known state for the test,
// restoring the caller's environment afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range envBindings {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	dataDir := filepath.Join(t.TempDir(), "data")
	t.Setenv("NBA_PROBS_DATA_DIR", dataDir)

	settings, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", settings.LogLevel)
	assert.Equal(t, dataDir, settings.DataDir)
	assert.Empty(t, settings.PolymarketAPIKey)
	assert.False(t, settings.HasDatabase())
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	dataDir := t.TempDir()
	t.Setenv("NBA_PROBS_DATA_DIR", dataDir)
	t.Setenv("NBA_PROBS_LOG_LEVEL", "debug")
	t.Setenv("POLYMARKET_API_KEY", "key-123")
	t.Setenv("POLYMARKET_API_SECRET", "secret-456")
	t.Setenv("HTTPS_PROXY", "http://proxy.internal:3128")
	t.Setenv("NBA_PROBS_DATABASE_DSN", "postgres://localhost/nba")

	settings, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "debug", settings.LogLevel)
	assert.Equal(t, "key-123", settings.PolymarketAPIKey)
	assert.Equal(t, "secret-456", settings.PolymarketAPISecret)
	assert.Equal(t, "http://proxy.internal:3128", settings.HTTPSProxy)
	assert.True(t, settings.HasDatabase())
}

func TestLoadFromDotenvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"POLYMARKET_API_KEY=dotenv-key\nNBA_PROBS_DATA_DIR="+filepath.Join(dir, "data")+"\n",
	), 0o644))

	settings, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "dotenv-key", settings.PolymarketAPIKey)
	assert.Equal(t, filepath.Join(dir, "data"), settings.DataDir)
}

func TestLoadMissingEnvFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.Error(t, err)
}

func TestLoadRejectsInvalidProxyURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("NBA_PROBS_DATA_DIR", t.TempDir())
	t.Setenv("HTTP_PROXY", "not a url")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTPProxy")
}

func TestLoadCreatesDirectoryTree(t *testing.T) {
	clearEnv(t)
	dataDir := filepath.Join(t.TempDir(), "data")
	t.Setenv("NBA_PROBS_DATA_DIR", dataDir)

	settings, err := Load("")
	require.NoError(t, err)

	for _, dir := range []string{
		settings.Paths.RawDataDir,
		settings.Paths.ProcessedDataDir,
		settings.Paths.ModelsDir,
		settings.Paths.PolymarketDir,
	} {
		assert.DirExists(t, dir)
	}
}

func TestNewPaths(t *testing.T) {
	paths := NewPaths("data")

	assert.Equal(t, filepath.Join("data", "raw"), paths.RawDataDir)
	assert.Equal(t, filepath.Join("data", "processed"), paths.ProcessedDataDir)
	assert.Equal(t, filepath.Join("data", "models"), paths.ModelsDir)
	assert.Equal(t, filepath.Join("data", "polymarket"), paths.PolymarketDir)
}
