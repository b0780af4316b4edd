package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskline-go/taskline/config"
)

func writeTempFile(t *testing.T, pattern, content string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), pattern)
	require.NoError(t, err)
	_, err = f.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func TestLoadFromFile(t *testing.T) {
	path := writeTempFile(t, "config-*.yaml", `
log_level: debug
count: 3
console: true
`)

	cfg := config.New()
	require.NoError(t, cfg.Load(path, "", ""))
	assert.Equal(t, "debug", cfg.GetString("log_level"))
	assert.Equal(t, 3, cfg.GetInt("count"))
	assert.True(t, cfg.GetBool("console"))
}

func TestLoadWithoutFile(t *testing.T) {
	cfg := config.New()
	cfg.SetDefault("log_level", "info")
	require.NoError(t, cfg.Load("", "", ""))
	assert.Equal(t, "info", cfg.GetString("log_level"))
}

func TestLoadMissingFileFails(t *testing.T) {
	cfg := config.New()
	assert.Error(t, cfg.Load("/does/not/exist.yaml", "", ""))
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeTempFile(t, "config-*.yaml", "log_level: debug\n")
	t.Setenv("TLID_LOG_LEVEL", "warn")

	cfg := config.New()
	require.NoError(t, cfg.Load(path, "", "TLID"))
	assert.Equal(t, "warn", cfg.GetString("log_level"))
}

func TestEnvFile(t *testing.T) {
	envPath := writeTempFile(t, "env-*", "TLID_COUNT=7\n")

	cfg := config.New()
	cfg.SetDefault("count", 1)
	require.NoError(t, cfg.Load("", envPath, "TLID"))
	assert.Equal(t, 7, cfg.GetInt("count"))
}
