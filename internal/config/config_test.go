package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.App.Env)
	assert.Equal(t, "ClockAlertDB.sqlite", cfg.Store.Path)
	assert.Equal(t, time.Second, cfg.Scanner.Interval)
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTP.Addr())
	assert.Equal(t, []string{"*"}, cfg.HTTP.CORS.AllowedOrigins)
}

func TestLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	body := []byte("http:\n  port: \"9090\"\nstore:\n  path: /tmp/alarms.sqlite\nscanner:\n  interval: 250ms\nlogger:\n  log_level: debug\n")
	require.NoError(t, os.WriteFile(path, body, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, "/tmp/alarms.sqlite", cfg.Store.Path)
	assert.Equal(t, 250*time.Millisecond, cfg.Scanner.Interval)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "local", cfg.App.Env)
}

func TestEnvOverridesStorePath(t *testing.T) {
	t.Setenv("STORE_PATH", "env.sqlite")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "env.sqlite", cfg.Store.Path)
}
