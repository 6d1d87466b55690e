package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "hard", cfg.Difficulty)
	assert.Equal(t, time.Second, cfg.ThinkDelay)
	assert.Equal(t, 2*time.Second, cfg.SplashDelay)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "tic-tac-toe", cfg.Telemetry.ServiceName)
	assert.Empty(t, cfg.Storage.SQLitePath)
	assert.False(t, cfg.NoColor)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
log-level: debug
difficulty: medium
think-delay: 250ms
no-color: true
http:
  addr: ":9090"
storage:
  sqlite-path: ./history.db
  redis-addr: localhost:6379
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, "medium", cfg.Difficulty)
	assert.Equal(t, 250*time.Millisecond, cfg.ThinkDelay)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, "./history.db", cfg.Storage.SQLitePath)
	assert.Equal(t, "localhost:6379", cfg.Storage.RedisAddr)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "difficulty: medium\n")
	t.Setenv("TTT_DIFFICULTY", "easy")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "easy", cfg.Difficulty)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("Unknown difficulty", func(t *testing.T) {
		_, err := Load(writeConfig(t, "difficulty: impossible\n"))
		assert.ErrorContains(t, err, "invalid config")
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
		assert.ErrorContains(t, err, "unable to load config")
	})

	t.Run("MustLoad panics", func(t *testing.T) {
		assert.Panics(t, func() { MustLoad(writeConfig(t, "log-level: loud\n")) })
	})
}

func TestSlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	}
	for in, want := range tests {
		c := &Config{LogLevel: in}
		assert.Equal(t, want, c.SlogLevel(), in)
	}
}
