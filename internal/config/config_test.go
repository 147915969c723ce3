package config

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvTheme, "")
	t.Setenv(EnvLog, "")
	t.Setenv(EnvDebug, "")

	cfg := Load()
	assert.Equal(t, DefaultTheme, cfg.Theme)
	assert.Empty(t, cfg.LogFile)
	assert.False(t, cfg.Debug)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel())
}

func TestLoadFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xtop.log")
	t.Setenv(EnvTheme, "  tokio ")
	t.Setenv(EnvLog, path)
	t.Setenv(EnvDebug, "1")

	cfg := Load()
	assert.Equal(t, "tokio", cfg.Theme)
	assert.Equal(t, path, cfg.LogFile)
	assert.True(t, cfg.Debug)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())
}

func TestDebugValues(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"0", false},
		{"false", false},
		{"yes", false},
		{"garbage", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			cfg := fromLookup(func(key string) (string, bool) {
				if key == EnvDebug {
					return tt.value, true
				}
				return "", false
			})
			assert.Equal(t, tt.want, cfg.Debug)
		})
	}
}

func TestMissingVariables(t *testing.T) {
	cfg := fromLookup(func(string) (string, bool) { return "", false })
	assert.Equal(t, Config{Theme: DefaultTheme}, cfg)
}
