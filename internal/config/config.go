package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const (
	EnvTheme = "XTOP_THEME"
	EnvLog   = "XTOP_LOG"
	EnvDebug = "XTOP_DEBUG"

	DefaultTheme = "x"
)

// Config is everything xtop reads from the environment at startup.
type Config struct {
	Theme   string
	LogFile string
	Debug   bool
}

// Load reads the XTOP_* variables. Unset or blank values take defaults and
// an unparsable XTOP_DEBUG counts as false.
func Load() Config {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) Config {
	cfg := Config{Theme: DefaultTheme}
	if v := env(lookup, EnvTheme); v != "" {
		cfg.Theme = v
	}
	cfg.LogFile = env(lookup, EnvLog)
	if v := env(lookup, EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		cfg.Debug = err == nil && debug
	}
	return cfg
}

func env(lookup func(string) (string, bool), key string) string {
	v, ok := lookup(key)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}

// LogLevel is debug when XTOP_DEBUG is set, info otherwise.
func (c Config) LogLevel() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
