// Package config reads process configuration from SLOTLOG_* environment
// variables. User-facing preferences live in the settings table instead.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
)

const (
	EnvDB          = "SLOTLOG_DB"
	EnvLogUseCases = "SLOTLOG_LOG_USE_CASES"
	EnvLogLevel    = "SLOTLOG_LOG_LEVEL"
)

type Config struct {
	// DBPath is the SQLite file. ":memory:" keeps everything in memory.
	DBPath      string
	LogUseCases bool
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// DefaultConfig returns the configuration used when no variables are set.
// The database lives under ~/.slotlog.
func DefaultConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	return Config{
		DBPath:   filepath.Join(home, ".slotlog", "slotlog.db"),
		LogLevel: "info",
	}, nil
}

// LoadConfig applies environment overrides on top of DefaultConfig. Invalid
// values are ignored.
func LoadConfig() (Config, error) {
	cfg := Config{LogLevel: "info"}
	if v := os.Getenv(EnvDB); v != "" {
		cfg.DBPath = v
	} else {
		def, err := DefaultConfig()
		if err != nil {
			return Config{}, err
		}
		cfg = def
	}

	if v := os.Getenv(EnvLogUseCases); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogUseCases = b
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		switch v {
		case "debug", "info", "warn", "error":
			cfg.LogLevel = v
		}
	}
	return cfg, nil
}

// SlogLevel maps LogLevel onto a slog level.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
