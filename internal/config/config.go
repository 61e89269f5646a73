package config

import (
	"log/slog"
	"strings"
	"time"
)

// Config is the root configuration for the CLI.
type Config struct {
	API      APIConfig      `yaml:"api"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Logging  LoggingConfig  `yaml:"logging"`
	Output   OutputConfig   `yaml:"output"`
}

// APIConfig holds poe.ninja API settings.
type APIConfig struct {
	BaseURL   string        `yaml:"base_url"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"` // empty means poe-ninja-cli/<version>
}

// DefaultsConfig holds values used when a flag is not given.
type DefaultsConfig struct {
	League       string `yaml:"league"`
	CurrencyType string `yaml:"currency_type"`
}

// LoggingConfig holds log settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// SlogLevel maps Level onto a slog level. Unknown values map to info.
func (l LoggingConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// OutputConfig holds rendering settings.
type OutputConfig struct {
	Format string `yaml:"format"` // table or json
}
