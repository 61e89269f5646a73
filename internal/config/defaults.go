package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL      = "https://poe.ninja/api/data"
	DefaultAPITimeout   = 30 * time.Second
	DefaultLeague       = "Standard"
	DefaultCurrencyType = "Currency"
	DefaultLogLevel     = "info"
	DefaultFormat       = "table"
	DefaultFileName     = ".poe-ninja.yaml"
)

// Default returns a configuration with every default applied.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}

	// Flag defaults
	if c.Defaults.League == "" {
		c.Defaults.League = DefaultLeague
	}
	if c.Defaults.CurrencyType == "" {
		c.Defaults.CurrencyType = DefaultCurrencyType
	}

	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Output.Format == "" {
		c.Output.Format = DefaultFormat
	}
}
