package config

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	yaml := `
api:
  base_url: https://poe.example.com/api/data
  timeout: 5s
  user_agent: custom/2.0
defaults:
  league: Hardcore
  currency_type: Fragment
logging:
  level: debug
output:
  format: json
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://poe.example.com/api/data", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, "custom/2.0", cfg.API.UserAgent)
	assert.Equal(t, "Hardcore", cfg.Defaults.League)
	assert.Equal(t, "Fragment", cfg.Defaults.CurrencyType)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_POE_LEAGUE", "Settlers")

	path := writeTempFile(t, `
defaults:
  league: ${TEST_POE_LEAGUE}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Settlers", cfg.Defaults.League)
}

func TestLoadDotEnv(t *testing.T) {
	const key = "TEST_POE_DOTENV_LEAGUE"
	t.Cleanup(func() { os.Unsetenv(key) })

	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte(key+"=Hardcore Settlers\n"), 0644))

	require.NoError(t, LoadDotEnv(envPath))
	assert.Equal(t, "Hardcore Settlers", os.Getenv(key))

	cfgPath := writeTempFile(t, "defaults:\n  league: ${"+key+"}\n")
	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "Hardcore Settlers", cfg.Defaults.League)

	t.Run("existing variables win", func(t *testing.T) {
		t.Setenv(key, "Standard")
		require.NoError(t, LoadDotEnv(envPath))
		assert.Equal(t, "Standard", os.Getenv(key))
	})

	t.Run("missing file is ignored", func(t *testing.T) {
		assert.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))
	})
}

func TestLoadWithDefaults(t *testing.T) {
	path := writeTempFile(t, `
defaults:
  league: Hardcore
`)

	cfg, err := LoadWithDefaults(path)
	require.NoError(t, err)

	// Check defaults were applied
	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultAPITimeout, cfg.API.Timeout)
	assert.Empty(t, cfg.API.UserAgent)
	assert.Equal(t, "Hardcore", cfg.Defaults.League)
	assert.Equal(t, DefaultCurrencyType, cfg.Defaults.CurrencyType)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultFormat, cfg.Output.Format)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := Load(writeTempFile(t, "api: [unclosed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config yaml")
	})

	t.Run("bad duration", func(t *testing.T) {
		_, err := Load(writeTempFile(t, "api:\n  timeout: soon\n"))
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := LoadAndValidate(writeTempFile(t, "output:\n  format: xml\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validate config: output.format")
	})
}

func TestLoadOptional(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := LoadOptional(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("existing file is validated", func(t *testing.T) {
		_, err := LoadOptional(writeTempFile(t, "logging:\n  level: loud\n"))
		assert.Error(t, err)
	})

	t.Run("tilde path", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		homedir.DisableCache = true
		t.Cleanup(func() { homedir.DisableCache = false })

		require.NoError(t, os.WriteFile(filepath.Join(home, DefaultFileName), []byte("defaults:\n  league: Hardcore\n"), 0644))

		cfg, err := LoadOptional("~/" + DefaultFileName)
		require.NoError(t, err)
		assert.Equal(t, "Hardcore", cfg.Defaults.League)

		path, err := DefaultPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, DefaultFileName), path)
	})
}

func TestValidate(t *testing.T) {
	valid := func() Config { return *Default() }

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "defaults are valid",
			mutate:  func(*Config) {},
			wantErr: "",
		},
		{
			name:    "non http base url",
			mutate:  func(c *Config) { c.API.BaseURL = "ftp://poe.ninja/api/data" },
			wantErr: `api.base_url must be an http or https URL, got "ftp://poe.ninja/api/data"`,
		},
		{
			name:    "base url without host",
			mutate:  func(c *Config) { c.API.BaseURL = "https://" },
			wantErr: `api.base_url must include a host, got "https://"`,
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.API.Timeout = -time.Second },
			wantErr: "api.timeout must be > 0, got -1s",
		},
		{
			name:    "blank league",
			mutate:  func(c *Config) { c.Defaults.League = "  " },
			wantErr: "defaults.league is required",
		},
		{
			name:    "blank currency type",
			mutate:  func(c *Config) { c.Defaults.CurrencyType = "" },
			wantErr: "defaults.currency_type is required",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Logging.Level = "trace" },
			wantErr: `logging.level must be one of debug, info, warn, error, got "trace"`,
		},
		{
			name:    "unknown format",
			mutate:  func(c *Config) { c.Output.Format = "csv" },
			wantErr: `output.format must be table or json, got "csv"`,
		},
		{
			name:    "case insensitive enums",
			mutate:  func(c *Config) { c.Logging.Level = "DEBUG"; c.Output.Format = "JSON" },
			wantErr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LoggingConfig{Level: "debug"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, LoggingConfig{Level: "info"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, LoggingConfig{Level: "WARN"}.SlogLevel())
	assert.Equal(t, slog.LevelError, LoggingConfig{Level: "error"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, LoggingConfig{}.SlogLevel())
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
