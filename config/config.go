// Package config loads the finpulse configuration.
//
// Values are layered, later layers win: built-in defaults, TOML files, a
// .env file in the working directory, then FINPULSE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/etnz/finpulse/store"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	Storage   StorageConfig   `toml:"storage"`
	Logging   LoggingConfig   `toml:"logging"`
	Portfolio PortfolioConfig `toml:"portfolio"`
}

// StorageConfig selects the store backend.
type StorageConfig struct {
	Backend string `toml:"backend"` // memory, file or sqlite
	Path    string `toml:"path"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Pretty bool   `toml:"pretty"`
}

// PortfolioConfig contains the portfolio engine settings.
type PortfolioConfig struct {
	Currency string   `toml:"currency"` // ISO code used to display amounts
	Timeout  Duration `toml:"timeout"`  // bound on every store call
}

// Duration is a time.Duration written as a string like "5s" in TOML.
type Duration time.Duration

// Duration returns d as a time.Duration.
func (d Duration) Duration() time.Duration { return time.Duration(d) }

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Environment variables read by applyEnvOverrides.
const (
	EnvStorageBackend = "FINPULSE_STORAGE_BACKEND"
	EnvStoragePath    = "FINPULSE_STORAGE_PATH"
	EnvLogLevel       = "FINPULSE_LOG_LEVEL"
	EnvLogPretty      = "FINPULSE_LOG_PRETTY"
	EnvCurrency       = "FINPULSE_CURRENCY"
	EnvTimeout        = "FINPULSE_TIMEOUT"
)

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: store.FileBackend,
			Path:    ".finpulse",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Portfolio: PortfolioConfig{
			Currency: "INR",
			Timeout:  Duration(5 * time.Second),
		},
	}
}

// Load loads the configuration from every layer. A missing .env file is not an error.
func Load(paths ...string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}
	return LoadFromFiles(paths...)
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files. Empty paths are skipped.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnvOverrides applies FINPULSE_* environment variable overrides to config.
func applyEnvOverrides(config *Config) error {
	config.Storage.Backend = getEnv(EnvStorageBackend, config.Storage.Backend)
	config.Storage.Path = getEnv(EnvStoragePath, config.Storage.Path)
	config.Logging.Level = getEnv(EnvLogLevel, config.Logging.Level)
	config.Portfolio.Currency = getEnv(EnvCurrency, config.Portfolio.Currency)

	if v := os.Getenv(EnvLogPretty); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvLogPretty, v, err)
		}
		config.Logging.Pretty = b
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		if err := config.Portfolio.Timeout.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvTimeout, v, err)
		}
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	var errs []error
	switch c.Storage.Backend {
	case store.MemoryBackend:
	case store.FileBackend, store.SQLiteBackend:
		if c.Storage.Path == "" {
			errs = append(errs, fmt.Errorf("storage path is required for the %s backend", c.Storage.Backend))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage backend %q", c.Storage.Backend))
	}
	if money.GetCurrency(c.Portfolio.Currency) == nil {
		errs = append(errs, fmt.Errorf("unknown currency %q", c.Portfolio.Currency))
	}
	if c.Portfolio.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("portfolio timeout must be positive, got %s", time.Duration(c.Portfolio.Timeout)))
	}
	return errors.Join(errs...)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
