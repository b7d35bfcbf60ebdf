// Package config loads storefront settings from YAML with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete service configuration
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Auth    AuthConfig    `yaml:"auth"`
	Events  EventsConfig  `yaml:"events"`
	Catalog CatalogConfig `yaml:"catalog"`
}

type HTTPConfig struct {
	// Addr is the listen address (default ":9091")
	Addr string `yaml:"addr"`
	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

type StorageConfig struct {
	// Driver is "memory" or "sqlite"
	Driver string `yaml:"driver"`
	// Path is the sqlite database file
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type AuthConfig struct {
	// Captcha enables the login/signup text challenge
	Captcha bool `yaml:"captcha"`
}

type EventsConfig struct {
	// NATSURL empty disables event publishing
	NATSURL string `yaml:"nats_url"`
	Prefix  string `yaml:"prefix"`
}

type CatalogConfig struct {
	// Path to a YAML catalog; empty uses the built-in one
	Path string `yaml:"path"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Addr:            ":9091",
			ShutdownTimeout: 5 * time.Second,
		},
		Storage: StorageConfig{
			Driver: StorageMemory,
			Path:   filepath.Join(".baba", "session.db"),
		},
		Log: LogConfig{
			Level: "info",
		},
		Auth: AuthConfig{
			Captcha: true,
		},
		Events: EventsConfig{
			Prefix: "baba",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.HTTP.Addr == "" {
		return fmt.Errorf("http.addr is required")
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		return fmt.Errorf("http.shutdown_timeout must be positive")
	}
	switch c.Storage.Driver {
	case StorageMemory:
	case StorageSQLite:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for sqlite")
		}
	default:
		return fmt.Errorf("storage.driver must be %q or %q, got %q", StorageMemory, StorageSQLite, c.Storage.Driver)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file on top of the defaults
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}

// Load reads path (optional), applies BABA_* environment overrides and validates.
func Load(path string) (*Config, error) {
	config := DefaultConfig()
	if path != "" {
		c, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		config = c
	}
	config.applyEnv(os.LookupEnv)
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup("BABA_HTTP_ADDR"); ok && v != "" {
		c.HTTP.Addr = v
	}
	if v, ok := lookup("BABA_STORAGE_PATH"); ok && v != "" {
		c.Storage.Driver = StorageSQLite
		c.Storage.Path = v
	}
	if v, ok := lookup("BABA_NATS_URL"); ok {
		c.Events.NATSURL = v
	}
	if v, ok := lookup("BABA_LOG_LEVEL"); ok && v != "" {
		c.Log.Level = v
	}
}
