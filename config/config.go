package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultSecretKey is the development secret. Load warns when it is still in use.
const DefaultSecretKey = "your_secret_key"

// Config holds the application configuration
type Config struct {
	// HTTP server configuration
	HTTP HTTPConfig `yaml:"http"`

	// DatabaseURL selects the storage backend (see store.Open)
	DatabaseURL string `yaml:"database_url"`

	// Session cookie configuration
	Session SessionConfig `yaml:"session"`

	// Feature flags
	Features FeatureFlags `yaml:"features"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level"`
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// SessionConfig holds settings for the signed session cookie
type SessionConfig struct {
	SecretKey  string        `yaml:"secret_key"`
	CookieName string        `yaml:"cookie_name"`
	TTL        time.Duration `yaml:"ttl"`
	Secure     bool          `yaml:"secure"`
}

// FeatureFlags holds feature flag settings
type FeatureFlags struct {
	StatsEnabled bool `yaml:"stats_enabled"`
	Debug        bool `yaml:"debug"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Host: "0.0.0.0",
			Port: 5000,
		},
		DatabaseURL: "sqlite:///events.db",
		Session: SessionConfig{
			SecretKey:  DefaultSecretKey,
			CookieName: "eventdesk_session",
			TTL:        7 * 24 * time.Hour,
		},
		Features: FeatureFlags{
			StatsEnabled: true,
		},
		LogLevel: "info",
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// path is non-empty), then environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// applyEnv overlays environment variables. DATABASE_URL and SECRET_KEY keep
// their conventional unprefixed names.
func (c *Config) applyEnv() {
	c.HTTP.Host = getEnvString("EVENTDESK_HTTP_HOST", c.HTTP.Host)
	c.HTTP.Port = getEnvInt("EVENTDESK_HTTP_PORT", c.HTTP.Port)
	c.DatabaseURL = getEnvString("DATABASE_URL", c.DatabaseURL)

	c.Session.SecretKey = getEnvString("SECRET_KEY", c.Session.SecretKey)
	c.Session.CookieName = getEnvString("EVENTDESK_SESSION_COOKIE", c.Session.CookieName)
	if minutes := getEnvInt("EVENTDESK_SESSION_TTL_MINUTES", 0); minutes > 0 {
		c.Session.TTL = time.Duration(minutes) * time.Minute
	}
	c.Session.Secure = getEnvBool("EVENTDESK_SESSION_SECURE", c.Session.Secure)

	c.Features.StatsEnabled = getEnvBool("EVENTDESK_FEATURE_STATS", c.Features.StatsEnabled)
	c.Features.Debug = getEnvBool("EVENTDESK_DEBUG", c.Features.Debug)
	c.LogLevel = getEnvString("EVENTDESK_LOG_LEVEL", c.LogLevel)
}

// Validate checks values that would make the server unusable
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid HTTP port %d", c.HTTP.Port)
	}
	if c.Session.SecretKey == "" {
		return fmt.Errorf("session secret key must not be empty")
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("session cookie name must not be empty")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session TTL must be positive")
	}
	return nil
}

// UsesDefaultSecret reports whether the development secret is still configured
func (c *Config) UsesDefaultSecret() bool {
	return c.Session.SecretKey == DefaultSecretKey
}

// GetAddress returns the HTTP server address
func (c *Config) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.HTTP.Host, c.HTTP.Port)
}

// Helper functions for environment variables
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
