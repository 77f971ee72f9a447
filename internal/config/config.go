// Package config provides configuration management for the contacts API server.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Default configuration values.
const (
	DefaultServerPort      = 8080
	DefaultLogLevel        = "info"
	DefaultShutdownTimeout = 30 * time.Second
	DefaultMetricsEnabled  = true
	DefaultStoreBackend    = "memory"
	DefaultSQLiteDSN       = "file:contacts.db"
	DefaultRedisKeyPrefix  = "contact:"
	DefaultEnvFile         = ".env"
)

// Environment variable names.
const (
	EnvFile            = "APP_ENV_FILE"
	EnvServerPort      = "APP_SERVER_PORT"
	EnvLogLevel        = "APP_LOG_LEVEL"
	EnvShutdownTimeout = "APP_SHUTDOWN_TIMEOUT"
	EnvMetricsEnabled  = "APP_METRICS_ENABLED"
	EnvStoreBackend    = "APP_STORE_BACKEND"
	EnvSQLiteDSN       = "APP_SQLITE_DSN"
	EnvRedisURL        = "APP_REDIS_URL"
	EnvRedisKeyPrefix  = "APP_REDIS_KEY_PREFIX"
)

// Config holds the application configuration.
type Config struct {
	ServerPort      int
	LogLevel        string
	ShutdownTimeout time.Duration
	MetricsEnabled  bool

	// Store backend: memory, sqlite, redis.
	StoreBackend   string
	SQLiteDSN      string
	RedisURL       string
	RedisKeyPrefix string
}

// Validation errors.
var (
	ErrInvalidServerPort      = errors.New("server port must be between 1 and 65535")
	ErrInvalidLogLevel        = errors.New("log level must be one of: debug, info, warn, error")
	ErrInvalidShutdownTimeout = errors.New("shutdown timeout must be positive")
	ErrInvalidStoreBackend    = errors.New("store backend must be one of: memory, sqlite, redis")
	ErrMissingSQLiteDSN       = errors.New("sqlite DSN must be set when store backend is sqlite")
	ErrMissingRedisURL        = errors.New("redis URL must be set when store backend is redis")
)

// Load reads configuration from an optional dotenv file and environment
// variables, applying defaults. Variables already present in the process
// environment take priority over the dotenv file.
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("loading env file: %w", err)
	}

	cfg := &Config{
		ServerPort:      DefaultServerPort,
		LogLevel:        DefaultLogLevel,
		ShutdownTimeout: DefaultShutdownTimeout,
		MetricsEnabled:  DefaultMetricsEnabled,
		StoreBackend:    DefaultStoreBackend,
		SQLiteDSN:       DefaultSQLiteDSN,
		RedisKeyPrefix:  DefaultRedisKeyPrefix,
	}

	if err := cfg.loadFromEnv(); err != nil {
		return nil, fmt.Errorf("loading config from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// loadEnvFile loads APP_ENV_FILE if set, which must exist, or else ./.env
// when present.
func loadEnvFile() error {
	if path := os.Getenv(EnvFile); path != "" {
		return godotenv.Load(path)
	}

	err := godotenv.Load(DefaultEnvFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// loadFromEnv loads configuration values from environment variables.
func (c *Config) loadFromEnv() error {
	if val := os.Getenv(EnvServerPort); val != "" {
		port, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvServerPort, err)
		}
		c.ServerPort = port
	}

	if val := os.Getenv(EnvLogLevel); val != "" {
		c.LogLevel = val
	}

	if val := os.Getenv(EnvShutdownTimeout); val != "" {
		timeout, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvShutdownTimeout, err)
		}
		c.ShutdownTimeout = timeout
	}

	if val := os.Getenv(EnvMetricsEnabled); val != "" {
		enabled, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvMetricsEnabled, err)
		}
		c.MetricsEnabled = enabled
	}

	c.loadStoreEnv()

	return nil
}

// loadStoreEnv loads store backend environment variables.
func (c *Config) loadStoreEnv() {
	if val := os.Getenv(EnvStoreBackend); val != "" {
		c.StoreBackend = val
	}

	if val := os.Getenv(EnvSQLiteDSN); val != "" {
		c.SQLiteDSN = val
	}

	if val := os.Getenv(EnvRedisURL); val != "" {
		c.RedisURL = val
	}

	if val := os.Getenv(EnvRedisKeyPrefix); val != "" {
		c.RedisKeyPrefix = val
	}
}

// Validate checks if the configuration values are valid.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	return c.validateStore()
}

// validateServer validates server-related configuration.
func (c *Config) validateServer() error {
	if c.ServerPort < 1 || c.ServerPort > 65535 {
		return ErrInvalidServerPort
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return ErrInvalidLogLevel
	}

	if c.ShutdownTimeout <= 0 {
		return ErrInvalidShutdownTimeout
	}

	return nil
}

// validateStore validates the store backend and its required settings.
func (c *Config) validateStore() error {
	switch c.StoreBackend {
	case "memory":
	case "sqlite":
		if c.SQLiteDSN == "" {
			return ErrMissingSQLiteDSN
		}
	case "redis":
		if c.RedisURL == "" {
			return ErrMissingRedisURL
		}
	default:
		return ErrInvalidStoreBackend
	}

	return nil
}

// Address returns the server address in host:port format.
func (c *Config) Address() string {
	return fmt.Sprintf(":%d", c.ServerPort)
}
