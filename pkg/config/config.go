// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, catalog, storage and logging settings

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig `yaml:"server"`

	// Catalog contains recipe catalog client configuration
	Catalog CatalogConfig `yaml:"catalog"`

	// Storage contains favorites storage configuration
	Storage StorageConfig `yaml:"storage"`

	// Log contains logger configuration
	Log LogConfig `yaml:"log"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string `yaml:"port" validate:"required,numeric"`

	// RandomCount is the number of recipes returned by the random endpoint when no count is given
	RandomCount int `yaml:"random_count" validate:"min=1,max=25"`
}

// CatalogConfig holds recipe catalog client configuration
type CatalogConfig struct {
	// BaseURL is the catalog API root
	BaseURL string `yaml:"base_url" validate:"required,url"`

	// TimeoutSeconds bounds each catalog request
	TimeoutSeconds int `yaml:"timeout_seconds" validate:"min=1"`

	// Retries is the number of retries for transport errors and 5xx responses
	Retries int `yaml:"retries" validate:"min=0,max=5"`
}

// Timeout returns the catalog request timeout as a duration
func (c CatalogConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// StorageConfig holds favorites storage configuration
type StorageConfig struct {
	// Type specifies the storage backend (sqlite/redis/memory)
	Type string `yaml:"type" validate:"oneof=sqlite redis memory"`

	// FavoritesKey is the key under which favorites are stored
	FavoritesKey string `yaml:"favorites_key" validate:"required"`

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig `yaml:"sqlite"`

	// Redis contains Redis-specific configuration
	Redis RedisConfig `yaml:"redis"`
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file
	Path string `yaml:"path"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string `yaml:"address"`

	// Password is the Redis authentication password
	Password string `yaml:"password"`

	// DB is the Redis database number
	DB int `yaml:"db" validate:"min=0"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn warning error"`
	Format string `yaml:"format" validate:"oneof=text json"`
	File   string `yaml:"file"`
}

// Defaults returns the configuration used when nothing is set
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        "8000",
			RandomCount: 8,
		},
		Catalog: CatalogConfig{
			BaseURL:        "https://www.themealdb.com/api/json/v1/1",
			TimeoutSeconds: 10,
			Retries:        0,
		},
		Storage: StorageConfig{
			Type:         "sqlite",
			FavoritesKey: "recipe-favorites",
			SQLite: SQLiteConfig{
				Path: "favorites.db",
			},
			Redis: RedisConfig{
				Address: "localhost:6379",
			},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := Defaults()
	applyEnv(cfg)
	return cfg, nil
}

// Load reads a YAML file, then applies environment overrides.
// An empty path behaves like LoadFromEnv.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Server.Port = getEnvOrDefault("PORT", cfg.Server.Port)
	cfg.Server.RandomCount = getEnvAsIntOrDefault("RANDOM_RECIPE_COUNT", cfg.Server.RandomCount)

	cfg.Catalog.BaseURL = getEnvOrDefault("CATALOG_BASE_URL", cfg.Catalog.BaseURL)
	cfg.Catalog.TimeoutSeconds = getEnvAsIntOrDefault("CATALOG_TIMEOUT", cfg.Catalog.TimeoutSeconds)
	cfg.Catalog.Retries = getEnvAsIntOrDefault("CATALOG_RETRIES", cfg.Catalog.Retries)

	cfg.Storage.Type = getEnvOrDefault("STORAGE_TYPE", cfg.Storage.Type)
	cfg.Storage.FavoritesKey = getEnvOrDefault("FAVORITES_KEY", cfg.Storage.FavoritesKey)
	cfg.Storage.SQLite.Path = getEnvOrDefault("SQLITE_PATH", cfg.Storage.SQLite.Path)
	cfg.Storage.Redis.Address = getEnvOrDefault("REDIS_ADDRESS", cfg.Storage.Redis.Address)
	cfg.Storage.Redis.Password = getEnvOrDefault("REDIS_PASSWORD", cfg.Storage.Redis.Password)
	cfg.Storage.Redis.DB = getEnvAsIntOrDefault("REDIS_DB", cfg.Storage.Redis.DB)

	cfg.Log.Level = strings.ToLower(getEnvOrDefault("LOG_LEVEL", cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(getEnvOrDefault("LOG_FORMAT", cfg.Log.Format))
	cfg.Log.File = getEnvOrDefault("LOG_FILE", cfg.Log.File)
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	switch c.Storage.Type {
	case "redis":
		if c.Storage.Redis.Address == "" {
			return fmt.Errorf("redis address cannot be empty when using redis storage")
		}
	case "sqlite":
		if c.Storage.SQLite.Path == "" {
			return fmt.Errorf("sqlite path cannot be empty when using sqlite storage")
		}
	}

	return nil
}

// formatValidationError formats validation errors into readable messages
func formatValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatFieldError(e))
	}
	return fmt.Errorf("%s", strings.Join(messages, "; "))
}

// formatFieldError formats a single field validation error
func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(strings.TrimPrefix(e.Namespace(), "Config."))

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "numeric":
		return fmt.Sprintf("%s must be numeric", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
