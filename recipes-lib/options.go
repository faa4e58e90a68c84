// ABOUTME: Configuration options for the Recipes library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package recipes

import (
	"time"

	"recipes-app-api/core/catalog"
	"recipes-app-api/core/favorites"
	"recipes-app-api/core/interfaces"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithStore sets the key-value store backing the favorites
func WithStore(store interfaces.KeyValueStore) Option {
	return func(c *Config) error {
		if store == nil {
			return NewError(ErrorTypeConfiguration, "store cannot be nil")
		}
		c.Store = store
		return nil
	}
}

// WithSQLiteStore backs the favorites with a SQLite file at path
func WithSQLiteStore(path string) Option {
	return func(c *Config) error {
		store, err := DefaultSQLiteStore(path)
		if err != nil {
			return NewError(ErrorTypeConfiguration, "failed to open sqlite store").
				WithCause(err).
				WithContext("path", path)
		}
		c.Store = store
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		if client == nil {
			return NewError(ErrorTypeConfiguration, "HTTP client cannot be nil")
		}
		c.HTTPClient = client
		return nil
	}
}

// WithTimeout replaces the HTTP client with a default one using timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout <= 0 {
			return NewError(ErrorTypeValidation, "timeout must be positive").
				WithContext("timeout", timeout.String())
		}
		c.HTTPClient = DefaultHTTPClientWithTimeout(timeout)
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}

// WithBaseURL points the client at another catalog root, e.g. a test server
func WithBaseURL(baseURL string) Option {
	return func(c *Config) error {
		c.BaseURL = baseURL
		return nil
	}
}

// WithFavoritesKey sets the storage key holding the favorites
func WithFavoritesKey(key string) Option {
	return func(c *Config) error {
		if key == "" {
			return NewError(ErrorTypeValidation, "favorites key cannot be empty")
		}
		c.FavoritesKey = key
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		Store:        DefaultMemoryStore(),
		HTTPClient:   DefaultHTTPClient(),
		Logger:       QuietLogger(),
		BaseURL:      catalog.DefaultBaseURL,
		FavoritesKey: favorites.DefaultKey,
	}
}
