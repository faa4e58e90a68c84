// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for creating default service implementations

package recipes

import (
	"os"
	"time"

	"recipes-app-api/core/interfaces"
	httpInfra "recipes-app-api/infrastructure/http/standard"
	"recipes-app-api/infrastructure/logger/structured"
	"recipes-app-api/infrastructure/storage/memory"
	"recipes-app-api/infrastructure/storage/sqlite"
)

// DefaultTimeout bounds each catalog request made by the default HTTP client
const DefaultTimeout = 10 * time.Second

// DefaultHTTPClient creates a default HTTP client; it does not retry
func DefaultHTTPClient() interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(DefaultTimeout)
}

// DefaultHTTPClientWithTimeout creates a default HTTP client with the given timeout
func DefaultHTTPClientWithTimeout(timeout time.Duration) interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(timeout)
}

// DefaultMemoryStore creates an in-memory store; favorites last for the process lifetime
func DefaultMemoryStore() interfaces.KeyValueStore {
	return memory.NewMemoryStore()
}

// DefaultSQLiteStore creates a SQLite store with the given file path
func DefaultSQLiteStore(filePath string) (*sqlite.Client, error) {
	return sqlite.NewSQLiteStore(filePath)
}

// DefaultLogger creates a text logger writing to stderr at info level
func DefaultLogger() interfaces.Logger {
	logger, err := structured.NewWithWriter(os.Stderr, "info", "text")
	if err != nil {
		return QuietLogger()
	}
	return logger
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return &quietLogger{}
}

// quietLogger is a logger that discards all output
type quietLogger struct{}

func (q *quietLogger) Debug(msg string, fields map[string]interface{}) {}
func (q *quietLogger) Info(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Warn(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Error(msg string, fields map[string]interface{}) {}
