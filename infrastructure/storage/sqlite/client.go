// ABOUTME: SQLite-based key-value store for durable user-local data
// ABOUTME: Provides a file-based store that survives application restarts

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"recipes-app-api/core/interfaces"
)

// Client implements the KeyValueStore interface using SQLite
type Client struct {
	db       *sql.DB
	filePath string
	logger   Logger
}

// NewSQLiteStore creates a new SQLite store client
func NewSQLiteStore(filePath string) (*Client, error) {
	return NewSQLiteStoreWithLogger(filePath, nil)
}

// NewSQLiteStoreWithLogger creates a new SQLite store client that reports suspicious keys
func NewSQLiteStoreWithLogger(filePath string, logger Logger) (*Client, error) {
	if filePath == "" {
		filePath = "favorites.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// A single connection keeps ":memory:" databases consistent and
	// serialises writers on the file
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	client := &Client{
		db:       db,
		filePath: filePath,
		logger:   logger,
	}

	if err := client.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return client, nil
}

// initSchema creates the store table if it doesn't exist
func (c *Client) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS kv_store (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at INTEGER NOT NULL
		);
	`

	_, err := c.db.Exec(query)
	return err
}

// Get retrieves a value from the store
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ValidateKey(key, c.logger); err != nil {
		return nil, err
	}

	var value []byte
	err := c.db.QueryRowContext(ctx, "SELECT value FROM kv_store WHERE key = ?", key).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", interfaces.ErrKeyNotFound, truncateKey(key))
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get value: %w", err)
	}

	return value, nil
}

// Set stores a value under key, replacing any previous value
func (c *Client) Set(ctx context.Context, key string, value []byte) error {
	if err := ValidateKey(key, c.logger); err != nil {
		return err
	}

	if err := ValidateValue(value); err != nil {
		return err
	}

	query := `
		INSERT OR REPLACE INTO kv_store (key, value, updated_at)
		VALUES (?, ?, ?)
	`

	_, err := c.db.ExecContext(ctx, query, key, value, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	return nil
}

// Delete removes a value from the store
func (c *Client) Delete(ctx context.Context, key string) error {
	if err := ValidateKey(key, c.logger); err != nil {
		return err
	}

	_, err := c.db.ExecContext(ctx, "DELETE FROM kv_store WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}

	return nil
}

// Close closes the database connection
func (c *Client) Close() error {
	return c.db.Close()
}

// Stats returns store statistics
func (c *Client) Stats() (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	var count int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM kv_store").Scan(&count); err != nil {
		return nil, err
	}
	stats["total_entries"] = count

	var pageCount, pageSize int
	err := c.db.QueryRow("PRAGMA page_count").Scan(&pageCount)
	if err == nil {
		err = c.db.QueryRow("PRAGMA page_size").Scan(&pageSize)
		if err == nil {
			stats["db_size_bytes"] = pageCount * pageSize
		}
	}

	stats["file_path"] = c.filePath

	return stats, nil
}
