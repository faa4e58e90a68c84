// ABOUTME: Storage backend selection for the favorites key-value store
// ABOUTME: Opens sqlite, redis or memory storage from configuration, falling back to memory

package storage

import (
	"fmt"

	"recipes-app-api/core/interfaces"
	"recipes-app-api/infrastructure/storage/memory"
	"recipes-app-api/infrastructure/storage/redis"
	"recipes-app-api/infrastructure/storage/sqlite"
	"recipes-app-api/pkg/config"
)

// Backend names accepted in StorageConfig.Type
const (
	TypeSQLite = "sqlite"
	TypeRedis  = "redis"
	TypeMemory = "memory"
)

// Store is a KeyValueStore that may hold resources needing release
type Store struct {
	interfaces.KeyValueStore

	// Type is the backend actually in use, which differs from the configured one after a fallback
	Type  string
	close func() error
}

// Close releases the backend's resources
func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Open creates the configured backend. When the backend cannot be opened the
// failure is logged and an in-memory store is returned instead, so the API
// keeps serving with favorites that last until restart.
func Open(cfg config.StorageConfig, logger interfaces.Logger) *Store {
	store, err := open(cfg, logger)
	if err == nil {
		logInfo(logger, "Using "+store.Type+" storage", nil)
		return store
	}

	logError(logger, "Failed to open storage, falling back to memory", map[string]interface{}{
		"type":  cfg.Type,
		"error": err.Error(),
	})
	return &Store{KeyValueStore: memory.NewMemoryStore(), Type: TypeMemory}
}

// OpenStrict creates the configured backend without falling back
func OpenStrict(cfg config.StorageConfig, logger interfaces.Logger) (*Store, error) {
	return open(cfg, logger)
}

func open(cfg config.StorageConfig, logger interfaces.Logger) (*Store, error) {
	switch cfg.Type {
	case TypeSQLite:
		var (
			client *sqlite.Client
			err    error
		)
		if logger != nil {
			client, err = sqlite.NewSQLiteStoreWithLogger(cfg.SQLite.Path, logger)
		} else {
			client, err = sqlite.NewSQLiteStore(cfg.SQLite.Path)
		}
		if err != nil {
			return nil, err
		}
		return &Store{KeyValueStore: client, Type: TypeSQLite, close: client.Close}, nil

	case TypeRedis:
		client, err := redis.NewRedisStore(cfg.Redis)
		if err != nil {
			return nil, err
		}
		return &Store{KeyValueStore: client, Type: TypeRedis, close: client.Close}, nil

	case TypeMemory, "":
		return &Store{KeyValueStore: memory.NewMemoryStore(), Type: TypeMemory}, nil

	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
	}
}

func logInfo(logger interfaces.Logger, msg string, fields map[string]interface{}) {
	if logger != nil {
		logger.Info(msg, fields)
	}
}

func logError(logger interfaces.Logger, msg string, fields map[string]interface{}) {
	if logger != nil {
		logger.Error(msg, fields)
	}
}
