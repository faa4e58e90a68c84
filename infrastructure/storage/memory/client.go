// ABOUTME: In-memory key-value store built on patrickmn/go-cache
// ABOUTME: Process-local storage for tests, demos and the CLI's ephemeral mode

package memory

import (
	"context"
	"fmt"

	"github.com/patrickmn/go-cache"

	"recipes-app-api/core/interfaces"
)

// MemoryStore implements the KeyValueStore interface using in-memory storage.
// Entries never expire.
type MemoryStore struct {
	items *cache.Cache
}

// NewMemoryStore creates a new in-memory store instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: cache.New(cache.NoExpiration, 0),
	}
}

// Get retrieves a value from the store
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, ok := s.items.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", interfaces.ErrKeyNotFound, key)
	}

	stored := value.([]byte)

	// Return a copy so callers cannot mutate the stored value
	result := make([]byte, len(stored))
	copy(result, stored)
	return result, nil
}

// Set stores a value under key
func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	s.items.Set(key, valueCopy, cache.NoExpiration)
	return nil
}

// Delete removes a key from the store
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.items.Delete(key)
	return nil
}

// Len returns the number of stored keys
func (s *MemoryStore) Len() int {
	return s.items.ItemCount()
}
