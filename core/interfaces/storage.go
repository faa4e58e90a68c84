// ABOUTME: Storage interfaces for persisting user-local data
// ABOUTME: Defines the key-value contract the favorites store is written against

package interfaces

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KeyValueStore.Get when the key is absent
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore defines a minimal persistent string-keyed byte store.
// Implementations can be SQLite, Redis, in-memory, or any other backend.
//
// Example usage:
//
//	store := someStore // implements KeyValueStore
//
//	// Persist a value
//	err := store.Set(ctx, "recipe-favorites", payload)
//
//	// Read it back
//	data, err := store.Get(ctx, "recipe-favorites")
//	if errors.Is(err, interfaces.ErrKeyNotFound) {
//		// nothing stored yet
//	}
//
//	// Remove it
//	err = store.Delete(ctx, "recipe-favorites")
type KeyValueStore interface {
	// Get retrieves the value stored under key.
	// Returns ErrKeyNotFound (possibly wrapped) if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	// Values never expire.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
