// ABOUTME: Favorites store keeps the user's favorite recipes in a key-value store
// ABOUTME: Every operation is a full read-modify-write; faults are logged and resolved to safe defaults

package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"recipes-app-api/core/domain"
	"recipes-app-api/core/interfaces"
)

// DefaultKey is the storage key holding the favorites payload
const DefaultKey = "recipe-favorites"

// Store maintains an ordered set of recipe snapshots keyed by recipe ID.
//
// The favorites feature is non-critical: storage, decoding and encoding
// faults (including panics raised by a store implementation) never reach
// the caller. They are logged and each operation returns its documented
// default instead.
type Store struct {
	deps interfaces.Dependencies
	key  string

	// mu serialises read-modify-write cycles against the backing store
	mu sync.Mutex
}

// NewStore creates a favorites store over deps.Store.
// An empty key selects DefaultKey.
func NewStore(deps interfaces.Dependencies, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{
		deps: deps,
		key:  key,
	}
}

// List returns the favorites in insertion order.
// Absent, unreadable or corrupt storage yields an empty slice.
func (s *Store) List(ctx context.Context) (recipes []domain.Recipe) {
	defer func() {
		if recipes == nil {
			recipes = []domain.Recipe{}
		}
	}()
	defer s.recoverFault("list")

	s.mu.Lock()
	defer s.mu.Unlock()

	recipes, _ = s.load(ctx)
	return recipes
}

// Add appends recipe unless a favorite with the same ID exists.
// Returns false when already present, when the recipe has no ID, or when the write failed.
func (s *Store) Add(ctx context.Context, recipe domain.Recipe) (added bool) {
	defer s.recoverFault("add")

	if !recipe.HasID() {
		s.logWarn("Refusing to favorite recipe without an ID", map[string]interface{}{
			"name": recipe.Name,
		})
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx)
	if err != nil {
		return false
	}

	if indexOf(current, recipe.ID) >= 0 {
		return false
	}

	if err := s.save(ctx, append(current, recipe)); err != nil {
		return false
	}
	return true
}

// Remove drops any favorite with the given ID.
// Returns true once the set is persisted, whether or not an entry matched.
func (s *Store) Remove(ctx context.Context, id string) (removed bool) {
	defer s.recoverFault("remove")

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx)
	if err != nil {
		return false
	}

	kept := make([]domain.Recipe, 0, len(current))
	for _, recipe := range current {
		if recipe.ID != id {
			kept = append(kept, recipe)
		}
	}

	if err := s.save(ctx, kept); err != nil {
		return false
	}
	return true
}

// IsFavorite reports whether a favorite with the given ID exists.
// Returns false on any read fault.
func (s *Store) IsFavorite(ctx context.Context, id string) (favorite bool) {
	defer s.recoverFault("check")

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx)
	if err != nil {
		return false
	}
	return indexOf(current, id) >= 0
}

// ClearAll removes every favorite. Returns false if the store could not be cleared.
func (s *Store) ClearAll(ctx context.Context) (cleared bool) {
	defer s.recoverFault("clear")

	if s.deps.Store == nil {
		s.logError("Failed to clear favorites", errors.New("store not configured"))
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.deps.Store.Delete(ctx, s.key); err != nil {
		s.logError("Failed to clear favorites", err)
		return false
	}
	return true
}

// Toggle adds the recipe if it is not a favorite and removes it otherwise.
// favorite is the resulting membership; ok is false when the change could not be persisted.
func (s *Store) Toggle(ctx context.Context, recipe domain.Recipe) (favorite bool, ok bool) {
	defer s.recoverFault("toggle")

	if !recipe.HasID() {
		return false, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx)
	if err != nil {
		return false, false
	}

	if idx := indexOf(current, recipe.ID); idx >= 0 {
		next := append(append([]domain.Recipe{}, current[:idx]...), current[idx+1:]...)
		if err := s.save(ctx, next); err != nil {
			return true, false
		}
		return false, true
	}

	if err := s.save(ctx, append(current, recipe)); err != nil {
		return false, false
	}
	return true, true
}

// load reads and decodes the favorites payload.
// A missing key or a corrupt payload both decode to an empty set; only a
// failing store is reported, so writers do not overwrite data they could not read.
func (s *Store) load(ctx context.Context) ([]domain.Recipe, error) {
	if s.deps.Store == nil {
		err := errors.New("store not configured")
		s.logError("Failed to read favorites", err)
		return nil, err
	}

	data, err := s.deps.Store.Get(ctx, s.key)
	if errors.Is(err, interfaces.ErrKeyNotFound) {
		return []domain.Recipe{}, nil
	}
	if err != nil {
		s.logError("Failed to read favorites", err)
		return nil, err
	}

	if len(data) == 0 {
		return []domain.Recipe{}, nil
	}

	var recipes []domain.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		s.logError("Discarding corrupt favorites payload", err)
		return []domain.Recipe{}, nil
	}
	if recipes == nil {
		recipes = []domain.Recipe{}
	}
	return recipes, nil
}

// save encodes and persists the whole favorites set
func (s *Store) save(ctx context.Context, recipes []domain.Recipe) error {
	data, err := json.Marshal(recipes)
	if err != nil {
		s.logError("Failed to encode favorites", err)
		return err
	}

	if err := s.deps.Store.Set(ctx, s.key, data); err != nil {
		s.logError("Failed to persist favorites", err)
		return err
	}
	return nil
}

// recoverFault converts a panic inside an operation into a logged fault.
// The operation's named result keeps its zero value, which is the documented default.
func (s *Store) recoverFault(operation string) {
	if r := recover(); r != nil {
		s.logError("Favorites "+operation+" panicked", fmt.Errorf("%v", r))
	}
}

func (s *Store) logError(msg string, err error) {
	if s.deps.Logger != nil {
		s.deps.Logger.Error(msg, map[string]interface{}{
			"key":   s.key,
			"error": err.Error(),
		})
	}
}

func (s *Store) logWarn(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}

func indexOf(recipes []domain.Recipe, id string) int {
	for i, recipe := range recipes {
		if recipe.ID == id {
			return i
		}
	}
	return -1
}
