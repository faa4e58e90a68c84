package favorites

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipes-app-api/core/domain"
	"recipes-app-api/core/interfaces"
)

func recipe(id, name string) domain.Recipe {
	r := domain.Recipe{ID: id, Name: name, Category: "Vegetarian", Area: "Italian"}
	r.Ingredients[0] = domain.IngredientSlot{Ingredient: "penne rigate", Measure: "1 pound"}
	return r
}

func newTestStore(kv interfaces.KeyValueStore) (*Store, *mockLogger) {
	logger := &mockLogger{}
	return NewStore(interfaces.Dependencies{Store: kv, Logger: logger}, ""), logger
}

func TestNewStore_DefaultKey(t *testing.T) {
	store := NewStore(interfaces.Dependencies{}, "")

	assert.Equal(t, DefaultKey, store.key)
	assert.Equal(t, "recipe-favorites", store.key)
}

func TestStore_ListEmpty(t *testing.T) {
	store, _ := newTestStore(newMemoryStore())

	favorites := store.List(context.Background())

	require.NotNil(t, favorites)
	assert.Empty(t, favorites)
}

func TestStore_AddThenIsFavorite(t *testing.T) {
	store, _ := newTestStore(newMemoryStore())
	ctx := context.Background()

	assert.True(t, store.Add(ctx, recipe("52771", "Penne Arrabiata")))
	assert.True(t, store.IsFavorite(ctx, "52771"))
	assert.False(t, store.IsFavorite(ctx, "52772"))
}

func TestStore_AddTwiceKeepsOneCopy(t *testing.T) {
	store, _ := newTestStore(newMemoryStore())
	ctx := context.Background()
	r := recipe("52771", "Penne Arrabiata")

	assert.True(t, store.Add(ctx, r))
	assert.False(t, store.Add(ctx, r), "second add should be a no-op")

	favorites := store.List(ctx)
	require.Len(t, favorites, 1)
	assert.Equal(t, "52771", favorites[0].ID)
}

func TestStore_ListKeepsInsertionOrder(t *testing.T) {
	store, _ := newTestStore(newMemoryStore())
	ctx := context.Background()

	for _, id := range []string{"3", "1", "2"} {
		require.True(t, store.Add(ctx, recipe(id, "Recipe "+id)))
	}

	favorites := store.List(ctx)
	require.Len(t, favorites, 3)
	assert.Equal(t, []string{"3", "1", "2"}, []string{favorites[0].ID, favorites[1].ID, favorites[2].ID})
}

func TestStore_AddRejectsMissingID(t *testing.T) {
	kv := newMemoryStore()
	store, _ := newTestStore(kv)

	assert.False(t, store.Add(context.Background(), recipe("", "Nameless")))
	assert.Empty(t, kv.data)
}

func TestStore_RemoveAbsentIsIdempotent(t *testing.T) {
	store, _ := newTestStore(newMemoryStore())
	ctx := context.Background()
	require.True(t, store.Add(ctx, recipe("52771", "Penne Arrabiata")))

	before := store.List(ctx)
	assert.True(t, store.Remove(ctx, "does-not-exist"))
	after := store.List(ctx)

	assert.Equal(t, before, after)
}

func TestStore_RemovePresent(t *testing.T) {
	store, _ := newTestStore(newMemoryStore())
	ctx := context.Background()
	require.True(t, store.Add(ctx, recipe("1", "One")))
	require.True(t, store.Add(ctx, recipe("2", "Two")))

	assert.True(t, store.Remove(ctx, "1"))

	favorites := store.List(ctx)
	require.Len(t, favorites, 1)
	assert.Equal(t, "2", favorites[0].ID)
	assert.False(t, store.IsFavorite(ctx, "1"))
}

func TestStore_ClearAll(t *testing.T) {
	tests := []struct {
		name  string
		setup func(ctx context.Context, s *Store)
	}{
		{"empty store", func(ctx context.Context, s *Store) {}},
		{"populated store", func(ctx context.Context, s *Store) {
			s.Add(ctx, recipe("1", "One"))
			s.Add(ctx, recipe("2", "Two"))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := newTestStore(newMemoryStore())
			ctx := context.Background()
			tt.setup(ctx, store)

			assert.True(t, store.ClearAll(ctx))

			favorites := store.List(ctx)
			assert.NotNil(t, favorites)
			assert.Empty(t, favorites)
		})
	}
}

func TestStore_SurvivesRestart(t *testing.T) {
	kv := newMemoryStore()
	ctx := context.Background()
	r := recipe("52771", "Penne Arrabiata")
	r.Tags = []string{"Pasta", "Curry"}

	first, _ := newTestStore(kv)
	require.True(t, first.Add(ctx, r))

	second, _ := newTestStore(kv)
	favorites := second.List(ctx)

	require.Len(t, favorites, 1)
	assert.Equal(t, r.ID, favorites[0].ID)
	assert.Equal(t, r.Name, favorites[0].Name)
	assert.Equal(t, r.Tags, favorites[0].Tags)
	assert.Equal(t, r.Ingredients, favorites[0].Ingredients)
}

func TestStore_CorruptPayloadIsEmpty(t *testing.T) {
	kv := newMemoryStore()
	kv.data[DefaultKey] = []byte("{not json")
	store, logger := newTestStore(kv)
	ctx := context.Background()

	favorites := store.List(ctx)

	require.NotNil(t, favorites)
	assert.Empty(t, favorites)
	assert.False(t, store.IsFavorite(ctx, "52771"))
	assert.Greater(t, logger.errorCount(), 0)

	// A later add replaces the corrupt payload
	assert.True(t, store.Add(ctx, recipe("52771", "Penne Arrabiata")))
	assert.Len(t, store.List(ctx), 1)
}

func TestStore_ReadFailureResolvesToDefaults(t *testing.T) {
	kv := &mockStore{
		getFunc: func(ctx context.Context, key string) ([]byte, error) {
			return nil, errors.New("disk I/O error")
		},
		setFunc: func(ctx context.Context, key string, value []byte) error {
			t.Error("Set should not be called when the current set could not be read")
			return nil
		},
	}
	store, logger := newTestStore(kv)
	ctx := context.Background()

	assert.Empty(t, store.List(ctx))
	assert.False(t, store.Add(ctx, recipe("1", "One")))
	assert.False(t, store.Remove(ctx, "1"))
	assert.False(t, store.IsFavorite(ctx, "1"))
	assert.Greater(t, logger.errorCount(), 0)
}

func TestStore_WriteFailureReturnsFalse(t *testing.T) {
	kv := &mockStore{
		setFunc: func(ctx context.Context, key string, value []byte) error {
			return errors.New("quota exceeded")
		},
		deleteFunc: func(ctx context.Context, key string) error {
			return errors.New("quota exceeded")
		},
	}
	store, logger := newTestStore(kv)
	ctx := context.Background()

	assert.False(t, store.Add(ctx, recipe("1", "One")))
	assert.False(t, store.Remove(ctx, "1"))
	assert.False(t, store.ClearAll(ctx))
	assert.Equal(t, 3, logger.errorCount())
}

func TestStore_PanickingStoreIsContained(t *testing.T) {
	kv := &mockStore{
		getFunc: func(ctx context.Context, key string) ([]byte, error) {
			panic("driver bug")
		},
		deleteFunc: func(ctx context.Context, key string) error {
			panic("driver bug")
		},
	}
	store, logger := newTestStore(kv)
	ctx := context.Background()

	assert.NotPanics(t, func() {
		favorites := store.List(ctx)
		assert.NotNil(t, favorites)
		assert.Empty(t, favorites)
		assert.False(t, store.Add(ctx, recipe("1", "One")))
		assert.False(t, store.IsFavorite(ctx, "1"))
		assert.False(t, store.ClearAll(ctx))
	})
	assert.Equal(t, 4, logger.errorCount())

	// The lock must have been released by the panicking calls
	assert.False(t, store.Remove(ctx, "1"))
}

func TestStore_NoBackingStore(t *testing.T) {
	store := NewStore(interfaces.Dependencies{}, "")
	ctx := context.Background()

	assert.Empty(t, store.List(ctx))
	assert.False(t, store.Add(ctx, recipe("1", "One")))
	assert.False(t, store.ClearAll(ctx))
}

func TestStore_Toggle(t *testing.T) {
	store, _ := newTestStore(newMemoryStore())
	ctx := context.Background()
	r := recipe("52771", "Penne Arrabiata")

	favorite, ok := store.Toggle(ctx, r)
	assert.True(t, ok)
	assert.True(t, favorite)
	assert.True(t, store.IsFavorite(ctx, r.ID))

	favorite, ok = store.Toggle(ctx, r)
	assert.True(t, ok)
	assert.False(t, favorite)
	assert.False(t, store.IsFavorite(ctx, r.ID))
}

func TestStore_CustomKey(t *testing.T) {
	kv := newMemoryStore()
	store := NewStore(interfaces.Dependencies{Store: kv}, "user-42:favorites")

	require.True(t, store.Add(context.Background(), recipe("1", "One")))

	_, ok := kv.data["user-42:favorites"]
	assert.True(t, ok)
	_, ok = kv.data[DefaultKey]
	assert.False(t, ok)
}
