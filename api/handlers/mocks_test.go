package handlers

import (
	"context"

	"recipes-app-api/core/domain"
)

// mockCatalogService is a mock implementation of the catalog service
type mockCatalogService struct {
	searchByNameFunc    func(ctx context.Context, name string) ([]domain.Recipe, error)
	getRandomFunc       func(ctx context.Context, count int) ([]domain.Recipe, error)
	getByIDFunc         func(ctx context.Context, id string) (*domain.Recipe, error)
	getByCategoryFunc   func(ctx context.Context, category string) ([]domain.Recipe, error)
	getByIngredientFunc func(ctx context.Context, ingredient string) ([]domain.Recipe, error)
	listCategoriesFunc  func(ctx context.Context) ([]domain.Category, error)
}

func (m *mockCatalogService) SearchByName(ctx context.Context, name string) ([]domain.Recipe, error) {
	if m.searchByNameFunc != nil {
		return m.searchByNameFunc(ctx, name)
	}
	return []domain.Recipe{}, nil
}

func (m *mockCatalogService) GetRandom(ctx context.Context, count int) ([]domain.Recipe, error) {
	if m.getRandomFunc != nil {
		return m.getRandomFunc(ctx, count)
	}
	return []domain.Recipe{}, nil
}

func (m *mockCatalogService) GetByID(ctx context.Context, id string) (*domain.Recipe, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCatalogService) GetByCategory(ctx context.Context, category string) ([]domain.Recipe, error) {
	if m.getByCategoryFunc != nil {
		return m.getByCategoryFunc(ctx, category)
	}
	return []domain.Recipe{}, nil
}

func (m *mockCatalogService) GetByIngredient(ctx context.Context, ingredient string) ([]domain.Recipe, error) {
	if m.getByIngredientFunc != nil {
		return m.getByIngredientFunc(ctx, ingredient)
	}
	return []domain.Recipe{}, nil
}

func (m *mockCatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if m.listCategoriesFunc != nil {
		return m.listCategoriesFunc(ctx)
	}
	return []domain.Category{}, nil
}

// mockFavoritesService is an in-memory favorites service recording calls
type mockFavoritesService struct {
	recipes  []domain.Recipe
	failures bool
}

func (m *mockFavoritesService) List(ctx context.Context) []domain.Recipe {
	out := make([]domain.Recipe, len(m.recipes))
	copy(out, m.recipes)
	return out
}

func (m *mockFavoritesService) Add(ctx context.Context, recipe domain.Recipe) bool {
	if m.failures || m.IsFavorite(ctx, recipe.ID) {
		return false
	}
	m.recipes = append(m.recipes, recipe)
	return true
}

func (m *mockFavoritesService) Remove(ctx context.Context, id string) bool {
	if m.failures {
		return false
	}
	kept := m.recipes[:0]
	for _, r := range m.recipes {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	m.recipes = kept
	return true
}

func (m *mockFavoritesService) IsFavorite(ctx context.Context, id string) bool {
	for _, r := range m.recipes {
		if r.ID == id {
			return true
		}
	}
	return false
}

func (m *mockFavoritesService) ClearAll(ctx context.Context) bool {
	if m.failures {
		return false
	}
	m.recipes = nil
	return true
}

func (m *mockFavoritesService) Toggle(ctx context.Context, recipe domain.Recipe) (bool, bool) {
	if m.IsFavorite(ctx, recipe.ID) {
		return false, m.Remove(ctx, recipe.ID)
	}
	ok := m.Add(ctx, recipe)
	return ok, ok
}
