// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"recipes-app-api/core/domain"
)

// CatalogService queries the remote recipe catalog.
// Absence of results is always an empty slice; faults are CatalogUnavailableError.
type CatalogService interface {
	SearchByName(ctx context.Context, name string) ([]domain.Recipe, error)
	GetRandom(ctx context.Context, count int) ([]domain.Recipe, error)
	GetByID(ctx context.Context, id string) (*domain.Recipe, error)
	GetByCategory(ctx context.Context, category string) ([]domain.Recipe, error)
	GetByIngredient(ctx context.Context, ingredient string) ([]domain.Recipe, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// FavoritesService maintains the user-local favorites set.
// Operations never fail loudly; see the favorites package for the defaults.
type FavoritesService interface {
	List(ctx context.Context) []domain.Recipe
	Add(ctx context.Context, recipe domain.Recipe) bool
	Remove(ctx context.Context, id string) bool
	IsFavorite(ctx context.Context, id string) bool
	ClearAll(ctx context.Context) bool
	Toggle(ctx context.Context, recipe domain.Recipe) (favorite bool, ok bool)
}
