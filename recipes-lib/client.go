// ABOUTME: Main client for the Recipes library combining catalog lookups and favorites
// ABOUTME: Offers a clean API for using core functionality without HTTP server dependencies

package recipes

import (
	"context"

	"recipes-app-api/core/catalog"
	"recipes-app-api/core/domain"
	"recipes-app-api/core/favorites"
	"recipes-app-api/core/interfaces"
)

// Recipe is a single catalog recipe
type Recipe = domain.Recipe

// Category is a catalog recipe category
type Category = domain.Category

// IngredientLine is a display-ready ingredient entry
type IngredientLine = domain.IngredientLine

// Client is the main entry point for the Recipes library
type Client struct {
	catalog   interfaces.CatalogService
	favorites interfaces.FavoritesService
	config    Config
}

// Config holds the configuration for the client
type Config struct {
	// Store backs the favorites
	Store interfaces.KeyValueStore

	// HTTPClient reaches the recipe catalog
	HTTPClient interfaces.HTTPClient

	// Logger receives diagnostic output
	Logger interfaces.Logger

	// BaseURL is the catalog API root
	BaseURL string

	// FavoritesKey is the storage key holding the favorites
	FavoritesKey string
}

// NewClient creates a new Recipes client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if config.Logger == nil {
		config.Logger = QuietLogger()
	}

	deps := interfaces.Dependencies{
		Store:      config.Store,
		HTTPClient: config.HTTPClient,
		Logger:     config.Logger,
	}

	return &Client{
		catalog:   catalog.NewCatalogService(deps, config.BaseURL),
		favorites: favorites.NewStore(deps, config.FavoritesKey),
		config:    config,
	}, nil
}

// Close releases the favorites store when it holds resources
func (c *Client) Close() error {
	if closer, ok := c.config.Store.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// Search returns recipes whose name matches query
func (c *Client) Search(ctx context.Context, query string) ([]Recipe, error) {
	recipes, err := c.catalog.SearchByName(ctx, query)
	return recipes, wrapCatalogError("search", err)
}

// Random returns up to count random recipes
func (c *Client) Random(ctx context.Context, count int) ([]Recipe, error) {
	recipes, err := c.catalog.GetRandom(ctx, count)
	return recipes, wrapCatalogError("random", err)
}

// Recipe returns the recipe with the given ID.
// A recipe missing from the catalog is reported as a not-found error.
func (c *Client) Recipe(ctx context.Context, id string) (*Recipe, error) {
	recipe, err := c.catalog.GetByID(ctx, id)
	if err != nil {
		return nil, wrapCatalogError("lookup", err)
	}
	if recipe == nil {
		return nil, NewError(ErrorTypeNotFound, "recipe not found").WithContext("id", id)
	}
	return recipe, nil
}

// ByCategory returns the recipes in a category
func (c *Client) ByCategory(ctx context.Context, category string) ([]Recipe, error) {
	recipes, err := c.catalog.GetByCategory(ctx, category)
	return recipes, wrapCatalogError("category", err)
}

// ByIngredient returns the recipes using an ingredient
func (c *Client) ByIngredient(ctx context.Context, ingredient string) ([]Recipe, error) {
	recipes, err := c.catalog.GetByIngredient(ctx, ingredient)
	return recipes, wrapCatalogError("ingredient", err)
}

// Categories returns every catalog category
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	categories, err := c.catalog.ListCategories(ctx)
	return categories, wrapCatalogError("categories", err)
}

// Ingredients returns the display-ready ingredient lines of recipe
func Ingredients(recipe Recipe) []IngredientLine {
	return domain.ExtractIngredientLines(recipe)
}

// Favorites returns the favorite recipes in the order they were added
func (c *Client) Favorites(ctx context.Context) []Recipe {
	return c.favorites.List(ctx)
}

// AddFavorite stores a recipe snapshot; false when already present or not persisted
func (c *Client) AddFavorite(ctx context.Context, recipe Recipe) bool {
	return c.favorites.Add(ctx, recipe)
}

// FavoriteByID looks a recipe up in the catalog and adds it to the favorites
func (c *Client) FavoriteByID(ctx context.Context, id string) (bool, error) {
	recipe, err := c.Recipe(ctx, id)
	if err != nil {
		return false, err
	}
	return c.favorites.Add(ctx, *recipe), nil
}

// RemoveFavorite drops a favorite; true once persisted, even if it was absent
func (c *Client) RemoveFavorite(ctx context.Context, id string) bool {
	return c.favorites.Remove(ctx, id)
}

// IsFavorite reports whether a recipe is a favorite
func (c *Client) IsFavorite(ctx context.Context, id string) bool {
	return c.favorites.IsFavorite(ctx, id)
}

// ToggleFavorite flips the favorite state of recipe
func (c *Client) ToggleFavorite(ctx context.Context, recipe Recipe) (favorite bool, ok bool) {
	return c.favorites.Toggle(ctx, recipe)
}

// ClearFavorites removes every favorite
func (c *Client) ClearFavorites(ctx context.Context) bool {
	return c.favorites.ClearAll(ctx)
}
