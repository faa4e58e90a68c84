// ABOUTME: Favorites handlers for the Huma API
// ABOUTME: Exposes the favorites store; store faults surface as false flags, never as errors

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"recipes-app-api/api/dto/mappers"
	"recipes-app-api/api/dto/requests"
	"recipes-app-api/api/dto/responses"
	"recipes-app-api/core/errors"
	"recipes-app-api/core/interfaces"
)

// FavoritesHandler handles favorites-related HTTP requests
type FavoritesHandler struct {
	favorites interfaces.FavoritesService
	catalog   interfaces.CatalogService
}

// NewFavoritesHandler creates a new favorites handler.
// catalog is used to snapshot a recipe when it is favorited by ID.
func NewFavoritesHandler(favorites interfaces.FavoritesService, catalog interfaces.CatalogService) *FavoritesHandler {
	return &FavoritesHandler{
		favorites: favorites,
		catalog:   catalog,
	}
}

// RegisterRoutes registers all favorites-related routes
func (h *FavoritesHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listFavorites",
		Method:      http.MethodGet,
		Path:        "/favorites",
		Summary:     "List favorite recipes",
		Description: "Returns the favorite recipe snapshots in the order they were added",
		Tags:        []string{"Favorites"},
	}, h.ListFavorites)

	huma.Register(api, huma.Operation{
		OperationID: "addFavorite",
		Method:      http.MethodPost,
		Path:        "/favorites",
		Summary:     "Add a recipe snapshot to the favorites",
		Tags:        []string{"Favorites"},
	}, h.AddFavorite)

	huma.Register(api, huma.Operation{
		OperationID: "clearFavorites",
		Method:      http.MethodDelete,
		Path:        "/favorites",
		Summary:     "Remove every favorite",
		Tags:        []string{"Favorites"},
	}, h.ClearFavorites)

	huma.Register(api, huma.Operation{
		OperationID: "favoriteByID",
		Method:      http.MethodPut,
		Path:        "/favorites/{id}",
		Summary:     "Favorite a catalog recipe by ID",
		Description: "Looks the recipe up in the catalog and stores the full snapshot",
		Tags:        []string{"Favorites"},
	}, h.FavoriteByID)

	huma.Register(api, huma.Operation{
		OperationID: "getFavoriteStatus",
		Method:      http.MethodGet,
		Path:        "/favorites/{id}",
		Summary:     "Check whether a recipe is a favorite",
		Tags:        []string{"Favorites"},
	}, h.GetFavoriteStatus)

	huma.Register(api, huma.Operation{
		OperationID: "removeFavorite",
		Method:      http.MethodDelete,
		Path:        "/favorites/{id}",
		Summary:     "Remove a recipe from the favorites",
		Tags:        []string{"Favorites"},
	}, h.RemoveFavorite)
}

// AddFavoriteInput defines the input for the AddFavorite operation
type AddFavoriteInput struct {
	Body requests.FavoriteRequest
}

// FavoriteAddedOutput wraps an add result
type FavoriteAddedOutput struct {
	Body responses.FavoriteAddedResponse
}

// FavoriteRemovedOutput wraps a remove result
type FavoriteRemovedOutput struct {
	Body responses.FavoriteRemovedResponse
}

// FavoriteStatusOutput wraps a membership check
type FavoriteStatusOutput struct {
	Body responses.FavoriteStatusResponse
}

// FavoritesClearedOutput wraps a clear result
type FavoritesClearedOutput struct {
	Body responses.FavoritesClearedResponse
}

// ListFavorites handles GET /favorites
func (h *FavoritesHandler) ListFavorites(ctx context.Context, input *struct{}) (*RecipeListOutput, error) {
	favorites := h.favorites.List(ctx)
	return &RecipeListOutput{Body: *mappers.ToRecipeListResponse(favorites)}, nil
}

// AddFavorite handles POST /favorites
func (h *FavoritesHandler) AddFavorite(ctx context.Context, input *AddFavoriteInput) (*FavoriteAddedOutput, error) {
	recipe := mappers.FromFavoriteRequest(&input.Body)
	if !recipe.HasID() {
		return nil, toHumaError(&errors.ValidationError{Field: "id", Message: "recipe identifier is required"})
	}

	added := h.favorites.Add(ctx, recipe)
	return &FavoriteAddedOutput{Body: responses.FavoriteAddedResponse{ID: recipe.ID, Added: added}}, nil
}

// FavoriteByID handles PUT /favorites/{id}
func (h *FavoritesHandler) FavoriteByID(ctx context.Context, input *RecipeIDInput) (*FavoriteAddedOutput, error) {
	recipe, err := h.catalog.GetByID(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	if recipe == nil {
		return nil, toHumaError(&errors.NotFoundError{Resource: "recipe", ID: input.ID})
	}

	added := h.favorites.Add(ctx, *recipe)
	return &FavoriteAddedOutput{Body: responses.FavoriteAddedResponse{ID: recipe.ID, Added: added}}, nil
}

// GetFavoriteStatus handles GET /favorites/{id}
func (h *FavoritesHandler) GetFavoriteStatus(ctx context.Context, input *RecipeIDInput) (*FavoriteStatusOutput, error) {
	favorite := h.favorites.IsFavorite(ctx, input.ID)
	return &FavoriteStatusOutput{Body: responses.FavoriteStatusResponse{ID: input.ID, Favorite: favorite}}, nil
}

// RemoveFavorite handles DELETE /favorites/{id}
func (h *FavoritesHandler) RemoveFavorite(ctx context.Context, input *RecipeIDInput) (*FavoriteRemovedOutput, error) {
	removed := h.favorites.Remove(ctx, input.ID)
	return &FavoriteRemovedOutput{Body: responses.FavoriteRemovedResponse{ID: input.ID, Removed: removed}}, nil
}

// ClearFavorites handles DELETE /favorites
func (h *FavoritesHandler) ClearFavorites(ctx context.Context, input *struct{}) (*FavoritesClearedOutput, error) {
	cleared := h.favorites.ClearAll(ctx)
	return &FavoritesClearedOutput{Body: responses.FavoritesClearedResponse{Cleared: cleared}}, nil
}
