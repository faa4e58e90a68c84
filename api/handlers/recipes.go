// ABOUTME: Recipe and category handlers for the Huma API
// ABOUTME: Provides HTTP endpoints over the remote recipe catalog

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"recipes-app-api/api/dto/mappers"
	"recipes-app-api/api/dto/responses"
	"recipes-app-api/core/errors"
	"recipes-app-api/core/interfaces"
)

// DefaultRandomCount is the number of random recipes returned when no count is given
const DefaultRandomCount = 8

// RecipeHandler handles recipe-related HTTP requests
type RecipeHandler struct {
	catalog     interfaces.CatalogService
	randomCount int
}

// NewRecipeHandler creates a new recipe handler.
// A non-positive randomCount selects DefaultRandomCount.
func NewRecipeHandler(catalog interfaces.CatalogService, randomCount int) *RecipeHandler {
	if randomCount <= 0 {
		randomCount = DefaultRandomCount
	}
	return &RecipeHandler{
		catalog:     catalog,
		randomCount: randomCount,
	}
}

// RegisterRoutes registers all recipe-related routes
func (h *RecipeHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "searchRecipes",
		Method:      http.MethodGet,
		Path:        "/recipes/search",
		Summary:     "Search recipes by name",
		Description: "Returns every catalog recipe whose name matches the query",
		Tags:        []string{"Recipes"},
	}, h.SearchRecipes)

	huma.Register(api, huma.Operation{
		OperationID: "randomRecipes",
		Method:      http.MethodGet,
		Path:        "/recipes/random",
		Summary:     "Get random recipes",
		Description: "Returns up to count random recipes. Individual lookup failures are skipped.",
		Tags:        []string{"Recipes"},
	}, h.RandomRecipes)

	huma.Register(api, huma.Operation{
		OperationID: "getRecipe",
		Method:      http.MethodGet,
		Path:        "/recipes/{id}",
		Summary:     "Get a recipe by ID",
		Tags:        []string{"Recipes"},
	}, h.GetRecipe)

	huma.Register(api, huma.Operation{
		OperationID: "listCategories",
		Method:      http.MethodGet,
		Path:        "/categories",
		Summary:     "List recipe categories",
		Tags:        []string{"Categories"},
	}, h.ListCategories)

	huma.Register(api, huma.Operation{
		OperationID: "recipesByCategory",
		Method:      http.MethodGet,
		Path:        "/categories/{category}/recipes",
		Summary:     "List recipes in a category",
		Description: "Results carry only id, name and thumbnail",
		Tags:        []string{"Categories"},
	}, h.RecipesByCategory)

	huma.Register(api, huma.Operation{
		OperationID: "recipesByIngredient",
		Method:      http.MethodGet,
		Path:        "/ingredients/{ingredient}/recipes",
		Summary:     "List recipes using an ingredient",
		Description: "Results carry only id, name and thumbnail",
		Tags:        []string{"Recipes"},
	}, h.RecipesByIngredient)
}

// SearchRecipesInput defines the input for the SearchRecipes operation
type SearchRecipesInput struct {
	Name string `query:"name" required:"true" minLength:"1" doc:"Recipe name or fragment"`
}

// RandomRecipesInput defines the input for the RandomRecipes operation
type RandomRecipesInput struct {
	Count int `query:"count" minimum:"1" maximum:"25" doc:"Number of random recipes, defaults to the server setting"`
}

// RecipeIDInput identifies a single recipe
type RecipeIDInput struct {
	ID string `path:"id" minLength:"1" doc:"Catalog recipe identifier"`
}

// CategoryInput identifies a category
type CategoryInput struct {
	Category string `path:"category" minLength:"1" doc:"Category name"`
}

// IngredientInput identifies an ingredient
type IngredientInput struct {
	Ingredient string `path:"ingredient" minLength:"1" doc:"Ingredient name"`
}

// RecipeListOutput wraps a list of recipes
type RecipeListOutput struct {
	Body responses.RecipeListResponse
}

// RecipeOutput wraps a single recipe
type RecipeOutput struct {
	Body responses.RecipeResponse
}

// CategoryListOutput wraps the category list
type CategoryListOutput struct {
	Body responses.CategoryListResponse
}

// SearchRecipes handles GET /recipes/search
func (h *RecipeHandler) SearchRecipes(ctx context.Context, input *SearchRecipesInput) (*RecipeListOutput, error) {
	recipes, err := h.catalog.SearchByName(ctx, input.Name)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &RecipeListOutput{Body: *mappers.ToRecipeListResponse(recipes)}, nil
}

// RandomRecipes handles GET /recipes/random
func (h *RecipeHandler) RandomRecipes(ctx context.Context, input *RandomRecipesInput) (*RecipeListOutput, error) {
	count := input.Count
	if count == 0 {
		count = h.randomCount
	}

	recipes, err := h.catalog.GetRandom(ctx, count)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &RecipeListOutput{Body: *mappers.ToRecipeListResponse(recipes)}, nil
}

// GetRecipe handles GET /recipes/{id}
func (h *RecipeHandler) GetRecipe(ctx context.Context, input *RecipeIDInput) (*RecipeOutput, error) {
	recipe, err := h.catalog.GetByID(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	if recipe == nil {
		return nil, toHumaError(&errors.NotFoundError{Resource: "recipe", ID: input.ID})
	}
	return &RecipeOutput{Body: *mappers.ToRecipeResponse(recipe)}, nil
}

// ListCategories handles GET /categories
func (h *RecipeHandler) ListCategories(ctx context.Context, input *struct{}) (*CategoryListOutput, error) {
	categories, err := h.catalog.ListCategories(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &CategoryListOutput{Body: *mappers.ToCategoryListResponse(categories)}, nil
}

// RecipesByCategory handles GET /categories/{category}/recipes
func (h *RecipeHandler) RecipesByCategory(ctx context.Context, input *CategoryInput) (*RecipeListOutput, error) {
	recipes, err := h.catalog.GetByCategory(ctx, input.Category)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &RecipeListOutput{Body: *mappers.ToRecipeListResponse(recipes)}, nil
}

// RecipesByIngredient handles GET /ingredients/{ingredient}/recipes
func (h *RecipeHandler) RecipesByIngredient(ctx context.Context, input *IngredientInput) (*RecipeListOutput, error) {
	recipes, err := h.catalog.GetByIngredient(ctx, input.Ingredient)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &RecipeListOutput{Body: *mappers.ToRecipeListResponse(recipes)}, nil
}
