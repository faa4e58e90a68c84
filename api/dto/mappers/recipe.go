// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"recipes-app-api/api/dto/requests"
	"recipes-app-api/api/dto/responses"
	"recipes-app-api/core/domain"
)

// ToRecipeResponse converts a domain Recipe to a RecipeResponse DTO
func ToRecipeResponse(recipe *domain.Recipe) *responses.RecipeResponse {
	if recipe == nil {
		return nil
	}

	lines := domain.ExtractIngredientLines(*recipe)
	ingredients := make([]responses.IngredientResponse, 0, len(lines))
	for _, line := range lines {
		ingredients = append(ingredients, responses.IngredientResponse{
			Ingredient: line.Ingredient,
			Measure:    line.Measure,
		})
	}

	tags := recipe.Tags
	if tags == nil {
		tags = []string{}
	}

	return &responses.RecipeResponse{
		ID:           recipe.ID,
		Name:         recipe.Name,
		Category:     recipe.Category,
		Area:         recipe.Area,
		Instructions: recipe.Instructions,
		Thumbnail:    recipe.Thumbnail,
		Tags:         tags,
		YouTube:      recipe.YouTube,
		Source:       recipe.Source,
		Ingredients:  ingredients,
	}
}

// ToRecipeListResponse converts domain recipes to a RecipeListResponse DTO
func ToRecipeListResponse(recipes []domain.Recipe) *responses.RecipeListResponse {
	response := &responses.RecipeListResponse{
		Recipes: make([]responses.RecipeResponse, 0, len(recipes)),
	}

	for i := range recipes {
		response.Recipes = append(response.Recipes, *ToRecipeResponse(&recipes[i]))
	}
	response.Count = len(response.Recipes)

	return response
}

// ToCategoryListResponse converts domain categories to a CategoryListResponse DTO
func ToCategoryListResponse(categories []domain.Category) *responses.CategoryListResponse {
	response := &responses.CategoryListResponse{
		Categories: make([]responses.CategoryResponse, 0, len(categories)),
	}

	for _, category := range categories {
		response.Categories = append(response.Categories, responses.CategoryResponse{
			ID:          category.ID,
			Name:        category.Name,
			Thumbnail:   category.Thumbnail,
			Description: category.Description,
		})
	}
	response.Count = len(response.Categories)

	return response
}

// FromFavoriteRequest converts a FavoriteRequest into a domain Recipe.
// Ingredient lines fill the catalog slots in order; lines past the last slot are dropped.
func FromFavoriteRequest(req *requests.FavoriteRequest) domain.Recipe {
	recipe := domain.Recipe{
		ID:           req.ID,
		Name:         req.Name,
		Category:     req.Category,
		Area:         req.Area,
		Instructions: req.Instructions,
		Thumbnail:    req.Thumbnail,
		Tags:         req.Tags,
		YouTube:      req.YouTube,
		Source:       req.Source,
	}

	for i, line := range req.Ingredients {
		if i >= domain.IngredientSlotCount {
			break
		}
		recipe.Ingredients[i] = domain.IngredientSlot{
			Ingredient: line.Ingredient,
			Measure:    line.Measure,
		}
	}

	return recipe
}
