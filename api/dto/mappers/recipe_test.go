package mappers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipes-app-api/api/dto/requests"
	"recipes-app-api/core/domain"
)

func arrabiata() domain.Recipe {
	r := domain.Recipe{
		ID:        "52771",
		Name:      "Spicy Arrabiata Penne",
		Category:  "Vegetarian",
		Area:      "Italian",
		Thumbnail: "https://www.themealdb.com/images/media/meals/ustsqw1468250014.jpg",
		Tags:      []string{"Pasta", "Curry"},
		YouTube:   "https://www.youtube.com/watch?v=1IszT_guI08",
	}
	r.Ingredients[0] = domain.IngredientSlot{Ingredient: "penne rigate", Measure: "1 pound"}
	r.Ingredients[2] = domain.IngredientSlot{Ingredient: "olive oil", Measure: "1/4 cup"}
	r.Ingredients[4] = domain.IngredientSlot{Ingredient: " garlic ", Measure: ""}
	return r
}

func TestToRecipeResponse(t *testing.T) {
	r := arrabiata()

	response := ToRecipeResponse(&r)

	require.NotNil(t, response)
	assert.Equal(t, "52771", response.ID)
	assert.Equal(t, "Spicy Arrabiata Penne", response.Name)
	assert.Equal(t, "Italian", response.Area)
	assert.Equal(t, []string{"Pasta", "Curry"}, response.Tags)
	require.Len(t, response.Ingredients, 3)
	assert.Equal(t, "penne rigate", response.Ingredients[0].Ingredient)
	assert.Equal(t, "1 pound", response.Ingredients[0].Measure)
	assert.Equal(t, "olive oil", response.Ingredients[1].Ingredient)
	assert.Equal(t, "garlic", response.Ingredients[2].Ingredient)
	assert.Equal(t, "", response.Ingredients[2].Measure)
}

func TestToRecipeResponse_NilAndSparse(t *testing.T) {
	assert.Nil(t, ToRecipeResponse(nil))

	// Filter results only carry id, name and thumbnail
	response := ToRecipeResponse(&domain.Recipe{ID: "1", Name: "Brief"})
	require.NotNil(t, response)
	assert.NotNil(t, response.Tags)
	assert.Empty(t, response.Tags)
	assert.NotNil(t, response.Ingredients)
	assert.Empty(t, response.Ingredients)
}

func TestToRecipeListResponse(t *testing.T) {
	response := ToRecipeListResponse([]domain.Recipe{arrabiata(), {ID: "2", Name: "Two"}})

	assert.Equal(t, 2, response.Count)
	require.Len(t, response.Recipes, 2)
	assert.Equal(t, "52771", response.Recipes[0].ID)
	assert.Equal(t, "2", response.Recipes[1].ID)

	empty := ToRecipeListResponse(nil)
	assert.Equal(t, 0, empty.Count)
	assert.NotNil(t, empty.Recipes)
}

func TestToCategoryListResponse(t *testing.T) {
	response := ToCategoryListResponse([]domain.Category{
		{ID: "1", Name: "Beef", Thumbnail: "beef.png", Description: "Beef is..."},
	})

	assert.Equal(t, 1, response.Count)
	assert.Equal(t, "Beef", response.Categories[0].Name)
	assert.Equal(t, "beef.png", response.Categories[0].Thumbnail)
}

func TestFromFavoriteRequest(t *testing.T) {
	req := &requests.FavoriteRequest{
		ID:   "52771",
		Name: "Spicy Arrabiata Penne",
		Tags: []string{"Pasta"},
		Ingredients: []requests.IngredientRequest{
			{Ingredient: "penne rigate", Measure: "1 pound"},
			{Ingredient: "olive oil", Measure: "1/4 cup"},
		},
	}

	recipe := FromFavoriteRequest(req)

	assert.Equal(t, "52771", recipe.ID)
	assert.Equal(t, []string{"Pasta"}, recipe.Tags)
	assert.Equal(t, domain.IngredientSlot{Ingredient: "penne rigate", Measure: "1 pound"}, recipe.Ingredients[0])
	assert.Equal(t, domain.IngredientSlot{Ingredient: "olive oil", Measure: "1/4 cup"}, recipe.Ingredients[1])
	assert.Equal(t, domain.IngredientSlot{}, recipe.Ingredients[2])

	lines := domain.ExtractIngredientLines(recipe)
	assert.Len(t, lines, 2)
}

func TestFromFavoriteRequest_TooManyIngredients(t *testing.T) {
	req := &requests.FavoriteRequest{ID: "1"}
	for i := 0; i < domain.IngredientSlotCount+3; i++ {
		req.Ingredients = append(req.Ingredients, requests.IngredientRequest{Ingredient: "salt"})
	}

	recipe := FromFavoriteRequest(req)

	assert.Len(t, domain.ExtractIngredientLines(recipe), domain.IngredientSlotCount)
}
