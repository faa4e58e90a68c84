// ABOUTME: Response DTOs for recipe, category and favorites API endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

// IngredientResponse is one display-ready ingredient line
type IngredientResponse struct {
	Ingredient string `json:"ingredient" doc:"Ingredient name"`
	Measure    string `json:"measure" doc:"Quantity, may be empty"`
}

// RecipeResponse represents a recipe in API responses
type RecipeResponse struct {
	ID           string               `json:"id" doc:"Catalog identifier"`
	Name         string               `json:"name" doc:"Recipe name"`
	Category     string               `json:"category,omitempty" doc:"Catalog category"`
	Area         string               `json:"area,omitempty" doc:"Geographic origin"`
	Instructions string               `json:"instructions,omitempty" doc:"Preparation instructions"`
	Thumbnail    string               `json:"thumbnail,omitempty" doc:"Image URL"`
	Tags         []string             `json:"tags" doc:"Recipe tags"`
	YouTube      string               `json:"youtube,omitempty" doc:"Video URL"`
	Source       string               `json:"source,omitempty" doc:"Original source URL"`
	Ingredients  []IngredientResponse `json:"ingredients" doc:"Ingredient lines in slot order"`
}

// RecipeListResponse represents a list of recipes
type RecipeListResponse struct {
	Recipes []RecipeResponse `json:"recipes" doc:"Matching recipes"`
	Count   int              `json:"count" doc:"Number of recipes returned"`
}

// CategoryResponse represents a catalog category
type CategoryResponse struct {
	ID          string `json:"id" doc:"Catalog identifier"`
	Name        string `json:"name" doc:"Category name"`
	Thumbnail   string `json:"thumbnail,omitempty" doc:"Image URL"`
	Description string `json:"description,omitempty" doc:"Category description"`
}

// CategoryListResponse represents the list of categories
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories" doc:"All catalog categories"`
	Count      int                `json:"count" doc:"Number of categories"`
}

// FavoriteAddedResponse reports the outcome of an add
type FavoriteAddedResponse struct {
	ID    string `json:"id" doc:"Recipe identifier"`
	Added bool   `json:"added" doc:"False when already a favorite or the write failed"`
}

// FavoriteRemovedResponse reports the outcome of a remove
type FavoriteRemovedResponse struct {
	ID      string `json:"id" doc:"Recipe identifier"`
	Removed bool   `json:"removed" doc:"True once the set was persisted, even if the recipe was absent"`
}

// FavoriteStatusResponse reports membership of a recipe in the favorites
type FavoriteStatusResponse struct {
	ID       string `json:"id" doc:"Recipe identifier"`
	Favorite bool   `json:"favorite" doc:"Whether the recipe is a favorite"`
}

// FavoritesClearedResponse reports the outcome of a clear
type FavoritesClearedResponse struct {
	Cleared bool `json:"cleared" doc:"Whether the favorites were cleared"`
}
