// ABOUTME: Request DTOs for favorites API endpoints
// ABOUTME: Carries a full recipe snapshot so favorites can be listed without the catalog

package requests

// IngredientRequest is one ingredient line of a recipe snapshot
type IngredientRequest struct {
	Ingredient string `json:"ingredient" doc:"Ingredient name"`
	Measure    string `json:"measure,omitempty" doc:"Quantity"`
}

// FavoriteRequest is the body of POST /favorites
type FavoriteRequest struct {
	ID           string              `json:"id" minLength:"1" doc:"Catalog identifier"`
	Name         string              `json:"name" doc:"Recipe name"`
	Category     string              `json:"category,omitempty" doc:"Catalog category"`
	Area         string              `json:"area,omitempty" doc:"Geographic origin"`
	Instructions string              `json:"instructions,omitempty" doc:"Preparation instructions"`
	Thumbnail    string              `json:"thumbnail,omitempty" doc:"Image URL"`
	Tags         []string            `json:"tags,omitempty" doc:"Recipe tags"`
	YouTube      string              `json:"youtube,omitempty" doc:"Video URL"`
	Source       string              `json:"source,omitempty" doc:"Original source URL"`
	Ingredients  []IngredientRequest `json:"ingredients,omitempty" maxItems:"20" doc:"Ingredient lines, at most 20"`
}
