// ABOUTME: Recipe domain model mirroring a single entry of the remote recipe catalog
// ABOUTME: Handles the catalog's flat wire format and derives ordered ingredient lines

package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// IngredientSlotCount is the number of fixed ingredient/measure slots a recipe carries
const IngredientSlotCount = 20

// Catalog wire-format field names
const (
	fieldID           = "idMeal"
	fieldName         = "strMeal"
	fieldCategory     = "strCategory"
	fieldArea         = "strArea"
	fieldInstructions = "strInstructions"
	fieldThumbnail    = "strMealThumb"
	fieldTags         = "strTags"
	fieldYouTube      = "strYoutube"
	fieldSource       = "strSource"
	fieldIngredient   = "strIngredient"
	fieldMeasure      = "strMeasure"
)

// IngredientSlot is one raw (ingredient, measure) pair as stored by the catalog.
// Either value may be empty.
type IngredientSlot struct {
	Ingredient string
	Measure    string
}

// IngredientLine is a cleaned-up ingredient entry ready for display
type IngredientLine struct {
	Ingredient string `json:"ingredient"`
	Measure    string `json:"measure"`
}

// Recipe represents a single catalog entry.
// Filter endpoints of the catalog only populate ID, Name and Thumbnail.
type Recipe struct {
	// ID is the opaque catalog identifier, stable across fetches
	ID string

	// Name is the display name
	Name string

	// Category is the catalog category the recipe belongs to
	Category string

	// Area is the geographic origin tag (e.g. "Italian")
	Area string

	// Instructions is free-text preparation instructions
	Instructions string

	// Thumbnail is the image URI
	Thumbnail string

	// Tags is the optional tag list
	Tags []string

	// YouTube is the optional external video reference
	YouTube string

	// Source is the optional link to the original recipe page
	Source string

	// Ingredients holds slots 1..20 in order
	Ingredients [IngredientSlotCount]IngredientSlot
}

// HasID reports whether the recipe carries a usable identifier
func (r Recipe) HasID() bool {
	return strings.TrimSpace(r.ID) != ""
}

// ExtractIngredientLines returns the non-empty ingredient slots in slot order.
// Ingredients and measures are trimmed; a missing measure becomes "".
func ExtractIngredientLines(recipe Recipe) []IngredientLine {
	lines := make([]IngredientLine, 0, IngredientSlotCount)
	for _, slot := range recipe.Ingredients {
		ingredient := strings.TrimSpace(slot.Ingredient)
		if ingredient == "" {
			continue
		}
		lines = append(lines, IngredientLine{
			Ingredient: ingredient,
			Measure:    strings.TrimSpace(slot.Measure),
		})
	}
	return lines
}

// ParseTags splits the catalog's comma-separated tag string
func ParseTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// UnmarshalJSON decodes the catalog's flat representation.
// JSON null for any field decodes to the empty string.
func (r *Recipe) UnmarshalJSON(data []byte) error {
	var fields map[string]*string
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	get := func(key string) string {
		if v := fields[key]; v != nil {
			return *v
		}
		return ""
	}

	*r = Recipe{
		ID:           get(fieldID),
		Name:         get(fieldName),
		Category:     get(fieldCategory),
		Area:         get(fieldArea),
		Instructions: get(fieldInstructions),
		Thumbnail:    get(fieldThumbnail),
		Tags:         ParseTags(get(fieldTags)),
		YouTube:      get(fieldYouTube),
		Source:       get(fieldSource),
	}

	for i := range r.Ingredients {
		n := strconv.Itoa(i + 1)
		r.Ingredients[i] = IngredientSlot{
			Ingredient: get(fieldIngredient + n),
			Measure:    get(fieldMeasure + n),
		}
	}

	return nil
}

// MarshalJSON encodes the recipe in the catalog's flat representation so a
// persisted snapshot reads back exactly like a catalog response
func (r Recipe) MarshalJSON() ([]byte, error) {
	fields := map[string]string{
		fieldID: r.ID,
	}

	set := func(key, value string) {
		if value != "" {
			fields[key] = value
		}
	}

	set(fieldName, r.Name)
	set(fieldCategory, r.Category)
	set(fieldArea, r.Area)
	set(fieldInstructions, r.Instructions)
	set(fieldThumbnail, r.Thumbnail)
	set(fieldTags, strings.Join(r.Tags, ","))
	set(fieldYouTube, r.YouTube)
	set(fieldSource, r.Source)

	for i, slot := range r.Ingredients {
		n := strconv.Itoa(i + 1)
		set(fieldIngredient+n, slot.Ingredient)
		set(fieldMeasure+n, slot.Measure)
	}

	return json.Marshal(fields)
}
