// ABOUTME: Category domain model for the catalog's recipe categories
// ABOUTME: Read-only records sourced entirely from the remote catalog

package domain

// Category represents a catalog recipe category
type Category struct {
	// ID is the catalog identifier
	ID string `json:"idCategory"`

	// Name is the display name, also used to filter recipes by category
	Name string `json:"strCategory"`

	// Thumbnail is the image URI
	Thumbnail string `json:"strCategoryThumb"`

	// Description is free text
	Description string `json:"strCategoryDescription"`
}
