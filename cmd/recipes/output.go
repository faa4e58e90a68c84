package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"recipes-app-api/api/dto/mappers"
	recipes "recipes-app-api/recipes-lib"
)

// Output formats accepted by --format
const (
	formatText = "text"
	formatJSON = "json"
)

func writef(w io.Writer, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(w, format, args...)
}

// writeJSON emits v using the same shapes as the HTTP API
func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printRecipes writes one line per recipe, or the API list shape in JSON mode
func printRecipes(w io.Writer, list []recipes.Recipe) error {
	if outputFormat == formatJSON {
		return writeJSON(w, mappers.ToRecipeListResponse(list))
	}
	if len(list) == 0 {
		writef(w, "No recipes found\n")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, recipe := range list {
		writef(tw, "%s\t%s\t%s\n", recipe.ID, recipe.Name, describe(recipe))
	}
	return tw.Flush()
}

// describe joins category and area, whichever are known
func describe(recipe recipes.Recipe) string {
	parts := make([]string, 0, 2)
	if recipe.Category != "" {
		parts = append(parts, recipe.Category)
	}
	if recipe.Area != "" {
		parts = append(parts, recipe.Area)
	}
	return strings.Join(parts, ", ")
}

func printRecipeDetail(w io.Writer, recipe recipes.Recipe, favorite bool) {
	title := recipe.Name
	if favorite {
		title += " *"
	}
	writef(w, "%s\n%s\n", title, strings.Repeat("=", len(title)))

	if meta := describe(recipe); meta != "" {
		writef(w, "%s\n", meta)
	}
	if len(recipe.Tags) > 0 {
		writef(w, "Tags: %s\n", strings.Join(recipe.Tags, ", "))
	}
	if recipe.YouTube != "" {
		writef(w, "Video: %s\n", recipe.YouTube)
	}
	if recipe.Source != "" {
		writef(w, "Source: %s\n", recipe.Source)
	}

	if lines := recipes.Ingredients(recipe); len(lines) > 0 {
		writef(w, "\nIngredients:\n")
		for _, line := range lines {
			if line.Measure != "" {
				writef(w, "  - %s %s\n", line.Measure, line.Ingredient)
			} else {
				writef(w, "  - %s\n", line.Ingredient)
			}
		}
	}

	if recipe.Instructions != "" {
		writef(w, "\nInstructions:\n%s\n", strings.TrimSpace(recipe.Instructions))
	}
}
