package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"recipes-app-api/api/dto/mappers"
)

var randomCount int

// searchCmd searches recipes by name
var searchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Search recipes by name",
	Long: `Search the catalog for recipes whose name contains the given text.

Examples:
  recipes search arrabiata
  recipes search "chicken curry" --format json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

// randomCmd shows a handful of random recipes
var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Show random recipes",
	Args:  cobra.NoArgs,
	RunE:  runRandom,
}

// showCmd prints one recipe in full
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a recipe with its ingredients and instructions",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

// categoriesCmd lists the catalog categories
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List recipe categories",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

// categoryCmd lists the recipes in a category
var categoryCmd = &cobra.Command{
	Use:   "category <name>",
	Short: "List recipes in a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategory,
}

// ingredientCmd lists the recipes using an ingredient
var ingredientCmd = &cobra.Command{
	Use:   "ingredient <name>",
	Short: "List recipes using an ingredient",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runIngredient,
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, timeout)
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	found, err := app.Search(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	return printRecipes(cmd.OutOrStdout(), found)
}

func runRandom(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	count := randomCount
	if count <= 0 {
		count = cfg.Server.RandomCount
	}

	picked, err := app.Random(ctx, count)
	if err != nil {
		return err
	}
	return printRecipes(cmd.OutOrStdout(), picked)
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	recipe, err := app.Recipe(ctx, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if outputFormat == formatJSON {
		return writeJSON(out, mappers.ToRecipeResponse(recipe))
	}
	printRecipeDetail(out, *recipe, app.IsFavorite(ctx, recipe.ID))
	return nil
}

func runCategories(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	categories, err := app.Categories(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if outputFormat == formatJSON {
		return writeJSON(out, mappers.ToCategoryListResponse(categories))
	}
	for _, category := range categories {
		writef(out, "%s\n", category.Name)
	}
	return nil
}

func runCategory(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	listed, err := app.ByCategory(ctx, args[0])
	if err != nil {
		return err
	}
	return printRecipes(cmd.OutOrStdout(), listed)
}

func runIngredient(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	listed, err := app.ByIngredient(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	return printRecipes(cmd.OutOrStdout(), listed)
}
