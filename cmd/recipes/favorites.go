package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"recipes-app-api/api/dto/responses"
	recipes "recipes-app-api/recipes-lib"
)

// favCmd is the parent command for favorites management
var favCmd = &cobra.Command{
	Use:   "fav",
	Short: "Manage favorite recipes",
	Long: `Manage the favorite recipes list.

Available subcommands:
  list          - List favorites in the order they were added
  add <id>      - Look a recipe up and add it
  remove <id>   - Remove a favorite
  check <id>    - Report whether a recipe is a favorite
  toggle <id>   - Add or remove a recipe
  clear         - Remove every favorite`,
}

var favListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorite recipes",
	Args:  cobra.NoArgs,
	RunE:  runFavList,
}

var favAddCmd = &cobra.Command{
	Use:   "add <id>",
	Short: "Add a recipe to the favorites",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavAdd,
}

var favRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a recipe from the favorites",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavRemove,
}

var favCheckCmd = &cobra.Command{
	Use:   "check <id>",
	Short: "Report whether a recipe is a favorite",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavCheck,
}

var favToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Add a recipe to the favorites, or remove it if already there",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavToggle,
}

var favClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every favorite",
	Args:  cobra.NoArgs,
	RunE:  runFavClear,
}

func runFavList(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	return printRecipes(cmd.OutOrStdout(), app.Favorites(ctx))
}

func runFavAdd(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	id := args[0]
	added, err := app.FavoriteByID(ctx, id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if outputFormat == formatJSON {
		return writeJSON(out, responses.FavoriteAddedResponse{ID: id, Added: added})
	}
	if added {
		writef(out, "Added %s to favorites\n", id)
	} else {
		writef(out, "%s was not added (already a favorite or storage unavailable)\n", id)
	}
	return nil
}

func runFavRemove(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	id := args[0]
	if !app.RemoveFavorite(ctx, id) {
		return fmt.Errorf("failed to remove %s from favorites", id)
	}

	out := cmd.OutOrStdout()
	if outputFormat == formatJSON {
		return writeJSON(out, responses.FavoriteRemovedResponse{ID: id, Removed: true})
	}
	writef(out, "Removed %s from favorites\n", id)
	return nil
}

func runFavCheck(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	id := args[0]
	favorite := app.IsFavorite(ctx, id)

	out := cmd.OutOrStdout()
	if outputFormat == formatJSON {
		return writeJSON(out, responses.FavoriteStatusResponse{ID: id, Favorite: favorite})
	}
	if favorite {
		writef(out, "%s is a favorite\n", id)
	} else {
		writef(out, "%s is not a favorite\n", id)
	}
	return nil
}

func runFavToggle(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	// Removal only needs the ID; adding needs the catalog snapshot
	target := recipes.Recipe{ID: args[0]}
	if !app.IsFavorite(ctx, target.ID) {
		recipe, err := app.Recipe(ctx, target.ID)
		if err != nil {
			return err
		}
		target = *recipe
	}

	favorite, ok := app.ToggleFavorite(ctx, target)
	if !ok {
		return fmt.Errorf("failed to update favorites for %s", target.ID)
	}

	out := cmd.OutOrStdout()
	if outputFormat == formatJSON {
		return writeJSON(out, responses.FavoriteStatusResponse{ID: target.ID, Favorite: favorite})
	}
	if favorite {
		writef(out, "Added %s to favorites\n", target.ID)
	} else {
		writef(out, "Removed %s from favorites\n", target.ID)
	}
	return nil
}

func runFavClear(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	if !app.ClearFavorites(ctx) {
		return fmt.Errorf("failed to clear favorites")
	}

	out := cmd.OutOrStdout()
	if outputFormat == formatJSON {
		return writeJSON(out, responses.FavoritesClearedResponse{Cleared: true})
	}
	writef(out, "Cleared all favorites\n")
	return nil
}
