// ABOUTME: Command-line client for browsing the recipe catalog and managing favorites
// ABOUTME: Shares configuration, storage and logging with the API server through the recipes library

package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"recipes-app-api/api/middleware"
	stdhttp "recipes-app-api/infrastructure/http/standard"
	"recipes-app-api/infrastructure/logger/structured"
	"recipes-app-api/infrastructure/storage"
	"recipes-app-api/pkg/config"
	recipes "recipes-app-api/recipes-lib"
)

var (
	// Global flags
	configPath   string
	baseURL      string
	outputFormat string
	verbose      bool
	timeout      time.Duration

	// Set up by the root command before any subcommand runs
	app    *recipes.Client
	logger *structured.Logger
	cfg    *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Browse recipes and manage favorites",
	Long: `recipes searches the recipe catalog and keeps a list of favorite recipes.

Favorites are stored in the backend configured for the API server
(sqlite, redis or memory), so both share the same list.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if outputFormat != formatText && outputFormat != formatJSON {
			return fmt.Errorf("unknown output format %q (use text or json)", outputFormat)
		}
		return setup()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return teardown()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("CONFIG_FILE"), "optional YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "catalog API root (overrides configuration)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", formatText, "output format: text or json")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Operation timeout")

	randomCmd.Flags().IntVarP(&randomCount, "count", "n", 0, "number of random recipes (default from configuration)")

	favCmd.AddCommand(favListCmd)
	favCmd.AddCommand(favAddCmd)
	favCmd.AddCommand(favRemoveCmd)
	favCmd.AddCommand(favCheckCmd)
	favCmd.AddCommand(favToggleCmd)
	favCmd.AddCommand(favClearCmd)

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(ingredientCmd)
	rootCmd.AddCommand(favCmd)
}

func main() {
	err := rootCmd.Execute()
	_ = teardown()
	if err != nil {
		os.Exit(1)
	}
}

// setup loads configuration and builds the library client
func setup() error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if baseURL != "" {
		cfg.Catalog.BaseURL = baseURL
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Diagnostics stay on stderr and out of the way unless asked for
	level := "error"
	if verbose {
		level = "debug"
	}
	logger, err = structured.NewLogger(structured.Options{
		Level:  level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	store := storage.Open(cfg.Storage, logger)

	httpClient := stdhttp.NewStandardHTTPClient(
		cfg.Catalog.Timeout(),
		stdhttp.WithRetries(cfg.Catalog.Retries),
		stdhttp.WithTransport(middleware.NewLoggingRoundTripper(http.DefaultTransport, logger)),
	)

	app, err = recipes.NewClient(
		recipes.WithStore(store),
		recipes.WithHTTPClient(httpClient),
		recipes.WithLogger(logger),
		recipes.WithBaseURL(cfg.Catalog.BaseURL),
		recipes.WithFavoritesKey(cfg.Storage.FavoritesKey),
	)
	if err != nil {
		_ = store.Close()
		return err
	}
	return nil
}

// teardown releases the client and logger; safe to call more than once
func teardown() error {
	var err error
	if app != nil {
		err = app.Close()
		app = nil
	}
	if logger != nil {
		_ = logger.Close()
		logger = nil
	}
	return err
}
