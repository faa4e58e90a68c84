// ABOUTME: Main entry point for the Recipes API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recipes-app-api/api"
	"recipes-app-api/api/handlers"
	"recipes-app-api/api/middleware"
	"recipes-app-api/core/catalog"
	"recipes-app-api/core/favorites"
	"recipes-app-api/core/interfaces"
	stdhttp "recipes-app-api/infrastructure/http/standard"
	"recipes-app-api/infrastructure/logger/structured"
	"recipes-app-api/infrastructure/storage"
	"recipes-app-api/pkg/config"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_FILE"), "optional YAML configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger, err := structured.NewLogger(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	logger.Info("Starting Recipes API", map[string]interface{}{
		"port":         cfg.Server.Port,
		"storage_type": cfg.Storage.Type,
		"catalog":      cfg.Catalog.BaseURL,
	})

	// Create favorites storage
	store := storage.Open(cfg.Storage, logger)
	defer store.Close()

	// Create HTTP client; outgoing catalog calls are logged at debug level
	httpClient := stdhttp.NewStandardHTTPClient(
		cfg.Catalog.Timeout(),
		stdhttp.WithRetries(cfg.Catalog.Retries),
		stdhttp.WithTransport(middleware.NewLoggingRoundTripper(http.DefaultTransport, logger)),
	)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Store:      store,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create services
	catalogService := catalog.NewCatalogService(deps, cfg.Catalog.BaseURL)
	favoritesStore := favorites.NewStore(deps, cfg.Storage.FavoritesKey)

	// Create API with middleware
	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:  logger,
		Metrics: middleware.NewMetrics("recipes"),
	})

	// Create and register handlers
	recipeHandler := handlers.NewRecipeHandler(catalogService, cfg.Server.RandomCount)
	recipeHandler.RegisterRoutes(humaAPI)

	favoritesHandler := handlers.NewFavoritesHandler(favoritesStore, catalogService)
	favoritesHandler.RegisterRoutes(humaAPI)

	// Random lookups fan out to the catalog, so the write timeout covers several catalog timeouts
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2*cfg.Catalog.Timeout() + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logger.Info("Server stopped", nil)
}

func init() {
	// Print banner
	fmt.Println(`
    ____            _                        ___    ____  ____
   / __ \___  _____(_)___  ___  _____       /   |  / __ \/  _/
  / /_/ / _ \/ ___/ / __ \/ _ \/ ___/      / /| | / /_/ // /
 / _, _/  __/ /__/ / /_/ /  __(__  )      / ___ |/ ____// /
/_/ |_|\___/\___/_/ .___/\___/____/      /_/  |_/_/   /___/
                 /_/
	`)
}
