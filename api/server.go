// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"recipes-app-api/api/middleware"
	"recipes-app-api/core/interfaces"
)

const (
	apiTitle       = "Recipes API"
	apiVersion     = "1.0.0"
	apiDescription = "API for browsing the recipe catalog and keeping favorite recipes"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger

	// Metrics, when set, records every request and is served at /metrics
	Metrics *middleware.Metrics
}

// NewAPI creates and configures a new Huma API instance
func NewAPI() (huma.API, chi.Router) {
	return NewAPIWithMiddleware(APIConfig{})
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS should be the first middleware
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.Metrics != nil {
		router.Use(cfg.Metrics.Middleware)
		router.Handle("/metrics", cfg.Metrics.Handler())
	}

	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = apiDescription

	// The OpenAPI spec is served at /openapi.json and the docs UI at /docs
	api := humachi.New(router, config)

	return api, router
}
