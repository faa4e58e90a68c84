// Package api provides the HTTP API layer for the Recipes application.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers for recipes, categories and favorites
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.0 documentation:
// - JSON spec available at /openapi.json
// - Interactive Swagger UI at /docs
//
// 2. Request/Response Validation
//
// Huma provides automatic validation based on struct tags:
//
//	type RandomRecipesInput struct {
//	    Count int `query:"count" minimum:"1" maximum:"25"`
//	}
//
// 3. Middleware Support
//
// The API includes middleware for:
// - Request logging with unique request IDs
// - CORS handling
// - Prometheus request metrics, served at /metrics
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{Logger: logger})
//
//	handlers.NewRecipeHandler(catalogService, 8).RegisterRoutes(humaAPI)
//	handlers.NewFavoritesHandler(favoritesStore, catalogService).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807:
//
//	{
//	    "status": 503,
//	    "title": "Service Unavailable",
//	    "detail": "Recipe catalog unavailable"
//	}
//
// Domain errors are automatically mapped to appropriate HTTP status codes.
package api
