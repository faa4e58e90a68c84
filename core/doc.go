// Package core contains the business logic for the Recipes API.
// It is framework-agnostic and can be used without the HTTP server.
//
// The core package is organized into several sub-packages:
//
// - domain: Recipe and Category models and the catalog wire codec
// - catalog: Read-only client for the remote recipe catalog
// - favorites: Ordered favorites list persisted in a key-value store
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (store, HTTP, logger)
//
// All external dependencies are injected through interfaces.Dependencies,
// so each service is testable in isolation.
//
// # Usage Example
//
//	import (
//	    "recipes-app-api/core/catalog"
//	    "recipes-app-api/core/favorites"
//	    "recipes-app-api/core/interfaces"
//	)
//
//	deps := interfaces.Dependencies{
//	    Store:      myStore,      // implements interfaces.KeyValueStore
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	catalogService := catalog.NewCatalogService(deps, catalog.DefaultBaseURL)
//	recipes, err := catalogService.SearchByName(ctx, "arrabiata")
//
//	favoritesStore := favorites.NewStore(deps, favorites.DefaultKey)
//	added := favoritesStore.Add(ctx, recipes[0])
package core
