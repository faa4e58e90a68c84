// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as storage, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - storage: Backend selection with fallback to memory
// - storage/memory: In-process store backed by go-cache
// - storage/sqlite: SQLite key-value table for favorites that survive restarts
// - storage/redis: Redis-backed store shared between processes
// - http/standard: Standard library HTTP client with retry logic
// - logger/structured: logrus logger with optional rotating file output
//
// # Storage
//
//	store := storage.Open(cfg.Storage, logger)
//	defer store.Close()
//	err := store.Set(ctx, "recipe-favorites", payload)
//	payload, err := store.Get(ctx, "recipe-favorites")
//
// A missing key is reported as interfaces.ErrKeyNotFound by every backend.
//
// # HTTP Client
//
// The HTTP client retries transient failures when configured to:
//
//	client := standard.NewStandardHTTPClient(10*time.Second, standard.WithRetries(2))
//	resp, err := client.Get(ctx, "https://www.themealdb.com/api/json/v1/1/random.php")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger, err := structured.NewLogger(structured.Options{Level: "info", Format: "json"})
//	logger.Info("Added favorite", map[string]interface{}{
//	    "recipe_id": "52771",
//	})
package infrastructure
