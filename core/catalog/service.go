// ABOUTME: Catalog service queries the remote recipe catalog over HTTP
// ABOUTME: Maps catalog JSON into domain records and reports every fault as CatalogUnavailable

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"

	"recipes-app-api/core/domain"
	coreerrors "recipes-app-api/core/errors"
	"recipes-app-api/core/interfaces"
)

// DefaultBaseURL is the public TheMealDB v1 endpoint
const DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

const catalogAPIName = "themealdb"

// mealsResponse is the envelope of every recipe endpoint; null meals means no results
type mealsResponse struct {
	Meals []domain.Recipe `json:"meals"`
}

// categoriesResponse is the envelope of the categories endpoint
type categoriesResponse struct {
	Categories []domain.Category `json:"categories"`
}

// CatalogService handles read-only recipe catalog lookups.
// It holds no mutable state; every call is independent.
type CatalogService struct {
	deps    interfaces.Dependencies
	baseURL string
}

// NewCatalogService creates a new catalog service instance.
// An empty baseURL selects DefaultBaseURL.
func NewCatalogService(deps interfaces.Dependencies, baseURL string) *CatalogService {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &CatalogService{
		deps:    deps,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// SearchByName searches recipes by name. Avoiding an empty query is up to the caller.
func (s *CatalogService) SearchByName(ctx context.Context, name string) ([]domain.Recipe, error) {
	return s.fetchMeals(ctx, "search", "search.php", url.Values{"s": {name}})
}

// GetByID looks up a single recipe. Returns nil without error when the catalog has no such recipe.
func (s *CatalogService) GetByID(ctx context.Context, id string) (*domain.Recipe, error) {
	meals, err := s.fetchMeals(ctx, "lookup", "lookup.php", url.Values{"i": {id}})
	if err != nil {
		return nil, err
	}
	if len(meals) == 0 {
		return nil, nil
	}
	return &meals[0], nil
}

// GetByCategory lists the recipes of a category
func (s *CatalogService) GetByCategory(ctx context.Context, category string) ([]domain.Recipe, error) {
	return s.fetchMeals(ctx, "filter by category", "filter.php", url.Values{"c": {category}})
}

// GetByIngredient lists the recipes using an ingredient
func (s *CatalogService) GetByIngredient(ctx context.Context, ingredient string) ([]domain.Recipe, error) {
	return s.fetchMeals(ctx, "filter by ingredient", "filter.php", url.Values{"i": {ingredient}})
}

// ListCategories lists every catalog category
func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var resp categoriesResponse
	if err := s.getJSON(ctx, "categories.php", nil, &resp); err != nil {
		return nil, coreerrors.NewCatalogUnavailable("categories", err)
	}

	if resp.Categories == nil {
		return []domain.Category{}, nil
	}
	return resp.Categories, nil
}

// GetRandom issues count independent random lookups concurrently.
// Failed or empty lookups are dropped. The call only fails when every lookup
// failed; a catalog that answered with nothing is not a failure.
func (s *CatalogService) GetRandom(ctx context.Context, count int) ([]domain.Recipe, error) {
	if count <= 0 {
		return []domain.Recipe{}, nil
	}

	picks := make([]*domain.Recipe, count)
	faults := make([]error, count)

	var g errgroup.Group
	for i := 0; i < count; i++ {
		g.Go(func() error {
			meals, err := s.fetchMeals(ctx, "random", "random.php", nil)
			if err != nil {
				faults[i] = err
				return nil
			}
			if len(meals) > 0 {
				picks[i] = &meals[0]
			}
			return nil
		})
	}
	_ = g.Wait()

	recipes := make([]domain.Recipe, 0, count)
	failed := 0
	for i := range picks {
		if faults[i] != nil {
			failed++
			s.logWarn("Random recipe lookup failed", map[string]interface{}{
				"index": i,
				"error": faults[i].Error(),
			})
			continue
		}
		if picks[i] != nil {
			recipes = append(recipes, *picks[i])
		}
	}

	if failed == count {
		return nil, coreerrors.NewCatalogUnavailable("random", errors.Join(faults...))
	}

	s.logDebug("Fetched random recipes", map[string]interface{}{
		"requested": count,
		"returned":  len(recipes),
		"failed":    failed,
	})

	return recipes, nil
}

// fetchMeals calls a recipe endpoint and normalizes a null meals list to an empty slice
func (s *CatalogService) fetchMeals(ctx context.Context, operation, endpoint string, query url.Values) ([]domain.Recipe, error) {
	var resp mealsResponse
	if err := s.getJSON(ctx, endpoint, query, &resp); err != nil {
		return nil, coreerrors.NewCatalogUnavailable(operation, err)
	}

	if resp.Meals == nil {
		return []domain.Recipe{}, nil
	}
	return resp.Meals, nil
}

// getJSON performs a GET against the catalog and decodes the body into dest
func (s *CatalogService) getJSON(ctx context.Context, endpoint string, query url.Values, dest interface{}) error {
	if s.deps.HTTPClient == nil {
		return errors.New("HTTP client not configured")
	}

	apiURL := s.baseURL + "/" + endpoint
	if len(query) > 0 {
		apiURL += "?" + query.Encode()
	}

	resp, err := s.deps.HTTPClient.Get(ctx, apiURL)
	if err != nil {
		return coreerrors.WrapError(err, "request failed")
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		return &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    http.StatusText(resp.StatusCode()),
			API:        catalogAPIName,
		}
	}

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if err := json.Unmarshal(bodyBytes, dest); err != nil {
		return fmt.Errorf("failed to parse catalog response: %w", err)
	}

	return nil
}

func (s *CatalogService) logDebug(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, fields)
	}
}

func (s *CatalogService) logWarn(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}
