// internal/domain/catalog/service.go
package catalog

import (
	"context"

	"github.com/pawtopia/storefront/internal/config"
)

// Service exposes the catalog to page controllers and handlers
type Service struct {
	index  *Index
	config *config.Config
}

// NewService creates a new catalog service
func NewService(index *Index, cfg *config.Config) *Service {
	return &Service{
		index:  index,
		config: cfg,
	}
}

// Index returns the underlying catalog
func (s *Service) Index() *Index {
	return s.index
}

// NewView creates a product page view seeded from stored preferences.
// prefs may be nil.
func (s *Service) NewView(ctx context.Context, prefs *Preferences) *View {
	pageSize := s.config.Catalog.DefaultPageSize
	sort := SortFeatured
	if prefs != nil {
		pageSize = prefs.PageSize(ctx, pageSize)
		sort = prefs.Sort(ctx)
	}
	return NewView(s.index, pageSize, sort)
}

// Find resolves a product slug
func (s *Service) Find(slug string) (Product, error) {
	return s.index.FindBySlug(slug)
}

// Suggest returns autocomplete suggestions for q
func (s *Service) Suggest(q string) []Suggestion {
	return Suggest(s.index.Products(), q, s.config.Catalog.SuggestionLimit)
}

// Recommend returns up to n random products, capped by configuration
func (s *Service) Recommend(n int, r Shuffler) []Product {
	limit := s.config.Catalog.RecommendationMax
	if limit <= 0 {
		limit = DefaultRecommendations
	}
	if n <= 0 || n > limit {
		n = limit
	}
	return Recommend(s.index.Products(), n, r)
}

// PageSizeOptions lists the selectable page sizes
func (s *Service) PageSizeOptions() []int {
	return append([]int(nil), s.config.Catalog.PageSizeOptions...)
}
