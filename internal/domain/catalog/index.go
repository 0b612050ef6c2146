// internal/domain/catalog/index.go
package catalog

import (
	"fmt"
	"strings"

	"github.com/pawtopia/storefront/internal/pkg/slug"
)

// Index is the read-only, ordered catalog
type Index struct {
	products []Product
	bySlug   map[string]int
}

// NewIndex builds an index from records in catalog order. Records without
// a title are rejected, as are two records with the same slug.
func NewIndex(records []Record) (*Index, error) {
	idx := &Index{
		products: make([]Product, 0, len(records)),
		bySlug:   make(map[string]int, len(records)),
	}
	for i, r := range records {
		p := NewProduct(i, r)
		if p.Slug == "" {
			return nil, fmt.Errorf("catalog record %d has no usable title", i)
		}
		if prev, dup := idx.bySlug[p.Slug]; dup {
			return nil, fmt.Errorf("catalog records %d and %d share slug %q", prev, i, p.Slug)
		}
		idx.bySlug[p.Slug] = len(idx.products)
		idx.products = append(idx.products, p)
	}
	return idx, nil
}

// Products returns the catalog in original order. Callers must not modify
// the returned slice.
func (x *Index) Products() []Product {
	return x.products
}

// Len returns the number of products
func (x *Index) Len() int {
	return len(x.products)
}

// Get returns the product whose slug is exactly s
func (x *Index) Get(s string) (Product, bool) {
	i, ok := x.bySlug[s]
	if !ok {
		return Product{}, false
	}
	return x.products[i], true
}

// FindBySlug resolves a possibly stale or abbreviated product slug. It
// tries, in order: the exact slug; the slug of the alt text or title; a
// prefix or substring match either way; then the candidate sharing the
// most slug tokens, provided at least two are shared.
func (x *Index) FindBySlug(s string) (Product, error) {
	target := strings.ToLower(strings.TrimSpace(s))
	if target == "" {
		return Product{}, ErrProductNotFound
	}

	if p, ok := x.Get(target); ok {
		return p, nil
	}

	for _, p := range x.products {
		if slug.Make(p.Alt) == target || slug.Make(p.Title) == target {
			return p, nil
		}
	}

	for _, p := range x.products {
		if related(p.Slug, target) || related(slug.Make(p.Title), target) {
			return p, nil
		}
	}

	wanted := tokenSet(target)
	best, bestScore := -1, 0
	for i, p := range x.products {
		score := 0
		for _, candidate := range []string{p.Slug, p.Alt, p.Title} {
			if n := overlap(tokenSet(candidate), wanted); n > score {
				score = n
			}
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if bestScore >= 2 {
		return x.products[best], nil
	}
	return Product{}, ErrProductNotFound
}

func related(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func tokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range slug.Tokens(text) {
		set[t] = struct{}{}
	}
	return set
}

func overlap(a, b map[string]struct{}) int {
	n := 0
	for t := range a {
		if _, ok := b[t]; ok {
			n++
		}
	}
	return n
}
