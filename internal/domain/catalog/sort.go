// internal/domain/catalog/sort.go
package catalog

import (
	"sort"
	"strings"
)

// Criterion orders a product listing
type Criterion string

const (
	SortFeatured  Criterion = "featured"
	SortPriceAsc  Criterion = "price-asc"
	SortPriceDesc Criterion = "price-desc"
)

// ParseCriterion reads a stored or requested criterion. The legacy values
// "low-to-high" and "high-to-low" are accepted. Unknown values yield
// SortFeatured and false.
func ParseCriterion(s string) (Criterion, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(SortFeatured):
		return SortFeatured, true
	case string(SortPriceAsc), "low-to-high":
		return SortPriceAsc, true
	case string(SortPriceDesc), "high-to-low":
		return SortPriceDesc, true
	default:
		return SortFeatured, false
	}
}

// ParseSortLabel maps a dropdown label such as "Price: High to Low" to a
// criterion. "high to low" is tested first since that label also contains
// "low".
func ParseSortLabel(label string) Criterion {
	normalized := strings.Join(strings.Fields(strings.ToLower(label)), " ")
	switch {
	case strings.Contains(normalized, "high to low"):
		return SortPriceDesc
	case strings.Contains(normalized, "low to high"):
		return SortPriceAsc
	default:
		return SortFeatured
	}
}

// Label is the dropdown text for c
func (c Criterion) Label() string {
	switch c {
	case SortPriceAsc:
		return "Price: Low to High"
	case SortPriceDesc:
		return "Price: High to Low"
	default:
		return "Featured"
	}
}

// Sort returns a sorted copy of items. Ties, and the featured order, fall
// back to the original catalog index.
func Sort(items []Product, c Criterion) []Product {
	out := make([]Product, len(items))
	copy(out, items)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch c {
		case SortPriceAsc:
			if cmp := a.Price.Cmp(b.Price); cmp != 0 {
				return cmp < 0
			}
		case SortPriceDesc:
			if cmp := a.Price.Cmp(b.Price); cmp != 0 {
				return cmp > 0
			}
		}
		return a.Index < b.Index
	})
	return out
}
