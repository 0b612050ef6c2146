// internal/domain/catalog/deeplink.go
package catalog

import (
	"net/url"
	"strings"
)

// DeepLink holds the query parameters a product page reads on load
type DeepLink struct {
	Query    string `form:"q" json:"q,omitempty"`
	Product  string `form:"product" json:"product,omitempty"`
	Category string `form:"category" json:"category,omitempty"`
	Filter   string `form:"filter" json:"filter,omitempty"`
}

// DeepLinkOutcome reports what a deep link changed
type DeepLinkOutcome struct {
	ScrollToResults bool     `json:"scrollToResults"`
	Product         *Product `json:"product,omitempty"`
}

// ParseDeepLink reads a deep link from URL query values
func ParseDeepLink(values url.Values) DeepLink {
	return DeepLink{
		Query:    values.Get("q"),
		Product:  values.Get("product"),
		Category: values.Get("category"),
		Filter:   values.Get("filter"),
	}
}

// IsZero reports whether no parameter is set
func (d DeepLink) IsZero() bool {
	return d == DeepLink{}
}

// deepLinkFilters are the filter ids accepted by the filter parameter
var deepLinkFilters = map[string]bool{
	FilterDryDogFood: true, FilterDryCatFood: true, FilterWetDogFood: true, FilterWetCatFood: true,
	FilterSupplies: true, FilterSupplements: true, FilterToys: true, FilterTreats: true,
	FilterDryCatTreats: true, FilterDryDogTreats: true, FilterAccessories: true,
	FilterDentalTreats: true, FilterTrainingTreats: true,
	FilterAllDogItems: true, FilterAllCatItems: true,
}

// SpeciesFilter maps a category shorthand such as "puppies" to its
// species filter id
func SpeciesFilter(category string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "dog", "dogs", "canine", "puppy", "puppies":
		return FilterAllDogItems, true
	case "cat", "cats", "feline", "kitten", "kittens":
		return FilterAllCatItems, true
	default:
		return "", false
	}
}

// ApplyDeepLink applies the parameters in page-load order: search term,
// product, category shorthand, then explicit filter. A category or filter
// replaces any checked boxes. Unknown values are ignored.
func (v *View) ApplyDeepLink(link DeepLink) DeepLinkOutcome {
	var out DeepLinkOutcome

	if link.Query != "" {
		v.SetQuery(link.Query)
		out.ScrollToResults = true
	}

	if link.Product != "" {
		out.ScrollToResults = true
		if p, err := v.index.FindBySlug(link.Product); err == nil {
			out.Product = &p
		}
	}

	if id, ok := SpeciesFilter(link.Category); ok {
		v.SelectOnly(id)
		out.ScrollToResults = true
	}

	if id := strings.ToLower(strings.TrimSpace(link.Filter)); deepLinkFilters[id] {
		v.SelectOnly(id)
		out.ScrollToResults = true
	}

	return out
}

// OpenProduct resolves s and clears every filter so the product is
// visible in the listing behind its detail view.
func (v *View) OpenProduct(s string) (Product, error) {
	p, err := v.index.FindBySlug(s)
	if err != nil {
		return Product{}, err
	}
	v.ClearAll()
	return p, nil
}
