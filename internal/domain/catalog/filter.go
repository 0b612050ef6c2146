// internal/domain/catalog/filter.go
package catalog

import (
	"strings"

	"github.com/pawtopia/storefront/internal/pkg/money"
	"github.com/shopspring/decimal"
)

// Filter ids, matching the product type checkboxes
const (
	FilterTreats         = "treats"
	FilterSnacks         = "snacks"
	FilterDentalTreats   = "dentaltreats"
	FilterTrainingTreats = "trainingtreats"
	FilterDryCatFood     = "drycatfood"
	FilterDryDogFood     = "drydogfood"
	FilterWetCatFood     = "wetcatfood"
	FilterWetDogFood     = "wetdogfood"
	FilterDryCatTreats   = "drycattreats"
	FilterDryDogTreats   = "drydogtreats"
	FilterAllCatItems    = "allcatitems"
	FilterAllDogItems    = "alldogitems"
	FilterSupplements    = "supplements"
	FilterSupplies       = "supplies"
	FilterAccessories    = "accessories"
	FilterToys           = "toys"
)

// FilterIDs lists the known checkbox ids in display order
var FilterIDs = []string{
	FilterTreats, FilterSnacks, FilterDentalTreats, FilterTrainingTreats,
	FilterDryCatFood, FilterDryDogFood, FilterWetCatFood, FilterWetDogFood,
	FilterDryCatTreats, FilterDryDogTreats, FilterAllCatItems, FilterAllDogItems,
	FilterSupplements, FilterSupplies, FilterAccessories, FilterToys,
}

// FilterState is the transient set of predicates applied to the catalog.
// Price bounds are kept as typed so that non-numeric input can be shown
// back while constraining nothing.
type FilterState struct {
	Categories []string `json:"categories"`
	MinText    string   `json:"min"`
	MaxText    string   `json:"max"`
	Query      string   `json:"q"`
}

// Bounds returns the numeric price bounds, swapped when reversed. A nil
// bound does not constrain.
func (f FilterState) Bounds() (lo, hi *decimal.Decimal) {
	if d, ok := money.Parse(strings.TrimSpace(f.MinText)); ok {
		lo = &d
	}
	if d, ok := money.Parse(strings.TrimSpace(f.MaxText)); ok {
		hi = &d
	}
	if lo != nil && hi != nil && lo.GreaterThan(*hi) {
		lo, hi = hi, lo
	}
	return lo, hi
}

// NormalizedQuery is the trimmed, lower-cased search text
func (f FilterState) NormalizedQuery() string {
	return strings.ToLower(strings.TrimSpace(f.Query))
}

// HasAny reports whether any checkbox, bound or query is set
func (f FilterState) HasAny() bool {
	return len(f.Categories) > 0 ||
		strings.TrimSpace(f.MinText) != "" ||
		strings.TrimSpace(f.MaxText) != "" ||
		strings.TrimSpace(f.Query) != ""
}

// HasCategory reports whether id is selected
func (f FilterState) HasCategory(id string) bool {
	id = strings.ToLower(id)
	for _, c := range f.Categories {
		if c == id {
			return true
		}
	}
	return false
}

// MatchesCategory reports whether p satisfies the predicate of checkbox id.
// Unknown ids match products whose category text contains the id.
func MatchesCategory(id string, p Product) bool {
	f := p.Facets
	switch strings.ToLower(id) {
	case FilterTreats, FilterSnacks:
		return f.Treats
	case FilterDentalTreats:
		return f.Treats && f.DentalName
	case FilterTrainingTreats:
		return f.Treats && f.TrainingName
	case FilterDryCatFood:
		return f.Food && f.Dry && f.Cat
	case FilterDryDogFood:
		return f.Food && f.Dry && f.Dog
	case FilterWetCatFood:
		return f.Food && f.Wet && f.Cat
	case FilterWetDogFood:
		return f.Food && f.Wet && f.Dog
	case FilterDryCatTreats:
		return f.Treats && f.Cat
	case FilterDryDogTreats:
		return f.Treats && f.Dog
	case FilterAllCatItems:
		return f.Cat
	case FilterAllDogItems:
		return f.Dog
	case FilterSupplements:
		return f.Supplements
	case FilterSupplies:
		return f.Supplies
	case FilterAccessories:
		return f.Accessories
	case FilterToys:
		return f.Toys
	default:
		return strings.Contains(strings.ToLower(p.Category), strings.ToLower(id))
	}
}

// Matches reports whether p passes every predicate of state
func Matches(p Product, state FilterState) bool {
	if len(state.Categories) > 0 {
		matched := false
		for _, id := range state.Categories {
			if MatchesCategory(id, p) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	lo, hi := state.Bounds()
	if lo != nil && p.Price.LessThan(*lo) {
		return false
	}
	if hi != nil && p.Price.GreaterThan(*hi) {
		return false
	}

	q := state.NormalizedQuery()
	if q == "" {
		return true
	}
	for _, text := range []string{p.Title, p.Category, p.Alt, p.Description} {
		if strings.Contains(strings.ToLower(text), q) {
			return true
		}
	}
	return false
}

// Filter returns the products of items that match state, in order
func Filter(items []Product, state FilterState) []Product {
	out := make([]Product, 0, len(items))
	for _, p := range items {
		if Matches(p, state) {
			out = append(out, p)
		}
	}
	return out
}
