// internal/domain/catalog/view.go
package catalog

import (
	"fmt"
	"strings"
)

// Result is what the renderer needs to draw one listing
type Result struct {
	Page
	Label         string      `json:"label"`
	Empty         bool        `json:"empty"`
	EmptyMessage  string      `json:"emptyMessage,omitempty"`
	HasAnyFilters bool        `json:"hasAnyFilters"`
	Sort          Criterion   `json:"sort"`
	Filters       FilterState `json:"filters"`
}

// View holds the filter, sort and pagination state of one product page.
// It is not safe for concurrent use; the page controller serializes calls.
type View struct {
	index    *Index
	filters  FilterState
	sort     Criterion
	pageSize int
	page     int
}

// NewView creates a view over index with no filters on page 1
func NewView(index *Index, pageSize int, sort Criterion) *View {
	if pageSize < 1 {
		pageSize = 1
	}
	if _, ok := ParseCriterion(string(sort)); !ok {
		sort = SortFeatured
	}
	return &View{index: index, sort: sort, pageSize: pageSize, page: 1}
}

// Filters returns a copy of the current filter state
func (v *View) Filters() FilterState {
	f := v.filters
	f.Categories = append([]string(nil), v.filters.Categories...)
	return f
}

func (v *View) Sort() Criterion { return v.sort }

func (v *View) PageSize() int { return v.pageSize }

func (v *View) CurrentPage() int { return v.page }

// SetQuery replaces the search text and resets to page 1
func (v *View) SetQuery(q string) {
	v.filters.Query = q
	v.page = 1
}

// SetCategory checks or unchecks filter id and resets to page 1
func (v *View) SetCategory(id string, checked bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		return
	}
	has := v.filters.HasCategory(id)
	switch {
	case checked && !has:
		v.filters.Categories = append(v.filters.Categories, id)
	case !checked && has:
		kept := v.filters.Categories[:0]
		for _, c := range v.filters.Categories {
			if c != id {
				kept = append(kept, c)
			}
		}
		v.filters.Categories = kept
	}
	v.page = 1
}

// ToggleCategory flips filter id
func (v *View) ToggleCategory(id string) {
	v.SetCategory(id, !v.filters.HasCategory(id))
}

// SelectOnly replaces the checkbox selection with ids
func (v *View) SelectOnly(ids ...string) {
	v.filters.Categories = nil
	for _, id := range ids {
		v.SetCategory(id, true)
	}
	v.page = 1
}

// SetPriceBounds stores the raw price inputs and resets to page 1.
// Non-numeric text constrains nothing.
func (v *View) SetPriceBounds(minText, maxText string) {
	v.filters.MinText = minText
	v.filters.MaxText = maxText
	v.page = 1
}

// ClearAll unchecks every box, clears the bounds and the query
func (v *View) ClearAll() {
	v.filters = FilterState{}
	v.page = 1
}

// SetSort changes the ordering. Like a dropdown click it re-runs the filter
// pass, so the page resets to 1.
func (v *View) SetSort(c Criterion) {
	if _, ok := ParseCriterion(string(c)); !ok {
		c = SortFeatured
	}
	v.sort = c
	v.page = 1
}

// SetPageSize changes the page size and returns to page 1, keeping filters
func (v *View) SetPageSize(n int) error {
	if n < 1 {
		return fmt.Errorf("page size must be positive, got %d", n)
	}
	v.pageSize = n
	v.page = 1
	return nil
}

// GoToPage navigates without touching filters. The page is clamped on the
// next recomputation.
func (v *View) GoToPage(p int) {
	v.page = p
	v.page = v.Result().Page.Page
}

// Result recomputes the visible slice from the current state
func (v *View) Result() Result {
	ordered := Sort(Filter(v.index.Products(), v.filters), v.sort)
	page := Paginate(ordered, v.pageSize, v.page)
	v.page = page.Page

	r := Result{
		Page:          page,
		Label:         ShowingLabel(page),
		Empty:         page.TotalFiltered == 0,
		HasAnyFilters: v.filters.HasAny(),
		Sort:          v.sort,
		Filters:       v.Filters(),
	}
	if r.Empty {
		r.EmptyMessage = EmptyMessage(v.filters.Query)
	}
	return r
}

// ShowingLabel renders "Showing <start> - <end> of <N> products"
func ShowingLabel(p Page) string {
	start := 0
	if p.TotalFiltered > 0 {
		start = p.StartIndex + 1
	}
	return fmt.Sprintf("Showing %d - %d of %d products", start, p.EndIndex, p.TotalFiltered)
}

// EmptyMessage is the empty-state text for query
func EmptyMessage(query string) string {
	if q := strings.TrimSpace(query); q != "" {
		return fmt.Sprintf("No products match “%s”.", q)
	}
	return "No products match your filters."
}
