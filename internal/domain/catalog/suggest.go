// internal/domain/catalog/suggest.go
package catalog

import (
	"sort"
	"strings"
)

// DefaultSuggestionLimit caps the autocomplete list
const DefaultSuggestionLimit = 8

// Suggestion is one autocomplete row
type Suggestion struct {
	Product Product `json:"product"`
	Score   int     `json:"score"`
}

// Score ranks p against the lower-cased query q: title prefix 100, title
// substring 60, title or category substring 30, a word starting with q 20.
// Products matching none score -1.
func Score(p Product, q string) int {
	title := strings.ToLower(p.Title)
	hay := strings.ToLower(p.Title + " " + p.Category)
	switch {
	case strings.HasPrefix(title, q):
		return 100
	case strings.Contains(title, q):
		return 60
	case strings.Contains(hay, q):
		return 30
	}
	for _, w := range strings.Fields(hay) {
		if strings.HasPrefix(w, q) {
			return 20
		}
	}
	return -1
}

// Suggest returns up to limit products for the autocomplete query q, best
// first. Equal scores keep catalog order. An empty query suggests nothing.
func Suggest(products []Product, q string, limit int) []Suggestion {
	term := strings.ToLower(strings.TrimSpace(q))
	if term == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	var out []Suggestion
	for _, p := range products {
		if s := Score(p, term); s >= 0 {
			out = append(out, Suggestion{Product: p, Score: s})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
