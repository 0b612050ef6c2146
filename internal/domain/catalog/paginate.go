// internal/domain/catalog/paginate.go
package catalog

// Page is one slice of a filtered, ordered listing. StartIndex is the
// zero-based offset of the first item and EndIndex the exclusive end.
type Page struct {
	Items         []Product `json:"items"`
	TotalFiltered int       `json:"totalFiltered"`
	StartIndex    int       `json:"startIndex"`
	EndIndex      int       `json:"endIndex"`
	TotalPages    int       `json:"totalPages"`
	Page          int       `json:"page"`
	PageSize      int       `json:"pageSize"`
}

// TotalPages is max(1, ceil(total/pageSize))
func TotalPages(total, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Paginate slices items for page, clamping page into [1, TotalPages].
func Paginate(items []Product, pageSize, page int) Page {
	if pageSize < 1 {
		pageSize = 1
	}
	total := len(items)
	pages := TotalPages(total, pageSize)
	page = clamp(page, 1, pages)

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}
	if start > end {
		start = end
	}

	return Page{
		Items:         items[start:end],
		TotalFiltered: total,
		StartIndex:    start,
		EndIndex:      end,
		TotalPages:    pages,
		Page:          page,
		PageSize:      pageSize,
	}
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
