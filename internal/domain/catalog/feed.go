// internal/domain/catalog/feed.go
package catalog

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tealeg/xlsx"
	"gopkg.in/yaml.v3"
)

// Feed supplies the catalog records in display order
type Feed interface {
	Records(ctx context.Context) ([]Record, error)
}

// FeedFunc adapts a function to Feed
type FeedFunc func(ctx context.Context) ([]Record, error)

func (f FeedFunc) Records(ctx context.Context) ([]Record, error) { return f(ctx) }

// LoadIndex reads feed once and builds the index
func LoadIndex(ctx context.Context, feed Feed) (*Index, error) {
	records, err := feed.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog feed: %w", err)
	}
	index, err := NewIndex(records)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog feed: %w", err)
	}
	return index, nil
}

// StaticFeed serves the built-in product list
type StaticFeed struct{}

func (StaticFeed) Records(context.Context) ([]Record, error) {
	return StaticRecords(), nil
}

// YAMLFeed reads a YAML sequence of records from Path
type YAMLFeed struct {
	Path string
}

func (f YAMLFeed) Records(context.Context) ([]Record, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.Path, err)
	}

	var records []Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", f.Path, err)
	}
	return records, nil
}

// XLSXColumns is the header row an XLSX catalog must start with
var XLSXColumns = []string{"title", "category", "image", "price", "description"}

// XLSXFeed reads the first sheet of a spreadsheet at Path. The first row
// is a header; blank rows are skipped.
type XLSXFeed struct {
	Path string
}

func (f XLSXFeed) Records(context.Context) ([]Record, error) {
	file, err := xlsx.OpenFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", f.Path, err)
	}
	if len(file.Sheets) == 0 {
		return nil, fmt.Errorf("%s has no sheets", f.Path)
	}

	sheet := file.Sheets[0]
	if len(sheet.Rows) == 0 {
		return nil, fmt.Errorf("%s is missing the header row", f.Path)
	}

	columns := make(map[string]int)
	for i, cell := range sheet.Rows[0].Cells {
		columns[strings.ToLower(strings.TrimSpace(cell.String()))] = i
	}
	for _, name := range XLSXColumns[:4] {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%s is missing the %q column", f.Path, name)
		}
	}

	var records []Record
	for _, row := range sheet.Rows[1:] {
		if row == nil {
			continue
		}
		get := func(name string) string {
			i, ok := columns[name]
			if !ok || i >= len(row.Cells) {
				return ""
			}
			return strings.TrimSpace(row.Cells[i].String())
		}

		r := Record{
			Title:       get("title"),
			Category:    get("category"),
			Image:       get("image"),
			Price:       get("price"),
			Description: get("description"),
			Alt:         get("alt"),
		}
		if r.Title == "" {
			continue
		}
		records = append(records, r)
	}
	return records, nil
}
