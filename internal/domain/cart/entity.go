// internal/domain/cart/entity.go
package cart

import (
	"encoding/json"
	"strconv"

	"github.com/pawtopia/storefront/internal/domain/catalog"
	"github.com/pawtopia/storefront/internal/pkg/money"
	"github.com/shopspring/decimal"
)

// StorageKey is the storage entry holding the serialized cart
const StorageKey = "pt-cart:v1"

// LineItem is one cart row. At most one line exists per Slug and Qty is
// never below 1.
type LineItem struct {
	Slug      string          `json:"slug"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	PriceText string          `json:"priceText"`
	Image     string          `json:"img"`
	Qty       int             `json:"qty"`
}

// MarshalJSON writes price as a JSON number, the layout persisted carts
// use. Both numbers and quoted strings are read back.
func (i LineItem) MarshalJSON() ([]byte, error) {
	type plain LineItem
	return json.Marshal(struct {
		plain
		Price json.Number `json:"price"`
	}{plain(i), json.Number(i.Price.String())})
}

// FromProduct builds the line for one unit of p
func FromProduct(p catalog.Product) LineItem {
	return LineItem{
		Slug:      p.Slug,
		Title:     p.Title,
		Price:     p.Price,
		PriceText: p.PriceText,
		Image:     p.Image,
		Qty:       1,
	}
}

// LineTotal is Price × Qty
func (i LineItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Qty)))
}

// Totals represents calculated cart totals
type Totals struct {
	ItemCount     int             `json:"itemCount"`     // Sum of all quantities
	DistinctItems int             `json:"distinctItems"` // Number of lines
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	Total         decimal.Decimal `json:"total"`
}

// Badge is the header cart counter
type Badge struct {
	Count   int    `json:"count"`
	Text    string `json:"text"`
	Visible bool   `json:"visible"`
}

// Subtotal is the sum of price × qty over items
func Subtotal(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.LineTotal())
	}
	return sum
}

// ItemCount is the sum of quantities, as shown on the badge
func ItemCount(items []LineItem) int {
	n := 0
	for _, item := range items {
		n += item.Qty
	}
	return n
}

// ComputeTotals derives the totals for items with discount applied. The
// total never drops below zero.
func ComputeTotals(items []LineItem, discount decimal.Decimal) Totals {
	subtotal := Subtotal(items)
	total := money.Max(subtotal.Sub(discount), decimal.Zero)
	return Totals{
		ItemCount:     ItemCount(items),
		DistinctItems: len(items),
		Subtotal:      subtotal,
		Discount:      discount,
		Total:         total,
	}
}

// BadgeFor renders the counter for count items; it is hidden at zero
func BadgeFor(count int) Badge {
	return Badge{
		Count:   count,
		Text:    strconv.Itoa(count),
		Visible: count > 0,
	}
}
