// internal/domain/catalog/entity.go
package catalog

import (
	"errors"
	"strings"

	"github.com/pawtopia/storefront/internal/pkg/money"
	"github.com/pawtopia/storefront/internal/pkg/slug"
	"github.com/shopspring/decimal"
)

// ErrProductNotFound is returned when no product matches a slug
var ErrProductNotFound = errors.New("product not found")

// Record is a catalog entry as published by a feed
type Record struct {
	Title       string `yaml:"title" json:"title"`
	Category    string `yaml:"category" json:"category"`
	Image       string `yaml:"image" json:"image"`
	Price       string `yaml:"price" json:"price"`
	Description string `yaml:"description" json:"description"`
	Alt         string `yaml:"alt" json:"alt,omitempty"`
}

// Product is an immutable catalog entry. Identity is Slug.
type Product struct {
	Index       int             `json:"index"`
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Category    string          `json:"category"`
	Image       string          `json:"img"`
	Alt         string          `json:"alt"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	PriceText   string          `json:"priceText"`
	Facets      Facets          `json:"facets"`
}

// NewProduct builds the product at catalog position index from a record
func NewProduct(index int, r Record) Product {
	title := strings.TrimSpace(r.Title)
	alt := strings.TrimSpace(r.Alt)
	if alt == "" {
		alt = title
	}
	priceText := strings.TrimSpace(r.Price)

	p := Product{
		Index:       index,
		Slug:        slug.Make(title),
		Title:       title,
		Category:    strings.TrimSpace(r.Category),
		Image:       strings.TrimSpace(r.Image),
		Alt:         alt,
		Description: strings.TrimSpace(r.Description),
		Price:       money.ParseOrZero(priceText),
		PriceText:   priceText,
	}
	p.Facets = Classify(p)
	return p
}

// DisplayDescription falls back to the alt text, then to a generic line
func (p Product) DisplayDescription() string {
	if p.Description != "" {
		return p.Description
	}
	if p.Alt != "" && p.Alt != p.Title {
		return p.Alt
	}
	kind := strings.ToLower(p.Category)
	if kind == "" {
		kind = "item"
	}
	return p.Title + " - premium quality " + kind + " for your pet."
}
