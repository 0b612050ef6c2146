// internal/infrastructure/database/postgres/catalog.go
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/pawtopia/storefront/internal/domain/catalog"
	"gorm.io/gorm"
)

// CatalogProduct is one row of the catalog_products table. Position fixes
// the featured order.
type CatalogProduct struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Position    int       `gorm:"not null;uniqueIndex" json:"position"`
	Title       string    `gorm:"not null" json:"title"`
	Category    string    `gorm:"not null" json:"category"`
	Image       string    `json:"image"`
	Alt         string    `json:"alt"`
	Price       string    `gorm:"not null" json:"price"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName overrides the default table name
func (CatalogProduct) TableName() string {
	return "catalog_products"
}

// Record converts the row to a feed record
func (p CatalogProduct) Record() catalog.Record {
	return catalog.Record{
		Title:       p.Title,
		Category:    p.Category,
		Image:       p.Image,
		Price:       p.Price,
		Description: p.Description,
		Alt:         p.Alt,
	}
}

// FromRecord builds the row stored at position for r
func FromRecord(position int, r catalog.Record) CatalogProduct {
	return CatalogProduct{
		Position:    position,
		Title:       r.Title,
		Category:    r.Category,
		Image:       r.Image,
		Alt:         r.Alt,
		Price:       r.Price,
		Description: r.Description,
	}
}

// CatalogFeed reads the catalog from Postgres in position order
type CatalogFeed struct {
	db *gorm.DB
}

// NewCatalogFeed creates a catalog feed over db
func NewCatalogFeed(db *gorm.DB) *CatalogFeed {
	return &CatalogFeed{db: db}
}

// Records implements catalog.Feed
func (f *CatalogFeed) Records(ctx context.Context) ([]catalog.Record, error) {
	var rows []CatalogProduct
	if err := f.db.WithContext(ctx).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load catalog products: %w", err)
	}

	records := make([]catalog.Record, len(rows))
	for i, row := range rows {
		records[i] = row.Record()
	}
	return records, nil
}
