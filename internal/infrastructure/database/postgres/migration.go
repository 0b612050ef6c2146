// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"errors"
	"fmt"

	"github.com/pawtopia/storefront/internal/domain/catalog"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db  *gorm.DB
	log logrus.FieldLogger
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB, log logrus.FieldLogger) *Migration {
	return &Migration{
		db:  db,
		log: log,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	m.log.Info("🔄 Running database auto-migrations...")

	models := []interface{}{
		&CatalogProduct{},
	}

	for _, model := range models {
		m.log.Debugf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	m.log.Info("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_catalog_products_category ON catalog_products(category)",
		"CREATE INDEX IF NOT EXISTS idx_catalog_products_title ON catalog_products(lower(title))",
	}

	failCount := 0
	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			m.log.WithError(err).Warn("⚠️ Failed to create index")
			failCount++
		}
	}

	m.log.Infof("✅ Created %d indexes successfully (%d failed)", len(indexes)-failCount, failCount)
	return nil
}

// SeedCatalog inserts records at their positions, skipping positions that
// are already taken
func (m *Migration) SeedCatalog(records []catalog.Record) error {
	m.log.Info("🌱 Seeding catalog...")

	created := 0
	for i, r := range records {
		var existing CatalogProduct
		err := m.db.Where("position = ?", i).First(&existing).Error
		switch {
		case err == nil:
			continue
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return fmt.Errorf("failed to look up position %d: %w", i, err)
		}

		row := FromRecord(i, r)
		if err := m.db.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to seed %q: %w", r.Title, err)
		}
		created++
	}

	m.log.WithField("created", created).Info("✅ Catalog seeded successfully")
	return nil
}
