package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/pawtopia/storefront/internal/domain/catalog"
	"github.com/pawtopia/storefront/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestCatalogProduct_RecordRoundTrip(t *testing.T) {
	r := catalog.StaticRecords()[0]
	row := FromRecord(7, r)
	assert.Equal(t, 7, row.Position)
	assert.Equal(t, r, row.Record())
	assert.Equal(t, "catalog_products", row.TableName())
}

// TestCatalogFeed_Postgres needs a disposable database, e.g.
// POSTGRES_TEST_DSN="host=localhost user=pawtopia password=pawtopia dbname=pawtopia_test sslmode=disable"
func TestCatalogFeed_Postgres(t *testing.T) {
	dsn := os.Getenv("POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_DSN not set")
	}

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrator().DropTable(&CatalogProduct{}))

	m := NewMigration(db, logger.Discard())
	require.NoError(t, m.RunAutoMigrations())
	require.NoError(t, m.CreateIndexes())
	require.NoError(t, m.SeedCatalog(catalog.StaticRecords()))
	require.NoError(t, m.SeedCatalog(catalog.StaticRecords()))

	index, err := catalog.LoadIndex(context.Background(), NewCatalogFeed(db))
	require.NoError(t, err)
	require.Equal(t, 26, index.Len())
	assert.Equal(t, catalog.StaticRecords()[0].Title, index.Products()[0].Title)
}
