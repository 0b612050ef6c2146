// cmd/api/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pawtopia/storefront/internal/config"
	"github.com/pawtopia/storefront/internal/domain/catalog"
	"github.com/pawtopia/storefront/internal/domain/storefront"
	"github.com/pawtopia/storefront/internal/infrastructure/database/postgres"
	"github.com/pawtopia/storefront/internal/infrastructure/database/redis"
	"github.com/pawtopia/storefront/internal/infrastructure/storage"
	"github.com/pawtopia/storefront/internal/interfaces/http"
	"github.com/pawtopia/storefront/internal/interfaces/http/handlers"
	"github.com/pawtopia/storefront/internal/pkg/logger"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const sweepInterval = time.Minute

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg := logger.New(cfg)
	logg.Infof("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	checks := map[string]handlers.Checker{}

	// Storage backend standing in for browser local storage
	store, redisClient, err := openStore(ctx, cfg, logg)
	if err != nil {
		logg.WithError(err).Fatal("Failed to open storage")
	}
	defer store.Close()

	// Catalog feed
	feed, db, err := openFeed(cfg, logg)
	if err != nil {
		logg.WithError(err).Fatal("Failed to open catalog feed")
	}
	if db != nil {
		defer db.Close()
		checks["database"] = db
	}

	index, err := catalog.LoadIndex(ctx, feed)
	if err != nil {
		logg.WithError(err).Fatal("Failed to load catalog")
	}
	logg.WithFields(logrus.Fields{
		"source":   cfg.Catalog.Source,
		"products": index.Len(),
	}).Info("✅ Catalog loaded")

	catalogService := catalog.NewService(index, cfg)
	sessions := storefront.NewRegistry(storefront.Deps{
		Catalog: catalogService,
		Store:   store,
		Config:  cfg,
		Log:     logg,
	})
	defer sessions.Close()
	go sessions.Run(ctx, sweepInterval)

	logg.Info("✅ All systems operational!")

	// Create and start HTTP server
	server := http.NewServer(cfg, logg, http.Deps{
		Catalog:  catalogService,
		Sessions: sessions,
		Store:    store,
		Redis:    redisClient,
		Checks:   checks,
	})

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logg.WithError(err).Fatal("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logg.Info("👋 Shutting down gracefully...")

	// Give server 30 seconds to shutdown gracefully
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(shutdownCtx); err != nil {
		logg.WithError(err).Error("Failed to shutdown HTTP server gracefully")
	}
	stop()

	logg.Info("✅ Server shutdown completed")
}

// openStore selects the storage backend. The Redis client is returned so
// the rate limiter can share it; it is nil for the memory backend.
func openStore(ctx context.Context, cfg *config.Config, logg *logrus.Logger) (storage.Store, *goredis.Client, error) {
	switch cfg.Storage.Backend {
	case "redis":
		client, err := redis.NewConnection(cfg, logg)
		if err != nil {
			return nil, nil, err
		}
		store := redis.NewStore(client.GetClient(), cfg.Storage.KeyPrefix, cfg.Session.TokenTTL, logg)
		if err := store.Start(ctx); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to subscribe to storage changes: %w", err)
		}
		return store, client.GetClient(), nil
	default:
		logg.Info("💾 Using in-memory storage")
		return storage.NewMemory(), nil, nil
	}
}

// openFeed selects the catalog source. The database is returned when the
// catalog lives in Postgres so it can be health-checked and closed.
func openFeed(cfg *config.Config, logg *logrus.Logger) (catalog.Feed, *postgres.DB, error) {
	switch cfg.Catalog.Source {
	case "yaml":
		return catalog.YAMLFeed{Path: cfg.Catalog.Path}, nil, nil
	case "xlsx":
		return catalog.XLSXFeed{Path: cfg.Catalog.Path}, nil, nil
	case "postgres":
		db, err := postgres.NewConnection(cfg, logg)
		if err != nil {
			return nil, nil, err
		}

		// Run database migrations
		migration := postgres.NewMigration(db.DB, logg)
		if err := migration.RunAutoMigrations(); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("database migration failed: %w", err)
		}
		if err := migration.CreateIndexes(); err != nil {
			logg.WithError(err).Warn("Index creation failed")
		}

		// Seed the bundled catalog in development
		if cfg.IsDevelopment() {
			if err := migration.SeedCatalog(catalog.StaticRecords()); err != nil {
				logg.WithError(err).Warn("Catalog seeding failed")
			}
		}
		return postgres.NewCatalogFeed(db.DB), db, nil
	default:
		return catalog.StaticFeed{}, nil, nil
	}
}
