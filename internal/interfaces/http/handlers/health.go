// internal/interfaces/http/handlers/health.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pawtopia/storefront/internal/config"
	"github.com/pawtopia/storefront/internal/domain/catalog"
	"github.com/pawtopia/storefront/internal/infrastructure/storage"
)

// Checker is a dependency the readiness probe pings
type Checker interface {
	Health(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness probes
type HealthHandler struct {
	config  *config.Config
	store   storage.Store
	catalog *catalog.Service
	checks  map[string]Checker
	started time.Time
}

// NewHealthHandler creates a new health handler. checks are extra named
// dependencies such as the catalog database.
func NewHealthHandler(cfg *config.Config, store storage.Store, catalogService *catalog.Service, checks map[string]Checker) *HealthHandler {
	return &HealthHandler{
		config:  cfg,
		store:   store,
		catalog: catalogService,
		checks:  checks,
		started: time.Now(),
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  "storage ping failed",
		})
		return
	}

	for name, check := range h.checks {
		if err := check.Health(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  name + " ping failed",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"version":     h.config.App.Version,
		"environment": h.config.App.Environment,
		"storage":     h.config.Storage.Backend,
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ready",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(h.started).String(),
		"products":  h.catalog.Index().Len(),
	})
}
