// internal/interfaces/http/server.go
package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pawtopia/storefront/internal/config"
	"github.com/pawtopia/storefront/internal/domain/catalog"
	"github.com/pawtopia/storefront/internal/domain/storefront"
	"github.com/pawtopia/storefront/internal/infrastructure/storage"
	"github.com/pawtopia/storefront/internal/interfaces/http/handlers"
	"github.com/pawtopia/storefront/internal/interfaces/http/middleware"
	"github.com/pawtopia/storefront/internal/interfaces/http/routes"
	"github.com/pawtopia/storefront/internal/pkg/session"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Deps are the collaborators of the HTTP server. Redis is optional and
// only enables rate limiting; Checks are extra readiness dependencies.
type Deps struct {
	Catalog  *catalog.Service
	Sessions *storefront.Registry
	Store    storage.Store
	Redis    *redis.Client
	Checks   map[string]handlers.Checker
}

// Server represents the HTTP server
type Server struct {
	config     *config.Config
	log        *logrus.Logger
	deps       Deps
	gin        *gin.Engine
	httpServer *http.Server
}

// NewServer creates a new HTTP server instance with its routes mounted
func NewServer(cfg *config.Config, log *logrus.Logger, deps Deps) *Server {
	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		config: cfg,
		log:    log,
		deps:   deps,
		gin:    gin.New(),
	}
	if err := s.gin.SetTrustedProxies(cfg.Security.TrustedProxies); err != nil {
		log.WithError(err).Warn("Ignoring invalid TRUSTED_PROXIES")
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      s.gin,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	return s
}

// Handler returns the root handler, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.gin
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	s.log.Infof("🚀 HTTP Server starting on port %s", s.config.Server.Port)
	s.log.Infof("🌐 API Base URL: http://localhost:%s/api/v1", s.config.Server.Port)
	s.log.Infof("📊 Health Check: http://localhost:%s/health", s.config.Server.Port)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("🛑 Shutting down HTTP server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.log.Info("✅ HTTP server stopped gracefully")
	return nil
}

// setupMiddleware configures all middleware for the server
func (s *Server) setupMiddleware() {
	// Recovery middleware - recover from panics
	s.gin.Use(gin.Recovery())

	// Request ID middleware, ahead of the logger so entries carry it
	s.gin.Use(middleware.RequestID())

	s.gin.Use(middleware.Logger(s.log))

	s.gin.Use(middleware.CORS(s.config))

	s.gin.Use(middleware.SecurityHeaders(s.config.App.Name))

	s.gin.Use(middleware.RateLimit(s.config, s.deps.Redis, s.log))

	s.gin.Use(middleware.RequestSizeLimit(1 << 20))

	s.gin.Use(middleware.Timeout(s.config.Server.RequestTimeout))
}

// setupRoutes configures all routes for the server
func (s *Server) setupRoutes() {
	health := handlers.NewHealthHandler(s.config, s.deps.Store, s.deps.Catalog, s.deps.Checks)
	s.gin.GET("/health", health.Health)
	s.gin.GET("/ready", health.Ready)

	apiV1 := s.gin.Group("/api/v1")
	routes.SetupRoutes(apiV1, routes.Deps{
		Config:   s.config,
		Catalog:  s.deps.Catalog,
		Sessions: s.deps.Sessions,
		Tokens:   session.NewManager(s.config),
		Log:      s.log,
	})

	if s.config.IsDevelopment() {
		s.gin.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"message":     s.config.App.Name,
				"version":     s.config.App.Version,
				"environment": s.config.App.Environment,
				"health":      "/health",
				"endpoints": gin.H{
					"products": "/api/v1/products",
					"cart":     "/api/v1/cart",
					"ratings":  "/api/v1/ratings/:key",
					"reviews":  "/api/v1/reviews",
					"events":   "/api/v1/events",
				},
			})
		})
	}
}
