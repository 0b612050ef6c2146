// internal/interfaces/http/middleware/cors.go
package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pawtopia/storefront/internal/config"
)

// CORS returns a middleware that handles Cross-Origin Resource Sharing.
// Credentials are allowed so the session cookie crosses origins.
func CORS(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:     cfg.Security.CORSAllowedMethods,
		AllowHeaders:     cfg.Security.CORSAllowedHeaders,
		ExposeHeaders:    []string{"Content-Length", RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	for _, origin := range cfg.Security.CORSAllowedOrigins {
		if origin == "*" {
			// a wildcard cannot be combined with credentials, so echo the origin
			corsConfig.AllowOriginFunc = func(string) bool { return true }
			return cors.New(corsConfig)
		}
	}
	corsConfig.AllowOrigins = cfg.Security.CORSAllowedOrigins
	return cors.New(corsConfig)
}
