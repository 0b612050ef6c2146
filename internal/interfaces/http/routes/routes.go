// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pawtopia/storefront/internal/config"
	"github.com/pawtopia/storefront/internal/domain/catalog"
	"github.com/pawtopia/storefront/internal/domain/storefront"
	"github.com/pawtopia/storefront/internal/interfaces/http/handlers"
	"github.com/pawtopia/storefront/internal/interfaces/http/middleware"
	"github.com/pawtopia/storefront/internal/pkg/session"
	"github.com/sirupsen/logrus"
)

// Deps are the services the routes are wired to
type Deps struct {
	Config   *config.Config
	Catalog  *catalog.Service
	Sessions *storefront.Registry
	Tokens   *session.Manager
	Log      logrus.FieldLogger
}

// SetupProductRoutes sets up product listing routes
func SetupProductRoutes(rg *gin.RouterGroup, deps Deps) {
	productHandler := handlers.NewProductHandler(deps.Catalog, deps.Sessions)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.POST("/view", productHandler.Dispatch)
		products.GET("/suggest", productHandler.Suggest)
		products.GET("/recommendations", productHandler.Recommendations)
		products.GET("/:slug", productHandler.GetProduct)
	}
}

// SetupCartRoutes sets up cart related routes
func SetupCartRoutes(rg *gin.RouterGroup, deps Deps) {
	cartHandler := handlers.NewCartHandler(deps.Sessions)

	cart := rg.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.DELETE("", cartHandler.ClearCart)
		cart.GET("/count", cartHandler.GetCartCount)
		cart.POST("/items", cartHandler.AddToCart)
		cart.PATCH("/items/:slug", cartHandler.UpdateCartItem)
		cart.DELETE("/items/:slug", cartHandler.RemoveFromCart)
		cart.GET("/coupons", cartHandler.GetCoupons)
		cart.POST("/coupon", cartHandler.ApplyCoupon)
		cart.DELETE("/coupon", cartHandler.RemoveCoupon)
		cart.POST("/checkout", cartHandler.Checkout)
	}
}

// SetupRatingRoutes sets up rating and review routes
func SetupRatingRoutes(rg *gin.RouterGroup, deps Deps) {
	ratingHandler := handlers.NewRatingHandler(deps.Sessions)

	rg.GET("/ratings/:key", ratingHandler.GetRating)
	rg.GET("/reviews", ratingHandler.GetReviews)
}

// SetupEventRoutes sets up the WebSocket event stream
func SetupEventRoutes(rg *gin.RouterGroup, deps Deps) {
	eventsHandler := handlers.NewEventsHandler(deps.Sessions, deps.Config.Security.CORSAllowedOrigins, deps.Log)

	rg.GET("/events", eventsHandler.Stream)
}

// SetupRoutes sets up all API routes behind the session middleware
func SetupRoutes(rg *gin.RouterGroup, deps Deps) {
	rg.Use(middleware.Session(deps.Config, deps.Tokens, deps.Log))

	SetupProductRoutes(rg, deps)
	SetupCartRoutes(rg, deps)
	SetupRatingRoutes(rg, deps)
	SetupEventRoutes(rg, deps)
}
