// internal/interfaces/http/handlers/product.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pawtopia/storefront/internal/domain/catalog"
	"github.com/pawtopia/storefront/internal/domain/rating"
	"github.com/pawtopia/storefront/internal/domain/storefront"
)

// ProductHandler handles product listing endpoints
type ProductHandler struct {
	catalog  *catalog.Service
	sessions *storefront.Registry
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalogService *catalog.Service, sessions *storefront.Registry) *ProductHandler {
	return &ProductHandler{
		catalog:  catalogService,
		sessions: sessions,
	}
}

// ListingQuery holds the listing controls accepted next to a deep link
type ListingQuery struct {
	Min     *string `form:"min"`
	Max     *string `form:"max"`
	Sort    string  `form:"sort"`
	Page    int     `form:"page" binding:"omitempty,min=1"`
	PerPage int     `form:"per_page" binding:"omitempty,min=1,max=100"`
}

// GetProducts handles GET /products. Every call is a page load: the tab's
// view and coupon start over, deep-link parameters are applied, then the
// listing controls.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	var link catalog.DeepLink
	var query ListingQuery
	if err := c.ShouldBindQuery(&link); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	s, ok := sessionFor(c, h.sessions)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	opened, result := s.Load(ctx, link)

	var actions []storefront.Action
	if query.Min != nil || query.Max != nil {
		filters := result.Filters
		a := storefront.Action{Type: storefront.ActionSetPrice, Min: filters.MinText, Max: filters.MaxText}
		if query.Min != nil {
			a.Min = *query.Min
		}
		if query.Max != nil {
			a.Max = *query.Max
		}
		actions = append(actions, a)
	}
	if query.Sort != "" {
		actions = append(actions, storefront.Action{Type: storefront.ActionSetSort, Sort: query.Sort})
	}
	if query.PerPage > 0 {
		actions = append(actions, storefront.Action{Type: storefront.ActionSetPageSize, PageSize: query.PerPage})
	}
	if query.Page > 0 {
		actions = append(actions, storefront.Action{Type: storefront.ActionGoToPage, Page: query.Page})
	}

	for _, a := range actions {
		out, err := s.Dispatch(ctx, a)
		if err != nil {
			respondError(c, err, nil)
			return
		}
		result = *out.Result
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data": gin.H{
			"result":          result,
			"scrollToResults": opened.ScrollToResults,
			"product":         opened.Product,
			"pageSizes":       h.catalog.PageSizeOptions(),
		},
	})
}

// Dispatch handles POST /products/view and runs one UI action against the
// caller's page session
func (h *ProductHandler) Dispatch(c *gin.Context) {
	var action storefront.Action
	if err := c.ShouldBindJSON(&action); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	s, ok := sessionFor(c, h.sessions)
	if !ok {
		return
	}

	out, err := s.Dispatch(c.Request.Context(), action)
	if err != nil {
		respondError(c, err, out)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Action applied successfully",
		"data":    out,
	})
}

// Suggest handles GET /products/suggest
func (h *ProductHandler) Suggest(c *gin.Context) {
	suggestions := h.catalog.Suggest(c.Query("q"))
	if suggestions == nil {
		suggestions = []catalog.Suggestion{}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Suggestions retrieved successfully",
		"data":    suggestions,
	})
}

// Recommendations handles GET /products/recommendations
func (h *ProductHandler) Recommendations(c *gin.Context) {
	n, _ := strconv.Atoi(c.DefaultQuery("n", strconv.Itoa(catalog.DefaultRecommendations)))

	s, ok := sessionFor(c, h.sessions)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Recommendations retrieved successfully",
		"data":    s.Recommend(n),
	})
}

// GetProduct handles GET /products/:slug. The slug is resolved loosely, so
// a stale or shortened link still finds its product.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.catalog.Find(c.Param("slug"))
	if err != nil {
		respondError(c, err, nil)
		return
	}

	s, ok := sessionFor(c, h.sessions)
	if !ok {
		return
	}
	r := s.Rating(c.Request.Context(), rating.Key(product.Title, product.Image))

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data": gin.H{
			"product":     product,
			"description": product.DisplayDescription(),
			"rating":      r,
			"stars":       rating.StarsFor(r.Rating),
		},
	})
}
