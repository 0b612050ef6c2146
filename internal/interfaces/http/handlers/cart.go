// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pawtopia/storefront/internal/domain/cart"
	"github.com/pawtopia/storefront/internal/domain/storefront"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	sessions *storefront.Registry
}

// NewCartHandler creates a new cart handler
func NewCartHandler(sessions *storefront.Registry) *CartHandler {
	return &CartHandler{
		sessions: sessions,
	}
}

// AddToCartRequest adds a catalog product by slug, or a line the page
// built itself
type AddToCartRequest struct {
	Slug string         `json:"slug"`
	Qty  int            `json:"qty" binding:"omitempty,min=1"`
	Item *cart.LineItem `json:"item"`
}

// UpdateCartItemRequest changes a line quantity by delta
type UpdateCartItemRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// ApplyCouponRequest carries the entered code
type ApplyCouponRequest struct {
	Code string `json:"code"`
}

// run dispatches a and writes the resulting cart
func (h *CartHandler) run(c *gin.Context, a storefront.Action, message string) {
	s, ok := sessionFor(c, h.sessions)
	if !ok {
		return
	}

	out, err := s.Dispatch(c.Request.Context(), a)
	if err != nil {
		respondError(c, err, out)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data":    out,
	})
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	s, ok := sessionFor(c, h.sessions)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    s.Cart(c.Request.Context()),
	})
}

// GetCartCount handles GET /cart/count
func (h *CartHandler) GetCartCount(c *gin.Context) {
	s, ok := sessionFor(c, h.sessions)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data":    s.Cart(c.Request.Context()).Badge,
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	h.run(c, storefront.Action{
		Type: storefront.ActionAddToCart,
		Slug: req.Slug,
		Qty:  req.Qty,
		Item: req.Item,
	}, "Item added to cart successfully")
}

// UpdateCartItem handles PATCH /cart/items/:slug
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	h.run(c, storefront.Action{
		Type:  storefront.ActionChangeQty,
		Slug:  c.Param("slug"),
		Delta: req.Delta,
	}, "Cart item updated successfully")
}

// RemoveFromCart handles DELETE /cart/items/:slug
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	h.run(c, storefront.Action{
		Type: storefront.ActionRemoveItem,
		Slug: c.Param("slug"),
	}, "Item removed from cart successfully")
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.run(c, storefront.Action{Type: storefront.ActionClearCart}, "Cart cleared successfully")
}

// ApplyCoupon handles POST /cart/coupon
func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	var req ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	h.run(c, storefront.Action{
		Type: storefront.ActionApplyCoupon,
		Code: req.Code,
	}, "Coupon applied successfully")
}

// GetCoupons handles GET /cart/coupons
func (h *CartHandler) GetCoupons(c *gin.Context) {
	s, ok := sessionFor(c, h.sessions)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Coupons retrieved successfully",
		"data":    s.CouponSuggestions(),
	})
}

// RemoveCoupon handles DELETE /cart/coupon
func (h *CartHandler) RemoveCoupon(c *gin.Context) {
	h.run(c, storefront.Action{Type: storefront.ActionRemoveCoupon}, "Coupon removed successfully")
}

// Checkout handles POST /cart/checkout
func (h *CartHandler) Checkout(c *gin.Context) {
	h.run(c, storefront.Action{Type: storefront.ActionCheckout}, "Checkout completed successfully")
}
