// internal/interfaces/http/handlers/errors.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pawtopia/storefront/internal/domain/catalog"
	"github.com/pawtopia/storefront/internal/domain/coupon"
	"github.com/pawtopia/storefront/internal/domain/storefront"
	"github.com/pawtopia/storefront/internal/interfaces/http/middleware"
)

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, storefront.ErrUnknownAction),
		errors.Is(err, storefront.ErrInvalidAction),
		errors.Is(err, storefront.ErrEmptyCart),
		errors.Is(err, coupon.ErrInvalidCode),
		errors.Is(err, coupon.ErrEmptyCode):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with its mapped status. data, when not nil, is
// the outcome the action still produced.
func respondError(c *gin.Context, err error, data interface{}) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		message = "Internal server error"
	}

	body := gin.H{"error": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

// sessionFor returns the page session of the current request
func sessionFor(c *gin.Context, sessions *storefront.Registry) (*storefront.Session, bool) {
	namespace, tab, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Session required",
		})
		return nil, false
	}
	return sessions.Get(c.Request.Context(), namespace, tab), true
}
