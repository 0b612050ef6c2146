// internal/interfaces/http/handlers/rating.go
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pawtopia/storefront/internal/domain/rating"
	"github.com/pawtopia/storefront/internal/domain/storefront"
)

// RatingHandler handles rating and review endpoints
type RatingHandler struct {
	sessions *storefront.Registry
}

// NewRatingHandler creates a new rating handler
func NewRatingHandler(sessions *storefront.Registry) *RatingHandler {
	return &RatingHandler{
		sessions: sessions,
	}
}

// GetRating handles GET /ratings/:key
func (h *RatingHandler) GetRating(c *gin.Context) {
	key := strings.ToLower(strings.TrimSpace(c.Param("key")))
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Rating key is required",
		})
		return
	}

	s, ok := sessionFor(c, h.sessions)
	if !ok {
		return
	}
	r := s.Rating(c.Request.Context(), key)

	c.JSON(http.StatusOK, gin.H{
		"message": "Rating retrieved successfully",
		"data": gin.H{
			"key":     key,
			"rating":  r.Rating,
			"reviews": r.Reviews,
			"stars":   rating.StarsFor(r.Rating),
		},
	})
}

// GetReviews handles GET /reviews
func (h *RatingHandler) GetReviews(c *gin.Context) {
	n, err := strconv.Atoi(c.DefaultQuery("n", strconv.Itoa(rating.MaxReviews)))
	if err != nil || n < 1 {
		n = rating.MaxReviews
	}

	s, ok := sessionFor(c, h.sessions)
	if !ok {
		return
	}
	reviews := s.Reviews(c.Request.Context(), n)

	c.JSON(http.StatusOK, gin.H{
		"message": "Reviews retrieved successfully",
		"data": gin.H{
			"reviews": reviews,
			"slides":  rating.Slides(reviews, rating.ReviewsPerSlide),
		},
	})
}
