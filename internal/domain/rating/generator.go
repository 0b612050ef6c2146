// internal/domain/rating/generator.go
package rating

import (
	"math"
	"strings"
)

// KeyPrefix namespaces rating entries in storage
const KeyPrefix = "pt-rating:"

const (
	minRating  = 3.5
	maxRating  = 5.0
	minReviews = 25
	maxReviews = 650
)

// Rating is the displayed score of a product. The JSON layout matches
// what is persisted.
type Rating struct {
	Rating  float64 `json:"rating"`
	Reviews int     `json:"reviews"`
}

// Valid reports whether r could have come from Generate
func (r Rating) Valid() bool {
	return r.Rating >= minRating && r.Rating <= maxRating &&
		math.Mod(r.Rating*2, 1) == 0 &&
		r.Reviews >= minReviews && r.Reviews < maxReviews
}

// Source supplies uniform numbers in [0, 1)
type Source interface {
	Float64() float64
}

// Generate draws a rating in [3.5, 5] on half steps and a review count in
// [25, 650)
func Generate(src Source) Rating {
	score := math.Min(maxRating, roundToHalf(minRating+src.Float64()*(maxRating-minRating)))
	reviews := int(math.Floor(minReviews + src.Float64()*(maxReviews-minReviews)))
	return Rating{Rating: score, Reviews: reviews}
}

func roundToHalf(n float64) float64 {
	return math.Floor(n*2+0.5) / 2
}

// Key is the memo key for a product: its lower-cased title, or the image
// reference when there is no title
func Key(title, image string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return strings.ToLower(image)
	}
	return strings.ToLower(title)
}

// Stars splits a rating into full, half and empty star counts out of five
type Stars struct {
	Full  int `json:"full"`
	Half  int `json:"half"`
	Empty int `json:"empty"`
}

// StarsFor renders r as stars
func StarsFor(r float64) Stars {
	if r < 0 {
		r = 0
	}
	if r > maxRating {
		r = maxRating
	}
	full := int(math.Floor(r))
	half := 0
	if r-float64(full) >= 0.5 {
		half = 1
	}
	return Stars{Full: full, Half: half, Empty: 5 - full - half}
}
