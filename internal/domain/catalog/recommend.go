// internal/domain/catalog/recommend.go
package catalog

// DefaultRecommendations is the size of the "you may also like" strip
const DefaultRecommendations = 6

// Shuffler is the random source used to pick recommendations
type Shuffler interface {
	IntN(n int) int
}

// Recommend picks n distinct products at random. The input is not modified.
func Recommend(products []Product, n int, r Shuffler) []Product {
	pool := make([]Product, len(products))
	copy(pool, products)
	Shuffle(pool, r)

	if n < 0 {
		n = 0
	}
	if n > len(pool) {
		n = len(pool)
	}
	return pool[:n]
}

// Shuffle is an in-place Fisher-Yates shuffle
func Shuffle[T any](items []T, r Shuffler) {
	for i := len(items) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
