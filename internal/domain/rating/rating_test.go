package rating

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"testing"

	"github.com/pawtopia/storefront/internal/domain/catalog"
	"github.com/pawtopia/storefront/internal/infrastructure/storage"
	"github.com/pawtopia/storefront/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequence replays fixed draws
type sequence struct {
	values []float64
	calls  int
}

func (s *sequence) Float64() float64 {
	v := s.values[s.calls%len(s.values)]
	s.calls++
	return v
}

func (s *sequence) IntN(int) int { return 0 }

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		draws   []float64
		rating  float64
		reviews int
	}{
		{"lowest", []float64{0, 0}, 3.5, 25},
		{"rounds up to five", []float64{0.999, 0.999}, 5, 649},
		{"half step", []float64{0.5, 0.5}, 4.5, 337},
		{"rounds down", []float64{0.3, 0}, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Generate(&sequence{values: tt.draws})
			assert.Equal(t, tt.rating, r.Rating)
			assert.Equal(t, tt.reviews, r.Reviews)
			assert.True(t, r.Valid())
		})
	}
}

func TestGenerate_AlwaysInRange(t *testing.T) {
	src := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 1000; i++ {
		r := Generate(src)
		require.True(t, r.Valid(), "generated %+v", r)
	}
}

func TestKey(t *testing.T) {
	assert.Equal(t, "halo meal bites", Key(" Halo Meal Bites ", "img.png"))
	assert.Equal(t, "pictures/a.png", Key("", "pictures/A.png"))
}

func TestStarsFor(t *testing.T) {
	assert.Equal(t, Stars{Full: 4, Half: 1, Empty: 0}, StarsFor(4.5))
	assert.Equal(t, Stars{Full: 3, Half: 1, Empty: 1}, StarsFor(3.5))
	assert.Equal(t, Stars{Full: 5, Half: 0, Empty: 0}, StarsFor(5))
	assert.Equal(t, Stars{Full: 4, Half: 0, Empty: 1}, StarsFor(4))
}

func TestService_GetOrCreateIsStable(t *testing.T) {
	ctx := context.Background()
	bucket := storage.Scope(storage.NewMemory(), "ns")
	svc := NewService(bucket, rand.New(rand.NewPCG(7, 7)), logger.Discard())

	first := svc.GetOrCreate(ctx, "halo meal bites")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, svc.GetOrCreate(ctx, "halo meal bites"))
	}

	raw, ok, err := bucket.Get(ctx, KeyPrefix+"halo meal bites")
	require.NoError(t, err)
	require.True(t, ok)
	var stored Rating
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, first, stored)
}

func TestService_RegeneratesBadEntries(t *testing.T) {
	ctx := context.Background()
	bucket := storage.Scope(storage.NewMemory(), "ns")
	svc := NewService(bucket, &sequence{values: []float64{0, 0}}, logger.Discard())

	for _, raw := range []string{"not json", `{"rating":9,"reviews":100}`, `{"rating":4.2,"reviews":100}`} {
		require.NoError(t, bucket.Set(ctx, KeyPrefix+"x", raw))
		assert.Equal(t, Rating{Rating: 3.5, Reviews: 25}, svc.GetOrCreate(ctx, "x"))
	}

	require.NoError(t, bucket.Set(ctx, KeyPrefix+"y", `{"rating":4.5,"reviews":100}`))
	assert.Equal(t, Rating{Rating: 4.5, Reviews: 100}, svc.GetOrCreate(ctx, "y"))
}

func TestCommentsFor(t *testing.T) {
	byTitle := map[string]catalog.Product{}
	for i, r := range catalog.StaticRecords() {
		p := catalog.NewProduct(i, r)
		byTitle[p.Title] = p
	}

	tests := []struct {
		title string
		pool  []string
	}{
		{"Monello Kitten DryFood 200g", catFoodComments},
		{"Gud Dog Food 2.5kg", dogFoodComments},
		{"Pedigree Dentastix Large", dentalComments},
		{"Purina Felix Crispies", catTreatComments},
		{"Sleeky Chewy Stick Snacks", dogTreatComments},
		{"Petlab Co. Probiotic for Dogs", genericComments},
		{"Seasonal Allergy Soft Chews", genericComments},
		{"Plush Toys Set", toyComments},
		{"Cocopup Dog Harness", accessoryComments},
		{"Dogcat Pet Bed", supplyComments},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			p, ok := byTitle[tt.title]
			require.True(t, ok)
			assert.Equal(t, tt.pool, commentsFor(p.Facets))
		})
	}

	vitamin := catalog.NewProduct(0, catalog.Record{Title: "Cat Vitamin Paste", Category: "Supplements"})
	assert.Equal(t, catSupplementComments, commentsFor(vitamin.Facets))
	chew := catalog.NewProduct(0, catalog.Record{Title: "Dog Joint Chews", Category: "Supplements"})
	assert.Equal(t, dogSupplementComments, commentsFor(chew.Facets))
}

func TestService_Reviews(t *testing.T) {
	ctx := context.Background()
	var products []catalog.Product
	for i, r := range catalog.StaticRecords() {
		products = append(products, catalog.NewProduct(i, r))
	}

	svc := NewService(storage.Scope(storage.NewMemory(), "ns"), rand.New(rand.NewPCG(3, 4)), logger.Discard())
	reviews := svc.Reviews(ctx, products, MaxReviews)
	require.Len(t, reviews, MaxReviews)

	index, err := catalog.NewIndex(catalog.StaticRecords())
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, r := range reviews {
		assert.False(t, seen[r.Slug], "duplicate review for %s", r.Slug)
		seen[r.Slug] = true
		assert.Contains(t, reviewers, r.User)
		assert.NotEmpty(t, r.Comment)

		product, ok := index.Get(r.Slug)
		require.True(t, ok)
		assert.Equal(t, svc.GetOrCreate(ctx, Key(product.Title, product.Image)).Rating, r.Rating)
	}

	few := svc.Reviews(ctx, products[:3], MaxReviews)
	require.Len(t, few, 3)
	assert.Equal(t, products[0].Slug, few[0].Slug)
}

func TestSlides(t *testing.T) {
	reviews := make([]Review, 14)
	slides := Slides(reviews, ReviewsPerSlide)
	require.Len(t, slides, 3)
	assert.Len(t, slides[0], 6)
	assert.Len(t, slides[2], 2)
	assert.Empty(t, Slides(nil, 6))
}
