// internal/domain/rating/reviews.go
package rating

import (
	"context"

	"github.com/pawtopia/storefront/internal/domain/catalog"
)

const (
	// MaxReviews caps the review feed
	MaxReviews = 24
	// ReviewsPerSlide is the carousel group size
	ReviewsPerSlide = 6
)

// Review is one synthesized customer review shown in the carousel
type Review struct {
	Slug      string  `json:"slug"`
	Title     string  `json:"title"`
	Category  string  `json:"category"`
	PriceText string  `json:"price"`
	Image     string  `json:"img"`
	Comment   string  `json:"comment"`
	User      string  `json:"user"`
	Rating    float64 `json:"rating"`
	Reviews   int     `json:"reviewsCount"`
	Stars     Stars   `json:"stars"`
}

var reviewers = []string{
	"Alex M.", "Jamie S.", "Renee T.", "Chris D.", "Sam P.", "Jordan K.",
	"Taylor R.", "Morgan L.", "Casey H.", "Avery B.", "Pat G.", "Drew C.",
}

var (
	catFoodComments = []string{
		"My cat finishes every bowl now. No tummy issues.",
		"Great ingredients—my cat’s coat looks shinier.",
		"Perfect kibble size and no more picky eating.",
		"Smells fresh and my cat actually asks for meals.",
		"Helped with hairballs and digestion for my cat.",
	}
	dogFoodComments = []string{
		"My dog’s coat looks healthier after switching to this.",
		"Great energy levels and firm stools—awesome food.",
		"Picky eater approved. Bowl is licked clean.",
		"Nice kibble size and zero upset tummy.",
		"High-quality protein—my dog loves the taste.",
	}
	catTreatComments = []string{
		"Perfect bite-sized rewards for my cat.",
		"My cat goes crazy for these—great for bonding.",
		"Soft enough for my senior cat to enjoy.",
		"Nice crunch and no strong smell—cat-approved.",
		"Works great as a topper to entice eating.",
	}
	dogTreatComments = []string{
		"Great for training sessions—easy to break apart.",
		"My dog loves the flavor and waggs non-stop.",
		"Soft texture and no crumbs in my pocket.",
		"Perfect size treats for daily rewards.",
		"No stomach issues—even with sensitive pups.",
	}
	dentalComments = []string{
		"Noticeably fresher breath after a week.",
		"Tartar build-up reduced—my vet noticed!",
		"Chewy but lasts long enough to clean teeth.",
		"My dog actually enjoys dental time now.",
		"Great texture and easy on the gums.",
	}
	catSupplementComments = []string{
		"Helped with my cat’s sensitive tummy.",
		"We saw better appetite and digestion.",
		"Easy to mix and my cat didn’t mind the taste.",
		"Eyes watering less—seems to help a lot.",
		"Great daily support—noticed gradual improvements.",
	}
	dogSupplementComments = []string{
		"My dog’s digestion improved within a week.",
		"Firmed up stools and better overall mood.",
		"Easy to give and no refusals from my pup.",
		"Joints seem happier after consistent use.",
		"Great quality—recommended by our vet.",
	}
	toyComments = []string{
		"Durable and keeps my pet busy for ages.",
		"Still in one piece after lots of play—impressed.",
		"Perfect size and squeak. Instant favorite.",
		"Great enrichment—my pet loves chasing it.",
		"Soft but tough—good for indoor play.",
	}
	accessoryComments = []string{
		"Fits comfortably—no rubbing or slipping.",
		"Easy to put on and adjust—secure feel.",
		"Looks stylish and seems well made.",
		"Lightweight but sturdy hardware—nice quality.",
		"My walks feel safer with this harness.",
	}
	supplyComments = []string{
		"Comfy and cozy—my pet naps in it all day.",
		"Washable and holds shape after cleaning.",
		"Well stitched and supportive bolsters.",
		"Nice neutral look that fits our home.",
		"Great value for the build quality.",
	}
	genericComments = []string{
		"Exactly as described and great quality for the price.",
		"Arrived quickly and works as expected.",
		"Solid build and my pet approves.",
		"Would definitely purchase again.",
		"Five stars—highly recommend.",
	}
)

// commentsFor picks the comment pool that best fits the product facets.
// Food and treats without a species fall through to the later checks.
func commentsFor(f catalog.Facets) []string {
	if f.Food {
		if f.Cat {
			return catFoodComments
		}
		if f.Dog {
			return dogFoodComments
		}
	}
	if f.Treats {
		if f.DentalName || f.DentalType {
			return dentalComments
		}
		if f.Cat {
			return catTreatComments
		}
		if f.Dog {
			return dogTreatComments
		}
	}
	if f.Supplements {
		if f.Cat {
			return catSupplementComments
		}
		if f.Dog {
			return dogSupplementComments
		}
		return genericComments
	}
	switch {
	case f.Toys:
		return toyComments
	case f.Accessories:
		return accessoryComments
	case f.Supplies:
		return supplyComments
	}
	return genericComments
}

// Reviews builds one review per product, shuffled and capped at max when
// there are more products than that. Ratings come from the memo so the
// feed agrees with the product modal.
func (s *Service) Reviews(ctx context.Context, products []catalog.Product, max int) []Review {
	if max <= 0 {
		max = MaxReviews
	}

	reviews := make([]Review, 0, len(products))
	for _, p := range products {
		r := s.GetOrCreate(ctx, Key(p.Title, p.Image))

		s.mu.Lock()
		comment := s.pick(commentsFor(p.Facets))
		user := s.pick(reviewers)
		s.mu.Unlock()

		reviews = append(reviews, Review{
			Slug:      p.Slug,
			Title:     p.Title,
			Category:  p.Category,
			PriceText: p.PriceText,
			Image:     p.Image,
			Comment:   comment,
			User:      user,
			Rating:    r.Rating,
			Reviews:   r.Reviews,
			Stars:     StarsFor(r.Rating),
		})
	}

	if len(reviews) > max {
		s.mu.Lock()
		catalog.Shuffle(reviews, s.src)
		s.mu.Unlock()
		reviews = reviews[:max]
	}
	return reviews
}

// Slides groups reviews into carousel slides of size n
func Slides(reviews []Review, n int) [][]Review {
	if n <= 0 {
		n = ReviewsPerSlide
	}
	var out [][]Review
	for i := 0; i < len(reviews); i += n {
		end := i + n
		if end > len(reviews) {
			end = len(reviews)
		}
		out = append(out, reviews[i:end])
	}
	return out
}
