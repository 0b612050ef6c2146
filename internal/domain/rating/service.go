// internal/domain/rating/service.go
package rating

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/pawtopia/storefront/internal/infrastructure/storage"
	"github.com/sirupsen/logrus"
)

// RandomSource is what the service draws ratings and review picks from
type RandomSource interface {
	Source
	IntN(n int) int
}

// Service memoizes generated ratings in a storage namespace. A stored
// rating is never rolled again.
type Service struct {
	bucket storage.Bucket
	log    logrus.FieldLogger

	mu  sync.Mutex
	src RandomSource
}

// NewService creates a rating service over bucket
func NewService(bucket storage.Bucket, src RandomSource, log logrus.FieldLogger) *Service {
	return &Service{
		bucket: bucket,
		src:    src,
		log:    log.WithField("component", "rating"),
	}
}

// GetOrCreate returns the stored rating for key, generating and storing one
// when it is absent or unreadable. A failed write still returns the
// generated value.
func (s *Service) GetOrCreate(ctx context.Context, key string) Rating {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r, ok := s.load(ctx, key); ok {
		return r
	}

	r := Generate(s.src)
	data, err := json.Marshal(r)
	if err == nil {
		err = s.bucket.Set(ctx, KeyPrefix+key, string(data))
	}
	if err != nil {
		s.log.WithError(err).WithField("key", key).Debug("Failed to save rating")
	}
	return r
}

func (s *Service) load(ctx context.Context, key string) (Rating, bool) {
	raw, ok, err := s.bucket.Get(ctx, KeyPrefix+key)
	if err != nil {
		s.log.WithError(err).WithField("key", key).Debug("Failed to read rating")
		return Rating{}, false
	}
	if !ok {
		return Rating{}, false
	}

	var r Rating
	if err := json.Unmarshal([]byte(raw), &r); err != nil || !r.Valid() {
		return Rating{}, false
	}
	return r, true
}

// pick returns a random element of items
func (s *Service) pick(items []string) string {
	return items[s.src.IntN(len(items))]
}
