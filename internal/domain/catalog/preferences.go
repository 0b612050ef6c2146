// internal/domain/catalog/preferences.go
package catalog

import (
	"context"
	"strconv"
	"strings"

	"github.com/pawtopia/storefront/internal/infrastructure/storage"
	"github.com/sirupsen/logrus"
)

// Preference keys in the storage namespace
const (
	PageSizeKey = "productsPerPage"
	SortKey     = "productsSort"
)

// Preferences persists the page size and sort choice of a browser
type Preferences struct {
	bucket storage.Bucket
	log    logrus.FieldLogger
}

// NewPreferences creates preferences stored in bucket
func NewPreferences(bucket storage.Bucket, log logrus.FieldLogger) *Preferences {
	return &Preferences{bucket: bucket, log: log}
}

// PageSize returns the stored page size, or fallback when it is absent or
// not a positive integer
func (p *Preferences) PageSize(ctx context.Context, fallback int) int {
	raw, ok, err := p.bucket.Get(ctx, PageSizeKey)
	if err != nil {
		p.log.WithError(err).Debug("Failed to read page size preference")
		return fallback
	}
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// Sort returns the stored criterion, or SortFeatured when it is absent or
// unknown
func (p *Preferences) Sort(ctx context.Context) Criterion {
	raw, ok, err := p.bucket.Get(ctx, SortKey)
	if err != nil {
		p.log.WithError(err).Debug("Failed to read sort preference")
		return SortFeatured
	}
	if !ok {
		return SortFeatured
	}
	c, _ := ParseCriterion(raw)
	return c
}

// SetPageSize stores n. Write failures are logged and dropped.
func (p *Preferences) SetPageSize(ctx context.Context, n int) {
	if n <= 0 {
		return
	}
	if err := p.bucket.Set(ctx, PageSizeKey, strconv.Itoa(n)); err != nil {
		p.log.WithError(err).Debug("Failed to save page size preference")
	}
}

// SetSort stores c. Write failures are logged and dropped.
func (p *Preferences) SetSort(ctx context.Context, c Criterion) {
	if err := p.bucket.Set(ctx, SortKey, string(c)); err != nil {
		p.log.WithError(err).Debug("Failed to save sort preference")
	}
}
