package catalog

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/tutorhub/client/internal/models"
)

// ErrProviderUnavailable indicates no catalog source is configured.
var ErrProviderUnavailable = errors.New("tutor catalog provider unavailable")

// Provider fetches the full tutor catalog from the remote API.
type Provider interface {
	Tutors(ctx context.Context) ([]models.Tutor, error)
}

type cacheEntry struct {
	tutors  []models.Tutor
	expires time.Time
}

// CachingProvider wraps another Provider with a TTL-based in-memory cache so
// keystroke-driven filtering does not refetch the catalog on every use.
type CachingProvider struct {
	base Provider
	ttl  time.Duration

	mu    sync.RWMutex
	entry *cacheEntry
}

// NewCachingProvider returns a Provider that caches the catalog for the
// provided TTL.
func NewCachingProvider(base Provider, ttl time.Duration) *CachingProvider {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &CachingProvider{base: base, ttl: ttl}
}

// Tutors returns the cached catalog when fresh, otherwise it delegates to
// the underlying provider and stores the result.
func (c *CachingProvider) Tutors(ctx context.Context) ([]models.Tutor, error) {
	if c == nil || c.base == nil {
		return nil, ErrProviderUnavailable
	}

	now := time.Now()

	c.mu.RLock()
	entry := c.entry
	c.mu.RUnlock()
	if entry != nil && now.Before(entry.expires) {
		return entry.tutors, nil
	}

	tutors, err := c.base.Tutors(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entry = &cacheEntry{tutors: tutors, expires: now.Add(c.ttl)}
	c.mu.Unlock()

	return tutors, nil
}

// Invalidate drops the cached catalog so the next read refetches.
func (c *CachingProvider) Invalidate() {
	c.mu.Lock()
	c.entry = nil
	c.mu.Unlock()
}
