package analyze

import (
	"context"
	"sync"

	"github.com/gleanhq/glean"
	"golang.org/x/time/rate"
)

var _ glean.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter throttles outbound fetches per target host. Analyses of
// distinct hosts never wait on each other; repeated analyses of the same
// host are spaced out to the configured rate. A burst of 1 means even
// the first pair of back-to-back requests to a host is spaced.
type DomainLimiter struct {
	rps float64

	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

// NewDomainLimiter creates a DomainLimiter allowing rps fetches per
// second to each host.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		rps:     rps,
		buckets: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until a fetch of the given host may proceed, or the
// context is canceled.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	bucket, ok := d.buckets[domain]
	if !ok {
		bucket = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.buckets[domain] = bucket
	}
	d.mu.Unlock()

	return bucket.Wait(ctx)
}
