package mock

import (
	"context"

	"github.com/gleanhq/glean"
)

var _ glean.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of glean.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}
