package glean

import "context"

// Fetcher retrieves the raw text body of a page.
// Implementations follow redirects and decode compressed response bodies.
type Fetcher interface {
	// Fetch retrieves the full decoded body for the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases transport resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// DomainLimiter rate-limits outbound requests per target domain.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled before the wait completes.
	Wait(ctx context.Context, domain string) error
}
