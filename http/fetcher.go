// Package http provides the HTTP implementations of the extraction
// pipeline's edges: a glean.Fetcher for retrieving page markup and the
// JSON API server that exposes the analyzer.
package http

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gleanhq/glean"
)

// DefaultFetchTimeout bounds each in-flight request.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxRedirects bounds the redirect-follow chain. The limit guards
// against redirect cycles; well-behaved sites settle in one or two hops.
const DefaultMaxRedirects = 10

// defaultUserAgent is the browser-like identity sent with every fetch.
// Many sites serve reduced or blocked markup to unknown agents.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Ensure Fetcher implements glean.Fetcher at compile time.
var _ glean.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page markup over plain HTTP. Redirects are followed
// manually so relative Location targets resolve against the current URL,
// and gzip response bodies are decompressed before the text is returned.
type Fetcher struct {
	client       *http.Client
	timeout      time.Duration
	maxRedirects int
	userAgent    string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for each HTTP request.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxRedirects sets the redirect-follow limit.
// Defaults to DefaultMaxRedirects if not specified.
func WithMaxRedirects(n int) Option {
	return func(f *Fetcher) {
		f.maxRedirects = n
	}
}

// WithUserAgent overrides the User-Agent header sent with fetches.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:      DefaultFetchTimeout,
		maxRedirects: DefaultMaxRedirects,
		userAgent:    defaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
		// Redirects are handled in Fetch so Location resolution and the
		// hop limit stay under our control.
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return f
}

// Fetch retrieves the full decoded body for the URL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return "", glean.Errorf(glean.EINVALID, "URL must start with http:// or https://")
	}

	target := rawURL
	for hops := 0; ; hops++ {
		body, redirect, err := f.fetchOnce(ctx, target)
		if err != nil {
			return "", err
		}
		if redirect == "" {
			return body, nil
		}

		if hops >= f.maxRedirects {
			return "", glean.Errorf(glean.EUNAVAILABLE, "stopped after %d redirects fetching %s", f.maxRedirects, rawURL)
		}

		next, err := resolveRedirect(target, redirect)
		if err != nil {
			return "", glean.Errorf(glean.EUNAVAILABLE, "invalid redirect target %q: %v", redirect, err)
		}
		target = next
	}
}

// fetchOnce performs a single request. It returns either the decoded
// body or, for a 3xx response with a Location header, the raw redirect
// target.
func (f *Fetcher) fetchOnce(ctx context.Context, target string) (body, redirect string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", "", glean.Errorf(glean.EINVALID, "invalid URL %q: %v", target, err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	// Only gzip is advertised; it is the only encoding decoded below.
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("Upgrade-Insecure-Requests", "1")

	resp, err := f.client.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return "", "", glean.Errorf(glean.EUNAVAILABLE, "request timeout fetching %s", target)
		}
		return "", "", glean.Errorf(glean.EUNAVAILABLE, "fetch %s: %v", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 && resp.StatusCode < 400 {
		if loc := resp.Header.Get("Location"); loc != "" {
			return "", loc, nil
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", "", glean.Errorf(glean.EUNAVAILABLE, "HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	reader := io.Reader(resp.Body)
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return "", "", glean.Errorf(glean.EUNAVAILABLE, "decompress %s: %v", target, err)
		}
		defer gz.Close()
		reader = gz
	}

	raw, err := io.ReadAll(reader)
	if err != nil {
		return "", "", glean.Errorf(glean.EUNAVAILABLE, "read %s: %v", target, err)
	}
	return string(raw), "", nil
}

// resolveRedirect resolves a Location header value, absolute or
// relative, against the URL that produced it.
func resolveRedirect(current, location string) (string, error) {
	base, err := url.Parse(current)
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(location)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
