// Package analyze orchestrates the extraction pipeline: one fetch per
// request, then the requested field extractors run sequentially over the
// fetched markup.
package analyze

import (
	"context"
	"net/url"
	"strings"

	"github.com/gleanhq/glean"
)

var _ glean.Analyzer = (*Analyzer)(nil)

// Analyzer coordinates a fetch with the field extractors. All fields
// except Limiter are required. Analyzers hold no per-request state and
// are safe for concurrent use when their collaborators are.
type Analyzer struct {
	Fetcher     glean.Fetcher
	Products    glean.ProductExtractor
	Breadcrumbs glean.BreadcrumbExtractor
	FAQs        glean.FAQExtractor
	Carousels   glean.CarouselExtractor
	Schemas     glean.SchemaDetector

	// Limiter, when set, rate-limits outbound fetches per target domain.
	Limiter glean.DomainLimiter
}

// Analyze fetches the request's URL and runs the requested extractors in
// canonical order. A fetch failure aborts the whole request before any
// extractor runs; extractor no-match outcomes yield empty records.
// Existing-schema detection always runs.
func (a *Analyzer) Analyze(ctx context.Context, req glean.Request) (*glean.Result, error) {
	if !strings.HasPrefix(req.URL, "http://") && !strings.HasPrefix(req.URL, "https://") {
		return nil, glean.Errorf(glean.EINVALID, "URL must start with http:// or https://")
	}

	types, err := glean.ParseTypes(req.Types)
	if err != nil {
		return nil, err
	}

	if a.Limiter != nil {
		u, err := url.Parse(req.URL)
		if err != nil {
			return nil, glean.Errorf(glean.EINVALID, "invalid URL: %v", err)
		}
		if err := a.Limiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}

	body, err := a.Fetcher.Fetch(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	result := &glean.Result{}

	if types[glean.TypeProduct] {
		product := a.Products.Extract(body, req.URL)
		result.Product = &product
	}
	if types[glean.TypeBreadcrumb] {
		crumbs := a.Breadcrumbs.Extract(body, req.URL)
		if crumbs == nil {
			crumbs = []glean.Crumb{}
		}
		result.Breadcrumb = &crumbs
	}
	if types[glean.TypeFAQ] {
		pairs := a.FAQs.Extract(body, req.URL)
		if pairs == nil {
			pairs = []glean.QA{}
		}
		result.FAQ = &pairs
	}
	if types[glean.TypeCarousel] {
		items := a.Carousels.Extract(body, req.URL)
		if items == nil {
			items = []glean.CarouselItem{}
		}
		result.Carousel = &items
	}

	result.ExistingSchema = a.Schemas.Detect(body)
	if result.ExistingSchema == nil {
		result.ExistingSchema = []glean.SchemaEntry{}
	}

	return result, nil
}
