package mock

import "github.com/gleanhq/glean"

var (
	_ glean.ProductExtractor    = (*ProductExtractor)(nil)
	_ glean.BreadcrumbExtractor = (*BreadcrumbExtractor)(nil)
	_ glean.FAQExtractor        = (*FAQExtractor)(nil)
	_ glean.CarouselExtractor   = (*CarouselExtractor)(nil)
	_ glean.SchemaDetector      = (*SchemaDetector)(nil)
)

// ProductExtractor is a mock implementation of glean.ProductExtractor.
type ProductExtractor struct {
	ExtractFn func(html, pageURL string) glean.Product
}

func (e *ProductExtractor) Extract(html, pageURL string) glean.Product {
	return e.ExtractFn(html, pageURL)
}

// BreadcrumbExtractor is a mock implementation of glean.BreadcrumbExtractor.
type BreadcrumbExtractor struct {
	ExtractFn func(html, pageURL string) []glean.Crumb
}

func (e *BreadcrumbExtractor) Extract(html, pageURL string) []glean.Crumb {
	return e.ExtractFn(html, pageURL)
}

// FAQExtractor is a mock implementation of glean.FAQExtractor.
type FAQExtractor struct {
	ExtractFn func(html, pageURL string) []glean.QA
}

func (e *FAQExtractor) Extract(html, pageURL string) []glean.QA {
	return e.ExtractFn(html, pageURL)
}

// CarouselExtractor is a mock implementation of glean.CarouselExtractor.
type CarouselExtractor struct {
	ExtractFn func(html, pageURL string) []glean.CarouselItem
}

func (e *CarouselExtractor) Extract(html, pageURL string) []glean.CarouselItem {
	return e.ExtractFn(html, pageURL)
}

// SchemaDetector is a mock implementation of glean.SchemaDetector.
type SchemaDetector struct {
	DetectFn func(html string) []glean.SchemaEntry
}

func (d *SchemaDetector) Detect(html string) []glean.SchemaEntry {
	return d.DetectFn(html)
}
