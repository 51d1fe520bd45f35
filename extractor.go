package glean

// Field extractors share one contract: given raw markup and the page URL,
// they return a best-effort partial record. Absence of a match yields an
// empty record, never an error — each extractor runs an ordered chain of
// fallback strategies and absorbs no-match outcomes internally.

// ProductExtractor pulls a product record from page markup.
type ProductExtractor interface {
	Extract(html, pageURL string) Product
}

// BreadcrumbExtractor pulls an ordered breadcrumb trail from page markup,
// falling back to synthesizing one from the URL path.
type BreadcrumbExtractor interface {
	Extract(html, pageURL string) []Crumb
}

// FAQExtractor pulls question/answer pairs from page markup.
type FAQExtractor interface {
	Extract(html, pageURL string) []QA
}

// CarouselExtractor pulls carousel, grid, or list items from page markup.
type CarouselExtractor interface {
	Extract(html, pageURL string) []CarouselItem
}

// SchemaDetector finds existing structured-data islands (JSON-LD,
// microdata, RDFa) on a page.
type SchemaDetector interface {
	Detect(html string) []SchemaEntry
}
