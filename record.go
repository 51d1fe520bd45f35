package glean

// Extraction type names accepted in a Request. Existing-schema detection
// is not a requestable type; it always runs.
const (
	TypeProduct    = "product"
	TypeBreadcrumb = "breadcrumb"
	TypeFAQ        = "faq"
	TypeCarousel   = "carousel"
)

// ExtractionTypes lists the requestable type names in canonical order.
// The analyzer processes requested types in this order so results are
// deterministic regardless of request ordering.
var ExtractionTypes = []string{TypeProduct, TypeBreadcrumb, TypeFAQ, TypeCarousel}

// ParseTypes validates a list of requested type names. Duplicates are
// collapsed. Returns EINVALID for names outside the known set.
func ParseTypes(names []string) (map[string]bool, error) {
	known := make(map[string]bool, len(ExtractionTypes))
	for _, t := range ExtractionTypes {
		known[t] = true
	}

	types := make(map[string]bool, len(names))
	for _, name := range names {
		if !known[name] {
			return nil, Errorf(EINVALID, "unknown extraction type %q", name)
		}
		types[name] = true
	}
	return types, nil
}

// Request describes one extraction run: a page URL plus the set of
// requested type names.
type Request struct {
	URL   string   `json:"url"`
	Types []string `json:"types"`
}

// Product is a best-effort product record extracted from page markup.
// All fields are plain strings; absence is an empty string, never a
// null with meaning.
type Product struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	Price       string `json:"price,omitempty"`
	Currency    string `json:"currency,omitempty"`
}

// Crumb is one entry in a breadcrumb trail. Order is significant
// (root to leaf) and is preserved as extracted.
type Crumb struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// QA is one question/answer pair extracted from FAQ markup.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// CarouselItem is one item extracted from carousel, grid, or list markup.
type CarouselItem struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// SchemaEntry describes one structured-data island detected on a page.
// JSON-LD islands carry Index (1-based among JSON-LD islands), parsed
// Data or an Error, and the Raw block text. Microdata and RDFa islands
// are summary-only: an element Count and a Note.
type SchemaEntry struct {
	Type  string `json:"type"`
	Index int    `json:"index,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
	Raw   string `json:"raw,omitempty"`
	Count int    `json:"count,omitempty"`
	Note  string `json:"note,omitempty"`
}

// Schema entry type labels.
const (
	SchemaJSONLD    = "JSON-LD"
	SchemaMicrodata = "Microdata"
	SchemaRDFa      = "RDFa"
)

// Result is the combined extraction record for one request. Per-type
// fields are pointers so that only requested types appear in the JSON
// encoding; a requested type with zero matches encodes as an empty
// value, not null. ExistingSchema is always present.
type Result struct {
	Product        *Product        `json:"product,omitempty"`
	Breadcrumb     *[]Crumb        `json:"breadcrumb,omitempty"`
	FAQ            *[]QA           `json:"faq,omitempty"`
	Carousel       *[]CarouselItem `json:"carousel,omitempty"`
	ExistingSchema []SchemaEntry   `json:"existingSchema"`
}

// Verdict is the outcome of JSON-LD validation. Valid verdicts carry the
// parsed data; invalid verdicts carry a reason. A Verdict is a pure
// function of its input text.
type Verdict struct {
	Valid bool   `json:"valid"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}
