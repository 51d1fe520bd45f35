package extract

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gleanhq/glean"
)

var _ glean.SchemaDetector = (*SchemaDetector)(nil)

// SchemaDetector finds structured-data islands already present on a
// page. JSON-LD script blocks are parsed individually; microdata and
// RDFa annotations are counted but not extracted.
type SchemaDetector struct{}

// NewSchemaDetector creates a new SchemaDetector.
func NewSchemaDetector() *SchemaDetector {
	return &SchemaDetector{}
}

// Detect returns one entry per JSON-LD block, in document order with
// 1-based indexes, followed by summary entries for microdata and RDFa
// when present. Returns an empty slice when the page carries nothing.
func (d *SchemaDetector) Detect(html string) []glean.SchemaEntry {
	entries := []glean.SchemaEntry{}

	doc := parse(html)
	if doc == nil {
		return entries
	}

	doc.Find(`script[type="application/ld+json"]`).Each(func(i int, sel *goquery.Selection) {
		raw := strings.TrimSpace(sel.Text())
		entry := glean.SchemaEntry{
			Type:  glean.SchemaJSONLD,
			Index: i + 1,
			Raw:   raw,
		}

		if !strings.HasPrefix(raw, "{") && !strings.HasPrefix(raw, "[") {
			entry.Error = "Invalid JSON format"
		} else {
			var data any
			if err := json.Unmarshal([]byte(raw), &data); err != nil {
				entry.Error = "Invalid JSON"
			} else {
				entry.Data = data
			}
		}
		entries = append(entries, entry)
	})

	if n := doc.Find("[itemscope]").Length(); n > 0 {
		entries = append(entries, glean.SchemaEntry{
			Type:  glean.SchemaMicrodata,
			Count: n,
			Note:  "Microdata detected (detailed extraction not implemented)",
		})
	}

	if n := doc.Find("[property], [typeof], [vocab]").Length(); n > 0 {
		entries = append(entries, glean.SchemaEntry{
			Type:  glean.SchemaRDFa,
			Count: n,
			Note:  "RDFa detected (detailed extraction not implemented)",
		})
	}

	return entries
}
