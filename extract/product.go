package extract

import (
	"regexp"
	"strings"

	"github.com/gleanhq/glean"
)

var _ glean.ProductExtractor = (*ProductExtractor)(nil)

// priceRE matches the first "$NN.NN" or "NN.NN USD" shaped price on the
// page. Cents are optional.
var priceRE = regexp.MustCompile(`(?i)\$(\d+(?:\.\d{2})?)|(\d+(?:\.\d{2})?)\s*USD`)

// ProductExtractor pulls a best-effort product record from page markup:
// the document title as name, the description meta tag as description,
// and the og:image meta tag as image. The first price-shaped match
// anywhere in the raw markup sets price and currency.
type ProductExtractor struct{}

// NewProductExtractor creates a new ProductExtractor.
func NewProductExtractor() *ProductExtractor {
	return &ProductExtractor{}
}

// Extract returns the product record for the markup. Fields with no
// match are empty strings.
func (e *ProductExtractor) Extract(html, pageURL string) glean.Product {
	var product glean.Product

	if doc := parse(html); doc != nil {
		product.Name = cleanText(doc.Find("title").First().Text())
		if content, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
			product.Description = cleanText(content)
		}
		if content, ok := doc.Find(`meta[property="og:image"]`).First().Attr("content"); ok {
			product.Image = strings.TrimSpace(content)
		}
	}

	if m := priceRE.FindStringSubmatch(html); m != nil {
		if m[1] != "" {
			product.Price = m[1]
		} else {
			product.Price = m[2]
		}
		product.Currency = "USD"
	}

	return product
}
