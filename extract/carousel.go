package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gleanhq/glean"
)

var _ glean.CarouselExtractor = (*CarouselExtractor)(nil)

// maxCarouselItems caps the extracted items regardless of strategy.
const maxCarouselItems = 6

// carouselContainers are the container selector groups tried in order.
// A group only counts as evidence when it matches at least two
// containers on the page.
var carouselContainers = []string{
	`div[class*="carousel"], section[class*="carousel"], div[class*="slider"], section[class*="slider"], div[class*="swiper"], section[class*="swiper"]`,
	`div[class*="testimonial"], section[class*="testimonial"], div[class*="review"], section[class*="review"]`,
	`div[class*="card"], section[class*="card"], div[class*="item"], section[class*="item"]`,
}

// CarouselExtractor pulls repeated-item records from page markup. Three
// strategies run in order: recognized container classes, a grid of
// h2-h4 headings, and finally plain list items. At most 6 items are
// returned.
type CarouselExtractor struct{}

// NewCarouselExtractor creates a new CarouselExtractor.
func NewCarouselExtractor() *CarouselExtractor {
	return &CarouselExtractor{}
}

// Extract returns the carousel items for the markup, capped at 6.
func (e *CarouselExtractor) Extract(html, pageURL string) []glean.CarouselItem {
	doc := parse(html)
	if doc == nil {
		return nil
	}

	items := e.fromContainers(doc)
	if len(items) == 0 {
		items = e.fromHeadings(doc)
	}
	if len(items) == 0 {
		items = e.fromListItems(doc)
	}
	if len(items) > maxCarouselItems {
		items = items[:maxCarouselItems]
	}
	return items
}

// fromContainers tries each container selector group in order. Groups
// matching fewer than two containers are skipped; the chain stops at the
// first group whose containers produce at least two qualifying items.
func (e *CarouselExtractor) fromContainers(doc *goquery.Document) []glean.CarouselItem {
	var items []glean.CarouselItem

	for _, selector := range carouselContainers {
		containers := doc.Find(selector)
		if containers.Length() < 2 {
			continue
		}

		containers.Slice(0, min(containers.Length(), maxCarouselItems)).Each(func(_ int, sel *goquery.Selection) {
			item, ok := carouselItem(sel)
			if ok {
				items = append(items, item)
			}
		})

		if len(items) >= 2 {
			break
		}
	}
	return items
}

// carouselItem builds an item from one container: the first heading (or
// title/name/heading-classed element) as name, the first link, image,
// and paragraph as url, image, and description. Items whose name is 2
// characters or fewer, or 100 or more, are rejected.
func carouselItem(sel *goquery.Selection) (glean.CarouselItem, bool) {
	name := cleanText(sel.Find("h1, h2, h3, h4, h5, h6").First().Text())
	if name == "" {
		name = cleanText(sel.Find(`[class*="title"], [class*="name"], [class*="heading"]`).First().Text())
	}
	if n := len([]rune(name)); n <= 2 || n >= 100 {
		return glean.CarouselItem{}, false
	}

	item := glean.CarouselItem{Name: name, URL: "#"}
	if href, ok := sel.Find("a[href]").First().Attr("href"); ok && href != "" {
		item.URL = href
	}
	if src, ok := sel.Find("img[src]").First().Attr("src"); ok {
		item.Image = src
	}
	item.Description = cleanText(sel.Find("p").First().Text())
	return item, true
}

// fromHeadings treats a page with three or more h2-h4 headings as a
// service or product grid. The first eight headings are considered;
// those of 5-80 characters that are not about/contact sections become
// name-only items.
func (e *CarouselExtractor) fromHeadings(doc *goquery.Document) []glean.CarouselItem {
	headings := doc.Find("h2, h3, h4")
	if headings.Length() < 3 {
		return nil
	}

	var items []glean.CarouselItem
	headings.Slice(0, min(headings.Length(), 8)).Each(func(_ int, sel *goquery.Selection) {
		name := cleanText(sel.Text())
		if n := len([]rune(name)); n <= 5 || n >= 80 {
			return
		}
		lower := strings.ToLower(name)
		if strings.Contains(lower, "about") || strings.Contains(lower, "contact") {
			return
		}
		items = append(items, glean.CarouselItem{Name: name, URL: "#"})
	})
	return items
}

// fromListItems falls back to plain list items: three or more required,
// the first six considered, each of 5-60 characters becoming a
// name-only item.
func (e *CarouselExtractor) fromListItems(doc *goquery.Document) []glean.CarouselItem {
	listItems := doc.Find("li")
	if listItems.Length() < 3 {
		return nil
	}

	var items []glean.CarouselItem
	listItems.Slice(0, min(listItems.Length(), maxCarouselItems)).Each(func(_ int, sel *goquery.Selection) {
		name := cleanText(sel.Text())
		if n := len([]rune(name)); n <= 5 || n >= 60 {
			return
		}
		items = append(items, glean.CarouselItem{Name: name, URL: "#"})
	})
	return items
}
