package extract

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/gleanhq/glean"
)

var _ glean.BreadcrumbExtractor = (*BreadcrumbExtractor)(nil)

// breadcrumbContainers are the container selectors tried in fixed order.
// Only the first container found is used, even when it yields no links.
var breadcrumbContainers = []string{
	`nav[aria-label="breadcrumb"]`,
	`nav[class*="breadcrumb"]`,
	`ol[class*="breadcrumb"]`,
	`ul[class*="breadcrumb"]`,
	`div[class*="breadcrumb"]`,
}

// breadcrumbTextRE matches "Home > X > Y > Z" shaped trails in the
// tag-stripped page text, with >, › or » as separators and up to three
// trailing segments.
var breadcrumbTextRE = regexp.MustCompile(`(?i)Home\s*[>›»]\s*([^>›»]+)(?:\s*[>›»]\s*([^>›»]+))?(?:\s*[>›»]\s*([^>›»]+))?`)

// BreadcrumbExtractor pulls an ordered breadcrumb trail from page markup.
// Three strategies run in order: a breadcrumb container's links, a
// "Home > ..." text pattern, and finally synthesis from the URL path.
type BreadcrumbExtractor struct{}

// NewBreadcrumbExtractor creates a new BreadcrumbExtractor.
func NewBreadcrumbExtractor() *BreadcrumbExtractor {
	return &BreadcrumbExtractor{}
}

// Extract returns the breadcrumb trail for the markup, root to leaf.
// Returns an empty slice when nothing matches and no URL is available.
func (e *BreadcrumbExtractor) Extract(html, pageURL string) []glean.Crumb {
	if crumbs := e.fromContainer(html); len(crumbs) > 0 {
		return crumbs
	}
	if crumbs := e.fromText(html); len(crumbs) > 0 {
		return crumbs
	}
	return e.fromURL(pageURL)
}

// fromContainer extracts the anchors of the first breadcrumb container
// found, in document order.
func (e *BreadcrumbExtractor) fromContainer(html string) []glean.Crumb {
	doc := parse(html)
	if doc == nil {
		return nil
	}

	for _, selector := range breadcrumbContainers {
		container := doc.Find(selector).First()
		if container.Length() == 0 {
			continue
		}

		var crumbs []glean.Crumb
		container.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
			href, _ := sel.Attr("href")
			name := cleanText(sel.Text())
			if name == "" || href == "" {
				return
			}
			crumbs = append(crumbs, glean.Crumb{Name: name, URL: href})
		})
		return crumbs
	}
	return nil
}

// fromText matches a breadcrumb-like separator trail in the page text.
// Segments of 50 or more characters are discarded as unlikely crumbs.
func (e *BreadcrumbExtractor) fromText(html string) []glean.Crumb {
	m := breadcrumbTextRE.FindStringSubmatch(plainText(html))
	if m == nil {
		return nil
	}

	crumbs := []glean.Crumb{{Name: "Home", URL: "/"}}
	for _, segment := range m[1:] {
		name := strings.TrimSpace(segment)
		if name == "" || utf8.RuneCountInString(name) >= 50 {
			continue
		}
		crumbs = append(crumbs, glean.Crumb{Name: DecodeEntities(name), URL: "#"})
	}
	return crumbs
}

// fromURL synthesizes a trail from the URL path: "Home" at the origin,
// then one crumb per path segment with hyphens spaced out and the first
// letter capitalized, each linking to the progressively longer path.
func (e *BreadcrumbExtractor) fromURL(pageURL string) []glean.Crumb {
	if pageURL == "" {
		return nil
	}
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return nil
	}

	var segments []string
	for _, part := range strings.Split(u.Path, "/") {
		if part != "" {
			segments = append(segments, part)
		}
	}
	if len(segments) == 0 {
		return nil
	}

	origin := u.Scheme + "://" + u.Host
	crumbs := []glean.Crumb{{Name: "Home", URL: origin}}

	path := ""
	for _, segment := range segments {
		path += "/" + segment
		crumbs = append(crumbs, glean.Crumb{
			Name: segmentName(segment),
			URL:  origin + path,
		})
	}
	return crumbs
}

// segmentName turns a URL path segment into a display name: the first
// letter is capitalized and hyphens in the remainder become spaces.
func segmentName(segment string) string {
	r, size := utf8.DecodeRuneInString(segment)
	if size == 0 {
		return segment
	}
	return strings.ToUpper(string(r)) + strings.ReplaceAll(segment[size:], "-", " ")
}
