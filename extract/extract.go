// Package extract implements the heuristic field extractors of the
// extraction pipeline. Each extractor runs an ordered chain of fallback
// strategies against raw page markup and returns the first strategy's
// results that meet its evidence threshold.
//
// Structural strategies locate container elements with a tag-aware
// scanner (goquery); text-pattern strategies match regular expressions
// over the tag-stripped page text. A strategy that yields nothing is
// absorbed silently and the next strategy in the chain runs.
package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	tagRE   = regexp.MustCompile(`<[^>]*>`)
	spaceRE = regexp.MustCompile(`\s+`)
)

// plainText strips all tags from markup and collapses runs of whitespace
// into single spaces. Text-pattern strategies match against this form.
func plainText(html string) string {
	text := tagRE.ReplaceAllString(html, " ")
	return spaceRE.ReplaceAllString(text, " ")
}

// parse builds a goquery document from raw markup. Returns nil when the
// markup cannot be tokenized at all; callers treat that as no match.
func parse(html string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}
	return doc
}

// cleanText trims an element's text, collapses internal whitespace, and
// decodes entities. All extracted text passes through here before being
// placed in an output record.
func cleanText(s string) string {
	return DecodeEntities(trimmed(s))
}

// trimmed collapses runs of whitespace and trims the ends.
func trimmed(s string) string {
	return strings.TrimSpace(spaceRE.ReplaceAllString(s, " "))
}

// truncateRunes returns at most n runes of s.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
