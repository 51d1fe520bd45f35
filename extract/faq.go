package extract

import (
	"regexp"

	"github.com/gleanhq/glean"
)

var _ glean.FAQExtractor = (*FAQExtractor)(nil)

// maxFAQEntries caps the extracted pairs regardless of strategy.
const maxFAQEntries = 10

// faqLeadIns are the question lead-in patterns tried in fixed order
// against the tag-stripped page text. The first pattern that yields any
// matches ends the chain, whether or not its matches qualify.
var faqLeadIns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Q:\s*([^?]+\?)`),
	regexp.MustCompile(`(?i)###\s*What\s+([^?]+\?)`),
	regexp.MustCompile(`(?i)###\s*How\s+([^?]+\?)`),
	regexp.MustCompile(`(?i)###\s*Why\s+([^?]+\?)`),
	regexp.MustCompile(`(?i)###\s*Can\s+([^?]+\?)`),
	regexp.MustCompile(`(?i)###\s*Does\s+([^?]+\?)`),
}

// faqNextLeadInRE marks where an answer ends: the next question lead-in.
var faqNextLeadInRE = regexp.MustCompile(`(?i)Q:|###\s*(?:What|How|Why|Can|Does)`)

// FAQExtractor pulls question/answer pairs from page markup. A container
// whose class contains "faq" has its headings paired with its paragraphs
// by position; failing that, question lead-in patterns are matched in
// the page text. At most 10 pairs are returned.
type FAQExtractor struct{}

// NewFAQExtractor creates a new FAQExtractor.
func NewFAQExtractor() *FAQExtractor {
	return &FAQExtractor{}
}

// Extract returns the FAQ pairs for the markup, capped at 10.
func (e *FAQExtractor) Extract(html, pageURL string) []glean.QA {
	pairs := e.fromContainer(html)
	if len(pairs) == 0 {
		pairs = e.fromText(html)
	}
	if len(pairs) > maxFAQEntries {
		pairs = pairs[:maxFAQEntries]
	}
	return pairs
}

// fromContainer pairs the headings (h2-h6) and paragraphs of the first
// element whose class contains "faq", by position. Pairing stops at the
// shorter of the two counts, or at the first empty text.
func (e *FAQExtractor) fromContainer(html string) []glean.QA {
	doc := parse(html)
	if doc == nil {
		return nil
	}

	container := doc.Find(`section[class*="faq"], div[class*="faq"]`).First()
	if container.Length() == 0 {
		return nil
	}

	questions := container.Find("h2, h3, h4, h5, h6")
	answers := container.Find("p")

	n := questions.Length()
	if answers.Length() < n {
		n = answers.Length()
	}

	var pairs []glean.QA
	for i := 0; i < n; i++ {
		question := cleanText(questions.Eq(i).Text())
		answer := cleanText(answers.Eq(i).Text())
		if question == "" || answer == "" {
			break
		}
		pairs = append(pairs, glean.QA{Question: question, Answer: answer})
	}
	return pairs
}

// fromText matches question lead-in patterns against the tag-stripped
// page text. The answer to each question runs until the next lead-in or
// 500 characters, whichever comes first. Questions must be 10-200
// characters, answers 20-1000 (truncated to 500 on output).
func (e *FAQExtractor) fromText(html string) []glean.QA {
	text := plainText(html)

	for _, leadIn := range faqLeadIns {
		matches := leadIn.FindAllStringSubmatchIndex(text, -1)
		if len(matches) == 0 {
			continue
		}

		var pairs []glean.QA
		for _, m := range matches {
			question := trimmed(text[m[2]:m[3]])
			if n := len([]rune(question)); n <= 10 || n >= 200 {
				continue
			}

			rest := text[m[1]:]
			var window string
			if loc := faqNextLeadInRE.FindStringIndex(rest); loc != nil {
				window = rest[:loc[0]]
			} else {
				window = truncateRunes(rest, 500)
			}

			answer := trimmed(window)
			if n := len([]rune(answer)); n <= 20 || n >= 1000 {
				continue
			}

			pairs = append(pairs, glean.QA{
				Question: DecodeEntities(question),
				Answer:   DecodeEntities(truncateRunes(answer, 500)),
			})
		}
		return pairs
	}
	return nil
}
