// Package jsonld classifies text blobs as schema.org JSON-LD. Validation
// is a pure function: syntactic JSON checks first, then a plausibility
// check for schema.org indicators (@context, @type, type, @graph).
package jsonld

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/gleanhq/glean"
)

// jsonpRE matches a JSONP-style callback wrapper around a whole blob.
// Some sites emit their JSON-LD through templating that adds one.
var jsonpRE = regexp.MustCompile(`^(?s)[\w$]+\((.*)\);?$`)

// commonTypes are schema.org type names that frequently appear without
// an @context.
var commonTypes = []string{
	"Product", "Organization", "Person", "Article",
	"WebPage", "Event", "LocalBusiness", "Review",
	"BreadcrumbList", "FAQPage", "ItemList",
}

// Validate classifies content as schema.org JSON-LD. It strips a leading
// BOM, unwraps a JSONP callback, and distinguishes HTML-looking payloads
// from generic non-JSON before parsing. Parse failures carry a
// best-effort diagnostic; successful parses are checked for schema.org
// plausibility.
func Validate(content string) glean.Verdict {
	if content == "" {
		return glean.Verdict{Error: "Empty or invalid content"}
	}

	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return glean.Verdict{Error: "Empty content"}
	}

	trimmed = strings.TrimPrefix(trimmed, "\uFEFF")

	if m := jsonpRE.FindStringSubmatch(trimmed); m != nil {
		trimmed = m[1]
	}

	if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
		if strings.HasPrefix(trimmed, "<") {
			return glean.Verdict{Error: "HTML content instead of JSON-LD"}
		}
		return glean.Verdict{Error: "Content does not appear to be JSON"}
	}

	var parsed any
	if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
		return glean.Verdict{Error: parseDiagnostic(trimmed, err)}
	}

	if verdict := checkSchema(parsed); !verdict.Valid {
		return verdict
	}

	return glean.Verdict{Valid: true, Data: parsed}
}

// parseDiagnostic guesses at the common causes of a parse failure before
// falling back to the raw parser message.
func parseDiagnostic(content string, err error) string {
	if strings.Contains(content, "<!--") || strings.Contains(content, "-->") {
		return "JSON contains HTML comments"
	}
	if strings.Contains(content, "&quot;") || strings.Contains(content, "&amp;") {
		return "JSON contains unescaped HTML entities"
	}
	return "Invalid JSON: " + err.Error()
}

// checkSchema decides whether parsed JSON plausibly carries schema.org
// content.
func checkSchema(parsed any) glean.Verdict {
	switch v := parsed.(type) {
	case nil:
		return glean.Verdict{Error: "Parsed content is null"}

	case []any:
		if len(v) == 0 {
			return glean.Verdict{Error: "Empty array is not valid schema markup"}
		}
		for _, item := range v {
			if obj, ok := item.(map[string]any); ok && hasIndicator(obj) {
				return glean.Verdict{Valid: true}
			}
		}
		return glean.Verdict{Error: "Array items do not contain valid schema.org markup"}

	case map[string]any:
		if _, ok := v["@context"]; ok {
			return glean.Verdict{Valid: true}
		}
		if _, ok := v["@graph"]; ok {
			return glean.Verdict{Valid: true}
		}

		typeValue, ok := v["@type"]
		if !ok {
			typeValue, ok = v["type"]
		}
		if ok {
			if isCommonType(typeValue) {
				return glean.Verdict{Valid: true}
			}
			// Types outside the common list are still accepted.
			return glean.Verdict{Valid: true}
		}

		return glean.Verdict{Error: "Object does not contain schema.org indicators (@context, @type, or @graph)"}

	default:
		return glean.Verdict{Error: "Content is not an object or array"}
	}
}

// hasIndicator reports whether an object carries any schema.org marker.
func hasIndicator(obj map[string]any) bool {
	for _, key := range []string{"@context", "@type", "type", "@graph"} {
		if _, ok := obj[key]; ok {
			return true
		}
	}
	return false
}

// isCommonType reports whether a @type value names one of the schema.org
// types that commonly appear without an @context. Array values are
// judged by their first element.
func isCommonType(typeValue any) bool {
	if values, ok := typeValue.([]any); ok {
		if len(values) == 0 {
			return false
		}
		typeValue = values[0]
	}
	name, ok := typeValue.(string)
	if !ok {
		return false
	}
	for _, t := range commonTypes {
		if strings.Contains(name, t) {
			return true
		}
	}
	return false
}
