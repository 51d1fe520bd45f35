package extract

import "regexp"

// entityRE matches anything shaped like a character reference. Only
// references present in the table are decoded; the rest are left intact.
var entityRE = regexp.MustCompile(`&#?\w+;`)

// entities is the fixed set of character references the decoder knows.
// Covers the named and numeric forms that commonly appear in meta tag
// content and heading text.
var entities = map[string]string{
	"&#x27;": "'",
	"&quot;": `"`,
	"&amp;":  "&",
	"&lt;":   "<",
	"&gt;":   ">",
	"&#39;":  "'",
	"&apos;": "'",
	"&#x2F;": "/",
	"&#x60;": "`",
	"&#x3D;": "=",
}

// DecodeEntities replaces known HTML character references in text.
// References outside the table are returned byte-identical, neither
// decoded nor dropped.
func DecodeEntities(text string) string {
	return entityRE.ReplaceAllStringFunc(text, func(entity string) string {
		if decoded, ok := entities[entity]; ok {
			return decoded
		}
		return entity
	})
}
