package jsonld_test

import (
	"testing"

	"github.com/gleanhq/glean/jsonld"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("accepts object with context and type", func(t *testing.T) {
		t.Parallel()

		verdict := jsonld.Validate(`{"@context":"https://schema.org","@type":"Product","name":"x"}`)

		require.True(t, verdict.Valid)
		require.Empty(t, verdict.Error)
		data, ok := verdict.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "https://schema.org", data["@context"])
		assert.Equal(t, "Product", data["@type"])
		assert.Equal(t, "x", data["name"])
	})

	t.Run("rejects object without indicators", func(t *testing.T) {
		t.Parallel()

		verdict := jsonld.Validate("{}")

		assert.False(t, verdict.Valid)
		assert.Contains(t, verdict.Error, "schema.org indicators")
	})

	t.Run("accepts type outside the common list", func(t *testing.T) {
		t.Parallel()

		verdict := jsonld.Validate(`{"@type":"SomeObscureThing"}`)

		assert.True(t, verdict.Valid)
	})

	t.Run("accepts array-valued type", func(t *testing.T) {
		t.Parallel()

		verdict := jsonld.Validate(`{"@type":["Product","Offer"]}`)

		assert.True(t, verdict.Valid)
	})

	t.Run("accepts object with graph only", func(t *testing.T) {
		t.Parallel()

		verdict := jsonld.Validate(`{"@graph":[{"@type":"WebPage"}]}`)

		assert.True(t, verdict.Valid)
	})

	t.Run("rejects empty array", func(t *testing.T) {
		t.Parallel()

		verdict := jsonld.Validate("[]")

		assert.False(t, verdict.Valid)
		assert.Contains(t, verdict.Error, "Empty array")
	})

	t.Run("accepts array with one indicated element", func(t *testing.T) {
		t.Parallel()

		verdict := jsonld.Validate(`[{"name":"no markers"},{"@type":"Thing"}]`)

		assert.True(t, verdict.Valid)
	})

	t.Run("rejects array without indicated elements", func(t *testing.T) {
		t.Parallel()

		verdict := jsonld.Validate(`[{"name":"nothing"}]`)

		assert.False(t, verdict.Valid)
	})

	t.Run("rejects non-JSON text", func(t *testing.T) {
		t.Parallel()

		verdict := jsonld.Validate("not json")

		assert.False(t, verdict.Valid)
		assert.Equal(t, "Content does not appear to be JSON", verdict.Error)
	})

	t.Run("flags HTML payloads specifically", func(t *testing.T) {
		t.Parallel()

		verdict := jsonld.Validate("<div>")

		assert.False(t, verdict.Valid)
		assert.Equal(t, "HTML content instead of JSON-LD", verdict.Error)
	})

	t.Run("rejects empty and whitespace input", func(t *testing.T) {
		t.Parallel()

		assert.False(t, jsonld.Validate("").Valid)
		assert.False(t, jsonld.Validate("   \n\t").Valid)
	})

	t.Run("strips a leading byte-order mark", func(t *testing.T) {
		t.Parallel()

		verdict := jsonld.Validate("\uFEFF" + `{"@context":"https://schema.org"}`)

		assert.True(t, verdict.Valid)
	})

	t.Run("unwraps JSONP callbacks", func(t *testing.T) {
		t.Parallel()

		verdict := jsonld.Validate(`loadSchema({"@context":"https://schema.org","@type":"Event"});`)

		require.True(t, verdict.Valid)
		data, ok := verdict.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Event", data["@type"])
	})

	t.Run("diagnoses embedded HTML comments", func(t *testing.T) {
		t.Parallel()

		verdict := jsonld.Validate(`{"@type":"Product" <!-- comment --> }`)

		assert.False(t, verdict.Valid)
		assert.Equal(t, "JSON contains HTML comments", verdict.Error)
	})

	t.Run("diagnoses unescaped HTML entities", func(t *testing.T) {
		t.Parallel()

		verdict := jsonld.Validate(`{"name": &quot;x&quot;}`)

		assert.False(t, verdict.Valid)
		assert.Equal(t, "JSON contains unescaped HTML entities", verdict.Error)
	})

	t.Run("falls back to parser error", func(t *testing.T) {
		t.Parallel()

		verdict := jsonld.Validate(`{"name": }`)

		assert.False(t, verdict.Valid)
		assert.Contains(t, verdict.Error, "Invalid JSON: ")
	})

	t.Run("rejects scalar JSON values", func(t *testing.T) {
		t.Parallel()

		verdict := jsonld.Validate("42")

		assert.False(t, verdict.Valid)
	})

	t.Run("rejects null", func(t *testing.T) {
		t.Parallel()

		verdict := jsonld.Validate("null")

		assert.False(t, verdict.Valid)
	})
}

func TestTypes(t *testing.T) {
	t.Parallel()

	t.Run("single object type", func(t *testing.T) {
		t.Parallel()

		verdict := jsonld.Validate(`{"@context":"https://schema.org","@type":"Product"}`)
		require.True(t, verdict.Valid)

		assert.Equal(t, []string{"Product"}, jsonld.Types(verdict.Data))
	})

	t.Run("array of objects", func(t *testing.T) {
		t.Parallel()

		verdict := jsonld.Validate(`[{"@type":"Product"},{"@type":"Review"}]`)
		require.True(t, verdict.Valid)

		assert.Equal(t, []string{"Product", "Review"}, jsonld.Types(verdict.Data))
	})

	t.Run("recurses into graph members", func(t *testing.T) {
		t.Parallel()

		verdict := jsonld.Validate(`{"@graph":[{"@type":"WebPage"},{"@type":["Organization","Brand"]}]}`)
		require.True(t, verdict.Valid)

		assert.Equal(t, []string{"WebPage", "Organization", "Brand"}, jsonld.Types(verdict.Data))
	})

	t.Run("collects bare type key", func(t *testing.T) {
		t.Parallel()

		verdict := jsonld.Validate(`{"type":"Article"}`)
		require.True(t, verdict.Valid)

		assert.Equal(t, []string{"Article"}, jsonld.Types(verdict.Data))
	})

	t.Run("empty for nil data", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, jsonld.Types(nil))
	})
}
