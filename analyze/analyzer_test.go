package analyze_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/gleanhq/glean"
	"github.com/gleanhq/glean/analyze"
	"github.com/gleanhq/glean/extract"
	"github.com/gleanhq/glean/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAnalyzer wires an Analyzer with the real extractors and a fetcher
// that serves the given markup for any URL.
func newAnalyzer(html string) *analyze.Analyzer {
	return &analyze.Analyzer{
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return html, nil
			},
		},
		Products:    extract.NewProductExtractor(),
		Breadcrumbs: extract.NewBreadcrumbExtractor(),
		FAQs:        extract.NewFAQExtractor(),
		Carousels:   extract.NewCarouselExtractor(),
		Schemas:     extract.NewSchemaDetector(),
	}
}

func TestAnalyzer_Analyze(t *testing.T) {
	t.Parallel()

	t.Run("extracts requested product data", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
			<title>Acme Widgets</title>
			<meta name="description" content="Best widgets">
		</head><body></body></html>`

		analyzer := newAnalyzer(html)
		result, err := analyzer.Analyze(context.Background(), glean.Request{
			URL:   "https://example.com/widgets",
			Types: []string{"product"},
		})

		require.NoError(t, err)
		require.NotNil(t, result.Product)
		assert.Equal(t, "Acme Widgets", result.Product.Name)
		assert.Equal(t, "Best widgets", result.Product.Description)

		// Only requested types appear; price/currency are omitted when
		// no price pattern matched.
		encoded, err := json.Marshal(result)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"product": {"name":"Acme Widgets","description":"Best widgets"},
			"existingSchema": []
		}`, string(encoded))
	})

	t.Run("synthesizes breadcrumbs from URL path", func(t *testing.T) {
		t.Parallel()

		analyzer := newAnalyzer("<html><body><p>bare page</p></body></html>")
		result, err := analyzer.Analyze(context.Background(), glean.Request{
			URL:   "https://example.com/shop/widgets",
			Types: []string{"breadcrumb"},
		})

		require.NoError(t, err)
		require.NotNil(t, result.Breadcrumb)
		assert.Equal(t, []glean.Crumb{
			{Name: "Home", URL: "https://example.com"},
			{Name: "Shop", URL: "https://example.com/shop"},
			{Name: "Widgets", URL: "https://example.com/shop/widgets"},
		}, *result.Breadcrumb)
	})

	t.Run("requested type with no matches encodes as empty array", func(t *testing.T) {
		t.Parallel()

		analyzer := newAnalyzer("<html><body></body></html>")
		result, err := analyzer.Analyze(context.Background(), glean.Request{
			URL:   "https://example.com",
			Types: []string{"faq"},
		})

		require.NoError(t, err)

		encoded, err := json.Marshal(result)
		require.NoError(t, err)
		assert.JSONEq(t, `{"faq": [], "existingSchema": []}`, string(encoded))
	})

	t.Run("existing schema detection always runs", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
			<script type="application/ld+json">{"@context":"https://schema.org","@type":"WebSite"}</script>
		</head></html>`

		analyzer := newAnalyzer(html)
		result, err := analyzer.Analyze(context.Background(), glean.Request{
			URL: "https://example.com",
		})

		require.NoError(t, err)
		require.Len(t, result.ExistingSchema, 1)
		assert.Equal(t, glean.SchemaJSONLD, result.ExistingSchema[0].Type)
		assert.Nil(t, result.Product)
		assert.Nil(t, result.Breadcrumb)
	})

	t.Run("rejects URLs without an http scheme", func(t *testing.T) {
		t.Parallel()

		analyzer := newAnalyzer("")
		analyzer.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				t.Fatal("fetch should not be called")
				return "", nil
			},
		}

		_, err := analyzer.Analyze(context.Background(), glean.Request{URL: "ftp://example.com"})

		require.Error(t, err)
		assert.Equal(t, glean.EINVALID, glean.ErrorCode(err))
	})

	t.Run("rejects unknown extraction types", func(t *testing.T) {
		t.Parallel()

		analyzer := newAnalyzer("")
		_, err := analyzer.Analyze(context.Background(), glean.Request{
			URL:   "https://example.com",
			Types: []string{"recipe"},
		})

		require.Error(t, err)
		assert.Equal(t, glean.EINVALID, glean.ErrorCode(err))
	})

	t.Run("fetch failure aborts the request", func(t *testing.T) {
		t.Parallel()

		analyzer := newAnalyzer("")
		analyzer.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", glean.Errorf(glean.EUNAVAILABLE, "HTTP 503: Service Unavailable")
			},
		}

		result, err := analyzer.Analyze(context.Background(), glean.Request{
			URL:   "https://example.com",
			Types: []string{"product"},
		})

		assert.Nil(t, result)
		require.Error(t, err)
		assert.Equal(t, glean.EUNAVAILABLE, glean.ErrorCode(err))
		assert.Equal(t, "HTTP 503: Service Unavailable", glean.ErrorMessage(err))
	})

	t.Run("waits on the domain limiter before fetching", func(t *testing.T) {
		t.Parallel()

		var waited string
		analyzer := newAnalyzer("<html></html>")
		analyzer.Limiter = &mock.DomainLimiter{
			WaitFn: func(ctx context.Context, domain string) error {
				waited = domain
				return nil
			},
		}

		_, err := analyzer.Analyze(context.Background(), glean.Request{URL: "https://example.com/page"})

		require.NoError(t, err)
		assert.Equal(t, "example.com", waited)
	})

	t.Run("limiter errors abort the request", func(t *testing.T) {
		t.Parallel()

		analyzer := newAnalyzer("<html></html>")
		analyzer.Limiter = &mock.DomainLimiter{
			WaitFn: func(ctx context.Context, domain string) error {
				return context.Canceled
			},
		}

		_, err := analyzer.Analyze(context.Background(), glean.Request{URL: "https://example.com"})

		require.Error(t, err)
	})
}
