package glean

import "context"

// Analyzer runs the extraction pipeline: one fetch, then the requested
// field extractors over the fetched markup.
type Analyzer interface {
	// Analyze fetches the request's URL and runs the requested extractors.
	// A fetch failure aborts the whole request; extractor no-match
	// outcomes are silent. ExistingSchema detection always runs.
	Analyze(ctx context.Context, req Request) (*Result, error)
}
