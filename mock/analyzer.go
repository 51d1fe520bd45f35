package mock

import (
	"context"

	"github.com/gleanhq/glean"
)

var _ glean.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of glean.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, req glean.Request) (*glean.Result, error)
}

func (a *Analyzer) Analyze(ctx context.Context, req glean.Request) (*glean.Result, error) {
	return a.AnalyzeFn(ctx, req)
}
