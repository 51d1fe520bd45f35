package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/gleanhq/glean"
)

// Ensure LoggingAnalyzer implements glean.Analyzer.
var _ glean.Analyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps an Analyzer with per-analysis logging.
type LoggingAnalyzer struct {
	next   glean.Analyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next glean.Analyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Analyze delegates to the wrapped analyzer and logs the operation.
func (a *LoggingAnalyzer) Analyze(ctx context.Context, req glean.Request) (result *glean.Result, err error) {
	defer func(begin time.Time) {
		a.logger.Info("analyze",
			"url", req.URL,
			"types", req.Types,
			"schemas", schemaCount(result),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Analyze(ctx, req)
}

func schemaCount(result *glean.Result) int {
	if result == nil {
		return 0
	}
	return len(result.ExistingSchema)
}
