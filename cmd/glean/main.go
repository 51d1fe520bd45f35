// Command glean fetches web pages, extracts structured data using
// heuristic extractors, and validates JSON-LD as schema.org markup.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/gleanhq/glean"
	"github.com/gleanhq/glean/analyze"
	"github.com/gleanhq/glean/extract"
	gleanhttp "github.com/gleanhq/glean/http"
	gleanslog "github.com/gleanhq/glean/slog"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config file path. Set before calling Run().
	ConfigPath string

	// Fetcher used by the analyzer; closed when the program ends.
	Fetcher glean.Fetcher

	// Analyzer for end-to-end testing.
	Analyzer glean.Analyzer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: defaultConfigPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		return m.Fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("glean"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'glean --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	config, err := LoadConfig(m.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config from %q: %w", m.ConfigPath, err)
	}
	deps.Config = config

	// Wire the analysis pipeline for commands that fetch pages. The
	// analyzer is injectable for end-to-end tests.
	if cmd == "analyze" || cmd == "serve" {
		if m.Analyzer == nil {
			logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
				Level: logLevel(cmd),
			}))

			opts := []gleanhttp.Option{gleanhttp.WithTimeout(config.FetchTimeout)}
			if config.UserAgent != "" {
				opts = append(opts, gleanhttp.WithUserAgent(config.UserAgent))
			}
			m.Fetcher = gleanslog.NewLoggingFetcher(gleanhttp.NewFetcher(opts...), logger)
			defer m.Close()

			m.Analyzer = gleanslog.NewLoggingAnalyzer(&analyze.Analyzer{
				Fetcher:     m.Fetcher,
				Products:    extract.NewProductExtractor(),
				Breadcrumbs: extract.NewBreadcrumbExtractor(),
				FAQs:        extract.NewFAQExtractor(),
				Carousels:   extract.NewCarouselExtractor(),
				Schemas:     extract.NewSchemaDetector(),
				Limiter:     analyze.NewDomainLimiter(config.RatePerDomain),
			}, logger)
		}
		deps.Analyzer = m.Analyzer
	}

	return kongCtx.Run(deps)
}

// logLevel keeps one-shot analyze output clean while the server logs
// every request.
func logLevel(cmd string) slog.Level {
	if cmd == "serve" {
		return slog.LevelInfo
	}
	return slog.LevelWarn
}

func defaultConfigPath() string {
	if path := os.Getenv("GLEAN_CONFIG"); path != "" {
		return path
	}
	return ""
}
