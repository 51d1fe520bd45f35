package main

import (
	"context"
	"io"

	"github.com/gleanhq/glean"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Config   Config
	Analyzer glean.Analyzer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Analyze  AnalyzeCmd  `cmd:"" help:"Fetch a page and extract structured data"`
	Validate ValidateCmd `cmd:"" help:"Validate JSON-LD content as schema.org markup"`
	Serve    ServeCmd    `cmd:"" help:"Run the HTTP analysis API"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URL   string   `arg:"" help:"Page URL to analyze"`
	Types []string `short:"t" name:"type" help:"Extraction type to run (repeatable; defaults to all)"`
}

// ValidateCmd is the "validate" subcommand.
type ValidateCmd struct {
	File string `arg:"" optional:"" default:"-" help:"JSON-LD file to validate, or - for stdin"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `help:"Listen address (overrides config)"`
}
