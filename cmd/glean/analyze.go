package main

import (
	"encoding/json"
	"fmt"

	"github.com/gleanhq/glean"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	types := c.Types
	if len(types) == 0 {
		types = glean.ExtractionTypes
	}

	result, err := deps.Analyzer.Analyze(deps.Ctx, glean.Request{
		URL:   c.URL,
		Types: types,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", glean.ErrorMessage(err))
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, string(out))
	return nil
}
