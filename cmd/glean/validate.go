package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gleanhq/glean/jsonld"
)

// Run executes the validate command.
func (c *ValidateCmd) Run(deps *Dependencies) error {
	var content []byte
	var err error
	if c.File == "-" {
		content, err = io.ReadAll(os.Stdin)
	} else {
		content, err = os.ReadFile(c.File)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	verdict := jsonld.Validate(string(content))

	out, err := json.MarshalIndent(verdict, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))

	if verdict.Valid {
		if types := jsonld.Types(verdict.Data); len(types) > 0 {
			fmt.Fprintf(deps.Stdout, "types: %s\n", strings.Join(types, ", "))
		}
		return nil
	}
	return fmt.Errorf("invalid JSON-LD: %s", verdict.Error)
}
