package main

import (
	"fmt"

	gleanhttp "github.com/gleanhq/glean/http"
)

// Run executes the serve command. It blocks until the context binding
// the program is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := gleanhttp.NewServer()
	server.Analyzer = deps.Analyzer
	server.Addr = deps.Config.Addr
	if c.Addr != "" {
		server.Addr = c.Addr
	}

	if err := server.Open(); err != nil {
		return fmt.Errorf("failed to listen on %q: %w", server.Addr, err)
	}
	defer server.Close()

	fmt.Fprintf(deps.Stdout, "listening on %s\n", server.URL())

	<-deps.Ctx.Done()
	return nil
}
