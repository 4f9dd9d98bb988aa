// Package stub provides a deterministic text generator for tests and offline runs.
package stub

import (
	"context"
	"sync"
)

// Generator returns a fixed response or a fixed error and records every prompt.
type Generator struct {
	Response string
	Err      error

	mu      sync.Mutex
	prompts []string
}

// New returns a generator that always answers with response.
func New(response string) *Generator {
	return &Generator{Response: response}
}

// Failing returns a generator that always fails with err.
func Failing(err error) *Generator {
	return &Generator{Err: err}
}

// Generate implements llm.TextGenerator.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	g.prompts = append(g.prompts, prompt)
	g.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if g.Err != nil {
		return "", g.Err
	}
	return g.Response, nil
}

// Prompts returns the prompts received so far.
func (g *Generator) Prompts() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.prompts...)
}

// Backend returns the backend identifier.
func (g *Generator) Backend() string { return "stub" }

// Model returns the model name.
func (g *Generator) Model() string { return "fixed" }
