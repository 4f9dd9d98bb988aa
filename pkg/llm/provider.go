// Package llm defines the optional text-generation capability used to draft
// shopping tasks.
//
// Implementations live in sub-packages:
//
//   - openai: OpenAI-compatible chat completions (also Azure and local gateways)
//   - ollama: a local Ollama daemon
//   - gemini: Google Gemini through the genai SDK
//   - stub:   a deterministic generator for tests and offline runs
//
// Example usage:
//
//	gen, err := openai.NewProvider(os.Getenv("OPENAI_API_KEY"), openai.WithModel("gpt-4o"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	text, err := gen.Generate(ctx, prompt)
package llm

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned by generators when the backend answered with no text.
var ErrEmptyResponse = errors.New("empty response from text generator")

// TextGenerator turns a prompt into free text. Callers must treat the output as
// best-effort: it may be malformed, truncated, or wrapped in commentary.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Named is implemented by generators that can report which backend and model
// they talk to.
type Named interface {
	Backend() string
	Model() string
}

// Describe returns "backend/model" for generators implementing Named, or "custom".
func Describe(gen TextGenerator) string {
	if gen == nil {
		return "none"
	}
	if n, ok := gen.(Named); ok {
		return n.Backend() + "/" + n.Model()
	}
	return "custom"
}
