// Package ollama provides a text generator backed by a local Ollama daemon.
package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"

	"github.com/entrhq/shopsim/pkg/llm"
)

const (
	// DefaultModel is used when no model is configured
	DefaultModel = "phi4:latest"

	// DefaultHost is the daemon address when OLLAMA_HOST is not set
	DefaultHost = "http://localhost:11434"
)

// Provider implements llm.TextGenerator against the Ollama generate endpoint.
// Output is forced to JSON.
type Provider struct {
	client *api.Client
	model  string
}

// NewProvider creates a provider. host overrides OLLAMA_HOST when set.
func NewProvider(host, model string) (*Provider, error) {
	var client *api.Client
	if strings.TrimSpace(host) == "" {
		c, err := api.ClientFromEnvironment()
		if err != nil {
			host = DefaultHost
		} else {
			client = c
		}
	}
	if client == nil {
		u, err := url.Parse(host)
		if err != nil {
			return nil, fmt.Errorf("ollama: bad host %q: %w", host, err)
		}
		client = api.NewClient(u, http.DefaultClient)
	}

	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}

	return &Provider{client: client, model: model}, nil
}

// Generate runs a non-streaming JSON-format generation.
func (p *Provider) Generate(ctx context.Context, prompt string) (string, error) {
	stream := false
	req := &api.GenerateRequest{
		Model:  p.model,
		Prompt: prompt + "\n\nReturn ONLY strict JSON. No extra text.",
		Format: json.RawMessage(`"json"`),
		Stream: &stream,
	}

	var out strings.Builder
	if err := p.client.Generate(ctx, req, func(gr api.GenerateResponse) error {
		out.WriteString(gr.Response)
		return nil
	}); err != nil {
		return "", fmt.Errorf("ollama generate: %w", err)
	}

	if strings.TrimSpace(out.String()) == "" {
		return "", llm.ErrEmptyResponse
	}
	return out.String(), nil
}

// Backend returns the backend identifier.
func (p *Provider) Backend() string { return "ollama" }

// Model returns the model name being used.
func (p *Provider) Model() string { return p.model }
