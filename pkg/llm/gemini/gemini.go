// Package gemini provides a text generator backed by Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"github.com/entrhq/shopsim/pkg/llm"
)

// DefaultModel is used when no model is configured
const DefaultModel = "gemini-2.0-flash"

// Provider implements llm.TextGenerator using the genai SDK with a JSON
// response MIME type.
type Provider struct {
	client  *genai.Client
	model   string
	baseURL string
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithBaseURL points the client at a different Gemini API endpoint.
func WithBaseURL(baseURL string) ProviderOption {
	return func(p *Provider) {
		p.baseURL = baseURL
	}
}

// NewProvider creates a provider. An empty apiKey falls back to GEMINI_API_KEY
// and an empty model to DefaultModel.
func NewProvider(ctx context.Context, apiKey, model string, opts ...ProviderOption) (*Provider, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	p := &Provider{model: strings.TrimSpace(model)}
	if p.model == "" {
		p.model = DefaultModel
	}
	for _, opt := range opts {
		opt(p)
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: p.baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client init: %w", err)
	}
	p.client = c

	return p, nil
}

// Generate asks for a JSON response and returns the first candidate's text.
func (p *Provider) Generate(ctx context.Context, prompt string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}
	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", llm.ErrEmptyResponse
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// Backend returns the backend identifier.
func (p *Provider) Backend() string { return "gemini" }

// Model returns the model name being used.
func (p *Provider) Model() string { return p.model }
