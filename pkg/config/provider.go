package config

import (
	"context"
	"fmt"

	"github.com/entrhq/shopsim/pkg/llm"
	"github.com/entrhq/shopsim/pkg/llm/gemini"
	"github.com/entrhq/shopsim/pkg/llm/ollama"
	"github.com/entrhq/shopsim/pkg/llm/openai"
	"github.com/entrhq/shopsim/pkg/logging"
)

var debugLog *logging.Logger

func init() {
	var err error
	debugLog, err = logging.NewLogger("config")
	if err != nil {
		// Logger fell back to stderr due to initialization failure
		debugLog.Warnf("Failed to initialize config logger, using stderr fallback: %v", err)
	}
}

// BuildTextGenerator creates the generator for resolved settings (see
// ResolveLLM). The none backend yields a nil generator and no error. A known
// backend that cannot be constructed, e.g. for lack of an API key, is logged
// and also yields a nil generator, so planning falls back to the rule table.
// Only an unknown backend name is an error.
func BuildTextGenerator(ctx context.Context, resolved LLMConfig) (llm.TextGenerator, error) {
	var (
		gen llm.TextGenerator
		err error
	)

	switch resolved.Backend {
	case BackendNone, "":
		return nil, nil

	case BackendOpenAI:
		providerOpts := []openai.ProviderOption{
			openai.WithModel(resolved.Model),
		}
		if resolved.BaseURL != "" {
			providerOpts = append(providerOpts, openai.WithBaseURL(resolved.BaseURL))
		}
		var provider *openai.Provider
		if provider, err = openai.NewProvider(resolved.APIKey, providerOpts...); err == nil {
			gen = provider
		}

	case BackendOllama:
		var provider *ollama.Provider
		if provider, err = ollama.NewProvider(resolved.BaseURL, resolved.Model); err == nil {
			gen = provider
		}

	case BackendGemini:
		var providerOpts []gemini.ProviderOption
		if resolved.BaseURL != "" {
			providerOpts = append(providerOpts, gemini.WithBaseURL(resolved.BaseURL))
		}
		var provider *gemini.Provider
		if provider, err = gemini.NewProvider(ctx, resolved.APIKey, resolved.Model, providerOpts...); err == nil {
			gen = provider
		}

	default:
		return nil, fmt.Errorf("unsupported llm backend %q", resolved.Backend)
	}

	if err != nil {
		debugLog.Warnf("Failed to create %s text generator, using rule-based plans: %v", resolved.Backend, err)
		return nil, nil
	}
	return gen, nil
}
