package config

import (
	"fmt"
	"os"
)

// Text-generation backends.
const (
	// BackendAuto picks openai when an OpenAI key is available, otherwise none
	BackendAuto   = "auto"
	BackendOpenAI = "openai"
	BackendOllama = "ollama"
	BackendGemini = "gemini"
	BackendNone   = "none"
)

// LLMConfig selects the model used to draft shopping tasks
type LLMConfig struct {
	Backend string `yaml:"backend" json:"backend"`
	Model   string `yaml:"model" json:"model"`
	BaseURL string `yaml:"base_url" json:"base_url"`
	APIKey  string `yaml:"api_key" json:"-"`
}

func (c LLMConfig) validate() error {
	switch c.Backend {
	case "", BackendAuto, BackendOpenAI, BackendOllama, BackendGemini, BackendNone:
		return nil
	default:
		return fmt.Errorf("invalid llm.backend: %s (must be 'auto', 'openai', 'ollama', 'gemini' or 'none')", c.Backend)
	}
}

// ResolveLLM merges LLM settings with precedence:
// CLI flags > Environment variables > Config file > Defaults
//
// SHOPSIM_LLM_BACKEND and SHOPSIM_LLM_MODEL apply to every backend. Keys and
// addresses come from the backend's own variables: OPENAI_API_KEY and
// OPENAI_BASE_URL, GEMINI_API_KEY, OLLAMA_HOST. The returned backend is never
// auto.
func (c *Config) ResolveLLM(cli LLMConfig) LLMConfig {
	final := LLMConfig{
		Backend: firstNonEmpty(cli.Backend, os.Getenv("SHOPSIM_LLM_BACKEND"), c.LLM.Backend, BackendAuto),
		Model:   firstNonEmpty(cli.Model, os.Getenv("SHOPSIM_LLM_MODEL"), c.LLM.Model),
	}

	if final.Backend == BackendAuto {
		final.Backend = BackendNone
		if firstNonEmpty(cli.APIKey, os.Getenv("OPENAI_API_KEY"), c.LLM.APIKey) != "" {
			final.Backend = BackendOpenAI
		}
	}

	var envKey, envBaseURL string
	switch final.Backend {
	case BackendOpenAI:
		envKey, envBaseURL = os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_BASE_URL")
	case BackendGemini:
		envKey = os.Getenv("GEMINI_API_KEY")
	case BackendOllama:
		envBaseURL = os.Getenv("OLLAMA_HOST")
	case BackendNone:
		return LLMConfig{Backend: BackendNone}
	}

	final.APIKey = firstNonEmpty(cli.APIKey, envKey, c.LLM.APIKey)
	final.BaseURL = firstNonEmpty(cli.BaseURL, envBaseURL, c.LLM.BaseURL)
	return final
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
