package config

import (
	"context"
	"testing"

	"github.com/entrhq/shopsim/pkg/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearLLMEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SHOPSIM_LLM_BACKEND", "SHOPSIM_LLM_MODEL",
		"OPENAI_API_KEY", "OPENAI_BASE_URL", "GEMINI_API_KEY", "OLLAMA_HOST",
	} {
		t.Setenv(key, "")
	}
}

func TestResolveLLM(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		file   LLMConfig
		cli    LLMConfig
		expect LLMConfig
	}{
		{
			name:   "auto without key is none",
			expect: LLMConfig{Backend: BackendNone},
		},
		{
			name:   "auto with env key is openai",
			env:    map[string]string{"OPENAI_API_KEY": "sk-env", "OPENAI_BASE_URL": "http://gateway/v1"},
			expect: LLMConfig{Backend: BackendOpenAI, APIKey: "sk-env", BaseURL: "http://gateway/v1"},
		},
		{
			name:   "CLI flag takes precedence over env",
			env:    map[string]string{"OPENAI_API_KEY": "sk-env", "SHOPSIM_LLM_MODEL": "gpt-4o-mini"},
			cli:    LLMConfig{APIKey: "sk-cli", Model: "gpt-4"},
			expect: LLMConfig{Backend: BackendOpenAI, APIKey: "sk-cli", Model: "gpt-4"},
		},
		{
			name:   "env takes precedence over config file",
			env:    map[string]string{"SHOPSIM_LLM_MODEL": "gpt-4o-mini"},
			file:   LLMConfig{Backend: BackendOpenAI, Model: "gpt-4", APIKey: "sk-file"},
			expect: LLMConfig{Backend: BackendOpenAI, APIKey: "sk-file", Model: "gpt-4o-mini"},
		},
		{
			name:   "ollama host from env",
			env:    map[string]string{"OLLAMA_HOST": "http://gpu-box:11434", "OPENAI_API_KEY": "sk-ignored"},
			file:   LLMConfig{Backend: BackendOllama, Model: "llama3"},
			expect: LLMConfig{Backend: BackendOllama, Model: "llama3", BaseURL: "http://gpu-box:11434"},
		},
		{
			name:   "gemini key from env",
			env:    map[string]string{"GEMINI_API_KEY": "g-key"},
			cli:    LLMConfig{Backend: BackendGemini},
			expect: LLMConfig{Backend: BackendGemini, APIKey: "g-key"},
		},
		{
			name:   "explicit none drops everything",
			env:    map[string]string{"OPENAI_API_KEY": "sk-env"},
			cli:    LLMConfig{Backend: BackendNone, Model: "gpt-4"},
			expect: LLMConfig{Backend: BackendNone},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearLLMEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			config := DefaultConfig()
			if tt.file.Backend != "" {
				config.LLM = tt.file
			}
			assert.Equal(t, tt.expect, config.ResolveLLM(tt.cli))
		})
	}
}

func TestBuildTextGenerator(t *testing.T) {
	clearLLMEnv(t)
	ctx := context.Background()

	gen, err := BuildTextGenerator(ctx, LLMConfig{Backend: BackendNone})
	require.NoError(t, err)
	assert.Nil(t, gen)

	gen, err = BuildTextGenerator(ctx, LLMConfig{Backend: BackendOpenAI, APIKey: "sk-test", Model: "gpt-4"})
	require.NoError(t, err)
	assert.Equal(t, "openai/gpt-4", llm.Describe(gen))

	gen, err = BuildTextGenerator(ctx, LLMConfig{Backend: BackendOllama, BaseURL: "http://localhost:11434", Model: "llama3"})
	require.NoError(t, err)
	assert.Equal(t, "ollama/llama3", llm.Describe(gen))

	gen, err = BuildTextGenerator(ctx, LLMConfig{Backend: BackendGemini, APIKey: "test-key", Model: "gemini-2.5-pro"})
	require.NoError(t, err)
	assert.Equal(t, "gemini/gemini-2.5-pro", llm.Describe(gen))

	_, err = BuildTextGenerator(ctx, LLMConfig{Backend: "mystery"})
	assert.Error(t, err)
}

func TestBuildTextGeneratorWithoutKeyFallsBack(t *testing.T) {
	clearLLMEnv(t)
	ctx := context.Background()

	for _, backend := range []string{BackendOpenAI, BackendGemini} {
		t.Run(backend, func(t *testing.T) {
			gen, err := BuildTextGenerator(ctx, LLMConfig{Backend: backend})
			require.NoError(t, err)
			assert.Nil(t, gen)
			assert.Equal(t, "none", llm.Describe(gen))
		})
	}
}
