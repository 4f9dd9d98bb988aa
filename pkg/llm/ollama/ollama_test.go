package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/shopsim/pkg/llm"
)

func TestNewProviderDefaults(t *testing.T) {
	p, err := NewProvider("http://localhost:11434", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, p.Model())
	assert.Equal(t, "ollama", p.Backend())
}

func TestGenerate(t *testing.T) {
	var got struct {
		Model  string          `json:"model"`
		Prompt string          `json:"prompt"`
		Format json.RawMessage `json:"format"`
		Stream *bool           `json:"stream"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model":"phi4:latest","response":"{\"tasks\": []}","done":true}` + "\n"))
	}))
	defer server.Close()

	p, err := NewProvider(server.URL, "phi4:latest")
	require.NoError(t, err)

	text, err := p.Generate(context.Background(), "plan my shopping")
	require.NoError(t, err)
	assert.Equal(t, `{"tasks": []}`, text)

	assert.Equal(t, "phi4:latest", got.Model)
	assert.Contains(t, got.Prompt, "plan my shopping")
	assert.JSONEq(t, `"json"`, string(got.Format))
	require.NotNil(t, got.Stream)
	assert.False(t, *got.Stream)
}

func TestGenerateEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"model":"m","response":"  ","done":true}` + "\n"))
	}))
	defer server.Close()

	p, err := NewProvider(server.URL, "m")
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), "anything")
	assert.ErrorIs(t, err, llm.ErrEmptyResponse)
}

func TestGenerateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"model not found"}`))
	}))
	defer server.Close()

	p, err := NewProvider(server.URL, "m")
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), "anything")
	assert.Error(t, err)
}
