package stub

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/shopsim/pkg/llm"
)

func TestGeneratorRecordsPrompts(t *testing.T) {
	g := New(`{"tasks": []}`)

	out, err := g.Generate(context.Background(), "first")
	require.NoError(t, err)
	assert.Equal(t, `{"tasks": []}`, out)

	_, _ = g.Generate(context.Background(), "second")
	assert.Equal(t, []string{"first", "second"}, g.Prompts())
	assert.Equal(t, "stub/fixed", llm.Describe(g))
}

func TestFailingGenerator(t *testing.T) {
	boom := errors.New("boom")
	g := Failing(boom)

	_, err := g.Generate(context.Background(), "x")
	assert.ErrorIs(t, err, boom)
}

func TestGeneratorHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New("ok").Generate(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
}
