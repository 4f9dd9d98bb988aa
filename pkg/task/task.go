// Package task drafts the shopping tasks a persona will work through.
//
// A Generator first asks an optional text generator for a plan and falls back to
// a fixed rule table whenever that is unavailable, fails, or answers with
// something unusable. Generate therefore always returns at least one task.
package task

import (
	"context"

	"github.com/entrhq/shopsim/pkg/catalog"
	"github.com/entrhq/shopsim/pkg/llm"
	"github.com/entrhq/shopsim/pkg/logging"
	"github.com/entrhq/shopsim/pkg/persona"
)

var debugLog *logging.Logger

func init() {
	var err error
	debugLog, err = logging.NewLogger("task")
	if err != nil {
		// Logger fell back to stderr due to initialization failure
		debugLog.Warnf("Failed to initialize task logger, using stderr fallback: %v", err)
	}
}

// Task is one shopping sub-goal: a named, ordered list of operations.
type Task struct {
	Name             string              `json:"task_name"`
	Description      string              `json:"description"`
	Operations       []catalog.Operation `json:"expected_functions"`
	SuccessCriteria  string              `json:"success_criteria"`
	EmotionalJourney []string            `json:"emotional_journey"`
}

// Generator produces tasks for a persona.
type Generator struct {
	text llm.TextGenerator
}

// Option configures a Generator.
type Option func(*Generator)

// WithTextGenerator enables the model-drafted path. A nil generator leaves only
// the rule table.
func WithTextGenerator(gen llm.TextGenerator) Option {
	return func(g *Generator) {
		g.text = gen
	}
}

// NewGenerator creates a Generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns a non-empty task list for p. Failures of the text generator
// are logged and answered with RuleTasks(p).
func (g *Generator) Generate(ctx context.Context, p *persona.Profile) []Task {
	if g.text == nil {
		debugLog.Debugf("No text generator configured, using rule table for %s", p.Name())
		return RuleTasks(p)
	}

	prompt := BuildPrompt(p)
	debugLog.Debugf("Requesting tasks from %s (%d byte prompt)", llm.Describe(g.text), len(prompt))

	response, err := g.text.Generate(ctx, prompt)
	if err != nil {
		debugLog.Warnf("Task generation failed, falling back to rules: %v", err)
		return RuleTasks(p)
	}

	tasks, err := ParseResponse(response)
	if err != nil {
		debugLog.Warnf("Unusable task response, falling back to rules: %v", err)
		debugLog.Debugf("Raw response: %s", response)
		return RuleTasks(p)
	}

	debugLog.Infof("Generated %d tasks for %s", len(tasks), p.Name())
	return tasks
}

// OperationNames returns the operation names of t as strings.
func (t Task) OperationNames() []string {
	names := make([]string, len(t.Operations))
	for i, op := range t.Operations {
		names[i] = string(op)
	}
	return names
}
