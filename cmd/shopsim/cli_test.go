package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/shopsim/pkg/catalog"
	"github.com/entrhq/shopsim/pkg/persona"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SHOPSIM_LOG_DIR", filepath.Join(home, "logs"))
	t.Setenv("SHOPSIM_LLM_BACKEND", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	return home
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "shopsim v"+version)
}

func TestCatalogCommand(t *testing.T) {
	out, err := execute(t, "catalog")
	require.NoError(t, err)
	for _, name := range catalog.Names() {
		assert.Contains(t, out, name)
	}
}

func TestPlanCommandRuleBased(t *testing.T) {
	home := isolate(t)

	personaPath := filepath.Join(home, "persona.yaml")
	require.NoError(t, os.WriteFile(personaPath, []byte(`
name: Riya
traits: [impulsive, trendy, budget-conscious]
budget: {min: 300, max: 1500}
decision_style: quick_impulsive
`), 0600))
	planPath := filepath.Join(home, "plan.json")

	out, err := execute(t, "plan", "--backend", "none", "--persona", personaPath, "--plain", "--output", planPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Quick Product Discovery")

	data, err := os.ReadFile(planPath)
	require.NoError(t, err)

	var doc planDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Riya", doc.Persona.Name)
	assert.Equal(t, "none", doc.Generator)
	require.Len(t, doc.Tasks, 2)
	assert.Equal(t, "Quick Product Discovery", doc.Tasks[0].Name)
	assert.Equal(t, "Budget-Conscious Shopping", doc.Tasks[1].Name)
	assert.Equal(t, []catalog.Operation{catalog.SearchProducts, catalog.ViewCart}, doc.Tasks[1].Operations)
}

func TestPlanCommandBackendWithoutKeyUsesRules(t *testing.T) {
	home := isolate(t)

	personaPath := filepath.Join(home, "persona.yaml")
	require.NoError(t, os.WriteFile(personaPath, []byte("name: Meera\ndecision_style: research_heavy\n"), 0600))

	out, err := execute(t, "plan", "--backend", "openai", "--persona", personaPath, "--plain")
	require.NoError(t, err)

	var doc planDocument
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "none", doc.Generator)
	require.Len(t, doc.Tasks, 1)
	assert.Equal(t, "Careful Product Research", doc.Tasks[0].Name)
}

func TestPlanCommandMissingPersona(t *testing.T) {
	home := isolate(t)

	_, err := execute(t, "plan", "--backend", "none", "--persona", filepath.Join(home, "missing.yaml"))
	assert.Error(t, err)
}

func TestPlanCommandInvalidConfig(t *testing.T) {
	home := isolate(t)

	cfgPath := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("execution:\n  step_delay: -1s\n"), 0600))

	_, err := execute(t, "plan", "--config", cfgPath, "--persona", "unused.yaml")
	assert.Error(t, err)
}

func TestRenderPlan(t *testing.T) {
	profile, err := persona.New(persona.Spec{Name: "Ana"})
	require.NoError(t, err)

	data, err := renderPlan(profile, nil, nil)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"generator": "none"`)

	var buf bytes.Buffer
	require.NoError(t, writePlan(&buf, data, false))
	assert.Contains(t, buf.String(), "Ana")
}
