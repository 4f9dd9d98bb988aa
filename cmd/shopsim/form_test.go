package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/shopsim/pkg/persona"
)

type scriptedPrompter struct {
	answers []string
	asked   []string
	err     error
}

func (s *scriptedPrompter) Prompt(label string) (string, error) {
	s.asked = append(s.asked, label)
	if len(s.answers) == 0 {
		return "", s.err
	}
	next := s.answers[0]
	s.answers = s.answers[1:]
	return next, nil
}

func TestCollectSpec(t *testing.T) {
	p := &scriptedPrompter{answers: []string{
		"Riya",
		"budget-conscious, practical",
		"800",
		"2500",
		"skincare, makeup",
		"restock essentials",
		"3",
		"1",
	}}

	spec, err := collectSpec(p, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, "Riya", spec.Name)
	assert.Equal(t, []string{"budget-conscious", " practical"}, spec.Traits)
	require.NotNil(t, spec.Budget)
	assert.Equal(t, persona.BudgetRange{Min: 800, Max: 2500}, *spec.Budget)
	assert.Equal(t, []string{"skincare", " makeup"}, spec.Interests)
	assert.Equal(t, []string{"restock essentials"}, spec.Goals)
	assert.Equal(t, string(persona.StylePriceFocused), spec.DecisionStyle)
	assert.Equal(t, string(persona.TimeQuick), spec.TimePreference)
	assert.Len(t, p.asked, 8)

	profile, err := persona.New(spec)
	require.NoError(t, err)
	assert.Equal(t, persona.CategoryBudgetShopper, profile.Category())
	assert.Equal(t, []string{"budget-conscious", "practical"}, profile.Traits())
}

func TestCollectSpecFallbacks(t *testing.T) {
	p := &scriptedPrompter{answers: []string{
		"",
		"",
		"cheap",
		"3000",
		"",
		"",
		"9",
		"x",
	}}

	spec, err := collectSpec(p, &bytes.Buffer{})
	require.NoError(t, err)

	require.NotNil(t, spec.Budget)
	assert.Equal(t, persona.BudgetRange{Min: persona.DefaultMinBudget, Max: persona.DefaultMaxBudget}, *spec.Budget)
	assert.Nil(t, spec.Traits)
	assert.Equal(t, string(persona.StyleBalanced), spec.DecisionStyle)
	assert.Equal(t, string(persona.TimeNormal), spec.TimePreference)

	profile, err := persona.New(spec)
	require.NoError(t, err)
	assert.Equal(t, persona.DefaultName, profile.Name())
}

func TestCollectSpecCancelled(t *testing.T) {
	p := &scriptedPrompter{answers: []string{"Riya"}, err: errFormCancelled}

	_, err := collectSpec(p, &bytes.Buffer{})
	assert.True(t, errors.Is(err, errFormCancelled))
	assert.Len(t, p.asked, 2)
}

func TestParseBudget(t *testing.T) {
	tests := []struct {
		name     string
		min, max string
		want     persona.BudgetRange
	}{
		{"both set", "100", "900", persona.BudgetRange{Min: 100, Max: 900}},
		{"blank min", "", "900", persona.BudgetRange{Min: persona.DefaultMinBudget, Max: 900}},
		{"blank max", "100", "", persona.BudgetRange{Min: 100, Max: persona.DefaultMaxBudget}},
		{"bad max", "100", "lots", persona.BudgetRange{Min: persona.DefaultMinBudget, Max: persona.DefaultMaxBudget}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseBudget(tt.min, tt.max))
		})
	}
}
