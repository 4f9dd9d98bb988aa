package persona

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		traits []string
		want   Category
	}{
		{name: "budget before luxury", traits: []string{"budget", "luxury"}, want: CategoryBudgetShopper},
		{name: "luxury before beauty", traits: []string{"makeup lover", "premium"}, want: CategoryLuxuryBuyer},
		{name: "indecisive stem", traits: []string{"Indecisive"}, want: CategoryIndecisive},
		{name: "trendy is beauty", traits: []string{"trendy"}, want: CategoryBeautyEnthusiast},
		{name: "skincare", traits: []string{"organic", "calm"}, want: CategorySkincareFocused},
		{name: "gift", traits: []string{"birthday planner"}, want: CategoryGiftShopper},
		{name: "price keyword", traits: []string{"price-aware"}, want: CategoryBudgetShopper},
		{name: "quality is luxury", traits: []string{"quality first"}, want: CategoryLuxuryBuyer},
		{name: "no match", traits: []string{"curious", "practical"}, want: CategoryCustom},
		{name: "empty", traits: nil, want: CategoryCustom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.traits, StyleBalanced))
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	traits := []string{"gift", "skincare", "luxury"}
	first := Classify(traits, StyleIndecisive)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(traits, StyleIndecisive))
	}
	assert.Equal(t, CategoryLuxuryBuyer, first)
}

func TestNewAppliesDefaults(t *testing.T) {
	p, err := New(Spec{Traits: []string{" ", ""}})
	require.NoError(t, err)

	assert.Equal(t, DefaultName, p.Name())
	assert.Equal(t, BudgetRange{Min: 500, Max: 5000}, p.Budget())
	assert.Equal(t, []string{"curious", "practical"}, p.Traits())
	assert.Equal(t, []string{"beauty products"}, p.Interests())
	assert.Equal(t, []string{"explore products"}, p.Goals())
	assert.Equal(t, StyleBalanced, p.DecisionStyle())
	assert.Equal(t, TimeNormal, p.TimePreference())
	assert.Equal(t, CategoryCustom, p.Category())
}

func TestNewRejectsBadBudget(t *testing.T) {
	_, err := New(Spec{Budget: &BudgetRange{Min: 900, Max: 100}})
	assert.ErrorIs(t, err, ErrInvalidBudget)

	_, err = New(Spec{Budget: &BudgetRange{Min: -1, Max: 100}})
	assert.ErrorIs(t, err, ErrInvalidBudget)
}

func TestNewKeepsExplicitZeroBudget(t *testing.T) {
	p, err := New(Spec{Name: "Window Shopper", Budget: &BudgetRange{}})
	require.NoError(t, err)
	assert.Equal(t, BudgetRange{}, p.Budget())

	spec := p.Spec()
	require.NotNil(t, spec.Budget)
	assert.Equal(t, BudgetRange{}, *spec.Budget)

	path := filepath.Join(t.TempDir(), "persona.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: Window Shopper\nbudget: {min: 0, max: 0}\n"), 0600))
	p, err = LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, BudgetRange{}, p.Budget())
}

func TestProfileIsImmutable(t *testing.T) {
	p, err := New(Spec{Name: "Asha", Traits: []string{"budget"}, Interests: []string{"lipstick"}})
	require.NoError(t, err)

	traits := p.Traits()
	traits[0] = "luxury"
	interests := p.Interests()
	interests[0] = "perfume"

	assert.Equal(t, []string{"budget"}, p.Traits())
	assert.Equal(t, []string{"lipstick"}, p.Interests())
	assert.Equal(t, CategoryBudgetShopper, p.Category())
}

func TestParseDecisionStyle(t *testing.T) {
	assert.Equal(t, StyleQuickImpulsive, ParseDecisionStyle("quick-impulsive"))
	assert.Equal(t, StylePriceFocused, ParseDecisionStyle(" PRICE_FOCUSED "))
	assert.Equal(t, StyleBalanced, ParseDecisionStyle("chaotic"))
	assert.Equal(t, TimeExtended, ParseTimePreference("extended"))
	assert.Equal(t, TimeNormal, ParseTimePreference(""))
}

func TestSearchPoolAndHasTrait(t *testing.T) {
	p, err := New(Spec{
		Traits:    []string{"Trending lover"},
		Interests: []string{"lipstick", "kajal"},
		Goals:     []string{"restock"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"lipstick", "kajal", "restock"}, p.SearchPool())
	assert.True(t, p.HasTrait("trending"))
	assert.False(t, p.HasTrait("budget"))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "persona.yaml")
	content := `name: Meera
budget:
  min: 200
  max: 1500
traits: [budget-conscious, careful]
interests: [sunscreen]
goals: [restock essentials]
decision_style: price-focused
time_preference: quick
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	p, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Meera", p.Name())
	assert.Equal(t, BudgetRange{Min: 200, Max: 1500}, p.Budget())
	assert.Equal(t, StylePriceFocused, p.DecisionStyle())
	assert.Equal(t, TimeQuick, p.TimePreference())
	assert.Equal(t, CategoryBudgetShopper, p.Category())
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
