// Package persona models the simulated shopper driving a session.
package persona

import (
	"errors"
	"fmt"
	"strings"
)

// Category is the shopper archetype derived from traits.
type Category string

const (
	CategoryBeautyEnthusiast Category = "beauty_enthusiast"
	CategoryBudgetShopper    Category = "budget_shopper"
	CategoryIndecisive       Category = "indecisive_shopper"
	CategoryLuxuryBuyer      Category = "luxury_buyer"
	CategoryGiftShopper      Category = "gift_shopper"
	CategorySkincareFocused  Category = "skincare_focused"
	CategoryCustom           Category = "custom"
)

// DecisionStyle is how the shopper makes up their mind.
type DecisionStyle string

const (
	StyleQuickImpulsive DecisionStyle = "quick_impulsive"
	StyleResearchHeavy  DecisionStyle = "research_heavy"
	StylePriceFocused   DecisionStyle = "price_focused"
	StyleQualityFocused DecisionStyle = "quality_focused"
	StyleIndecisive     DecisionStyle = "indecisive"
	StyleBalanced       DecisionStyle = "balanced"
)

// TimePreference is how long the shopper intends to browse.
type TimePreference string

const (
	TimeQuick    TimePreference = "quick"
	TimeNormal   TimePreference = "normal"
	TimeExtended TimePreference = "extended"
)

const (
	DefaultName      = "CustomShopper"
	DefaultMinBudget = 500
	DefaultMaxBudget = 5000
)

var (
	defaultTraits    = []string{"curious", "practical"}
	defaultInterests = []string{"beauty products"}
	defaultGoals     = []string{"explore products"}
)

// ErrInvalidBudget is returned when a budget range is negative or inverted.
var ErrInvalidBudget = errors.New("invalid budget range")

// BudgetRange is an inclusive price window in whole currency units.
type BudgetRange struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// Spec is the raw, unvalidated description of a persona as it arrives from a
// file or the guided form.
type Spec struct {
	Name           string       `yaml:"name" json:"name"`
	Budget         *BudgetRange `yaml:"budget,omitempty" json:"budget,omitempty"`
	Traits         []string     `yaml:"traits" json:"traits"`
	Interests      []string     `yaml:"interests" json:"interests"`
	Goals          []string     `yaml:"goals" json:"goals"`
	DecisionStyle  string       `yaml:"decision_style" json:"decision_style"`
	TimePreference string       `yaml:"time_preference" json:"time_preference"`
}

// Profile is an immutable persona. Slice accessors return copies.
type Profile struct {
	name           string
	category       Category
	budget         BudgetRange
	traits         []string
	interests      []string
	goals          []string
	decisionStyle  DecisionStyle
	timePreference TimePreference
}

// New validates spec, fills fallback defaults and classifies the result. A
// budget left out of spec defaults to DefaultMinBudget-DefaultMaxBudget; an
// explicit zero budget is kept.
func New(spec Spec) (*Profile, error) {
	budget := BudgetRange{Min: DefaultMinBudget, Max: DefaultMaxBudget}
	if spec.Budget != nil {
		budget = *spec.Budget
	}
	if budget.Min < 0 || budget.Max < 0 {
		return nil, fmt.Errorf("%w: negative bound (%d-%d)", ErrInvalidBudget, budget.Min, budget.Max)
	}
	if budget.Min > budget.Max {
		return nil, fmt.Errorf("%w: min %d exceeds max %d", ErrInvalidBudget, budget.Min, budget.Max)
	}

	name := strings.TrimSpace(spec.Name)
	if name == "" {
		name = DefaultName
	}

	traits := cleanList(spec.Traits, defaultTraits)
	style := ParseDecisionStyle(spec.DecisionStyle)

	return &Profile{
		name:           name,
		category:       Classify(traits, style),
		budget:         budget,
		traits:         traits,
		interests:      cleanList(spec.Interests, defaultInterests),
		goals:          cleanList(spec.Goals, defaultGoals),
		decisionStyle:  style,
		timePreference: ParseTimePreference(spec.TimePreference),
	}, nil
}

// ParseDecisionStyle maps a raw value onto a DecisionStyle. Hyphens are accepted in
// place of underscores; anything unrecognised is balanced.
func ParseDecisionStyle(raw string) DecisionStyle {
	switch s := DecisionStyle(normalize(raw)); s {
	case StyleQuickImpulsive, StyleResearchHeavy, StylePriceFocused,
		StyleQualityFocused, StyleIndecisive, StyleBalanced:
		return s
	default:
		return StyleBalanced
	}
}

// ParseTimePreference maps a raw value onto a TimePreference, defaulting to normal.
func ParseTimePreference(raw string) TimePreference {
	switch t := TimePreference(normalize(raw)); t {
	case TimeQuick, TimeNormal, TimeExtended:
		return t
	default:
		return TimeNormal
	}
}

func normalize(raw string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "-", "_")
}

func cleanList(in, fallback []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		out = append(out, fallback...)
	}
	return out
}

// Name returns the display name.
func (p *Profile) Name() string { return p.name }

// Category returns the archetype derived from the traits.
func (p *Profile) Category() Category { return p.category }

// Budget returns the inclusive price window.
func (p *Profile) Budget() BudgetRange { return p.budget }

// DecisionStyle returns how the shopper makes up their mind.
func (p *Profile) DecisionStyle() DecisionStyle { return p.decisionStyle }

// TimePreference returns how long the shopper intends to browse.
func (p *Profile) TimePreference() TimePreference { return p.timePreference }

// Traits returns a copy of the personality traits.
func (p *Profile) Traits() []string { return append([]string(nil), p.traits...) }

// Interests returns a copy of the shopping interests.
func (p *Profile) Interests() []string { return append([]string(nil), p.interests...) }

// Goals returns a copy of the session goals.
func (p *Profile) Goals() []string { return append([]string(nil), p.goals...) }

// SearchPool is interests followed by goals, the pool search terms are drawn from.
func (p *Profile) SearchPool() []string {
	pool := make([]string, 0, len(p.interests)+len(p.goals))
	pool = append(pool, p.interests...)
	return append(pool, p.goals...)
}

// HasTrait reports whether any trait contains keyword, case-insensitively.
func (p *Profile) HasTrait(keyword string) bool {
	return strings.Contains(strings.ToLower(strings.Join(p.traits, " ")), strings.ToLower(keyword))
}

// Spec returns the profile in its serialisable form.
func (p *Profile) Spec() Spec {
	budget := p.budget
	return Spec{
		Name:           p.name,
		Budget:         &budget,
		Traits:         p.Traits(),
		Interests:      p.Interests(),
		Goals:          p.Goals(),
		DecisionStyle:  string(p.decisionStyle),
		TimePreference: string(p.timePreference),
	}
}
