package engine

import (
	"math/rand"

	"github.com/entrhq/shopsim/pkg/persona"
)

// SearchTerm picks a query from the persona's interests and goals using rnd and
// prefixes it by persona: "affordable" for price-focused shoppers, "premium"
// for luxury buyers, "trending" when a trait mentions trending. A nil rnd uses
// the global source.
func SearchTerm(p *persona.Profile, rnd *rand.Rand) string {
	pool := p.SearchPool()
	if len(pool) == 0 {
		return ""
	}

	var choice string
	if rnd != nil {
		choice = pool[rnd.Intn(len(pool))]
	} else {
		choice = pool[rand.Intn(len(pool))]
	}

	switch {
	case p.DecisionStyle() == persona.StylePriceFocused:
		return "affordable " + choice
	case p.Category() == persona.CategoryLuxuryBuyer:
		return "premium " + choice
	case p.HasTrait("trending"):
		return "trending " + choice
	default:
		return choice
	}
}
