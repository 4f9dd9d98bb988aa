// Package narration turns engine events into the shopper's running commentary.
//
// Reactions are a fixed table keyed by event kind and decision style. They never
// influence what the engine does; they only decide what gets said.
package narration

import (
	"strconv"
	"strings"

	"github.com/entrhq/shopsim/pkg/persona"
)

// Kind identifies the moment a reaction is spoken.
type Kind string

const (
	KindSearch     Kind = "search"
	KindExtract    Kind = "extract"
	KindDetails    Kind = "details"
	KindAdded      Kind = "added"
	KindOverBudget Kind = "over_budget"
	KindCart       Kind = "cart"
	KindCartEmpty  Kind = "cart_empty"
	KindRemove     Kind = "remove"
	KindComplete   Kind = "complete"
)

// anyStyle marks the fallback line of a kind.
const anyStyle persona.DecisionStyle = ""

var reactions = map[Kind]map[persona.DecisionStyle]string{
	KindSearch: {
		persona.StyleQuickImpulsive: "Let me quickly find {term}!",
		persona.StyleResearchHeavy:  "I need to carefully research {term}",
		persona.StylePriceFocused:   "Looking for affordable {term}",
		anyStyle:                    "Hmm, maybe {term}?",
	},
	KindExtract: {
		persona.StylePriceFocused:   "Found {count} affordable options!",
		persona.StyleQuickImpulsive: "Wow! {count} products to choose from!",
		anyStyle:                    "Let me analyze these {count} options...",
	},
	KindDetails: {
		persona.StyleResearchHeavy:  "Let me read everything about {product}.",
		persona.StyleQualityFocused: "Let me check the quality of {product}.",
		anyStyle:                    "Let me take a closer look at {product}.",
	},
	KindAdded: {
		persona.StyleQuickImpulsive: "YES! Adding {product} for ₹{price}!",
		persona.StylePriceFocused:   "Good deal at ₹{price}! Adding to cart.",
		anyStyle:                    "This looks good, adding to cart.",
	},
	KindOverBudget: {
		anyStyle: "This is over my budget! ₹{price} > ₹{budget}",
	},
	KindCart: {
		persona.StylePriceFocused: "Let me check if these {count} items fit my budget...",
		persona.StyleIndecisive:   "Oh no, I have {count} items. Do I really need all these?",
		anyStyle:                  "I have {count} items in my cart!",
	},
	KindCartEmpty: {
		persona.StylePriceFocused: "Good, my cart is empty. Staying on budget!",
		persona.StyleIndecisive:   "My cart is empty... maybe I should add something?",
		anyStyle:                  "I have {count} items in my cart!",
	},
	KindRemove: {
		persona.StyleIndecisive:   "Actually, I'm not sure I need this... removing it.",
		persona.StylePriceFocused: "This is too expensive for my budget. Removing.",
		anyStyle:                  "Changed my mind about this one.",
	},
	KindComplete: {
		persona.StyleQuickImpulsive: "Great shopping session! Got everything I wanted!",
		persona.StylePriceFocused:   "Perfect! Stayed within budget and found good deals!",
		persona.StyleIndecisive:     "Finally made some decisions. I think I'm done... maybe.",
		anyStyle:                    "Satisfied with my shopping choices!",
	},
}

// Reaction returns the template spoken for kind by a shopper with style. Styles
// without a dedicated line get the kind's fallback; unknown kinds return "".
func Reaction(kind Kind, style persona.DecisionStyle) string {
	lines, ok := reactions[kind]
	if !ok {
		return ""
	}
	if line, ok := lines[style]; ok {
		return line
	}
	return lines[anyStyle]
}

// Vars fills the placeholders of a reaction template.
type Vars struct {
	Name    string
	Term    string
	Product string
	Count   int
	Price   int
	Budget  int
}

// Fill substitutes {name}, {term}, {product}, {count}, {price} and {budget}.
func Fill(template string, v Vars) string {
	return strings.NewReplacer(
		"{name}", v.Name,
		"{term}", v.Term,
		"{product}", v.Product,
		"{count}", strconv.Itoa(v.Count),
		"{price}", strconv.Itoa(v.Price),
		"{budget}", strconv.Itoa(v.Budget),
	).Replace(template)
}

// Line is Fill(Reaction(kind, style), v).
func Line(kind Kind, style persona.DecisionStyle, v Vars) string {
	return Fill(Reaction(kind, style), v)
}
