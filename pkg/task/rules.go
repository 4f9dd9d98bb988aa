package task

import (
	"fmt"

	"github.com/entrhq/shopsim/pkg/catalog"
	"github.com/entrhq/shopsim/pkg/persona"
)

// RuleTasks is the deterministic plan used when no model plan is available.
func RuleTasks(p *persona.Profile) []Task {
	interest := "beauty products"
	if interests := p.Interests(); len(interests) > 0 {
		interest = interests[0]
	}

	var tasks []Task
	if p.DecisionStyle() == persona.StyleQuickImpulsive {
		tasks = append(tasks, Task{
			Name:             "Quick Product Discovery",
			Description:      fmt.Sprintf("Find and quickly purchase %s items", interest),
			Operations:       []catalog.Operation{catalog.SearchProducts, catalog.ExtractProducts, catalog.HoverAddToCart},
			SuccessCriteria:  "At least 1 item added to cart",
			EmotionalJourney: []string{"excited", "satisfied"},
		})
	} else {
		tasks = append(tasks, Task{
			Name:             "Careful Product Research",
			Description:      fmt.Sprintf("Research %s options thoroughly", interest),
			Operations:       []catalog.Operation{catalog.SearchProducts, catalog.ExtractProducts, catalog.ClickProductDetails},
			SuccessCriteria:  "Product details examined",
			EmotionalJourney: []string{"curious", "confident"},
		})
	}

	if p.HasTrait("budget") {
		tasks = append(tasks, Task{
			Name:             "Budget-Conscious Shopping",
			Description:      "Find affordable options within budget constraints",
			Operations:       []catalog.Operation{catalog.SearchProducts, catalog.ViewCart},
			SuccessCriteria:  "Stay within budget limits",
			EmotionalJourney: []string{"cautious", "satisfied"},
		})
	}
	return tasks
}
