package task

import (
	"fmt"
	"strings"

	"github.com/entrhq/shopsim/pkg/catalog"
	"github.com/entrhq/shopsim/pkg/persona"
)

const responseSkeleton = `Return JSON:
{
    "tasks": [
        {
            "task_name": "descriptive name",
            "description": "what persona wants to accomplish",
            "expected_functions": ["function1", "function2"],
            "success_criteria": "how to measure success",
            "emotional_journey": ["emotion1", "emotion2"]
        }
    ]
}`

// BuildPrompt renders the planning request for p, listing every catalog
// operation the plan may use.
func BuildPrompt(p *persona.Profile) string {
	budget := p.Budget()

	var b strings.Builder
	b.WriteString("Create 2-3 realistic shopping tasks for this persona:\n\n")
	fmt.Fprintf(&b, "PERSONA: %s\n", p.Name())
	fmt.Fprintf(&b, "- Budget: ₹%d-%d\n", budget.Min, budget.Max)
	fmt.Fprintf(&b, "- Traits: %s\n", strings.Join(p.Traits(), ", "))
	fmt.Fprintf(&b, "- Interests: %s\n", strings.Join(p.Interests(), ", "))
	fmt.Fprintf(&b, "- Goals: %s\n", strings.Join(p.Goals(), ", "))
	fmt.Fprintf(&b, "- Style: %s\n\n", p.DecisionStyle())

	b.WriteString("AVAILABLE FUNCTIONS:\n")
	for _, entry := range catalog.Entries() {
		fmt.Fprintf(&b, "• %s: %s\n", entry.Operation, entry.Description)
	}
	b.WriteString("\n")
	b.WriteString(responseSkeleton)
	return b.String()
}
