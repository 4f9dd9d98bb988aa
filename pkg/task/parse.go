package task

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/entrhq/shopsim/pkg/catalog"
	"github.com/entrhq/shopsim/pkg/llm/parser"
)

// ErrNoTasks is returned when a response held no task with a usable operation.
var ErrNoTasks = errors.New("response contained no usable tasks")

// Defaults for fields a response leaves out.
const (
	DefaultName            = "Shopping Task"
	DefaultDescription     = "Complete shopping goal"
	DefaultSuccessCriteria = "Task completed"
)

var (
	defaultOperations = []catalog.Operation{catalog.SearchProducts}
	defaultJourney    = []string{"curious"}
)

// rawTask mirrors the response contract. Pointers tell absent fields from
// empty ones.
type rawTask struct {
	Name             *string   `json:"task_name"`
	Description      *string   `json:"description"`
	Functions        *[]string `json:"expected_functions"`
	SuccessCriteria  *string   `json:"success_criteria"`
	EmotionalJourney *[]string `json:"emotional_journey"`
}

type rawPlan struct {
	Tasks []rawTask `json:"tasks"`
}

// ParseResponse decodes a model response into tasks. Thinking blocks, code fences
// and surrounding prose are ignored. Absent fields get defaults, operation names
// missing from the catalog are dropped, and tasks left with no operations are
// discarded. It fails if nothing usable remains.
func ParseResponse(text string) ([]Task, error) {
	object, err := parser.ExtractObject(text)
	if err != nil {
		return nil, err
	}

	var plan rawPlan
	if err := json.Unmarshal([]byte(object), &plan); err != nil {
		return nil, fmt.Errorf("failed to decode task plan: %w", err)
	}

	tasks := make([]Task, 0, len(plan.Tasks))
	for i, raw := range plan.Tasks {
		t := Task{
			Name:             stringOr(raw.Name, DefaultName),
			Description:      stringOr(raw.Description, DefaultDescription),
			SuccessCriteria:  stringOr(raw.SuccessCriteria, DefaultSuccessCriteria),
			EmotionalJourney: append([]string(nil), defaultJourney...),
		}
		if raw.EmotionalJourney != nil {
			t.EmotionalJourney = append([]string(nil), (*raw.EmotionalJourney)...)
		}

		if raw.Functions == nil {
			t.Operations = append([]catalog.Operation(nil), defaultOperations...)
		} else {
			for _, name := range *raw.Functions {
				op, ok := catalog.Parse(name)
				if !ok {
					debugLog.Warnf("Dropping unknown operation %q from task %d", name, i)
					continue
				}
				t.Operations = append(t.Operations, op)
			}
		}

		if len(t.Operations) == 0 {
			debugLog.Warnf("Discarding task %q with no known operations", t.Name)
			continue
		}
		tasks = append(tasks, t)
	}

	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}
	return tasks, nil
}

func stringOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
