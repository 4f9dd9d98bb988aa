package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/entrhq/shopsim/pkg/llm"
	"github.com/entrhq/shopsim/pkg/narration"
	"github.com/entrhq/shopsim/pkg/persona"
	"github.com/entrhq/shopsim/pkg/task"
)

// planDocument is the JSON printed by the plan command
type planDocument struct {
	Persona   persona.Spec `json:"persona"`
	Category  string       `json:"category"`
	Generator string       `json:"generator"`
	Tasks     []task.Task  `json:"tasks"`
}

func newPlanCmd(root *rootOptions) *cobra.Command {
	var (
		plain  bool
		copyIt bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Draft shopping tasks for a persona without opening a browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			profile, err := root.loadPersona(cmd)
			if err != nil {
				return err
			}
			tasks, gen, err := root.planTasks(ctx, cfg, profile)
			if err != nil {
				return err
			}

			data, err := renderPlan(profile, gen, tasks)
			if err != nil {
				return err
			}
			if err := writePlan(cmd.OutOrStdout(), data, plain); err != nil {
				return err
			}

			if output != "" {
				if err := os.WriteFile(output, data, 0600); err != nil {
					return fmt.Errorf("failed to write plan: %w", err)
				}
			}
			if copyIt {
				if err := clipboard.WriteAll(string(data)); err != nil {
					return fmt.Errorf("failed to copy plan to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), narration.MutedStyle.Render("📋 Plan copied to clipboard"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&root.personaPath, "persona", "", "Persona YAML file (guided form when omitted)")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print JSON without syntax highlighting")
	cmd.Flags().BoolVar(&copyIt, "copy", false, "Copy the plan JSON to the clipboard")
	cmd.Flags().StringVar(&output, "output", "", "Also write the plan JSON to this file")
	return cmd
}

func renderPlan(profile *persona.Profile, gen llm.TextGenerator, tasks []task.Task) ([]byte, error) {
	doc := planDocument{
		Persona:   profile.Spec(),
		Category:  string(profile.Category()),
		Generator: llm.Describe(gen),
		Tasks:     tasks,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode plan: %w", err)
	}
	return data, nil
}

func writePlan(w io.Writer, data []byte, plain bool) error {
	if plain {
		_, err := fmt.Fprintln(w, string(data))
		return err
	}
	if err := quick.Highlight(w, string(data)+"\n", "json", "terminal256", "monokai"); err != nil {
		return fmt.Errorf("failed to highlight plan: %w", err)
	}
	return nil
}

// printTasks lists tasks the way the run command announces them.
func printTasks(w io.Writer, profile *persona.Profile, tasks []task.Task) {
	fmt.Fprintln(w, narration.TitleStyle.Render(fmt.Sprintf("\n📋 GENERATED %d TASKS FOR %s:", len(tasks), profile.Name())))
	for i, t := range tasks {
		fmt.Fprintf(w, "  %d. %s\n", i+1, t.Name)
		fmt.Fprintln(w, narration.MutedStyle.Render("     📝 "+t.Description))
		fmt.Fprintln(w, narration.MutedStyle.Render("     🔧 Functions: "+strings.Join(t.OperationNames(), ", ")))
		fmt.Fprintln(w, narration.MutedStyle.Render("     🎯 Success: "+t.SuccessCriteria))
		fmt.Fprintln(w, narration.MutedStyle.Render("     😊 Journey: "+strings.Join(t.EmotionalJourney, " → ")))
	}
}
