package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/entrhq/shopsim/pkg/catalog"
	"github.com/entrhq/shopsim/pkg/narration"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the shopping operations tasks can use",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, entry := range catalog.Entries() {
				fmt.Fprintln(out, narration.TitleStyle.Render(entry.Operation.String()))
				fmt.Fprintf(out, "  %s\n", entry.Description)
				fmt.Fprintln(out, narration.MutedStyle.Render("  use: "+entry.UseCase))
				if params := formatParameters(entry.Parameters); params != "" {
					fmt.Fprintln(out, narration.MutedStyle.Render("  parameters: "+params))
				}
				fmt.Fprintln(out, narration.MutedStyle.Render(fmt.Sprintf("  success rate: %s, persona impact: %s", entry.SuccessRate, entry.PersonaImpact)))
			}
		},
	}
}

func formatParameters(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + " (" + params[k] + ")"
	}
	return strings.Join(parts, ", ")
}
