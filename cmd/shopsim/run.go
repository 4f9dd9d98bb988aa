package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/entrhq/shopsim/pkg/browser"
	"github.com/entrhq/shopsim/pkg/engine"
	"github.com/entrhq/shopsim/pkg/llm"
	"github.com/entrhq/shopsim/pkg/narration"
)

type runOptions struct {
	headless    bool
	yes         bool
	seed        int64
	stepDelay   time.Duration
	summaryPath string
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Plan and act out a shopping session for a persona",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, root, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&root.personaPath, "persona", "", "Persona YAML file (guided form when omitted)")
	f.BoolVar(&opts.headless, "headless", false, "Run the browser without a visible window")
	f.BoolVarP(&opts.yes, "yes", "y", false, "Start without waiting for confirmation")
	f.Int64Var(&opts.seed, "seed", 0, "Seed for search term selection (0 uses configuration or random)")
	f.DurationVar(&opts.stepDelay, "step-delay", 0, "Pause between operations (overrides configuration)")
	f.StringVar(&opts.summaryPath, "summary", "", "Write the session summary JSON to this file (overrides configuration)")
	return cmd
}

func runSession(cmd *cobra.Command, root *rootOptions, opts *runOptions) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("headless") {
		cfg.Browser.Headless = opts.headless
	}
	if cmd.Flags().Changed("step-delay") {
		cfg.Execution.StepDelay = opts.stepDelay
	}
	if opts.seed != 0 {
		cfg.Execution.Seed = opts.seed
	}
	if opts.summaryPath != "" {
		cfg.Output.SummaryFile = opts.summaryPath
	}

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	out := cmd.OutOrStdout()

	profile, err := root.loadPersona(cmd)
	if err != nil {
		return err
	}

	tasks, gen, err := root.planTasks(ctx, cfg, profile)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, narration.MutedStyle.Render("🤖 Task planner: "+llm.Describe(gen)))
	printTasks(out, profile, tasks)

	if !opts.yes {
		prompter, err := newReadlinePrompter()
		if err != nil {
			return err
		}
		_, err = prompter.Prompt("\n▶️  Press Enter to start the shopping session...")
		prompter.Close()
		if err != nil {
			return err
		}
	}

	classifier, err := cfg.Classifier()
	if err != nil {
		return err
	}

	engineOpts := []engine.Option{
		engine.WithNarrator(narration.NewTerminalNarrator(narration.WithWriter(out))),
		engine.WithSelectors(cfg.Site.Selectors),
		engine.WithHomeURL(cfg.Site.HomeURL),
		engine.WithCartURL(cfg.Site.CartURL),
		engine.WithClassifier(classifier),
		engine.WithStepDelay(cfg.Execution.StepDelay),
	}
	if cfg.Execution.Seed != 0 {
		engineOpts = append(engineOpts, engine.WithRand(rand.New(rand.NewSource(cfg.Execution.Seed))))
	}

	manager := browser.NewSessionManager()
	manager.SetInstall(cfg.Browser.Install)
	defer func() {
		if err := manager.Shutdown(); err != nil {
			log.Printf("Warning: failed to stop browser driver: %v", err)
		}
	}()

	summary, runErr := engine.Run(ctx, manager.Launcher("shopsim", cfg.SessionOptions()), profile, tasks, engineOpts...)

	if cfg.Output.SummaryFile != "" {
		if err := summary.WriteJSON(cfg.Output.SummaryFile); err != nil {
			log.Printf("Warning: %v", err)
		} else {
			fmt.Fprintln(out, narration.MutedStyle.Render("📄 Summary written to "+cfg.Output.SummaryFile))
		}
	}

	if runErr != nil {
		return fmt.Errorf("shopping session failed: %w", runErr)
	}
	return nil
}
