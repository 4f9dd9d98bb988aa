package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/entrhq/shopsim/pkg/config"
	"github.com/entrhq/shopsim/pkg/llm"
	"github.com/entrhq/shopsim/pkg/logging"
	"github.com/entrhq/shopsim/pkg/persona"
	"github.com/entrhq/shopsim/pkg/task"
)

// rootOptions holds flags shared by every subcommand
type rootOptions struct {
	configPath  string
	verbosity   string
	llm         config.LLMConfig
	personaPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "shopsim",
		Short: "Simulate a persona's shopping session in a real browser",
		Long: `shopsim turns a shopper persona into a plan of shopping tasks and acts it out
against a storefront, narrating the shopper's reactions as it goes.

Task plans come from a language model when one is configured and from a
built-in rule table otherwise.`,
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Path to configuration file (YAML, default ~/.shopsim/config.yaml)")
	pf.StringVar(&opts.verbosity, "verbosity", "", "Debug log level: quiet, normal, verbose or debug")
	pf.StringVar(&opts.llm.Backend, "backend", "", "Task planning backend: auto, openai, ollama, gemini or none")
	pf.StringVar(&opts.llm.Model, "model", "", "Model used for task planning")
	pf.StringVar(&opts.llm.BaseURL, "base-url", "", "Base URL or host of the planning backend")
	pf.StringVar(&opts.llm.APIKey, "api-key", "", "API key for the planning backend")

	cmd.AddCommand(
		newRunCmd(opts),
		newPlanCmd(opts),
		newCatalogCmd(),
		newVersionCmd(),
	)
	return cmd
}

// loadConfig reads, overrides and validates the configuration and applies its
// log level.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if o.verbosity != "" {
		cfg.Logging.Verbosity = o.verbosity
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	logging.SetLevel(logging.ParseLevel(cfg.Logging.Verbosity))
	return cfg, nil
}

// loadPersona reads --persona or, without it, runs the guided form.
func (o *rootOptions) loadPersona(cmd *cobra.Command) (*persona.Profile, error) {
	if o.personaPath != "" {
		return persona.LoadFile(o.personaPath)
	}

	prompter, err := newReadlinePrompter()
	if err != nil {
		return nil, fmt.Errorf("failed to start guided persona form: %w", err)
	}
	defer prompter.Close()

	spec, err := collectSpec(prompter, cmd.OutOrStdout())
	if err != nil {
		return nil, err
	}
	profile, err := persona.New(spec)
	if err != nil {
		return nil, err
	}
	printPersona(cmd.OutOrStdout(), profile)
	return profile, nil
}

// planTasks builds the configured text generator and drafts tasks for profile.
func (o *rootOptions) planTasks(ctx context.Context, cfg *config.Config, profile *persona.Profile) ([]task.Task, llm.TextGenerator, error) {
	gen, err := config.BuildTextGenerator(ctx, cfg.ResolveLLM(o.llm))
	if err != nil {
		return nil, nil, err
	}
	generator := task.NewGenerator(task.WithTextGenerator(gen))
	return generator.Generate(ctx, profile), gen, nil
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(os.Stderr, "\n\nShutting down gracefully...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and exit",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "shopsim v%s\n", version)
		},
	}
}
