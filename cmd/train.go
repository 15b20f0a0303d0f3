package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/promptdojo/internal/app"
	"github.com/abhisek/promptdojo/internal/llm"
	"github.com/abhisek/promptdojo/internal/services"
	"github.com/abhisek/promptdojo/internal/store"
	"github.com/spf13/cobra"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Start a training session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, builds the service bundle, and launches the TUI.
// A provider configured via environment variables skips the setup screen;
// otherwise the welcome flow collects a key interactively.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	events := st.EventRepo()
	opts := app.Options{}

	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		if discovered, ok := llm.DiscoverConfig(); ok {
			cfg = discovered
		} else {
			cfg = llm.DefaultConfig()
			opts.Bundle = services.New(cfg, events)
			return app.Run(opts)
		}
	}

	provider, err := llm.NewProvider(ctx, cfg, events)
	if err != nil {
		return fmt.Errorf("build LLM provider: %w", err)
	}
	if err := llm.Verify(ctx, provider); err != nil {
		fmt.Fprintln(os.Stderr, "Provider credential check failed:", err)
		fmt.Fprintln(os.Stderr, "Falling back to interactive setup.")
		opts.Bundle = services.New(cfg, events)
		return app.Run(opts)
	}

	opts.Bundle = services.NewWithProvider(cfg, events, provider)
	opts.SkipSetup = true
	return app.Run(opts)
}
