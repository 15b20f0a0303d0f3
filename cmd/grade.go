package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abhisek/promptdojo/internal/grader"
	"github.com/abhisek/promptdojo/internal/llm"
	"github.com/abhisek/promptdojo/internal/store"
	"github.com/spf13/cobra"
)

var gradeCmd = &cobra.Command{
	Use:   "grade [file]",
	Short: "Grade a prompt from a file or stdin",
	Long:  "Grades a prompt against the four-part rubric and prints the report. Reads the prompt from the given file, or from stdin when no file is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		demo, _ := cmd.Flags().GetBool("demo")
		scenario, _ := cmd.Flags().GetString("scenario")

		prompt, err := readPrompt(args)
		if err != nil {
			return err
		}
		if strings.TrimSpace(prompt) == "" {
			return fmt.Errorf("prompt is empty")
		}

		g, cleanup, err := buildGrader(cmd, demo)
		if err != nil {
			return err
		}
		defer cleanup()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		report, err := g.Grade(ctx, prompt, scenario)
		if err != nil {
			return fmt.Errorf("grade prompt: %w", err)
		}

		fmt.Println(report)

		if score, ok := grader.ExtractScore(report); ok {
			fmt.Printf("\nScore: %d/20\n", score)
		}
		return nil
	},
}

func readPrompt(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read prompt file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// buildGrader returns a grader plus a cleanup func closing the store.
func buildGrader(cmd *cobra.Command, demo bool) (*grader.Grader, func(), error) {
	if demo {
		return grader.NewDemo(), func() {}, nil
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		_ = st.Close()
		return nil, nil, fmt.Errorf("LLM provider not configured (try --demo): %w", err)
	}

	return grader.New(provider, grader.DefaultConfig()), func() { _ = st.Close() }, nil
}

func init() {
	gradeCmd.Flags().Bool("demo", false, "Use the built-in sample report instead of calling a provider")
	gradeCmd.Flags().StringP("scenario", "s", "", "Grade against a specific task scenario instead of the general rubric")
}
