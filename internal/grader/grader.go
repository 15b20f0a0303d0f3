// Package grader evaluates user-written prompts against a fixed
// four-metric rubric and extracts numeric scores from the resulting
// report text.
package grader

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/promptdojo/internal/llm"
)

// Config tunes how grading requests are issued to the provider.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the grading request parameters.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2000,
		Temperature: 0.3,
	}
}

// Grader produces rubric-based evaluation reports for user prompts.
// With a nil provider it operates in demo mode and returns canned
// reports.
type Grader struct {
	provider llm.Provider
	cfg      Config
}

// New returns a Grader backed by the given provider.
func New(provider llm.Provider, cfg Config) *Grader {
	return &Grader{provider: provider, cfg: cfg}
}

// NewDemo returns a Grader that serves fixed demo reports without
// contacting any provider.
func NewDemo() *Grader {
	return &Grader{cfg: DefaultConfig()}
}

// Demo reports whether the grader is running without a provider.
func (g *Grader) Demo() bool {
	return g.provider == nil
}

// Grade evaluates userPrompt and returns the report text. A non-empty
// scenario grades the prompt against that scenario; an empty scenario
// uses the general rubric. Authentication failures are returned as
// errors so the caller can force re-validation. Any other provider
// failure is folded into the report text itself, so grading always
// yields a displayable report once credentials are known good.
func (g *Grader) Grade(ctx context.Context, userPrompt, scenario string) (string, error) {
	if g.provider == nil {
		if scenario == "" {
			return DemoGeneralReport, nil
		}
		return DemoScenarioReport, nil
	}

	system := generalRubricPrompt
	user := fmt.Sprintf("Evaluate this prompt:\n\n%s", userPrompt)
	purpose := "grading"
	if scenario != "" {
		system = scenarioRubricPrompt
		user = fmt.Sprintf("Scenario: %s\n\nStudent's prompt: %s", scenario, userPrompt)
	}

	resp, err := g.provider.Generate(llm.WithPurpose(ctx, purpose), llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: user},
		},
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		var authErr *llm.ErrAuthentication
		if errors.As(err, &authErr) {
			return "", err
		}
		return fmt.Sprintf("Error: %s", err.Error()), nil
	}
	return resp.Text, nil
}
