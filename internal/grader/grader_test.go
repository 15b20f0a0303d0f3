package grader

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/promptdojo/internal/llm"
)

func TestGradeScenario(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "**TOTAL: 15/20**\nsolid work"})
	g := New(mock, DefaultConfig())

	report, err := g.Grade(context.Background(), "Write a polite refund reply.", "A customer requests a refund.")
	require.NoError(t, err)
	assert.Contains(t, report, "TOTAL: 15/20")

	require.Len(t, mock.Calls, 1)
	call := mock.Calls[0]
	assert.Contains(t, call.System, "Prompt Engineering Instructor")
	assert.Contains(t, call.System, "The Ideal Prompt")
	require.Len(t, call.Messages, 1)
	assert.Contains(t, call.Messages[0].Content, "Scenario: A customer requests a refund.")
	assert.Contains(t, call.Messages[0].Content, "Student's prompt: Write a polite refund reply.")
}

func TestGradeGeneral(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "**TOTAL: 9/20**"})
	g := New(mock, DefaultConfig())

	report, err := g.Grade(context.Background(), "Summarize this article.", "")
	require.NoError(t, err)
	assert.Contains(t, report, "TOTAL: 9/20")

	require.Len(t, mock.Calls, 1)
	call := mock.Calls[0]
	assert.Contains(t, call.System, "Improved Version")
	assert.NotContains(t, call.System, "The Ideal Prompt")
	assert.True(t, strings.HasPrefix(call.Messages[0].Content, "Evaluate this prompt:"))
}

func TestGradeAuthenticationErrorSurfaces(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrAuthentication{Provider: "openai", Err: errors.New("401 unauthorized")},
	})
	g := New(mock, DefaultConfig())

	report, err := g.Grade(context.Background(), "anything", "a scenario")
	assert.Empty(t, report)

	var authErr *llm.ErrAuthentication
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "openai", authErr.Provider)
}

func TestGradeProviderFailureBecomesReport(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrRateLimit{Err: errors.New("429 too many requests")},
	})
	g := New(mock, DefaultConfig())

	report, err := g.Grade(context.Background(), "anything", "a scenario")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(report, "Error: "))

	_, ok := ExtractScore(report)
	assert.False(t, ok)
}

func TestGradeDemoMode(t *testing.T) {
	g := NewDemo()
	assert.True(t, g.Demo())

	report, err := g.Grade(context.Background(), "anything", "a scenario")
	require.NoError(t, err)
	assert.Equal(t, DemoScenarioReport, report)

	report, err = g.Grade(context.Background(), "anything", "")
	require.NoError(t, err)
	assert.Equal(t, DemoGeneralReport, report)
}
