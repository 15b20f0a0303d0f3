package challenge

import (
	"strings"
	"testing"

	"github.com/abhisek/promptdojo/internal/content"
	"github.com/abhisek/promptdojo/internal/llm"
	"github.com/abhisek/promptdojo/internal/services"
)

func readyScreen(t *testing.T, ch content.Challenge) *ChallengeScreen {
	t.Helper()
	b := services.NewWithProvider(llm.DefaultConfig(), nil, llm.NewMockProvider())
	b.Session.Challenge.Begin(ch)
	return New(b)
}

func TestViewShowsKeyElementHints(t *testing.T) {
	s := readyScreen(t, content.Challenge{
		Title:       "Meeting Summarizer",
		Scenario:    "Summarize a meeting transcript for absent teammates.",
		IdealPrompt: "n/a",
		KeyElements: []string{"Audience", "Length limit", "Output format", "Tone"},
	})

	view := s.View(120, 40)
	for _, want := range []string{"Key elements", "1. Audience", "4. Tone"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewToleratesShortKeyElementList(t *testing.T) {
	s := readyScreen(t, content.Challenge{
		Title:       "Short",
		Scenario:    "Scenario text.",
		IdealPrompt: "n/a",
		KeyElements: []string{"Only one hint"},
	})

	view := s.View(120, 40)
	if !strings.Contains(view, "1. Only one hint") {
		t.Errorf("single hint not rendered")
	}

	s = readyScreen(t, content.Challenge{Title: "None", Scenario: "Scenario.", IdealPrompt: "n/a"})
	if view := s.View(120, 40); strings.Contains(view, "Key elements") {
		t.Errorf("hint header rendered with no elements")
	}
}
