package compare

import (
	"strings"
	"testing"

	"github.com/abhisek/promptdojo/internal/content"
	"github.com/abhisek/promptdojo/internal/llm"
	"github.com/abhisek/promptdojo/internal/services"
	"github.com/abhisek/promptdojo/internal/trainer"
)

func otherSide(s trainer.Side) trainer.Side {
	if s == trainer.SideA {
		return trainer.SideB
	}
	return trainer.SideA
}

// completedScreen runs a full quiz with the given number of correct
// answers and returns the screen at the results view.
func completedScreen(t *testing.T, correct int) *CompareScreen {
	t.Helper()
	b := services.NewWithProvider(llm.DefaultConfig(), nil, llm.NewMockProvider())
	q := b.Session.Quiz
	question := content.ABQuestion{
		Scenario:     "scenario",
		WeakPrompt:   "weak",
		StrongPrompt: "strong",
		Explanation:  "explanation",
	}
	for i := 0; i < trainer.QuizLength; i++ {
		if err := q.BeginQuestion(question); err != nil {
			t.Fatal(err)
		}
		choice := q.CorrectSide
		if i >= correct {
			choice = otherSide(choice)
		}
		if err := q.Answer(choice); err != nil {
			t.Fatal(err)
		}
		if err := q.Advance(); err != nil {
			t.Fatal(err)
		}
	}
	return New(b)
}

func TestCompleteViewTones(t *testing.T) {
	cases := []struct {
		correct int
		note    string
	}{
		{correct: 7, note: "Excellent prompt instincts"},
		{correct: 5, note: "Good eye"},
		{correct: 6, note: "Good eye"},
		{correct: 4, note: "Keep practicing"},
	}
	for _, tc := range cases {
		view := completedScreen(t, tc.correct).View(120, 40)
		if !strings.Contains(view, tc.note) {
			t.Errorf("score %d: view missing %q", tc.correct, tc.note)
		}
		if !strings.Contains(view, "Quiz Complete") {
			t.Errorf("score %d: missing completion header", tc.correct)
		}
	}
}
