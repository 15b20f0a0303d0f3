package home

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/promptdojo/internal/llm"
	"github.com/abhisek/promptdojo/internal/router"
	"github.com/abhisek/promptdojo/internal/screens/compare"
	"github.com/abhisek/promptdojo/internal/screens/welcome"
	"github.com/abhisek/promptdojo/internal/services"
	"github.com/abhisek/promptdojo/internal/trainer"
)

func selectFirstItem(t *testing.T, h *HomeScreen) tea.Msg {
	t.Helper()
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from the menu selection")
	}
	return cmd()
}

func TestLessonOpensWhenReady(t *testing.T) {
	b := services.NewWithProvider(llm.DefaultConfig(), nil, llm.NewMockProvider())

	msg := selectFirstItem(t, New(b))
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if _, ok := push.Screen.(*compare.CompareScreen); !ok {
		t.Fatalf("expected compare screen, got %T", push.Screen)
	}
}

func TestLessonRoutesToSetupAfterAbandonedSwitch(t *testing.T) {
	b := services.NewWithProvider(llm.DefaultConfig(), nil, llm.NewMockProvider())
	b.SwitchProvider(trainer.ProviderAnthropic)

	msg := selectFirstItem(t, New(b))
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if _, ok := push.Screen.(*welcome.WelcomeScreen); !ok {
		t.Fatalf("expected setup screen while unconfigured, got %T", push.Screen)
	}
}
