package content

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/abhisek/promptdojo/internal/llm"
)

func TestGenerate_ParsedAB(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: validABJSON})
	g := New(mock, DefaultConfig())

	result := g.Generate(context.Background(), KindAB)
	if result.Source != SourceParsed {
		t.Fatalf("expected SourceParsed, got %v", result.Source)
	}
	if result.AB == nil {
		t.Fatal("expected an AB question")
	}
	if result.Challenge != nil {
		t.Fatal("challenge must not be set for KindAB")
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 provider call, got %d", len(mock.Calls))
	}
	if mock.Calls[0].System != abSystemPrompt {
		t.Fatal("AB generation must use the AB template")
	}
}

func TestGenerate_ParsedChallenge(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "```json\n" + validChallengeJSON + "\n```"})
	g := New(mock, DefaultConfig())

	result := g.Generate(context.Background(), KindChallenge)
	if result.Source != SourceParsed {
		t.Fatalf("expected SourceParsed, got %v", result.Source)
	}
	if result.Challenge == nil {
		t.Fatal("expected a challenge")
	}
	if mock.Calls[0].System != challengeSystemPrompt {
		t.Fatal("challenge generation must use the challenge template")
	}
}

func TestGenerate_MalformedFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "I'd be happy to help! Here is a question..."})
	g := New(mock, DefaultConfig())

	result := g.Generate(context.Background(), KindAB)
	if result.Source != SourceFallback {
		t.Fatalf("expected SourceFallback, got %v", result.Source)
	}
	if !reflect.DeepEqual(*result.AB, DemoABQuestion) {
		t.Fatal("fallback must be exactly the fixed demo record")
	}
}

func TestGenerate_ProviderErrorFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("connection refused")},
	})
	g := New(mock, DefaultConfig())

	result := g.Generate(context.Background(), KindChallenge)
	if result.Source != SourceFallback {
		t.Fatalf("expected SourceFallback, got %v", result.Source)
	}
	if !reflect.DeepEqual(*result.Challenge, DemoChallenge) {
		t.Fatal("fallback must be exactly the fixed demo record")
	}
}

func TestGenerate_DemoMode(t *testing.T) {
	g := NewDemo()

	result := g.Generate(context.Background(), KindAB)
	if result.Source != SourceDemo {
		t.Fatalf("expected SourceDemo, got %v", result.Source)
	}
	if !reflect.DeepEqual(*result.AB, DemoABQuestion) {
		t.Fatal("demo mode must return the fixed record")
	}

	result = g.Generate(context.Background(), KindChallenge)
	if result.Source != SourceDemo {
		t.Fatalf("expected SourceDemo, got %v", result.Source)
	}
	if !reflect.DeepEqual(*result.Challenge, DemoChallenge) {
		t.Fatal("demo mode must return the fixed record")
	}
}

func TestGenerate_FallbackRecordsAreCopies(t *testing.T) {
	g := NewDemo()

	first := g.Generate(context.Background(), KindChallenge)
	first.Challenge.KeyElements[0] = "mutated"
	first.Challenge.Title = "mutated"

	second := g.Generate(context.Background(), KindChallenge)
	if second.Challenge.Title == "mutated" {
		t.Fatal("shared fixture was mutated through a returned record")
	}
	if second.Challenge.KeyElements[0] == "mutated" {
		t.Fatal("shared fixture slice was mutated through a returned record")
	}
}
