package store

import (
	"context"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("newTestStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func appendTestEvent(t *testing.T, repo EventRepo, purpose, model string, in, out int, success bool) {
	t.Helper()
	err := repo.AppendLLMRequest(context.Background(), LLMRequestEventData{
		SessionID:    "sess-1",
		Provider:     "openai",
		Model:        model,
		Purpose:      purpose,
		InputTokens:  in,
		OutputTokens: out,
		LatencyMs:    120,
		Success:      success,
		RequestBody:  `{"system":"...","messages":[]}`,
		ResponseBody: "response text",
	})
	if err != nil {
		t.Fatalf("appendTestEvent: %v", err)
	}
}

func TestEventRepoAppendAndQuery(t *testing.T) {
	s := newTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events, err := repo.QueryLLMEvents(ctx, 0)
	if err != nil {
		t.Fatalf("QueryLLMEvents: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected empty list, got %d", len(events))
	}

	appendTestEvent(t, repo, "grading", "gpt-4o-mini", 100, 50, true)
	appendTestEvent(t, repo, "ab-gen", "gpt-4o-mini", 200, 80, true)
	appendTestEvent(t, repo, "grading", "gpt-4o-mini", 150, 60, false)

	events, err = repo.QueryLLMEvents(ctx, 0)
	if err != nil {
		t.Fatalf("QueryLLMEvents: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	// Most recent first.
	if events[0].Purpose != "grading" || events[0].Success {
		t.Fatalf("expected the failed grading event first, got %+v", events[0])
	}
	if events[2].Purpose != "grading" || !events[2].Success {
		t.Fatalf("expected the first grading event last, got %+v", events[2])
	}

	events, err = repo.QueryLLMEvents(ctx, 2)
	if err != nil {
		t.Fatalf("QueryLLMEvents with limit: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events with limit, got %d", len(events))
	}
}

func TestEventRepoGet(t *testing.T) {
	s := newTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appendTestEvent(t, repo, "challenge-gen", "claude-haiku-4-5-20251001", 300, 120, true)

	events, err := repo.QueryLLMEvents(ctx, 1)
	if err != nil {
		t.Fatalf("QueryLLMEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("GetLLMEvent: %v", err)
	}
	if e == nil {
		t.Fatal("expected event, got nil")
	}
	if e.Model != "claude-haiku-4-5-20251001" {
		t.Fatalf("unexpected model: %q", e.Model)
	}
	if e.RequestBody == "" {
		t.Fatal("request body should be stored")
	}
	if e.SessionID != "sess-1" {
		t.Fatalf("unexpected session id: %q", e.SessionID)
	}

	e, err = repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("GetLLMEvent missing: %v", err)
	}
	if e != nil {
		t.Fatalf("expected nil for missing event, got %+v", e)
	}
}

func TestEventRepoAggregates(t *testing.T) {
	s := newTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appendTestEvent(t, repo, "grading", "gpt-4o-mini", 100, 50, true)
	appendTestEvent(t, repo, "grading", "gpt-4o-mini", 200, 100, true)
	appendTestEvent(t, repo, "ab-gen", "gemini-2.0-flash", 300, 150, true)

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("LLMUsageByPurpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purpose groups, got %d", len(byPurpose))
	}
	for _, u := range byPurpose {
		if u.Purpose == "grading" {
			if u.Calls != 2 {
				t.Errorf("expected 2 grading calls, got %d", u.Calls)
			}
			if u.InputTokens != 300 {
				t.Errorf("expected 300 grading input tokens, got %d", u.InputTokens)
			}
			if u.OutputTokens != 150 {
				t.Errorf("expected 150 grading output tokens, got %d", u.OutputTokens)
			}
		}
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("LLMUsageByModel: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("expected 2 model groups, got %d", len(byModel))
	}
}

func TestNopEventRepo(t *testing.T) {
	repo := NopEventRepo{}
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{}); err != nil {
		t.Fatalf("AppendLLMRequest: %v", err)
	}
	events, err := repo.QueryLLMEvents(ctx, 10)
	if err != nil {
		t.Fatalf("QueryLLMEvents: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}
}
