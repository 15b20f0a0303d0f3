package trainer

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryLogEviction(t *testing.T) {
	h := NewHistoryLog()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < HistoryCapacity+1; i++ {
		prompt := fmt.Sprintf("prompt %d", i)
		h.Add(NewAnalysisResult(prompt, "TOTAL: 12/20", base.Add(time.Duration(i)*time.Minute)))
	}

	entries := h.Entries()
	require.Len(t, entries, HistoryCapacity)
	assert.Equal(t, "prompt 10", entries[0].Prompt, "newest entry comes first")
	assert.Equal(t, "prompt 1", entries[len(entries)-1].Prompt, "oldest surviving entry is last")

	for _, e := range entries {
		assert.NotEqual(t, "prompt 0", e.Prompt, "first insert must be evicted")
	}
}

func TestHistoryEntriesIsACopy(t *testing.T) {
	h := NewHistoryLog()
	h.Add(NewAnalysisResult("original", "report", time.Now()))

	entries := h.Entries()
	entries[0].Prompt = "mutated"

	assert.Equal(t, "original", h.Entries()[0].Prompt)
}

func TestAnalysisResultTruncation(t *testing.T) {
	long := strings.Repeat("x", 250)
	r := NewAnalysisResult(long, "no score here", time.Now())

	assert.Len(t, []rune(r.TruncatedPrompt), 203)
	assert.True(t, strings.HasSuffix(r.TruncatedPrompt, "..."))
	assert.Equal(t, long, r.Prompt, "full prompt is preserved")
	assert.False(t, r.HasScore)

	short := "keep me whole"
	r = NewAnalysisResult(short, "**TOTAL: 17/20**", time.Now())
	assert.Equal(t, short, r.TruncatedPrompt)
	assert.True(t, r.HasScore)
	assert.Equal(t, 17, r.Score)
}
