package trainer

import (
	"time"

	"github.com/abhisek/promptdojo/internal/grader"
)

// truncateLimit caps the stored preview of an analyzed prompt.
const truncateLimit = 200

// AnalysisResult is one free-form prompt critique. Score is only
// meaningful when HasScore is true; reports without a parseable total
// are still kept, they just render without score coloring.
type AnalysisResult struct {
	Prompt          string
	TruncatedPrompt string
	Report          string
	Score           int
	HasScore        bool
	Timestamp       time.Time
}

// NewAnalysisResult builds a result from a submitted prompt and its
// grading report, extracting the score best-effort.
func NewAnalysisResult(prompt, report string, at time.Time) AnalysisResult {
	score, ok := grader.ExtractScore(report)
	return AnalysisResult{
		Prompt:          prompt,
		TruncatedPrompt: truncate(prompt, truncateLimit),
		Report:          report,
		Score:           score,
		HasScore:        ok,
		Timestamp:       at,
	}
}

// Tone returns the display tone for the result's score.
func (r AnalysisResult) Tone() grader.Tone {
	if !r.HasScore {
		return grader.ToneNeedsWork
	}
	return grader.ScoreTone(r.Score)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
