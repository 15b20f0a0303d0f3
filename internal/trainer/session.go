package trainer

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// Lesson identifies the active exercise.
type Lesson int

const (
	LessonCompare Lesson = iota
	LessonChallenge
	LessonAnalyze
)

func (l Lesson) String() string {
	switch l {
	case LessonCompare:
		return "compare"
	case LessonChallenge:
		return "challenge"
	case LessonAnalyze:
		return "analyze"
	default:
		return "unknown"
	}
}

// Session owns all per-session exercise state. Transitions are driven
// synchronously by user actions; nothing here is safe for concurrent
// use and nothing needs to be.
type Session struct {
	// ID tags telemetry events recorded during this session.
	ID string

	Config    *SessionConfig
	Lesson    Lesson
	Quiz      *Quiz
	Challenge *ChallengeRound
	History   *HistoryLog

	// LastAnalysis holds the transient result currently on screen for
	// the analyze exercise. History keeps the durable copies.
	LastAnalysis *AnalysisResult
}

// NewSession builds a fresh session drawing quiz randomness from rng.
func NewSession(cfg *SessionConfig, rng *rand.Rand) *Session {
	if cfg == nil {
		cfg = NewSessionConfig()
	}
	return &Session{
		ID:        uuid.New().String(),
		Config:    cfg,
		Lesson:    LessonCompare,
		Quiz:      NewQuiz(rng),
		Challenge: NewChallengeRound(),
		History:   NewHistoryLog(),
	}
}

// ChangeLesson switches the active exercise. Quiz progress and the
// challenge round are discarded; history survives lesson changes.
func (s *Session) ChangeLesson(l Lesson) {
	s.Lesson = l
	s.Quiz.Reset()
	s.Challenge.Reset()
	s.LastAnalysis = nil
}

// RecordAnalysis builds an AnalysisResult from a graded free-form
// prompt and appends it to history. Every grading action is recorded,
// whatever the report says.
func (s *Session) RecordAnalysis(prompt, report string, at time.Time) AnalysisResult {
	result := NewAnalysisResult(prompt, report, at)
	s.History.Add(result)
	s.LastAnalysis = &result
	return result
}

// SwitchProvider changes the configured provider and invalidates the
// exercise state that depended on the old session.
func (s *Session) SwitchProvider(p Provider) {
	if p == s.Config.Provider {
		return
	}
	s.Config.SetProvider(p)
	s.invalidate()
}

// SetDemoMode toggles demo mode and resets exercise state so stale
// provider-generated content is not mixed with demo content.
func (s *Session) SetDemoMode(on bool) {
	if on == s.Config.DemoMode {
		return
	}
	s.Config.SetDemoMode(on)
	s.invalidate()
}

func (s *Session) invalidate() {
	s.Quiz.Reset()
	s.Challenge.Reset()
	s.LastAnalysis = nil
}
