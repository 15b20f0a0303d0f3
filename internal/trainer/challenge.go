package trainer

import (
	"errors"

	"github.com/abhisek/promptdojo/internal/content"
)

var (
	ErrNoScenario    = errors.New("no challenge scenario in play")
	ErrAlreadyGraded = errors.New("challenge already graded")
)

// ChallengeRound is the challenge exercise state machine. Each
// scenario accepts exactly one graded submission; a fresh scenario is
// needed before grading again.
type ChallengeRound struct {
	Current *content.Challenge
	Report  string
	Graded  bool
}

// NewChallengeRound returns an empty round.
func NewChallengeRound() *ChallengeRound {
	return &ChallengeRound{}
}

// Begin installs a new scenario and discards any previous report.
func (r *ChallengeRound) Begin(ch content.Challenge) {
	r.Current = &ch
	r.Report = ""
	r.Graded = false
}

// CanGrade reports whether a submission would be accepted.
func (r *ChallengeRound) CanGrade() bool {
	return r.Current != nil && !r.Graded
}

// RecordReport stores the grading report for the current scenario and
// locks the round against resubmission.
func (r *ChallengeRound) RecordReport(report string) error {
	if r.Current == nil {
		return ErrNoScenario
	}
	if r.Graded {
		return ErrAlreadyGraded
	}
	r.Report = report
	r.Graded = true
	return nil
}

// Reset clears the round entirely.
func (r *ChallengeRound) Reset() {
	r.Current = nil
	r.Report = ""
	r.Graded = false
}
