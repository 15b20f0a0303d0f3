package trainer

import (
	"errors"
	"math/rand/v2"

	"github.com/abhisek/promptdojo/internal/content"
)

// QuizLength is the number of questions in a compare quiz.
const QuizLength = 10

// Side labels the two visible answer positions.
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
)

var (
	ErrQuizComplete    = errors.New("quiz is complete")
	ErrNoQuestion      = errors.New("no question in play")
	ErrQuestionPending = errors.New("current question not yet answered")
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrNotAnswered     = errors.New("question not answered yet")
)

// Quiz is the compare exercise state machine. Each question shows a
// strong and a weak prompt on randomly assigned sides; the user picks
// the side they believe is stronger.
type Quiz struct {
	Score         int
	Index         int
	Current       *content.ABQuestion
	CorrectSide   Side
	FeedbackShown bool
	LastCorrect   bool

	rng *rand.Rand
}

// NewQuiz returns an empty quiz drawing side assignments from rng.
func NewQuiz(rng *rand.Rand) *Quiz {
	return &Quiz{rng: rng}
}

// BeginQuestion installs q as the current question and assigns the
// correct side by coin flip. The side is fixed before either prompt is
// mapped to a display position, so display order carries no signal.
func (q *Quiz) BeginQuestion(question content.ABQuestion) error {
	if q.Complete() {
		return ErrQuizComplete
	}
	if q.Current != nil && !q.FeedbackShown {
		return ErrQuestionPending
	}
	q.Current = &question
	q.CorrectSide = SideA
	if q.rng.IntN(2) == 1 {
		q.CorrectSide = SideB
	}
	q.FeedbackShown = false
	q.LastCorrect = false
	return nil
}

// OptionA returns the prompt shown on side A.
func (q *Quiz) OptionA() string {
	if q.Current == nil {
		return ""
	}
	if q.CorrectSide == SideA {
		return q.Current.StrongPrompt
	}
	return q.Current.WeakPrompt
}

// OptionB returns the prompt shown on side B.
func (q *Quiz) OptionB() string {
	if q.Current == nil {
		return ""
	}
	if q.CorrectSide == SideB {
		return q.Current.StrongPrompt
	}
	return q.Current.WeakPrompt
}

// Answer records the user's choice for the current question. A second
// submission for the same question is rejected, so the score can never
// be incremented twice for one question.
func (q *Quiz) Answer(choice Side) error {
	if q.Current == nil {
		return ErrNoQuestion
	}
	if q.FeedbackShown {
		return ErrAlreadyAnswered
	}
	q.LastCorrect = choice == q.CorrectSide
	if q.LastCorrect {
		q.Score++
	}
	q.FeedbackShown = true
	return nil
}

// Advance moves past the answered question. When the last question has
// been answered the quiz becomes complete and only Reset restarts it.
func (q *Quiz) Advance() error {
	if q.Current == nil {
		return ErrNoQuestion
	}
	if !q.FeedbackShown {
		return ErrNotAnswered
	}
	q.Index++
	q.Current = nil
	q.FeedbackShown = false
	q.LastCorrect = false
	return nil
}

// Complete reports whether all questions have been answered.
func (q *Quiz) Complete() bool {
	return q.Index >= QuizLength
}

// Reset clears all quiz progress.
func (q *Quiz) Reset() {
	q.Score = 0
	q.Index = 0
	q.Current = nil
	q.CorrectSide = ""
	q.FeedbackShown = false
	q.LastCorrect = false
}
