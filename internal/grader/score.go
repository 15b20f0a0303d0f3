package grader

import (
	"strconv"
	"strings"
)

const scoreMarker = "TOTAL:"

// ExtractScore pulls the total score out of a rubric report. It scans
// for the first "TOTAL:" marker, takes the text up to the following
// "/", and keeps only the digits. The second return is false when the
// marker is absent or no digits follow it.
func ExtractScore(report string) (int, bool) {
	_, after, found := strings.Cut(report, scoreMarker)
	if !found {
		return 0, false
	}
	raw, _, _ := strings.Cut(after, "/")
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	score, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, false
	}
	return score, true
}

// Tone buckets a score out of 20 for display.
type Tone int

const (
	ToneNeedsWork Tone = iota
	ToneGood
	ToneExcellent
)

// ScoreTone maps a total score to its display tone.
func ScoreTone(score int) Tone {
	switch {
	case score >= 16:
		return ToneExcellent
	case score >= 12:
		return ToneGood
	default:
		return ToneNeedsWork
	}
}
