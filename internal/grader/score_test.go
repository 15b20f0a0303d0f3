package grader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractScore(t *testing.T) {
	tests := []struct {
		name   string
		report string
		score  int
		ok     bool
	}{
		{
			name:   "standard total line",
			report: "| Context | 3/5 | thin |\n\n**TOTAL: 13/20**\n\n## What You Did Well",
			score:  13,
			ok:     true,
		},
		{
			name:   "whitespace around the number",
			report: "TOTAL:   7 /20",
			score:  7,
			ok:     true,
		},
		{
			name:   "bold markers inside the segment",
			report: "**TOTAL: 18/20**",
			score:  18,
			ok:     true,
		},
		{
			name:   "no slash after the marker",
			report: "TOTAL: 12 points overall",
			score:  12,
			ok:     true,
		},
		{
			name:   "marker absent",
			report: "## Scores\n\nGreat work overall.",
			score:  0,
			ok:     false,
		},
		{
			name:   "marker with no digits",
			report: "TOTAL: unknown/20",
			score:  0,
			ok:     false,
		},
		{
			name:   "empty report",
			report: "",
			score:  0,
			ok:     false,
		},
		{
			name:   "first marker wins",
			report: "TOTAL: 9/20 and later TOTAL: 17/20",
			score:  9,
			ok:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, ok := ExtractScore(tt.report)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.score, score)
		})
	}
}

func TestExtractScoreDemoReports(t *testing.T) {
	score, ok := ExtractScore(DemoScenarioReport)
	assert.True(t, ok)
	assert.Equal(t, 13, score)

	score, ok = ExtractScore(DemoGeneralReport)
	assert.True(t, ok)
	assert.Equal(t, 11, score)
}

func TestScoreTone(t *testing.T) {
	assert.Equal(t, ToneExcellent, ScoreTone(20))
	assert.Equal(t, ToneExcellent, ScoreTone(16))
	assert.Equal(t, ToneGood, ScoreTone(15))
	assert.Equal(t, ToneGood, ScoreTone(12))
	assert.Equal(t, ToneNeedsWork, ScoreTone(11))
	assert.Equal(t, ToneNeedsWork, ScoreTone(0))
}
