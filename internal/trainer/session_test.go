package trainer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderSwitchClearsCredential(t *testing.T) {
	cfg := NewSessionConfig()
	cfg.SetCredential("sk-test-key")
	cfg.MarkValidated()
	require.True(t, cfg.CredentialValidated)

	cfg.SetProvider(ProviderGemini)
	assert.Empty(t, cfg.Credential())
	assert.False(t, cfg.CredentialValidated)

	// Re-selecting the same provider changes nothing.
	cfg.SetCredential("gm-test-key")
	cfg.MarkValidated()
	cfg.SetProvider(ProviderGemini)
	assert.Equal(t, "gm-test-key", cfg.Credential())
	assert.True(t, cfg.CredentialValidated)
}

func TestDemoModeValidation(t *testing.T) {
	cfg := NewSessionConfig()
	assert.False(t, cfg.Ready())

	cfg.SetDemoMode(true)
	assert.True(t, cfg.Ready())
	assert.True(t, cfg.CredentialValidated)

	cfg.SetDemoMode(false)
	assert.False(t, cfg.Ready())
}

func TestChangeLessonKeepsHistory(t *testing.T) {
	s := NewSession(NewSessionConfig(), testRand(9))

	require.NoError(t, s.Quiz.BeginQuestion(sampleQuestion()))
	s.Challenge.Begin(sampleChallenge())
	s.RecordAnalysis("a prompt", "**TOTAL: 13/20**", time.Now())

	s.ChangeLesson(LessonAnalyze)

	assert.Nil(t, s.Quiz.Current)
	assert.Zero(t, s.Quiz.Score)
	assert.Nil(t, s.Challenge.Current)
	assert.Nil(t, s.LastAnalysis)
	assert.Equal(t, 1, s.History.Len(), "history survives lesson changes")
}

func TestSwitchProviderResetsExercises(t *testing.T) {
	s := NewSession(NewSessionConfig(), testRand(11))
	require.NoError(t, s.Quiz.BeginQuestion(sampleQuestion()))
	s.Challenge.Begin(sampleChallenge())

	s.SwitchProvider(ProviderAnthropic)

	assert.Equal(t, ProviderAnthropic, s.Config.Provider)
	assert.Nil(t, s.Quiz.Current)
	assert.Nil(t, s.Challenge.Current)
}

func TestRecordAnalysis(t *testing.T) {
	s := NewSession(NewSessionConfig(), testRand(13))

	result := s.RecordAnalysis("critique me", "**TOTAL: 16/20**", time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC))

	assert.Equal(t, 16, result.Score)
	assert.True(t, result.HasScore)
	require.NotNil(t, s.LastAnalysis)
	assert.Equal(t, result, *s.LastAnalysis)
	assert.Equal(t, 1, s.History.Len())
}

func TestParseProvider(t *testing.T) {
	p, err := ParseProvider("claude")
	require.NoError(t, err)
	assert.Equal(t, ProviderAnthropic, p)

	_, err = ParseProvider("bedrock")
	assert.Error(t, err)
}
