package content

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseABQuestion parses raw provider text into an ABQuestion.
// Markdown code fences are tolerated; everything else is strict.
func ParseABQuestion(raw string) (*ABQuestion, error) {
	body := stripFence(raw)

	var parsed any
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := validateRecord(abQuestionSchema, parsed); err != nil {
		return nil, err
	}

	var q ABQuestion
	if err := json.Unmarshal([]byte(body), &q); err != nil {
		return nil, fmt.Errorf("decode AB question: %w", err)
	}
	return &q, nil
}

// ParseChallenge parses raw provider text into a Challenge.
func ParseChallenge(raw string) (*Challenge, error) {
	body := stripFence(raw)

	var parsed any
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := validateRecord(challengeSchema, parsed); err != nil {
		return nil, err
	}

	var c Challenge
	if err := json.Unmarshal([]byte(body), &c); err != nil {
		return nil, fmt.Errorf("decode challenge: %w", err)
	}
	return &c, nil
}

// stripFence removes one leading/trailing triple-backtick fence, with an
// optional "json" language tag after the opening fence. Providers wrap
// JSON in fences despite instructions; the payload inside is what counts.
func stripFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	parts := strings.SplitN(s, "```", 3)
	if len(parts) < 2 {
		return s
	}
	body := parts[1]

	body = strings.TrimPrefix(body, "json")
	return strings.TrimSpace(body)
}
