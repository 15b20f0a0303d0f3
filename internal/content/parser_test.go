package content

import (
	"testing"
)

const validABJSON = `{
	"scenario": "Write a prompt for drafting a cold outreach email.",
	"weak_prompt": "Write an email to a potential customer.",
	"strong_prompt": "You are a sales rep at a B2B analytics startup. Write a 4-sentence cold outreach email to a VP of Engineering, referencing their recent conference talk and proposing a 15-minute call.",
	"explanation": "The strong prompt supplies role, audience, length, and a concrete hook."
}`

const validChallengeJSON = `{
	"title": "Bug Report Triage",
	"scenario": "Write a prompt that turns raw bug reports into structured triage summaries.",
	"ideal_prompt": "You are a QA lead. Rewrite the bug report below as a triage summary with fields: severity, affected component, reproduction steps, suggested owner.",
	"key_elements": ["role assignment", "output structure", "field definitions", "routing guidance"]
}`

func TestParseABQuestion_Valid(t *testing.T) {
	q, err := ParseABQuestion(validABJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Scenario == "" || q.WeakPrompt == "" || q.StrongPrompt == "" || q.Explanation == "" {
		t.Fatal("all four fields must be populated")
	}
}

func TestParseABQuestion_FencedJSON(t *testing.T) {
	fenced := "```json\n" + validABJSON + "\n```"
	q, err := ParseABQuestion(fenced)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Scenario != "Write a prompt for drafting a cold outreach email." {
		t.Fatalf("unexpected scenario: %q", q.Scenario)
	}
}

func TestParseABQuestion_FenceWithoutLanguageTag(t *testing.T) {
	fenced := "```\n" + validABJSON + "\n```"
	if _, err := ParseABQuestion(fenced); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseABQuestion_Malformed(t *testing.T) {
	cases := map[string]string{
		"not json":          "Sorry, I can't help with that.",
		"empty":             "",
		"missing field":     `{"scenario":"s","weak_prompt":"w","strong_prompt":"st"}`,
		"empty field":       `{"scenario":"","weak_prompt":"w","strong_prompt":"st","explanation":"e"}`,
		"wrong field types": `{"scenario":1,"weak_prompt":2,"strong_prompt":3,"explanation":4}`,
		"extra field":       `{"scenario":"s","weak_prompt":"w","strong_prompt":"st","explanation":"e","extra":"x"}`,
		"array not object":  `["scenario","weak_prompt"]`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseABQuestion(raw); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestParseChallenge_Valid(t *testing.T) {
	c, err := ParseChallenge(validChallengeJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Title != "Bug Report Triage" {
		t.Fatalf("unexpected title: %q", c.Title)
	}
	if len(c.KeyElements) != 4 {
		t.Fatalf("expected 4 key elements, got %d", len(c.KeyElements))
	}
}

func TestParseChallenge_ShortKeyElements(t *testing.T) {
	// Providers sometimes return fewer than 4 elements. That must parse;
	// rendering tolerates short lists.
	raw := `{"title":"t","scenario":"s","ideal_prompt":"i","key_elements":["only one"]}`
	c, err := ParseChallenge(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.KeyElements) != 1 {
		t.Fatalf("expected 1 key element, got %d", len(c.KeyElements))
	}
}

func TestParseChallenge_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty key_elements": `{"title":"t","scenario":"s","ideal_prompt":"i","key_elements":[]}`,
		"non-string element": `{"title":"t","scenario":"s","ideal_prompt":"i","key_elements":[1,2,3,4]}`,
		"missing title":      `{"scenario":"s","ideal_prompt":"i","key_elements":["a","b","c","d"]}`,
		"prose response":     "Here is a challenge for you:\n\nWrite a prompt that...",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseChallenge(raw); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestStripFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"json tag", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n```json\n{\"a\":1}\n```\n  ", `{"a":1}`},
		{"unterminated fence", "```json\n{\"a\":1}", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFence(tt.input); got != tt.want {
				t.Fatalf("stripFence(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
