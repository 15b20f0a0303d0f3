package content

// Kind selects which practice record to generate.
type Kind int

const (
	// KindAB requests a pairwise comparison question.
	KindAB Kind = iota
	// KindChallenge requests an open-ended authoring scenario.
	KindChallenge
)

func (k Kind) String() string {
	switch k {
	case KindAB:
		return "ab"
	case KindChallenge:
		return "challenge"
	}
	return "unknown"
}

// ABQuestion is a scenario with a deliberately flawed and a corrected
// prompt, used for discrimination practice. Immutable once generated;
// all four fields are non-empty.
type ABQuestion struct {
	Scenario     string `json:"scenario"`
	WeakPrompt   string `json:"weak_prompt"`
	StrongPrompt string `json:"strong_prompt"`
	Explanation  string `json:"explanation"`
}

// Challenge is an open-ended scenario requiring the learner to author a
// prompt from scratch. KeyElements normally holds 4 entries, but callers
// must tolerate fewer.
type Challenge struct {
	Title       string   `json:"title"`
	Scenario    string   `json:"scenario"`
	IdealPrompt string   `json:"ideal_prompt"`
	KeyElements []string `json:"key_elements"`
}

// Source reports where a generated record came from. The UI never
// distinguishes these since the learner always gets usable content,
// but tests can.
type Source int

const (
	// SourceParsed means the record was parsed from a live provider response.
	SourceParsed Source = iota
	// SourceFallback means parsing or the provider call failed and the
	// fixed fallback record was substituted.
	SourceFallback
	// SourceDemo means demo mode short-circuited the provider call.
	SourceDemo
)

func (s Source) String() string {
	switch s {
	case SourceParsed:
		return "parsed"
	case SourceFallback:
		return "fallback"
	case SourceDemo:
		return "demo"
	}
	return "unknown"
}

// Result is the outcome of a generation request. Exactly one of AB or
// Challenge is set, matching the requested Kind.
type Result struct {
	AB        *ABQuestion
	Challenge *Challenge
	Source    Source
}
