package content

// Fixed practice records. They serve double duty: the content shown in
// demo mode, and the fallback substituted when a live response fails to
// parse. Kept deterministic so tests can assert on them byte-for-byte.

// DemoABQuestion is the fixed A/B comparison question.
var DemoABQuestion = ABQuestion{
	Scenario:     "You need to write a prompt that helps summarize technical documentation for a general audience.",
	WeakPrompt:   "Summarize this technical documentation in simple terms. Make it exactly 5 paragraphs long. Use bullet points for each section. Include all technical specifications. Target audience is general public. Remove all jargon. Keep the technical accuracy. Make it engaging and fun to read.",
	StrongPrompt: "Summarize this technical documentation for a general audience with no technical background. Focus on what the product DOES and why it matters, not how it works internally. Use analogies to everyday objects where helpful. Aim for 2-3 short paragraphs. Avoid jargon - if a technical term is essential, briefly define it.",
	Explanation:  "The weak prompt has contradictory instructions (include all technical specs BUT remove jargon and target general public), over-specifies format (exactly 5 paragraphs with bullet points), and asks for incompatible goals (technical accuracy AND fun to read for non-technical readers). The strong prompt has a clear, consistent goal and appropriate constraints without contradictions.",
}

// DemoChallenge is the fixed authoring challenge.
var DemoChallenge = Challenge{
	Title:       "Customer Support Response",
	Scenario:    "You work for a software company and need to write a prompt that helps generate responses to customer support tickets. The responses should acknowledge the customer's issue, provide a solution or next steps, and maintain a helpful tone.",
	IdealPrompt: "You are a friendly customer support agent for TechCorp software. A customer has submitted a support ticket. Write a response that: 1) Acknowledges their issue with empathy, 2) Provides a clear solution or next steps, 3) Offers additional help if needed. Keep the tone professional but warm. Use simple language avoiding technical jargon unless necessary. Response should be 3-5 sentences. Format: Start with a greeting using their name, end with your name 'Alex from TechCorp Support'.",
	KeyElements: []string{
		"Role/persona assignment",
		"Clear structure (acknowledge, solve, offer help)",
		"Tone and language guidelines",
		"Format specifications",
	},
}

// demoRecord returns the fixed record for kind as a Result with the
// given source tag. Copies are returned so callers can't mutate the
// shared fixtures.
func demoRecord(kind Kind, source Source) Result {
	switch kind {
	case KindChallenge:
		c := DemoChallenge
		c.KeyElements = append([]string(nil), DemoChallenge.KeyElements...)
		return Result{Challenge: &c, Source: source}
	default:
		q := DemoABQuestion
		return Result{AB: &q, Source: source}
	}
}
