package llm

import (
	"context"
)

// Provider is the core abstraction for LLM interaction. It is the single
// opaque call primitive the trainer uses for both content generation and
// grading: a system prompt plus a short conversation in, raw text out.
type Provider interface {
	// Generate sends a prompt to the LLM and returns its raw text response.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. Sets the LLM's role and constraints.
	// The instructional templates in internal/content and internal/grader
	// go here.
	System string

	// Messages is the conversation history. For single-turn generation
	// (the common case in Prompt Dojo), this contains one user message.
	Messages []Message

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Default: 0.0 (deterministic) when not set.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Response holds the LLM's output.
type Response struct {
	// Text is the raw generated text. Structural expectations (JSON
	// records, rubric reports) are a contract with the templates, enforced
	// downstream by the content parser and score extractor, not here.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
