package content

import (
	"context"

	"github.com/abhisek/promptdojo/internal/llm"
)

// Config holds generation parameters.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for practice content.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1500,
		Temperature: 0.7,
	}
}

// Generator produces practice records. It is total: every call returns a
// usable record, substituting the fixed fallback when the provider call
// or parsing fails. Inspect Result.Source to tell the difference.
type Generator struct {
	provider llm.Provider
	cfg      Config
}

// New creates a Generator backed by the given provider.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

// NewDemo creates a Generator that returns fixed demo content only,
// never touching a provider.
func NewDemo() *Generator {
	return &Generator{}
}

// Generate produces a record of the requested kind.
func (g *Generator) Generate(ctx context.Context, kind Kind) Result {
	if g.provider == nil {
		return demoRecord(kind, SourceDemo)
	}

	system, user := templateFor(kind)
	ctx = llm.WithPurpose(ctx, kind.String()+"-gen")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: user},
		},
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return demoRecord(kind, SourceFallback)
	}

	switch kind {
	case KindChallenge:
		c, perr := ParseChallenge(resp.Text)
		if perr != nil {
			return demoRecord(kind, SourceFallback)
		}
		return Result{Challenge: c, Source: SourceParsed}
	default:
		q, perr := ParseABQuestion(resp.Text)
		if perr != nil {
			return demoRecord(kind, SourceFallback)
		}
		return Result{AB: q, Source: SourceParsed}
	}
}

func templateFor(kind Kind) (system, user string) {
	if kind == KindChallenge {
		return challengeSystemPrompt, challengeUserMessage
	}
	return abSystemPrompt, abUserMessage
}
