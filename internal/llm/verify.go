package llm

import (
	"context"
	"errors"
)

// verifyMaxTokens keeps the probe cheap.
const verifyMaxTokens = 8

// Verify sends a minimal probe request to confirm the provider accepts the
// configured credential. A *ErrAuthentication return means the key was
// rejected; any other error means the provider could not be reached.
func Verify(ctx context.Context, p Provider) error {
	ctx = WithPurpose(ctx, "verify")

	_, err := p.Generate(ctx, Request{
		Messages:  []Message{{Role: RoleUser, Content: "Say 'OK'"}},
		MaxTokens: verifyMaxTokens,
	})
	if err == nil {
		return nil
	}

	// Truncation on an 8-token budget still proves the key works.
	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return nil
	}

	return err
}
