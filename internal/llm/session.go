package llm

import "context"

type sessionTagged struct {
	inner Provider
	id    string
}

// WithSessionTag wraps a Provider so every request carries the given
// session identifier for event logging.
func WithSessionTag(p Provider, id string) Provider {
	return &sessionTagged{inner: p, id: id}
}

func (s *sessionTagged) Generate(ctx context.Context, req Request) (*Response, error) {
	return s.inner.Generate(WithSessionID(ctx, s.id), req)
}

func (s *sessionTagged) ModelID() string {
	return s.inner.ModelID()
}
