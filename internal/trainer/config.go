// Package trainer holds the per-session exercise state machines: the
// compare quiz, the challenge round, free-form analysis, and the
// bounded history of past analyses.
package trainer

import "fmt"

// Provider identifies which LLM backend a session is configured for.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderGemini    Provider = "gemini"
	ProviderAnthropic Provider = "anthropic"
)

// Display returns the user-facing provider name.
func (p Provider) Display() string {
	switch p {
	case ProviderOpenAI:
		return "OpenAI"
	case ProviderGemini:
		return "Gemini"
	case ProviderAnthropic:
		return "Claude"
	default:
		return string(p)
	}
}

// ParseProvider maps a provider name to its enum value.
func ParseProvider(name string) (Provider, error) {
	switch name {
	case "openai":
		return ProviderOpenAI, nil
	case "gemini":
		return ProviderGemini, nil
	case "anthropic", "claude":
		return ProviderAnthropic, nil
	default:
		return "", fmt.Errorf("unknown provider %q", name)
	}
}

// SessionConfig is the volatile per-session provider configuration.
// The credential lives only here, in memory, and is cleared whenever
// the provider changes so a key is never reused across providers.
type SessionConfig struct {
	Provider            Provider
	DemoMode            bool
	CredentialValidated bool

	credential string
}

// NewSessionConfig returns a config defaulting to OpenAI with no
// credential.
func NewSessionConfig() *SessionConfig {
	return &SessionConfig{Provider: ProviderOpenAI}
}

// SetProvider switches the active provider. Any stored credential is
// dropped and the session must be re-validated.
func (c *SessionConfig) SetProvider(p Provider) {
	if p == c.Provider {
		return
	}
	c.Provider = p
	c.credential = ""
	c.CredentialValidated = false
}

// SetCredential stores the API key for the active provider. It does
// not mark the session validated; that happens only after a
// successful probe.
func (c *SessionConfig) SetCredential(key string) {
	c.credential = key
	c.CredentialValidated = false
}

// Credential returns the in-memory API key, empty if none is set.
func (c *SessionConfig) Credential() string {
	return c.credential
}

// MarkValidated records that the current credential passed a probe.
func (c *SessionConfig) MarkValidated() {
	c.CredentialValidated = true
}

// Invalidate forces re-validation, used when a provider call comes
// back with an authentication failure.
func (c *SessionConfig) Invalidate() {
	c.CredentialValidated = false
}

// SetDemoMode toggles demo mode. Demo sessions need no credential, so
// enabling it counts as validated; disabling it falls back to the
// credential's own state.
func (c *SessionConfig) SetDemoMode(on bool) {
	c.DemoMode = on
	if on {
		c.CredentialValidated = true
	} else {
		c.CredentialValidated = false
	}
}

// Ready reports whether the session can issue provider calls.
func (c *SessionConfig) Ready() bool {
	return c.DemoMode || c.CredentialValidated
}
