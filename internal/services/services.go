// Package services bundles the long-lived collaborators the screens
// share: the active session, the content generator, the grader, and the
// telemetry repo. It owns provider reconfiguration so switching
// providers or toggling demo mode rebuilds the pipeline in one place.
package services

import (
	"context"
	"math/rand/v2"

	"github.com/abhisek/promptdojo/internal/content"
	"github.com/abhisek/promptdojo/internal/grader"
	"github.com/abhisek/promptdojo/internal/llm"
	"github.com/abhisek/promptdojo/internal/store"
	"github.com/abhisek/promptdojo/internal/trainer"
)

// Bundle carries the shared application services. It is built once at
// startup and passed to every screen; screens mutate it only through
// its methods.
type Bundle struct {
	Session   *trainer.Session
	Events    store.EventRepo
	Generator *content.Generator
	Grader    *grader.Grader

	baseConfig llm.Config
}

// New builds a Bundle in an unconfigured state: no provider, no demo
// mode. The welcome flow calls Configure or EnableDemo before any
// exercise runs.
func New(baseConfig llm.Config, events store.EventRepo) *Bundle {
	if events == nil {
		events = store.NopEventRepo{}
	}
	cfg := trainer.NewSessionConfig()
	if p, err := trainer.ParseProvider(baseConfig.Provider); err == nil {
		cfg.Provider = p
	}
	return &Bundle{
		Session:    trainer.NewSession(cfg, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))),
		Events:     events,
		baseConfig: baseConfig,
	}
}

// NewWithProvider builds a Bundle already wired to a verified provider,
// used when the credential came from the environment.
func NewWithProvider(baseConfig llm.Config, events store.EventRepo, provider llm.Provider) *Bundle {
	b := New(baseConfig, events)
	b.install(llm.WithSessionTag(provider, b.Session.ID))
	return b
}

// Configure builds the provider for the session's active provider with
// the given credential, verifies the credential with a probe call, and
// on success installs the generation and grading pipeline. On failure
// the session stays unvalidated and the previous pipeline is kept.
func (b *Bundle) Configure(ctx context.Context, key string) error {
	cfg := b.baseConfig
	cfg.Provider = string(b.Session.Config.Provider)
	cfg = cfg.WithCredential(key)

	provider, err := llm.NewProvider(ctx, cfg, b.Events)
	if err != nil {
		return err
	}
	provider = llm.WithSessionTag(provider, b.Session.ID)
	if err := llm.Verify(ctx, provider); err != nil {
		b.Session.Config.Invalidate()
		return err
	}

	b.Session.Config.SetCredential(key)
	b.Session.Config.DemoMode = false
	b.install(provider)
	b.Session.Config.MarkValidated()
	return nil
}

// EnableDemo switches the bundle to demo mode: fixed content, fixed
// reports, no provider calls.
func (b *Bundle) EnableDemo() {
	b.Session.SetDemoMode(true)
	b.Generator = content.NewDemo()
	b.Grader = grader.NewDemo()
}

// SwitchProvider changes the target provider. The pipeline is torn down
// until Configure succeeds with a key for the new provider. Reselecting
// the active provider keeps the installed pipeline.
func (b *Bundle) SwitchProvider(p trainer.Provider) {
	if p == b.Session.Config.Provider {
		return
	}
	b.Session.SwitchProvider(p)
	if !b.Session.Config.DemoMode {
		b.Generator = nil
		b.Grader = nil
	}
}

// HandleAuthFailure marks the session credential invalid after a
// provider rejected it mid-exercise.
func (b *Bundle) HandleAuthFailure() {
	b.Session.Config.Invalidate()
}

// Ready reports whether exercises can run.
func (b *Bundle) Ready() bool {
	return b.Session.Config.DemoMode || (b.Session.Config.CredentialValidated && b.Generator != nil)
}

func (b *Bundle) install(provider llm.Provider) {
	b.Generator = content.New(provider, content.DefaultConfig())
	b.Grader = grader.New(provider, grader.DefaultConfig())
	b.Session.Config.DemoMode = false
	b.Session.Config.MarkValidated()
}
