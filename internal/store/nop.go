package store

import "context"

// NopEventRepo discards all events. Used when telemetry is disabled or a
// database is unavailable.
type NopEventRepo struct{}

func (NopEventRepo) AppendLLMRequest(context.Context, LLMRequestEventData) error { return nil }
func (NopEventRepo) QueryLLMEvents(context.Context, int) ([]LLMEvent, error)     { return nil, nil }
func (NopEventRepo) GetLLMEvent(context.Context, int) (*LLMEvent, error)         { return nil, nil }
func (NopEventRepo) LLMUsageByPurpose(context.Context) ([]PurposeUsage, error)   { return nil, nil }
func (NopEventRepo) LLMUsageByModel(context.Context) ([]ModelUsage, error)       { return nil, nil }
