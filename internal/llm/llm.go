package llm

import (
	"context"
	"errors"
)

// Client abstracts LLM providers for policy explanation generation.
type Client interface {
	Explain(ctx context.Context, input ExplainInput) (ExplainOutput, error)
}

// ExplainInput captures the inputs needed for one policy explanation.
type ExplainInput struct {
	ProfileSummary string
	PolicyTitle    string
	Category       string
	Benefit        string
	MatchReasons   []string
	Score          float64
}

// ExplainOutput is the generated explanation plus usage accounting.
type ExplainOutput struct {
	Text       string
	TokensUsed int
}

// ErrNotConfigured is returned when no provider credential is available.
var ErrNotConfigured = errors.New("llm client not configured")

// Disabled is a client used when no provider is configured. Every call
// fails with ErrNotConfigured so callers take their deterministic
// fallback path.
type Disabled struct{}

// Explain always returns ErrNotConfigured.
func (Disabled) Explain(ctx context.Context, input ExplainInput) (ExplainOutput, error) {
	_ = ctx
	_ = input
	return ExplainOutput{}, ErrNotConfigured
}
