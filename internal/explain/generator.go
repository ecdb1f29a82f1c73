package explain

import (
	"context"
	"sync"
	"time"

	"youth-policy-backend/internal/llm"
	"youth-policy-backend/internal/matching"
	"youth-policy-backend/internal/profiles"
	"youth-policy-backend/internal/shared/metrics"
	"youth-policy-backend/internal/shared/telemetry"
)

const (
	defaultConcurrency = 3
	defaultTimeout     = 20 * time.Second
)

// Generator produces a natural-language rationale per recommended policy.
// The model path is optional; a deterministic templated fallback keeps
// Explain total. Safe for concurrent use across sessions.
type Generator struct {
	LLM         llm.Client // nil means fallback-only
	Concurrency int
	CallTimeout time.Duration
}

// NewGenerator constructs a Generator. client may be nil to run
// fallback-only.
func NewGenerator(client llm.Client, concurrency int, callTimeout time.Duration) *Generator {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	if callTimeout <= 0 {
		callTimeout = defaultTimeout
	}
	return &Generator{
		LLM:         newRetryingClient(client),
		Concurrency: concurrency,
		CallTimeout: callTimeout,
	}
}

// Explain produces a Recommendation for one match result. It never fails:
// any model error degrades to the templated fallback with source
// "fallback", zero tokens and zero generation time.
func (g *Generator) Explain(ctx context.Context, profile profiles.Profile, result matching.MatchResult) Recommendation {
	if g.LLM != nil {
		callCtx, cancel := context.WithTimeout(ctx, g.CallTimeout)
		defer cancel()

		start := time.Now()
		out, err := g.LLM.Explain(callCtx, llm.ExplainInput{
			ProfileSummary: profile.Summary(),
			PolicyTitle:    result.Title,
			Category:       result.Category,
			Benefit:        result.BenefitSummary,
			MatchReasons:   result.MatchReasons,
			Score:          result.Score,
		})
		if err == nil {
			metrics.LLMTokensUsed.Add(float64(out.TokensUsed))
			return Recommendation{
				MatchResult: result,
				Explanation: out.Text,
				Meta: Meta{
					Source:         SourceModel,
					TokensUsed:     out.TokensUsed,
					GenerationTime: time.Since(start).Seconds(),
				},
			}
		}
		telemetry.Error("explain.fallback", map[string]any{
			"policy_id": result.PolicyID,
			"error":     sanitizeError(err),
		})
	}

	metrics.ExplanationFallbacks.Inc()
	return Recommendation{
		MatchResult: result,
		Explanation: fallbackExplanation(result),
		Meta:        Meta{Source: SourceFallback},
	}
}

// ExplainAll explains every match result with bounded concurrency.
// Results are written to index-addressed slots so the engine's rank order
// is restored regardless of completion order.
func (g *Generator) ExplainAll(ctx context.Context, profile profiles.Profile, results []matching.MatchResult) []Recommendation {
	out := make([]Recommendation, len(results))
	if len(results) == 0 {
		return out
	}

	sem := make(chan struct{}, g.Concurrency)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			out[i] = g.Explain(ctx, profile, results[i])
		}(i)
	}
	wg.Wait()
	return out
}

// FallbackCount reports how many recommendations were served by the
// templated fallback.
func FallbackCount(recs []Recommendation) int {
	n := 0
	for _, r := range recs {
		if r.Meta.Source == SourceFallback {
			n++
		}
	}
	return n
}
