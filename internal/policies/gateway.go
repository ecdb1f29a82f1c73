package policies

import (
	"context"
	"fmt"

	"youth-policy-backend/internal/shared/telemetry"
)

// Gateway fronts the policy store. Repo may be nil when no store is
// configured; every read then degrades to the bundled fallback catalog.
// Safe for concurrent use across sessions.
type Gateway struct {
	Repo     Repo
	Fallback []Policy
}

// NewGateway constructs a Gateway with the bundled fallback catalog.
func NewGateway(repo Repo) *Gateway {
	return &Gateway{Repo: repo, Fallback: FallbackCatalog()}
}

// FetchCandidates returns policies matching the filter from the store.
// Store failures surface as ErrStoreUnavailable so callers can decide to
// degrade rather than fail.
func (g *Gateway) FetchCandidates(ctx context.Context, f Filter) ([]Policy, error) {
	if g.Repo == nil {
		return nil, ErrStoreUnavailable
	}
	out, err := g.Repo.List(ctx, f)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, ctx.Err())
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return out, nil
}

// FetchOrFallback returns candidates from the store, substituting the
// bundled catalog on store failure. degraded reports whether the fallback
// was used. ErrNoCatalog is returned only when the store is down and the
// fallback is empty.
func (g *Gateway) FetchOrFallback(ctx context.Context, f Filter) (out []Policy, degraded bool, err error) {
	out, err = g.FetchCandidates(ctx, f)
	if err == nil {
		return out, false, nil
	}

	telemetry.Error("policies.fetch_degraded", map[string]any{"error": err.Error()})
	fallback := g.filterFallback(f)
	if len(fallback) == 0 {
		return nil, true, ErrNoCatalog
	}
	return fallback, true, nil
}

// GetByID fetches a policy from the store, falling back to the bundled
// catalog when the store is unreachable.
func (g *Gateway) GetByID(ctx context.Context, id string) (Policy, error) {
	if g.Repo != nil {
		p, err := g.Repo.GetByID(ctx, id)
		if err == nil || err == ErrNotFound {
			return p, err
		}
		telemetry.Error("policies.get_degraded", map[string]any{"policy_id": id, "error": err.Error()})
	}
	for _, p := range g.Fallback {
		if p.ID == id {
			return p, nil
		}
	}
	return Policy{}, ErrNotFound
}

// ConnectionStatus describes store reachability for health checks.
type ConnectionStatus struct {
	Connected bool
	Detail    string
}

// TestConnection pings the underlying store.
func (g *Gateway) TestConnection(ctx context.Context) ConnectionStatus {
	if g.Repo == nil {
		return ConnectionStatus{Connected: false, Detail: "no store configured"}
	}
	if err := g.Repo.Ping(ctx); err != nil {
		return ConnectionStatus{Connected: false, Detail: err.Error()}
	}
	return ConnectionStatus{Connected: true}
}

func (g *Gateway) filterFallback(f Filter) []Policy {
	out := make([]Policy, 0, len(g.Fallback))
	for _, p := range g.Fallback {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Region != "" && !p.OpenToRegion(f.Region) {
			continue
		}
		out = append(out, p)
	}
	return out
}
