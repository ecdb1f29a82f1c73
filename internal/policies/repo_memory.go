package policies

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo, used in tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Policy
}

// NewMemoryRepo constructs a MemoryRepo seeded with the given policies.
func NewMemoryRepo(seed []Policy) *MemoryRepo {
	data := make(map[string]Policy, len(seed))
	for _, p := range seed {
		data[p.ID] = p
	}
	return &MemoryRepo{data: data}
}

// List returns policies matching the filter, ordered by id.
func (r *MemoryRepo) List(ctx context.Context, f Filter) ([]Policy, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Policy, 0, len(r.data))
	for _, p := range r.data {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Region != "" && !p.OpenToRegion(f.Region) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	if f.Limit > 0 {
		offset := 0
		if f.Page > 1 {
			offset = (f.Page - 1) * f.Limit
		}
		if offset >= len(out) {
			return []Policy{}, nil
		}
		end := offset + f.Limit
		if end > len(out) {
			end = len(out)
		}
		out = out[offset:end]
	}
	return out, nil
}

// GetByID fetches a single policy by id.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Policy, error) {
	if err := ctx.Err(); err != nil {
		return Policy{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.data[id]
	if !ok {
		return Policy{}, ErrNotFound
	}
	return p, nil
}

// Ping always succeeds for the in-memory store.
func (r *MemoryRepo) Ping(ctx context.Context) error {
	return ctx.Err()
}

var _ Repo = (*MemoryRepo)(nil)
