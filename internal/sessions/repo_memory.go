package sessions

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory Repo used in development and tests.
type MemoryRepo struct {
	mu      sync.RWMutex
	byID    map[string]Session
	byOwner map[string][]string
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:    make(map[string]Session),
		byOwner: make(map[string][]string),
	}
}

func (r *MemoryRepo) Create(_ context.Context, s Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[s.ID] = s
	r.byOwner[s.ProfileID] = append(r.byOwner[s.ProfileID], s.ID)
	return nil
}

func (r *MemoryRepo) ListByProfile(_ context.Context, profileID string) ([]Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := r.byOwner[profileID]
	if len(ids) == 0 {
		return nil, ErrNotFound
	}
	out := make([]Session, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.byID[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].GeneratedAt.After(out[j].GeneratedAt)
	})
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
