package policies

import "context"

// Repo defines read operations against the policy store.
type Repo interface {
	List(ctx context.Context, f Filter) ([]Policy, error)
	GetByID(ctx context.Context, id string) (Policy, error)
	Ping(ctx context.Context) error
}
