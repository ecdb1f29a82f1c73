package sessions

import "context"

// Repo persists completed recommendation sessions.
type Repo interface {
	Create(ctx context.Context, s Session) error
	// ListByProfile returns sessions for a profile, newest first.
	// Returns ErrNotFound when the profile has no sessions.
	ListByProfile(ctx context.Context, profileID string) ([]Session, error)
}
