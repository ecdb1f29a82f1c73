package profiles

import (
	"context"

	"youth-policy-backend/internal/shared/telemetry"
)

// Service contains business logic for profiles. Repo may be nil when no
// store is configured; persistence is best-effort either way.
type Service struct {
	Repo Repo
}

// Create validates raw input and persists the resulting profile.
// Persistence failure never fails the call: the profile is still usable
// for the current request, and the caller is told whether it was saved.
func (s *Service) Create(ctx context.Context, raw RawProfile) (Profile, bool, error) {
	p, err := Validate(raw)
	if err != nil {
		return Profile{}, false, err
	}

	if s.Repo == nil {
		return p, false, nil
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		telemetry.Error("profile.persist_failed", map[string]any{
			"profile_id": p.ID,
			"error":      err.Error(),
		})
		return p, false, nil
	}
	return p, true, nil
}

// Get fetches a stored profile by id.
func (s *Service) Get(ctx context.Context, id string) (Profile, error) {
	if s.Repo == nil {
		return Profile{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, id)
}
