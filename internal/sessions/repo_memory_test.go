package sessions

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryRepoListsNewestFirst(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"sess_a", "sess_b", "sess_c"} {
		err := repo.Create(ctx, Session{
			ID:          id,
			ProfileID:   "profile_1",
			GeneratedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Create %s: %v", id, err)
		}
	}

	out, err := repo.ListByProfile(ctx, "profile_1")
	if err != nil {
		t.Fatalf("ListByProfile: %v", err)
	}
	want := []string{"sess_c", "sess_b", "sess_a"}
	for i, id := range want {
		if out[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, out[i].ID, id)
		}
	}
}

func TestMemoryRepoUnknownProfile(t *testing.T) {
	repo := NewMemoryRepo()
	if _, err := repo.ListByProfile(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
