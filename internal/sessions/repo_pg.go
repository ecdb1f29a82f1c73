package sessions

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PGRepo implements Repo using Postgres. Nested pipeline output is stored
// as JSONB so the history endpoint can replay a session verbatim.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a completed session.
func (r *PGRepo) Create(ctx context.Context, s Session) error {
	const query = `
INSERT INTO sessions (id, profile_id, profile_summary, success, processing_time,
                      avg_score, stage_outcomes, recommendations, category_distribution, generated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	outcomes, err := json.Marshal(s.StageOutcomes)
	if err != nil {
		return fmt.Errorf("marshal stage outcomes: %w", err)
	}
	recs, err := json.Marshal(s.Recommendations)
	if err != nil {
		return fmt.Errorf("marshal recommendations: %w", err)
	}
	dist, err := json.Marshal(s.CategoryDistribution)
	if err != nil {
		return fmt.Errorf("marshal category distribution: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, query,
		s.ID,
		s.ProfileID,
		s.ProfileSummary,
		s.Success,
		s.ProcessingTime,
		s.AvgScore,
		outcomes,
		recs,
		dist,
		s.GeneratedAt,
	)
	return err
}

// ListByProfile returns sessions for a profile, newest first.
func (r *PGRepo) ListByProfile(ctx context.Context, profileID string) ([]Session, error) {
	const query = `
SELECT id, profile_id, profile_summary, success, processing_time,
       avg_score, stage_outcomes, recommendations, category_distribution, generated_at
FROM sessions
WHERE profile_id = $1
ORDER BY generated_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		var s Session
		var outcomes, recs, dist []byte
		if err := rows.Scan(
			&s.ID,
			&s.ProfileID,
			&s.ProfileSummary,
			&s.Success,
			&s.ProcessingTime,
			&s.AvgScore,
			&outcomes,
			&recs,
			&dist,
			&s.GeneratedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(outcomes, &s.StageOutcomes); err != nil {
			return nil, fmt.Errorf("unmarshal stage outcomes: %w", err)
		}
		if err := json.Unmarshal(recs, &s.Recommendations); err != nil {
			return nil, fmt.Errorf("unmarshal recommendations: %w", err)
		}
		if err := json.Unmarshal(dist, &s.CategoryDistribution); err != nil {
			return nil, fmt.Errorf("unmarshal category distribution: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}

var _ Repo = (*PGRepo)(nil)
