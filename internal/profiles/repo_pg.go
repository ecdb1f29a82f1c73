package profiles

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new profile.
func (r *PGRepo) Create(ctx context.Context, p Profile) error {
	const query = `
INSERT INTO profiles (id, age, region, income, employment, interest, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	var interest sql.NullString
	if p.Interest != "" {
		interest = sql.NullString{String: p.Interest, Valid: true}
	}

	_, err := r.DB.ExecContext(ctx, query,
		p.ID,
		p.Age,
		p.Region,
		p.Income,
		string(p.Employment),
		interest,
		p.CreatedAt,
	)
	return err
}

// GetByID returns a profile by its id.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Profile, error) {
	const query = `
SELECT id, age, region, income, employment, interest, created_at
FROM profiles
WHERE id = $1`

	var p Profile
	var employment string
	var interest sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.Age,
		&p.Region,
		&p.Income,
		&employment,
		&interest,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	p.Employment = Employment(employment)
	if interest.Valid {
		p.Interest = interest.String
	}
	return p, nil
}

var _ Repo = (*PGRepo)(nil)
