package policies

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const policyColumns = `id, title, description, category, age_min, age_max, regions, employment, income_max, benefit, budget_max, deadline, application_url`

// List returns active policies, optionally narrowed by category/region
// and paginated.
func (r *PGRepo) List(ctx context.Context, f Filter) ([]Policy, error) {
	query := `SELECT ` + policyColumns + ` FROM policies WHERE is_active`
	args := make([]any, 0, 4)

	if f.Category != "" {
		args = append(args, f.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if f.Region != "" {
		args = append(args, f.Region)
		query += fmt.Sprintf(" AND (regions ? $%d OR regions ? '%s')", len(args), RegionNationwide)
	}
	query += " ORDER BY id"

	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		if f.Page > 1 {
			args = append(args, (f.Page-1)*f.Limit)
			query += fmt.Sprintf(" OFFSET $%d", len(args))
		}
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Policy
	for rows.Next() {
		p, err := scanPolicy(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetByID fetches a single policy by id.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Policy, error) {
	query := `SELECT ` + policyColumns + ` FROM policies WHERE id = $1 AND is_active`
	p, err := scanPolicy(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Policy{}, ErrNotFound
		}
		return Policy{}, err
	}
	return p, nil
}

// Ping verifies store connectivity.
func (r *PGRepo) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPolicy(row rowScanner) (Policy, error) {
	var p Policy
	var regionsRaw, employmentRaw []byte
	var incomeMax, budgetMax sql.NullInt64
	var deadline sql.NullTime

	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Category,
		&p.AgeMin,
		&p.AgeMax,
		&regionsRaw,
		&employmentRaw,
		&incomeMax,
		&p.Benefit,
		&budgetMax,
		&deadline,
		&p.ApplicationURL,
	)
	if err != nil {
		return Policy{}, err
	}

	if err := json.Unmarshal(regionsRaw, &p.Regions); err != nil {
		return Policy{}, fmt.Errorf("decode regions for %s: %w", p.ID, err)
	}
	if err := json.Unmarshal(employmentRaw, &p.Employment); err != nil {
		return Policy{}, fmt.Errorf("decode employment for %s: %w", p.ID, err)
	}
	if incomeMax.Valid {
		v := int(incomeMax.Int64)
		p.IncomeMax = &v
	}
	if budgetMax.Valid {
		v := int(budgetMax.Int64)
		p.BudgetMax = &v
	}
	if deadline.Valid {
		t := deadline.Time
		p.Deadline = &t
	}
	return p, nil
}

var _ Repo = (*PGRepo)(nil)
