package employers

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Upsert(ctx context.Context, employer Employer) error {
	const query = `
INSERT INTO employers (id, email, company_name, created_at, updated_at)
VALUES ($1, $2, $3, now(), now())
ON CONFLICT (id) DO UPDATE SET
  email = EXCLUDED.email,
  company_name = EXCLUDED.company_name,
  updated_at = now()`
	_, err := r.DB.ExecContext(ctx, query,
		employer.ID,
		employer.Email,
		employer.CompanyName,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, employerID string) (Employer, error) {
	const query = `
SELECT id, email, company_name, created_at, updated_at
FROM employers
WHERE id = $1
LIMIT 1`
	return r.getOne(ctx, query, employerID)
}

func (r *PGRepo) GetByCompanyName(ctx context.Context, companyName string) (Employer, error) {
	const query = `
SELECT id, email, company_name, created_at, updated_at
FROM employers
WHERE company_name = $1
ORDER BY created_at ASC
LIMIT 1`
	return r.getOne(ctx, query, companyName)
}

func (r *PGRepo) getOne(ctx context.Context, query string, arg any) (Employer, error) {
	var employer Employer
	var updatedAt sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&employer.ID,
		&employer.Email,
		&employer.CompanyName,
		&employer.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Employer{}, ErrNotFound
		}
		return Employer{}, err
	}
	if updatedAt.Valid {
		employer.UpdatedAt = updatedAt.Time
	} else {
		employer.UpdatedAt = time.Now().UTC()
	}
	return employer, nil
}

var _ Repo = (*PGRepo)(nil)
