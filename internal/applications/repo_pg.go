package applications

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const uniqueViolationCode = "23505"

func (r *PGRepo) Create(ctx context.Context, application Application) error {
	const query = `
INSERT INTO applications (id, applicant_id, job_id, created_at)
VALUES ($1, $2, $3, $4)`
	_, err := r.DB.ExecContext(ctx, query,
		application.ID,
		application.ApplicantID,
		application.JobID,
		application.CreatedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return ErrDuplicate
	}
	return err
}

func (r *PGRepo) Exists(ctx context.Context, applicantID, jobID string) (bool, error) {
	const query = `
SELECT EXISTS (
  SELECT 1 FROM applications WHERE applicant_id = $1 AND job_id = $2
)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, applicantID, jobID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

var _ Repo = (*PGRepo)(nil)
