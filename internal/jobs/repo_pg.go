package jobs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const jobColumns = "id, title, company_name, employer_id, salary, currency, location, description, created_at"

func (r *PGRepo) Create(ctx context.Context, job Job) error {
	const query = `
INSERT INTO jobs (id, title, company_name, employer_id, salary, currency, location, description, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	var employerID sql.NullString
	if job.EmployerID != "" {
		employerID = sql.NullString{String: job.EmployerID, Valid: true}
	}
	_, err := r.DB.ExecContext(ctx, query,
		job.ID,
		job.Title,
		job.CompanyName,
		employerID,
		job.Salary,
		job.Currency,
		job.Location,
		job.Desc,
		job.CreatedAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, jobID string) (Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM jobs WHERE id = $1 LIMIT 1`, jobColumns)
	row := r.DB.QueryRowContext(ctx, query, jobID)
	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Job{}, ErrNotFound
		}
		return Job{}, err
	}
	return job, nil
}

func (r *PGRepo) List(ctx context.Context, filter string, limit, offset int) ([]Job, error) {
	if offset < 0 {
		offset = 0
	}

	var sb strings.Builder
	var args []any
	fmt.Fprintf(&sb, "SELECT %s FROM jobs", jobColumns)
	if filter != "" {
		args = append(args, likePattern(filter))
		sb.WriteString(" WHERE (title ILIKE $1 OR company_name ILIKE $1 OR location ILIKE $1 OR description ILIKE $1)")
	}
	sb.WriteString(" ORDER BY created_at DESC")
	if limit > 0 {
		args = append(args, limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}
	args = append(args, offset)
	fmt.Fprintf(&sb, " OFFSET $%d", len(args))

	rows, err := r.DB.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, job)
	}
	return out, rows.Err()
}

func (r *PGRepo) Count(ctx context.Context, filter string) (int, error) {
	query := "SELECT COUNT(*) FROM jobs"
	var args []any
	if filter != "" {
		query += " WHERE (title ILIKE $1 OR company_name ILIKE $1 OR location ILIKE $1 OR description ILIKE $1)"
		args = append(args, likePattern(filter))
	}
	var count int
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (Job, error) {
	var job Job
	var employerID sql.NullString
	if err := row.Scan(
		&job.ID,
		&job.Title,
		&job.CompanyName,
		&employerID,
		&job.Salary,
		&job.Currency,
		&job.Location,
		&job.Desc,
		&job.CreatedAt,
	); err != nil {
		return Job{}, err
	}
	if employerID.Valid {
		job.EmployerID = employerID.String
	}
	return job, nil
}

// likePattern wraps the filter for substring ILIKE matching, escaping the
// wildcard characters so user input matches literally.
func likePattern(filter string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(filter)
	return "%" + escaped + "%"
}

var _ Repo = (*PGRepo)(nil)
