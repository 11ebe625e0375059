package applicants

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Upsert(ctx context.Context, applicant Applicant) error {
	resumeJSON, err := json.Marshal(applicant.Resume)
	if err != nil {
		return fmt.Errorf("marshal resume: %w", err)
	}

	const query = `
INSERT INTO applicants (id, first_name, last_name, email, resume, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, now(), now())
ON CONFLICT (id) DO UPDATE SET
  first_name = EXCLUDED.first_name,
  last_name = EXCLUDED.last_name,
  email = EXCLUDED.email,
  resume = EXCLUDED.resume,
  updated_at = now()`
	_, err = r.DB.ExecContext(ctx, query,
		applicant.ID,
		nullableString(applicant.FirstName),
		nullableString(applicant.LastName),
		applicant.Email,
		resumeJSON,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, applicantID string) (Applicant, error) {
	const query = `
SELECT id, first_name, last_name, email, resume, created_at, updated_at
FROM applicants
WHERE id = $1
LIMIT 1`
	var applicant Applicant
	var firstName sql.NullString
	var lastName sql.NullString
	var resumeRaw []byte
	var updatedAt sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, applicantID).Scan(
		&applicant.ID,
		&firstName,
		&lastName,
		&applicant.Email,
		&resumeRaw,
		&applicant.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Applicant{}, ErrNotFound
		}
		return Applicant{}, err
	}
	if firstName.Valid {
		applicant.FirstName = firstName.String
	}
	if lastName.Valid {
		applicant.LastName = lastName.String
	}
	if len(resumeRaw) > 0 {
		if err := json.Unmarshal(resumeRaw, &applicant.Resume); err != nil {
			return Applicant{}, fmt.Errorf("unmarshal resume: %w", err)
		}
	}
	if applicant.Resume.OriginalName == "" {
		applicant.Resume = EmptyResume()
	}
	if updatedAt.Valid {
		applicant.UpdatedAt = updatedAt.Time
	} else {
		applicant.UpdatedAt = time.Now().UTC()
	}
	return applicant, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

var _ Repo = (*PGRepo)(nil)
