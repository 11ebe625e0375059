package applications

import "time"

// Application links an applicant to a job they applied for. At most one
// application per (applicant, job) pair is recorded.
type Application struct {
	ID          string
	ApplicantID string
	JobID       string
	CreatedAt   time.Time
}
