package applications

import "context"

var ErrDuplicate = errDuplicate{}

type errDuplicate struct{}

func (errDuplicate) Error() string { return "application already exists" }

type Repo interface {
	// Create records an application. An existing record for the same
	// (applicant, job) pair yields ErrDuplicate.
	Create(ctx context.Context, application Application) error
	Exists(ctx context.Context, applicantID, jobID string) (bool, error)
}
