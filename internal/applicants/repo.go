package applicants

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "applicant not found" }

type Repo interface {
	Upsert(ctx context.Context, applicant Applicant) error
	GetByID(ctx context.Context, applicantID string) (Applicant, error)
}
