package employers

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "employer not found" }

type Repo interface {
	Upsert(ctx context.Context, employer Employer) error
	GetByID(ctx context.Context, employerID string) (Employer, error)
	// GetByCompanyName resolves the employer owning a company name. Company
	// names are not unique by schema; the oldest account wins, which matches
	// the legacy name-join behavior for pre-existing rows.
	GetByCompanyName(ctx context.Context, companyName string) (Employer, error)
}
