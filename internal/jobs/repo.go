package jobs

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "job not found" }

// Repo defines persistence operations for jobs. The filter argument, when
// non-empty, matches jobs whose title, company name, location, or description
// contains it case-insensitively. A limit <= 0 means no limit.
type Repo interface {
	Create(ctx context.Context, job Job) error
	GetByID(ctx context.Context, jobID string) (Job, error)
	List(ctx context.Context, filter string, limit, offset int) ([]Job, error)
	Count(ctx context.Context, filter string) (int, error)
}
