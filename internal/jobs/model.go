package jobs

import "time"

// Job is a posted job opening. CompanyName is denormalized for display and
// filtering; EmployerID is the stable link to the owning employer account.
type Job struct {
	ID          string
	Title       string
	CompanyName string
	EmployerID  string
	Salary      int
	Currency    string
	Location    string
	Desc        string
	CreatedAt   time.Time
}

// CreateParams are the caller-supplied fields for a new job posting.
type CreateParams struct {
	Title       string
	CompanyName string
	Salary      int
	Currency    string
	Location    string
	Desc        string
}
