package employers

import "time"

// Employer is a company account that owns job postings.
type Employer struct {
	ID          string
	Email       string
	CompanyName string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
