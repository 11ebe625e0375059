package applicants

import "time"

// NoResumeSentinel is the resume filename recorded until an applicant uploads one.
const NoResumeSentinel = "No resume on file!"

// Applicant is a job seeker account.
type Applicant struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Resume    Resume
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Resume is the semi-structured resume attribute stored with the applicant.
type Resume struct {
	OriginalName string     `json:"originalName"`
	StorageKey   string     `json:"storageKey,omitempty"`
	MimeType     string     `json:"mimeType,omitempty"`
	SizeBytes    int64      `json:"sizeBytes,omitempty"`
	UploadedAt   *time.Time `json:"uploadedAt,omitempty"`
}

// EmptyResume returns the placeholder resume for a new applicant.
func EmptyResume() Resume {
	return Resume{OriginalName: NoResumeSentinel}
}

// FullName joins the applicant's first and last name for display.
func (a Applicant) FullName() string {
	switch {
	case a.FirstName == "":
		return a.LastName
	case a.LastName == "":
		return a.FirstName
	default:
		return a.FirstName + " " + a.LastName
	}
}
