package applyflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"jobboard-backend/internal/applicants"
	"jobboard-backend/internal/applications"
	"jobboard-backend/internal/employers"
	"jobboard-backend/internal/jobs"
	"jobboard-backend/internal/notify"
	"jobboard-backend/internal/shared/telemetry"
)

var ErrInvalidInput = errors.New("invalid input")

// NotFoundError identifies which lookup failed during the workflow, phrased
// for the HTTP response body.
type NotFoundError struct {
	Entity string
	Attr   string
	Value  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with %s: %s does not exist", e.Entity, e.Attr, e.Value)
}

// Notifier accepts messages for background delivery without blocking.
type Notifier interface {
	Enqueue(msg notify.Message) bool
}

// Service runs the apply-to-job workflow: validate the applicant, the job, and
// the owning employer, record the application, then hand the employer
// notification to the background dispatcher. The notification is never awaited
// and its outcome never reaches the caller.
type Service struct {
	Applicants   applicants.Repo
	Jobs         jobs.Repo
	Employers    employers.Repo
	Applications applications.Repo
	Notifier     Notifier
}

// Apply records applicantID's application to jobID and queues the employer
// notification. Lookup failures return *NotFoundError; a repeat application
// for the same pair returns applications.ErrDuplicate.
func (s *Service) Apply(ctx context.Context, applicantID, jobID string) error {
	if applicantID == "" || jobID == "" {
		return ErrInvalidInput
	}

	applicant, err := s.Applicants.GetByID(ctx, applicantID)
	if err != nil {
		if errors.Is(err, applicants.ErrNotFound) {
			return &NotFoundError{Entity: "Applicant", Attr: "id", Value: applicantID}
		}
		return err
	}

	job, err := s.Jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, jobs.ErrNotFound) {
			return &NotFoundError{Entity: "Job", Attr: "id", Value: jobID}
		}
		return err
	}

	employer, err := s.resolveEmployer(ctx, job)
	if err != nil {
		return err
	}

	application := applications.Application{
		ID:          uuid.NewString(),
		ApplicantID: applicant.ID,
		JobID:       job.ID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Applications.Create(ctx, application); err != nil {
		return err
	}

	msg := notify.Message{
		To:      employer.Email,
		Subject: "Job Application - " + job.Title,
		Body:    "You have received an application from " + applicant.FullName(),
	}
	if s.Notifier != nil {
		s.Notifier.Enqueue(msg)
	}

	telemetry.Info("apply.recorded", map[string]any{
		"application_id": application.ID,
		"applicant_id":   applicant.ID,
		"job_id":         job.ID,
		"employer_id":    employer.ID,
	})
	return nil
}

// resolveEmployer prefers the stable employer link on the job and falls back
// to the legacy company-name join for rows created before the link existed.
func (s *Service) resolveEmployer(ctx context.Context, job jobs.Job) (employers.Employer, error) {
	if job.EmployerID != "" {
		employer, err := s.Employers.GetByID(ctx, job.EmployerID)
		if err == nil {
			return employer, nil
		}
		if !errors.Is(err, employers.ErrNotFound) {
			return employers.Employer{}, err
		}
	}

	employer, err := s.Employers.GetByCompanyName(ctx, job.CompanyName)
	if err != nil {
		if errors.Is(err, employers.ErrNotFound) {
			return employers.Employer{}, &NotFoundError{Entity: "Employer", Attr: "name", Value: job.CompanyName}
		}
		return employers.Employer{}, err
	}
	return employer, nil
}
