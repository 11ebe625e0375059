package applicants

import (
	"context"
	"errors"
	"strings"
)

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// GetByID fetches an applicant; missing applicants surface as ErrNotFound.
func (s *Service) GetByID(ctx context.Context, applicantID string) (Applicant, error) {
	if s == nil || s.Repo == nil {
		return Applicant{}, errors.New("applicants service not configured")
	}
	if strings.TrimSpace(applicantID) == "" {
		return Applicant{}, errors.New("applicant id is required")
	}
	return s.Repo.GetByID(ctx, applicantID)
}

// UpsertFromAuth persists the applicant identity from sign-in to stabilize ownership
// of resumes and applications.
func (s *Service) UpsertFromAuth(ctx context.Context, applicant Applicant) error {
	if s == nil || s.Repo == nil {
		return errors.New("applicants service not configured")
	}
	if strings.TrimSpace(applicant.ID) == "" || strings.TrimSpace(applicant.Email) == "" {
		return errors.New("applicant id and email are required")
	}
	if existing, err := s.Repo.GetByID(ctx, applicant.ID); err == nil {
		// Keep the uploaded resume and any profile edits across sign-ins.
		applicant.Resume = existing.Resume
		if existing.FirstName != "" {
			applicant.FirstName = existing.FirstName
		}
		if existing.LastName != "" {
			applicant.LastName = existing.LastName
		}
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}
	if applicant.Resume.OriginalName == "" {
		applicant.Resume = EmptyResume()
	}
	return s.Repo.Upsert(ctx, applicant)
}

// Update overwrites only the supplied name fields. A missing applicant is an
// explicit ErrNotFound, never a silent no-op.
func (s *Service) Update(ctx context.Context, applicantID string, firstName, lastName *string) (Applicant, error) {
	if s == nil || s.Repo == nil {
		return Applicant{}, errors.New("applicants service not configured")
	}
	applicant, err := s.Repo.GetByID(ctx, applicantID)
	if err != nil {
		return Applicant{}, err
	}
	if firstName != nil {
		applicant.FirstName = *firstName
	}
	if lastName != nil {
		applicant.LastName = *lastName
	}
	if err := s.Repo.Upsert(ctx, applicant); err != nil {
		return Applicant{}, err
	}
	return applicant, nil
}

// SetResume replaces the applicant's resume attribute.
func (s *Service) SetResume(ctx context.Context, applicantID string, resume Resume) (Applicant, error) {
	if s == nil || s.Repo == nil {
		return Applicant{}, errors.New("applicants service not configured")
	}
	applicant, err := s.Repo.GetByID(ctx, applicantID)
	if err != nil {
		return Applicant{}, err
	}
	applicant.Resume = resume
	if err := s.Repo.Upsert(ctx, applicant); err != nil {
		return Applicant{}, err
	}
	return applicant, nil
}

// ResumeExists reports whether the applicant has uploaded a resume. Missing
// applicants surface as ErrNotFound so callers can map that to their own policy.
func (s *Service) ResumeExists(ctx context.Context, applicantID string) (bool, error) {
	applicant, err := s.GetByID(ctx, applicantID)
	if err != nil {
		return false, err
	}
	return applicant.Resume.OriginalName != NoResumeSentinel, nil
}
