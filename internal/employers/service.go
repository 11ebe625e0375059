package employers

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

// GetByID fetches an employer; missing employers surface as ErrNotFound.
func (s *Service) GetByID(ctx context.Context, employerID string) (Employer, error) {
	if s == nil || s.Repo == nil {
		return Employer{}, errors.New("employers service not configured")
	}
	if strings.TrimSpace(employerID) == "" {
		return Employer{}, errors.New("employer id is required")
	}
	return s.Repo.GetByID(ctx, employerID)
}

// GetByCompanyName resolves the employer owning a company name.
func (s *Service) GetByCompanyName(ctx context.Context, companyName string) (Employer, error) {
	if s == nil || s.Repo == nil {
		return Employer{}, errors.New("employers service not configured")
	}
	if strings.TrimSpace(companyName) == "" {
		return Employer{}, ErrNotFound
	}
	return s.Repo.GetByCompanyName(ctx, companyName)
}

// Update overwrites the company name only when supplied, mirroring the partial
// update semantics of applicant updates. A missing employer is an explicit
// ErrNotFound.
func (s *Service) Update(ctx context.Context, employerID string, companyName *string) (Employer, error) {
	if s == nil || s.Repo == nil {
		return Employer{}, errors.New("employers service not configured")
	}
	employer, err := s.Repo.GetByID(ctx, employerID)
	if err != nil {
		return Employer{}, err
	}
	if companyName != nil {
		employer.CompanyName = *companyName
	}
	if err := s.Repo.Upsert(ctx, employer); err != nil {
		return Employer{}, err
	}
	return employer, nil
}
