package jobs

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobboard-backend/internal/employers"
	"jobboard-backend/internal/shared/telemetry"
)

type Service struct {
	Repo      Repo
	Employers employers.Repo
}

func NewService(repo Repo, employerRepo employers.Repo) *Service {
	return &Service{Repo: repo, Employers: employerRepo}
}

var ErrInvalidInput = errors.New("invalid input")

// Create persists a new job posting. The owning employer is resolved by
// company name at creation time and stored as a stable reference; postings for
// unknown companies are still accepted, they just have no employer link until
// one registers.
func (s *Service) Create(ctx context.Context, params CreateParams) (Job, error) {
	if s == nil || s.Repo == nil {
		return Job{}, errors.New("jobs service not configured")
	}
	if strings.TrimSpace(params.Title) == "" {
		return Job{}, ErrInvalidInput
	}

	job := Job{
		ID:          uuid.NewString(),
		Title:       params.Title,
		CompanyName: params.CompanyName,
		Salary:      params.Salary,
		Currency:    params.Currency,
		Location:    params.Location,
		Desc:        params.Desc,
		CreatedAt:   time.Now().UTC(),
	}

	if s.Employers != nil && params.CompanyName != "" {
		employer, err := s.Employers.GetByCompanyName(ctx, params.CompanyName)
		switch {
		case err == nil:
			job.EmployerID = employer.ID
		case errors.Is(err, employers.ErrNotFound):
			telemetry.Warn("job.create.unknown_company", map[string]any{
				"job_id":       job.ID,
				"company_name": params.CompanyName,
			})
		default:
			return Job{}, err
		}
	}

	if err := s.Repo.Create(ctx, job); err != nil {
		return Job{}, err
	}
	return job, nil
}

// GetByID fetches a job; missing jobs surface as ErrNotFound.
func (s *Service) GetByID(ctx context.Context, jobID string) (Job, error) {
	if s == nil || s.Repo == nil {
		return Job{}, errors.New("jobs service not configured")
	}
	if strings.TrimSpace(jobID) == "" {
		return Job{}, errors.New("job id is required")
	}
	return s.Repo.GetByID(ctx, jobID)
}

// List returns jobs newest-first. An empty filter matches everything; a
// limit <= 0 means no limit.
func (s *Service) List(ctx context.Context, filter string, limit, offset int) ([]Job, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("jobs service not configured")
	}
	return s.Repo.List(ctx, filter, limit, offset)
}

// Count returns the number of jobs matching the filter.
func (s *Service) Count(ctx context.Context, filter string) (int, error) {
	if s == nil || s.Repo == nil {
		return 0, errors.New("jobs service not configured")
	}
	return s.Repo.Count(ctx, filter)
}
