package applicants

import (
	"context"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu         sync.RWMutex
	applicants map[string]Applicant
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{applicants: make(map[string]Applicant)}
}

func (r *MemoryRepo) Upsert(ctx context.Context, applicant Applicant) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.applicants[applicant.ID]
	now := time.Now().UTC()
	if !ok {
		applicant.CreatedAt = now
	} else {
		applicant.CreatedAt = existing.CreatedAt
	}
	if applicant.Resume.OriginalName == "" {
		applicant.Resume = EmptyResume()
	}
	applicant.UpdatedAt = now
	r.applicants[applicant.ID] = applicant
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, applicantID string) (Applicant, error) {
	if err := ctx.Err(); err != nil {
		return Applicant{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	applicant, ok := r.applicants[applicantID]
	if !ok {
		return Applicant{}, ErrNotFound
	}
	return applicant, nil
}

var _ Repo = (*MemoryRepo)(nil)
