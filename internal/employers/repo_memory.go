package employers

import (
	"context"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu        sync.RWMutex
	employers map[string]Employer
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{employers: make(map[string]Employer)}
}

func (r *MemoryRepo) Upsert(ctx context.Context, employer Employer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.employers[employer.ID]
	now := time.Now().UTC()
	if !ok {
		employer.CreatedAt = now
	} else {
		employer.CreatedAt = existing.CreatedAt
	}
	employer.UpdatedAt = now
	r.employers[employer.ID] = employer
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, employerID string) (Employer, error) {
	if err := ctx.Err(); err != nil {
		return Employer{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	employer, ok := r.employers[employerID]
	if !ok {
		return Employer{}, ErrNotFound
	}
	return employer, nil
}

func (r *MemoryRepo) GetByCompanyName(ctx context.Context, companyName string) (Employer, error) {
	if err := ctx.Err(); err != nil {
		return Employer{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var match Employer
	found := false
	for _, employer := range r.employers {
		if employer.CompanyName != companyName {
			continue
		}
		if !found || employer.CreatedAt.Before(match.CreatedAt) {
			match = employer
			found = true
		}
	}
	if !found {
		return Employer{}, ErrNotFound
	}
	return match, nil
}

var _ Repo = (*MemoryRepo)(nil)
