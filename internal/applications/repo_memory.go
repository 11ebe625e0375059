package applications

import (
	"context"
	"sync"
)

type MemoryRepo struct {
	mu      sync.RWMutex
	records map[string]Application
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{records: make(map[string]Application)}
}

func pairKey(applicantID, jobID string) string {
	return applicantID + "|" + jobID
}

func (r *MemoryRepo) Create(ctx context.Context, application Application) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := pairKey(application.ApplicantID, application.JobID)
	if _, ok := r.records[key]; ok {
		return ErrDuplicate
	}
	r.records[key] = application
	return nil
}

func (r *MemoryRepo) Exists(ctx context.Context, applicantID, jobID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.records[pairKey(applicantID, jobID)]
	return ok, nil
}

var _ Repo = (*MemoryRepo)(nil)
