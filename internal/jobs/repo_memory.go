package jobs

import (
	"context"
	"sort"
	"strings"
	"sync"
)

type MemoryRepo struct {
	mu   sync.RWMutex
	jobs map[string]memoryJob
	seq  int
}

type memoryJob struct {
	job Job
	seq int
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{jobs: make(map[string]memoryJob)}
}

func (r *MemoryRepo) Create(ctx context.Context, job Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	r.jobs[job.ID] = memoryJob{job: job, seq: r.seq}
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, jobID string) (Job, error) {
	if err := ctx.Err(); err != nil {
		return Job{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.jobs[jobID]
	if !ok {
		return Job{}, ErrNotFound
	}
	return entry.job, nil
}

func (r *MemoryRepo) List(ctx context.Context, filter string, limit, offset int) ([]Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	matched := r.matchSorted(filter)

	if offset < 0 {
		offset = 0
	}
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *MemoryRepo) Count(ctx context.Context, filter string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return len(r.matchSorted(filter)), nil
}

// matchSorted returns matching jobs newest-first; insertion order breaks
// creation-time ties so pagination stays deterministic.
func (r *MemoryRepo) matchSorted(filter string) []Job {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]memoryJob, 0, len(r.jobs))
	for _, entry := range r.jobs {
		if filter == "" || matchesFilter(entry.job, filter) {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.job.CreatedAt.Equal(b.job.CreatedAt) {
			return a.job.CreatedAt.After(b.job.CreatedAt)
		}
		return a.seq > b.seq
	})

	out := make([]Job, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.job)
	}
	return out
}

func matchesFilter(job Job, filter string) bool {
	needle := strings.ToLower(filter)
	for _, hay := range []string{job.Title, job.CompanyName, job.Location, job.Desc} {
		if strings.Contains(strings.ToLower(hay), needle) {
			return true
		}
	}
	return false
}

var _ Repo = (*MemoryRepo)(nil)
