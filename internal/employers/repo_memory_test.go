package employers

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestGetByCompanyNameOldestWins(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if err := repo.Upsert(ctx, Employer{ID: "e1", Email: "old@acme.test", CompanyName: "Acme"}); err != nil {
		t.Fatalf("Upsert e1: %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	if err := repo.Upsert(ctx, Employer{ID: "e2", Email: "new@acme.test", CompanyName: "Acme"}); err != nil {
		t.Fatalf("Upsert e2: %v", err)
	}

	got, err := repo.GetByCompanyName(ctx, "Acme")
	if err != nil {
		t.Fatalf("GetByCompanyName: %v", err)
	}
	if got.ID != "e1" {
		t.Fatalf("expected oldest account e1, got %s", got.ID)
	}
}

func TestGetByCompanyNameMissing(t *testing.T) {
	repo := NewMemoryRepo()

	_, err := repo.GetByCompanyName(context.Background(), "Nobody Inc")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpsertPreservesCreatedAt(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if err := repo.Upsert(ctx, Employer{ID: "e1", CompanyName: "Acme"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	before, err := repo.GetByID(ctx, "e1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}

	time.Sleep(2 * time.Millisecond)
	if err := repo.Upsert(ctx, Employer{ID: "e1", CompanyName: "Acme Corp"}); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}
	after, err := repo.GetByID(ctx, "e1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}

	if !after.CreatedAt.Equal(before.CreatedAt) {
		t.Fatalf("expected CreatedAt preserved across upserts")
	}
	if after.CompanyName != "Acme Corp" {
		t.Fatalf("expected company name updated, got %q", after.CompanyName)
	}
}
