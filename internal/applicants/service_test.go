package applicants

import (
	"context"
	"errors"
	"testing"
)

func seededService(t *testing.T) *Service {
	t.Helper()
	repo := NewMemoryRepo()
	if err := repo.Upsert(context.Background(), Applicant{
		ID:        "a1",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Resume:    EmptyResume(),
	}); err != nil {
		t.Fatalf("seed applicant: %v", err)
	}
	return NewService(repo)
}

func strPtr(s string) *string { return &s }

func TestUpdateOverwritesOnlySuppliedFields(t *testing.T) {
	svc := seededService(t)

	updated, err := svc.Update(context.Background(), "a1", strPtr("Adeline"), nil)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.FirstName != "Adeline" {
		t.Fatalf("expected firstName Adeline, got %q", updated.FirstName)
	}
	if updated.LastName != "Lovelace" {
		t.Fatalf("expected lastName untouched, got %q", updated.LastName)
	}
	if updated.Email != "ada@example.com" {
		t.Fatalf("expected email untouched, got %q", updated.Email)
	}
}

func TestUpdateMissingApplicant(t *testing.T) {
	svc := seededService(t)

	_, err := svc.Update(context.Background(), "ghost", strPtr("X"), nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpsertFromAuthKeepsResumeAndNames(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	if _, err := svc.SetResume(ctx, "a1", Resume{OriginalName: "cv.pdf", StorageKey: "key"}); err != nil {
		t.Fatalf("SetResume: %v", err)
	}

	// A later sign-in must not reset the uploaded resume or edited names.
	err := svc.UpsertFromAuth(ctx, Applicant{
		ID:        "a1",
		Email:     "ada@example.com",
		FirstName: "Different",
		LastName:  "Name",
	})
	if err != nil {
		t.Fatalf("UpsertFromAuth: %v", err)
	}

	got, err := svc.GetByID(ctx, "a1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Resume.OriginalName != "cv.pdf" {
		t.Fatalf("expected resume preserved, got %q", got.Resume.OriginalName)
	}
	if got.FirstName != "Ada" || got.LastName != "Lovelace" {
		t.Fatalf("expected names preserved, got %q %q", got.FirstName, got.LastName)
	}
}

func TestUpsertFromAuthNewApplicantGetsPlaceholderResume(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	err := svc.UpsertFromAuth(ctx, Applicant{ID: "google:123", Email: "new@example.com"})
	if err != nil {
		t.Fatalf("UpsertFromAuth: %v", err)
	}

	got, err := svc.GetByID(ctx, "google:123")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Resume.OriginalName != NoResumeSentinel {
		t.Fatalf("expected placeholder resume, got %q", got.Resume.OriginalName)
	}

	exists, err := svc.ResumeExists(ctx, "google:123")
	if err != nil {
		t.Fatalf("ResumeExists: %v", err)
	}
	if exists {
		t.Fatalf("expected ResumeExists false for placeholder resume")
	}
}

func TestResumeExistsAfterUpload(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	if _, err := svc.SetResume(ctx, "a1", Resume{OriginalName: "cv.pdf", StorageKey: "key"}); err != nil {
		t.Fatalf("SetResume: %v", err)
	}
	exists, err := svc.ResumeExists(ctx, "a1")
	if err != nil {
		t.Fatalf("ResumeExists: %v", err)
	}
	if !exists {
		t.Fatalf("expected ResumeExists true after upload")
	}
}
