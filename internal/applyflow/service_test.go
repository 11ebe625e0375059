package applyflow

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"jobboard-backend/internal/applicants"
	"jobboard-backend/internal/applications"
	"jobboard-backend/internal/employers"
	"jobboard-backend/internal/jobs"
	"jobboard-backend/internal/notify"
)

type captureNotifier struct {
	msgs []notify.Message
}

func (n *captureNotifier) Enqueue(msg notify.Message) bool {
	n.msgs = append(n.msgs, msg)
	return true
}

type fixture struct {
	svc      *Service
	notifier *captureNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	applicantRepo := applicants.NewMemoryRepo()
	employerRepo := employers.NewMemoryRepo()
	jobRepo := jobs.NewMemoryRepo()
	applicationRepo := applications.NewMemoryRepo()

	if err := applicantRepo.Upsert(ctx, applicants.Applicant{
		ID:        "a1",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Resume:    applicants.EmptyResume(),
	}); err != nil {
		t.Fatalf("seed applicant: %v", err)
	}
	if err := employerRepo.Upsert(ctx, employers.Employer{
		ID:          "e1",
		Email:       "jobs@acme.test",
		CompanyName: "Acme",
	}); err != nil {
		t.Fatalf("seed employer: %v", err)
	}
	if err := jobRepo.Create(ctx, jobs.Job{
		ID:          "j1",
		Title:       "Backend Engineer",
		CompanyName: "Acme",
		EmployerID:  "e1",
		CreatedAt:   time.Now().UTC(),
	}); err != nil {
		t.Fatalf("seed job: %v", err)
	}

	notifier := &captureNotifier{}
	return &fixture{
		svc: &Service{
			Applicants:   applicantRepo,
			Jobs:         jobRepo,
			Employers:    employerRepo,
			Applications: applicationRepo,
			Notifier:     notifier,
		},
		notifier: notifier,
	}
}

func TestApplyNotifiesEmployer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.svc.Apply(ctx, "a1", "j1"); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if len(f.notifier.msgs) != 1 {
		t.Fatalf("expected exactly one notification, got %d", len(f.notifier.msgs))
	}
	msg := f.notifier.msgs[0]
	if msg.To != "jobs@acme.test" {
		t.Fatalf("expected notification to employer, got %q", msg.To)
	}
	if msg.Subject != "Job Application - Backend Engineer" {
		t.Fatalf("unexpected subject %q", msg.Subject)
	}
	if msg.Body != "You have received an application from Ada Lovelace" {
		t.Fatalf("unexpected body %q", msg.Body)
	}

	exists, err := f.svc.Applications.Exists(ctx, "a1", "j1")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !exists {
		t.Fatalf("expected application record after Apply")
	}
}

func TestApplyUnknownJob(t *testing.T) {
	f := newFixture(t)

	err := f.svc.Apply(context.Background(), "a1", "missing")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.Entity != "Job" {
		t.Fatalf("expected Job lookup failure, got %q", notFound.Entity)
	}
	if !strings.Contains(err.Error(), "Job with id: missing does not exist") {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if len(f.notifier.msgs) != 0 {
		t.Fatalf("expected no notifications, got %d", len(f.notifier.msgs))
	}
}

func TestApplyUnknownApplicant(t *testing.T) {
	f := newFixture(t)

	err := f.svc.Apply(context.Background(), "ghost", "j1")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.Entity != "Applicant" {
		t.Fatalf("expected Applicant lookup failure, got %q", notFound.Entity)
	}
	if len(f.notifier.msgs) != 0 {
		t.Fatalf("expected no notifications, got %d", len(f.notifier.msgs))
	}
}

func TestApplyDuplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.svc.Apply(ctx, "a1", "j1"); err != nil {
		t.Fatalf("first Apply: %v", err)
	}
	err := f.svc.Apply(ctx, "a1", "j1")
	if !errors.Is(err, applications.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if len(f.notifier.msgs) != 1 {
		t.Fatalf("expected one notification across both attempts, got %d", len(f.notifier.msgs))
	}
}

func TestApplyFallsBackToCompanyName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Legacy posting with no employer link.
	if err := f.svc.Jobs.Create(ctx, jobs.Job{
		ID:          "j2",
		Title:       "Data Engineer",
		CompanyName: "Acme",
		CreatedAt:   time.Now().UTC(),
	}); err != nil {
		t.Fatalf("seed job: %v", err)
	}

	if err := f.svc.Apply(ctx, "a1", "j2"); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(f.notifier.msgs) != 1 || f.notifier.msgs[0].To != "jobs@acme.test" {
		t.Fatalf("expected fallback notification to employer, got %v", f.notifier.msgs)
	}
}

func TestApplyUnknownEmployerRecordsNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.svc.Jobs.Create(ctx, jobs.Job{
		ID:          "j3",
		Title:       "Mystery Role",
		CompanyName: "Nobody Inc",
		CreatedAt:   time.Now().UTC(),
	}); err != nil {
		t.Fatalf("seed job: %v", err)
	}

	err := f.svc.Apply(ctx, "a1", "j3")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.Entity != "Employer" {
		t.Fatalf("expected Employer lookup failure, got %q", notFound.Entity)
	}

	exists, err := f.svc.Applications.Exists(ctx, "a1", "j3")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if exists {
		t.Fatalf("expected no application record when the employer is unknown")
	}
}
