package applyflow_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/applicants"
	"jobboard-backend/internal/bootstrap"
	"jobboard-backend/internal/employers"
	"jobboard-backend/internal/jobs"
	"jobboard-backend/internal/shared/config"
)

func buildApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, err := bootstrap.Build(config.Config{
		Port:            "0",
		Env:             "dev",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
	})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = app.Shutdown(ctx)
	})
	return app
}

func seedApplyData(t *testing.T, app *bootstrap.App) {
	t.Helper()
	ctx := context.Background()

	if err := app.ApplicantsRepo.Upsert(ctx, applicants.Applicant{
		ID:        "guest:g1",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Resume:    applicants.EmptyResume(),
	}); err != nil {
		t.Fatalf("seed applicant: %v", err)
	}
	if err := app.EmployersRepo.Upsert(ctx, employers.Employer{
		ID:          "e1",
		Email:       "jobs@acme.test",
		CompanyName: "Acme",
	}); err != nil {
		t.Fatalf("seed employer: %v", err)
	}
	if err := app.JobsRepo.Create(ctx, jobs.Job{
		ID:          "j1",
		Title:       "Backend Engineer",
		CompanyName: "Acme",
		EmployerID:  "e1",
		CreatedAt:   time.Now().UTC(),
	}); err != nil {
		t.Fatalf("seed job: %v", err)
	}
}

func postApply(t *testing.T, router http.Handler, jobID string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(map[string]string{"jobId": jobID})
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/apply", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", "g1")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestApplyEndpoint(t *testing.T) {
	app := buildApp(t)
	seedApplyData(t, app)

	resp := postApply(t, app.Router, "j1")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var payload struct {
		Applied bool   `json:"applied"`
		JobID   string `json:"jobId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !payload.Applied || payload.JobID != "j1" {
		t.Fatalf("unexpected payload %+v", payload)
	}

	exists, err := app.ApplicationsRepo.Exists(context.Background(), "guest:g1", "j1")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !exists {
		t.Fatalf("expected application record after apply")
	}
}

func TestApplyEndpointUnknownJob(t *testing.T) {
	app := buildApp(t)
	seedApplyData(t, app)

	resp := postApply(t, app.Router, "missing")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "Job with id: missing does not exist") {
		t.Fatalf("expected lookup failure message, got %s", resp.Body.String())
	}
}

func TestApplyEndpointDuplicate(t *testing.T) {
	app := buildApp(t)
	seedApplyData(t, app)

	if resp := postApply(t, app.Router, "j1"); resp.Code != http.StatusOK {
		t.Fatalf("first apply: expected 200, got %d", resp.Code)
	}
	resp := postApply(t, app.Router, "j1")
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestApplyEndpointRequiresIdentity(t *testing.T) {
	app := buildApp(t)
	seedApplyData(t, app)

	body := bytes.NewReader([]byte(`{"jobId":"j1"}`))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/apply", body)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}
