package resumes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/applicants"
	"jobboard-backend/internal/bootstrap"
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

	if err := app.ApplicantsRepo.Upsert(context.Background(), applicants.Applicant{
		ID:     "guest:g1",
		Email:  "ada@example.com",
		Resume: applicants.EmptyResume(),
	}); err != nil {
		t.Fatalf("seed applicant: %v", err)
	}
	return app
}

func uploadResume(t *testing.T, router http.Handler, fileName string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fileWriter, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fileWriter.Write(content); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Guest-Id", "g1")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestResumeUploadAndDownload(t *testing.T) {
	app := buildApp(t)
	content := []byte("Ada Lovelace\nBackend Engineer\n")

	resp := uploadResume(t, app.Router, "cv.txt", content)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var uploaded struct {
		OriginalName string `json:"originalName"`
		SizeBytes    int64  `json:"sizeBytes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		t.Fatalf("decode upload response: %v", err)
	}
	if uploaded.OriginalName != "cv.txt" {
		t.Fatalf("expected originalName cv.txt, got %q", uploaded.OriginalName)
	}
	if uploaded.SizeBytes != int64(len(content)) {
		t.Fatalf("expected sizeBytes %d, got %d", len(content), uploaded.SizeBytes)
	}

	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/resume", nil)
	reqGet.Header.Set("X-Guest-Id", "g1")
	respGet := httptest.NewRecorder()
	app.Router.ServeHTTP(respGet, reqGet)

	if respGet.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", respGet.Code, respGet.Body.String())
	}
	if !bytes.Equal(respGet.Body.Bytes(), content) {
		t.Fatalf("downloaded content differs from upload")
	}

	applicant, err := app.ApplicantsRepo.GetByID(context.Background(), "guest:g1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if applicant.Resume.OriginalName != "cv.txt" {
		t.Fatalf("expected applicant resume updated, got %q", applicant.Resume.OriginalName)
	}
}

func TestResumeDownloadWithoutUpload(t *testing.T) {
	app := buildApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resume", nil)
	req.Header.Set("X-Guest-Id", "g1")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", resp.Code, resp.Body.String())
	}
}
