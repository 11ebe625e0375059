package resumes

import (
	"context"
	"errors"
	"io"
	"time"

	"jobboard-backend/internal/applicants"
	"jobboard-backend/internal/extract"
	"jobboard-backend/internal/shared/storage/object"
	"jobboard-backend/internal/shared/telemetry"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNoResume     = errors.New("no resume on file")
)

// Service stores uploaded resume files and keeps the applicant's resume
// attribute in sync.
type Service struct {
	Store      object.ObjectStore
	Applicants *applicants.Service
}

// Upload saves the file, extracts its text for later use, and records the
// resume on the applicant. Extraction failures are logged, not fatal: the
// uploaded file is kept either way.
func (s *Service) Upload(ctx context.Context, applicantID, fileName string, r io.Reader) (applicants.Resume, error) {
	if fileName == "" {
		return applicants.Resume{}, ErrInvalidInput
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, applicantID, fileName, r)
	if err != nil {
		return applicants.Resume{}, err
	}

	if _, err := extract.ExtractText(ctx, s.Store, storageKey, mimeType, fileName); err != nil {
		telemetry.Warn("resume.extract_failed", map[string]any{
			"applicant_id": applicantID,
			"storage_key":  storageKey,
			"error":        err.Error(),
		})
	}

	now := time.Now().UTC()
	resume := applicants.Resume{
		OriginalName: fileName,
		StorageKey:   storageKey,
		MimeType:     mimeType,
		SizeBytes:    size,
		UploadedAt:   &now,
	}
	if _, err := s.Applicants.SetResume(ctx, applicantID, resume); err != nil {
		return applicants.Resume{}, err
	}
	return resume, nil
}

// Open returns the applicant's current resume file for streaming.
func (s *Service) Open(ctx context.Context, applicantID string) (io.ReadCloser, applicants.Resume, error) {
	applicant, err := s.Applicants.GetByID(ctx, applicantID)
	if err != nil {
		return nil, applicants.Resume{}, err
	}
	if applicant.Resume.OriginalName == applicants.NoResumeSentinel || applicant.Resume.StorageKey == "" {
		return nil, applicants.Resume{}, ErrNoResume
	}
	rc, err := s.Store.Open(ctx, applicant.Resume.StorageKey)
	if err != nil {
		return nil, applicants.Resume{}, err
	}
	return rc, applicant.Resume, nil
}
