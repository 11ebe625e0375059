package resumes

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/applicants"
	"jobboard-backend/internal/shared/server/middleware"
	"jobboard-backend/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires resume upload and download routes to the service.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resume", h.upload)
	rg.GET("/resume", h.download)
}

func (h *Handler) upload(c *gin.Context) {
	applicantID := middleware.ApplicantIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	resume, err := h.Svc.Upload(c.Request.Context(), applicantID, fileHeader.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, applicants.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "applicant not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to upload resume", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{
		"originalName": resume.OriginalName,
		"mimeType":     resume.MimeType,
		"sizeBytes":    resume.SizeBytes,
		"uploadedAt":   resume.UploadedAt,
	})
}

func (h *Handler) download(c *gin.Context) {
	applicantID := middleware.ApplicantIDFromContext(c)

	rc, resume, err := h.Svc.Open(c.Request.Context(), applicantID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoResume), errors.Is(err, applicants.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "no resume on file", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch resume", nil)
		}
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resume.OriginalName))
	c.Header("Content-Type", resume.MimeType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, rc)
}
