package applyflow

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/applications"
	"jobboard-backend/internal/shared/server/middleware"
	"jobboard-backend/internal/shared/server/respond"
)

// Handler wires the apply endpoint to the workflow service.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the apply route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/jobs/apply", h.apply)
}

type applyRequest struct {
	JobID string `json:"jobId"`
}

func (h *Handler) apply(c *gin.Context) {
	applicantID := middleware.ApplicantIDFromContext(c)

	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	req.JobID = strings.TrimSpace(req.JobID)
	if req.JobID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "jobId is required", nil)
		return
	}
	c.Set("jobId", req.JobID)

	err := h.Svc.Apply(c.Request.Context(), applicantID, req.JobID)
	if err != nil {
		var notFound *NotFoundError
		switch {
		case errors.As(err, &notFound):
			respond.Error(c, http.StatusNotFound, "not_found", notFound.Error(), nil)
		case errors.Is(err, applications.ErrDuplicate):
			respond.Error(c, http.StatusConflict, "already_applied", "application already exists for this job", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "store_error", err.Error(), nil)
		}
		return
	}

	respond.OK(c, gin.H{"applied": true, "jobId": req.JobID})
}
