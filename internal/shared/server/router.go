package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/applyflow"
	googleauth "jobboard-backend/internal/auth"
	"jobboard-backend/internal/graph"
	"jobboard-backend/internal/resumes"
	"jobboard-backend/internal/shared/config"
	"jobboard-backend/internal/shared/server/middleware"
	"jobboard-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config        config.Config
	GraphHandler  *graph.Handler
	ApplyHandler  *applyflow.Handler
	ResumeHandler *resumes.Handler
	GoogleAuth    *googleauth.GoogleService
	RateLimit     *middleware.RateLimitConfig
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Config.Env),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterRoutes(api)
	}
	if deps.ApplyHandler != nil {
		applyGroup := api.Group("")
		if deps.RateLimit != nil {
			applyGroup.Use(middleware.RateLimit(*deps.RateLimit))
		}
		deps.ApplyHandler.RegisterRoutes(applyGroup)
	}
	if deps.GraphHandler != nil {
		deps.GraphHandler.RegisterRoutes(r.Group(""))
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
