package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/shared/auth"
	"jobboard-backend/internal/shared/server/respond"
)

const (
	applicantIDKey    = "applicantId"
	applicantEmailKey = "applicantEmail"
	applicantNameKey  = "applicantName"
)

// Auth validates JWTs or guest headers and stores the applicant identity in context.
func Auth(env string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/v1/auth/google/") {
			c.Next()
			return
		}

		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))

		if authHeader != "" {
			if !strings.HasPrefix(authHeader, "Bearer ") {
				respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
				return
			}

			token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
			if token == "" {
				respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
				return
			}

			claims, err := auth.VerifyJWT(token)
			if err != nil {
				respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
				return
			}

			c.Set(applicantIDKey, claims.Sub)
			if claims.Email != "" {
				c.Set(applicantEmailKey, claims.Email)
			}
			if claims.Name != "" {
				c.Set(applicantNameKey, claims.Name)
			}
			c.Set("isGuest", false)
			c.Next()
			return
		}

		guestID := strings.TrimSpace(c.GetHeader("X-Guest-Id"))
		if guestID == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Missing identity", nil)
			return
		}

		c.Set(applicantIDKey, "guest:"+guestID)
		c.Set("isGuest", true)
		c.Next()
	}
}

// ApplicantIDFromContext fetches the applicant ID set by the auth middleware.
func ApplicantIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(applicantIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}

// ApplicantEmailFromContext fetches the applicant email set by the auth middleware.
func ApplicantEmailFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(applicantEmailKey)
	if email, ok := val.(string); ok {
		return email
	}
	return ""
}
