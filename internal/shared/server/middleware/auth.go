package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/shared/auth"
	"resume-builder-backend/internal/shared/server/respond"
	"resume-builder-backend/internal/shared/telemetry"
)

const (
	userIDKey    = "userId"
	userEmailKey = "userEmail"
	userNameKey  = "userName"
)

// Identity is the verified caller identity extracted from a session token.
type Identity struct {
	Subject string
	Email   string
	Name    string
}

// EnsureUserFunc lazily creates the user record backing an identity.
type EnsureUserFunc func(ctx context.Context, identity Identity) error

// Auth verifies the session token, ensures a user record exists, and stores
// the identity in the request context. Login routes are exempt.
func Auth(ensure EnsureUserFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/v1/auth/google/") || path == "/api/v1/health" {
			c.Next()
			return
		}

		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if !strings.HasPrefix(authHeader, "Bearer ") {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
		if token == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		claims, err := auth.VerifyToken(token)
		if err != nil {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		identity := Identity{Subject: claims.Subject, Email: claims.Email, Name: claims.Name}
		if ensure != nil {
			if err := ensure(c.Request.Context(), identity); err != nil {
				telemetry.Error("auth.ensure_user.failed", map[string]any{
					"request_id": RequestIDFromContext(c),
					"user_id":    identity.Subject,
					"err":        err.Error(),
				})
				respond.Error(c, http.StatusInternalServerError, "internal", "failed to resolve user", nil)
				return
			}
		}

		c.Set(userIDKey, identity.Subject)
		if identity.Email != "" {
			c.Set(userEmailKey, identity.Email)
		}
		if identity.Name != "" {
			c.Set(userNameKey, identity.Name)
		}
		c.Next()
	}
}

// UserIDFromContext fetches the user ID set by the auth middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
