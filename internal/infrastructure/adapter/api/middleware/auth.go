package middleware

import (
	"net/http"
	"strings"

	coreport "github.com/lendmark/demo-credit/internal/domain/port/core"
	"github.com/lendmark/demo-credit/internal/infrastructure/adapter/api/dto"
	"github.com/lendmark/demo-credit/internal/infrastructure/adapter/token"
	"github.com/gin-gonic/gin"
)

const (
	// SessionCookieName is the cookie carrying the session token
	SessionCookieName = "session"
	// ContextUserIDKey is where the authenticated user ID lands in the
	// request context
	ContextUserIDKey = "userID"
)

// Auth middleware validates the session token from the Authorization
// header or the session cookie and stores the user ID on the context
func Auth(tokens *token.Manager, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Status:  http.StatusUnauthorized,
				Message: "Authentication required.",
			})
			return
		}

		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			logger.Debug("Session token rejected", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Status:  http.StatusUnauthorized,
				Message: "Invalid or expired session.",
			})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}

// extractToken prefers the Authorization header over the session cookie
func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if after, found := strings.CutPrefix(header, "Bearer "); found {
		return strings.TrimSpace(after)
	}
	if cookie, err := c.Cookie(SessionCookieName); err == nil {
		return cookie
	}
	return ""
}

// UserID returns the authenticated user ID set by Auth
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserIDKey)
}
