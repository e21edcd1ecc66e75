package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"crudkit/internal/auth"
)

// Authenticate parses a bearer token when present and attaches the signed-in
// user to the request context. Requests without a token pass through
// anonymously; access control is enforced by validators and RequireRoles.
func Authenticate(cfg auth.TokenConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := auth.BearerToken(c.GetHeader("Authorization"))
		if ok {
			if user, err := auth.ParseToken(cfg, token); err == nil {
				c.Request = c.Request.WithContext(auth.WithUser(c.Request.Context(), user))
			}
		}
		c.Next()
	}
}

// RequireRoles only lets through requests whose authenticated user holds at
// least one of the allowed roles.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	allowed := make([]string, 0, len(allowedRoles))
	for _, role := range allowedRoles {
		if role = strings.TrimSpace(role); role != "" {
			allowed = append(allowed, role)
		}
	}

	return func(c *gin.Context) {
		user, ok := auth.UserFrom(c.Request.Context())
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "you must be logged in to access this resource",
			})
			return
		}

		for _, role := range allowed {
			if user.InRole(role) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "your role does not grant access to this resource",
		})
	}
}
