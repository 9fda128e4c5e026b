package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"familybridge/pkg/response"
	"familybridge/pkg/scope"
)

const bearerPrefix = "Bearer "

// Auth verifies the bearer token and stores the caller's scope on the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			response.Unauthorized(c)
			return
		}

		sc, err := m.jwtManager.Verify(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
		if err != nil {
			m.l.Debugf(c.Request.Context(), "middleware.Auth Verify: %v", err)
			response.Unauthorized(c)
			return
		}

		c.Request = c.Request.WithContext(scope.SetScopeToContext(c.Request.Context(), sc))
		c.Next()
	}
}
