package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"tasktrack/internal/model"
	"tasktrack/pkg/response"
)

const scopeContextKey = "x-scope"

// Auth verifies the bearer token and stores the caller's scope in the gin
// context for handlers to pick up.
func (m *Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		userID, err := m.scope.Verify(token)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth verify: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeContextKey, model.Scope{UserID: userID})
		c.Next()
	}
}

// ScopeFromContext returns the scope stored by Auth. The zero Scope with
// ok=false means the route was not behind Auth.
func ScopeFromContext(c *gin.Context) (model.Scope, bool) {
	v, exists := c.Get(scopeContextKey)
	if !exists {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
