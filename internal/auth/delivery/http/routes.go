package http

import (
	"github.com/gin-gonic/gin"

	"tasktrack/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Credential
// endpoints sit behind the per-IP rate limiter; Me requires a valid token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw *middleware.Middleware) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/signup", mw.RateLimit(), h.Signup)
		authGroup.POST("/login", mw.RateLimit(), h.Login)
		authGroup.POST("/oauth/:provider", mw.RateLimit(), h.OAuthLogin)
		authGroup.GET("/me", mw.Auth(), h.Me)
	}
}
