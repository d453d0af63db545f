package http

import (
	"github.com/gin-gonic/gin"

	"tasktrack/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw *middleware.Middleware) {
	stats := rg.Group("/stats")
	{
		stats.GET("/overview", mw.Auth(), h.Overview)
		stats.GET("/categories", mw.Auth(), h.Categories)
		stats.GET("/summary", mw.Auth(), h.Summary)
		stats.GET("/daily", mw.Auth(), h.Daily)
	}
}
