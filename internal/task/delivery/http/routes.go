package http

import (
	"github.com/gin-gonic/gin"

	"tasktrack/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. All task
// routes require an authenticated scope.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw *middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.Auth(), h.Create)
		tasks.GET("", mw.Auth(), h.List)
		tasks.GET("/:id", mw.Auth(), h.Detail)
		tasks.PUT("/:id", mw.Auth(), h.Update)
		tasks.DELETE("/:id", mw.Auth(), h.Delete)
		tasks.POST("/:id/start", mw.Auth(), h.Start)
		tasks.POST("/:id/stop", mw.Auth(), h.Stop)
		tasks.GET("/:id/elapsed", mw.Auth(), h.Elapsed)
	}
}
