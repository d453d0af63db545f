package http

import (
	"github.com/gin-gonic/gin"

	"tasktrack/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw *middleware.Middleware) {
	categories := rg.Group("/categories")
	{
		categories.GET("", mw.Auth(), h.List)
		categories.POST("", mw.Auth(), h.Create)
		categories.PUT("/:id", mw.Auth(), h.Update)
		categories.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
