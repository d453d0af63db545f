package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	authHTTP "tasktrack/internal/auth/delivery/http"
	categoryHTTP "tasktrack/internal/category/delivery/http"
	"tasktrack/internal/middleware"
	statsHTTP "tasktrack/internal/stats/delivery/http"
	taskHTTP "tasktrack/internal/task/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes wires every domain under the versioned API group.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.jwtManager, srv.authRateLimitPerMin)
	api := srv.gin.Group("/api/v1")

	authHTTP.RegisterRoutes(api, authHTTP.New(srv.l, srv.authUC), mw)
	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, srv.taskUC, srv.cal), mw)
	categoryHTTP.RegisterRoutes(api, categoryHTTP.New(srv.l, srv.categoryUC), mw)
	statsHTTP.RegisterRoutes(api, statsHTTP.New(srv.l, srv.statsUC), mw)

	srv.l.Infof(ctx, "Domain routes registered under /api/v1")
}
