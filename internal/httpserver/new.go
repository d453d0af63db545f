package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"tasktrack/internal/auth"
	"tasktrack/internal/category"
	"tasktrack/internal/stats"
	"tasktrack/internal/task"
	"tasktrack/pkg/dateutil"
	"tasktrack/pkg/log"
	"tasktrack/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Route guards
	jwtManager          scope.Manager
	authRateLimitPerMin int

	// Domains
	cal        *dateutil.Calendar
	authUC     auth.UseCase
	taskUC     task.UseCase
	categoryUC category.UseCase
	statsUC    stats.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	JWTManager          scope.Manager
	AuthRateLimitPerMin int

	Calendar   *dateutil.Calendar
	AuthUC     auth.UseCase
	TaskUC     task.UseCase
	CategoryUC category.UseCase
	StatsUC    stats.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                   logger,
		gin:                 gin.Default(),
		port:                cfg.Port,
		mode:                cfg.Mode,
		environment:         cfg.Environment,
		jwtManager:          cfg.JWTManager,
		authRateLimitPerMin: cfg.AuthRateLimitPerMin,
		cal:                 cfg.Calendar,
		authUC:              cfg.AuthUC,
		taskUC:              cfg.TaskUC,
		categoryUC:          cfg.CategoryUC,
		statsUC:             cfg.StatsUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.cal == nil {
		return errors.New("calendar is required")
	}
	if srv.authUC == nil || srv.taskUC == nil || srv.categoryUC == nil || srv.statsUC == nil {
		return errors.New("all domain usecases are required")
	}
	return nil
}
