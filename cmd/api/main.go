package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver
	"golang.org/x/oauth2"
	oauthGithub "golang.org/x/oauth2/github"
	oauthGoogle "golang.org/x/oauth2/google"

	"tasktrack/config"
	_ "tasktrack/docs" // Swagger docs
	authRepo "tasktrack/internal/auth/repository"
	authPostgre "tasktrack/internal/auth/repository/postgre"
	authUsecase "tasktrack/internal/auth/usecase"
	categoryRepo "tasktrack/internal/category/repository"
	categoryPostgre "tasktrack/internal/category/repository/postgre"
	categoryUsecase "tasktrack/internal/category/usecase"
	"tasktrack/internal/httpserver"
	"tasktrack/internal/localstore"
	statsUsecase "tasktrack/internal/stats/usecase"
	taskRepo "tasktrack/internal/task/repository"
	taskPostgre "tasktrack/internal/task/repository/postgre"
	taskUsecase "tasktrack/internal/task/usecase"
	"tasktrack/pkg/dateutil"
	"tasktrack/pkg/log"
	"tasktrack/pkg/scope"
)

// @title       TaskTrack API
// @description Personal task tracking: categories, tasks, effort timer and aggregated statistics.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting TaskTrack...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Calendar for date-only arithmetic
	cal, err := dateutil.NewCalendar(cfg.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Timezone, err)
		cal, _ = dateutil.NewCalendar("")
	}

	// 4. Storage: Postgres when reachable, JSON snapshots otherwise
	var (
		tasksRepo      taskRepo.Repository
		categoriesRepo categoryRepo.Repository
		usersRepo      authRepo.Repository
	)

	db, dbErr := openPostgres(ctx, cfg.Postgres.URL)
	if dbErr == nil {
		logger.Info(ctx, "Postgres connected")
		tasksRepo = taskPostgre.New(db, logger)
		categoriesRepo = categoryPostgre.New(db, logger)
		usersRepo = authPostgre.New(db, logger)
		defer db.Close()
	} else {
		logger.Warnf(ctx, "Postgres unavailable, using local snapshot store at %s: %v",
			cfg.LocalStore.Path, dbErr)
		store, storeErr := localstore.Open(cfg.LocalStore.Path, cfg.LocalStore.MaxUsers, logger)
		if storeErr != nil {
			logger.Error(ctx, "Failed to open local store: ", storeErr)
			return
		}
		tasksRepo = store.TaskRepository()
		categoriesRepo = store.CategoryRepository()
		usersRepo = store.AuthRepository()
	}

	// 5. Auth plumbing
	jwtManager := scope.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)

	// 6. UseCases
	authUC := authUsecase.New(logger, usersRepo, jwtManager, buildOAuth(cfg))
	taskUC := taskUsecase.New(logger, tasksRepo, categoriesRepo, nil, nil)
	categoryUC := categoryUsecase.New(logger, categoriesRepo)
	statsUC := statsUsecase.New(logger, tasksRepo, categoriesRepo, cal, nil)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:              logger,
		Port:                cfg.HTTPServer.Port,
		Mode:                cfg.HTTPServer.Mode,
		Environment:         cfg.Environment.Name,
		JWTManager:          jwtManager,
		AuthRateLimitPerMin: cfg.Auth.RateLimitPerMin,
		Calendar:            cal,
		AuthUC:              authUC,
		TaskUC:              taskUC,
		CategoryUC:          categoryUC,
		StatsUC:             statsUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// openPostgres opens and pings the database. An empty URL or a failed ping
// selects the local snapshot store.
func openPostgres(ctx context.Context, url string) (*sql.DB, error) {
	if url == "" {
		return nil, fmt.Errorf("postgres.url not configured")
	}
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// buildOAuth assembles the enabled oauth2 clients from config. A provider
// without a client id stays nil and is rejected at login time.
func buildOAuth(cfg *config.Config) authUsecase.OAuthConfig {
	var oc authUsecase.OAuthConfig
	if cfg.OAuth.Google.ClientID != "" {
		oc.Google = &oauth2.Config{
			ClientID:     cfg.OAuth.Google.ClientID,
			ClientSecret: cfg.OAuth.Google.ClientSecret,
			RedirectURL:  cfg.OAuth.Google.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     oauthGoogle.Endpoint,
		}
	}
	if cfg.OAuth.GitHub.ClientID != "" {
		oc.GitHub = &oauth2.Config{
			ClientID:     cfg.OAuth.GitHub.ClientID,
			ClientSecret: cfg.OAuth.GitHub.ClientSecret,
			RedirectURL:  cfg.OAuth.GitHub.RedirectURL,
			Scopes:       []string{"read:user", "user:email"},
			Endpoint:     oauthGithub.Endpoint,
		}
	}
	return oc
}
