package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver

	"codeatlas-gateway/config"
	_ "codeatlas-gateway/docs" // Swagger docs
	"codeatlas-gateway/internal/httpserver"
	"codeatlas-gateway/pkg/analysis"
	"codeatlas-gateway/pkg/azuredevops"
	"codeatlas-gateway/pkg/github"
	"codeatlas-gateway/pkg/gitlab"
	"codeatlas-gateway/pkg/kvstore"
	"codeatlas-gateway/pkg/log"
)

// @title       CodeAtlas Gateway API
// @description Backend-for-frontend gateway: repository sync via provider webhooks, codebase relay to the analysis service, project and account management.
// @version     1
// @host        localhost:8080
// @schemes     http
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

	logger.Info(ctx, "Starting CodeAtlas Gateway...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Analysis service: %s", cfg.Analysis.BaseURL)

	// 3. Postgres
	db, err := sql.Open("pgx", cfg.Postgres.DSN())
	if err != nil {
		logger.Errorf(ctx, "Failed to open postgres: %v", err)
		return
	}
	defer db.Close()
	db.SetMaxOpenConns(20)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	err = db.PingContext(pingCtx)
	cancel()
	if err != nil {
		logger.Errorf(ctx, "Failed to ping postgres: %v", err)
		return
	}

	// 4. Session store (revoked-token checks)
	sessions, err := kvstore.New(ctx, kvstore.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Prefix:   "gateway",
	})
	if err != nil {
		logger.Warnf(ctx, "Redis not available, session revocation disabled: %v", err)
		sessions = nil
	} else {
		defer sessions.Close()
	}

	// 5. Outbound clients
	analysisClient := analysis.NewClient(cfg.Analysis.BaseURL)
	githubClient := github.NewClient()
	gitlabClient := gitlab.NewClient()
	azureClient := azuredevops.NewClient()

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		PostgresDB:      db,
		Sessions:        sessions,
		AnalysisClient:  analysisClient,
		GithubClient:    githubClient,
		GitlabClient:    gitlabClient,
		AzureClient:     azureClient,
		JWTSecret:       cfg.JWT.Secret,
		AppBaseURL:      cfg.App.BaseURL,
		MaxArchiveBytes: cfg.Upload.MaxArchiveBytes,
		Webhook:         cfg.Webhook,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
