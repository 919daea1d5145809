package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"codeatlas-gateway/config"
	"codeatlas-gateway/pkg/analysis"
	"codeatlas-gateway/pkg/azuredevops"
	"codeatlas-gateway/pkg/github"
	"codeatlas-gateway/pkg/gitlab"
	"codeatlas-gateway/pkg/kvstore"
	"codeatlas-gateway/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure
	postgresDB *sql.DB
	sessions   *kvstore.Store

	// Outbound clients
	analysisClient *analysis.Client
	githubClient   *github.Client
	gitlabClient   *gitlab.Client
	azureClient    *azuredevops.Client

	// Gateway config consumed during domain wiring
	jwtSecret       string
	appBaseURL      string
	maxArchiveBytes int64
	webhookCfg      config.WebhookConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB
	Sessions   *kvstore.Store

	AnalysisClient *analysis.Client
	GithubClient   *github.Client
	GitlabClient   *gitlab.Client
	AzureClient    *azuredevops.Client

	JWTSecret       string
	AppBaseURL      string
	MaxArchiveBytes int64
	Webhook         config.WebhookConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		postgresDB:      cfg.PostgresDB,
		sessions:        cfg.Sessions,
		analysisClient:  cfg.AnalysisClient,
		githubClient:    cfg.GithubClient,
		gitlabClient:    cfg.GitlabClient,
		azureClient:     cfg.AzureClient,
		jwtSecret:       cfg.JWTSecret,
		appBaseURL:      cfg.AppBaseURL,
		maxArchiveBytes: cfg.MaxArchiveBytes,
		webhookCfg:      cfg.Webhook,
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
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.analysisClient == nil {
		return errors.New("analysis client is required")
	}
	return nil
}
