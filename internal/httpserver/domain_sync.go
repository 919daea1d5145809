package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"codeatlas-gateway/internal/middleware"
	projectRepo "codeatlas-gateway/internal/project/repository/postgre"
	syncHTTP "codeatlas-gateway/internal/sync/delivery/http"
	syncUC "codeatlas-gateway/internal/sync/usecase"
	userRepo "codeatlas-gateway/internal/user/repository/postgre"
	"codeatlas-gateway/internal/webhook"
)

// setupSyncDomain initializes the sync orchestrator, the authenticated
// codebase/webhook-setup routes, and the unauthenticated GitHub webhook
// receiver.
func (srv *HTTPServer) setupSyncDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repositories
	projects := projectRepo.New(srv.postgresDB, srv.l)
	users := userRepo.New(srv.postgresDB, srv.l)

	// 2. Verifier (shared with the inbound receiver below)
	security := webhook.NewSecurityValidator(webhook.SecurityConfig{
		AllowedIPs:      srv.webhookCfg.AllowedIPs,
		RateLimitPerMin: srv.webhookCfg.RateLimitPerMin,
	})

	// 3. UseCase
	uc := syncUC.New(
		syncUC.Config{
			AppBaseURL:      srv.appBaseURL,
			MaxArchiveBytes: srv.maxArchiveBytes,
		},
		projects,
		users,
		security,
		srv.githubClient,
		srv.gitlabClient,
		srv.azureClient,
		srv.analysisClient,
		srv.l,
	)

	// 4. HTTP handlers + routes
	h := syncHTTP.New(srv.l, uc)
	syncHTTP.RegisterRoutes(api, h, mw)

	receiver := webhook.NewHandler(uc, security, srv.l)
	api.POST("/webhook/github", receiver.HandleGitHubWebhook)

	srv.l.Infof(ctx, "Sync domain registered")
	return nil
}
