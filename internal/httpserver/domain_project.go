package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"codeatlas-gateway/internal/middleware"
	projectHTTP "codeatlas-gateway/internal/project/delivery/http"
	projectRepo "codeatlas-gateway/internal/project/repository/postgre"
	projectUC "codeatlas-gateway/internal/project/usecase"
)

// setupProjectDomain initializes the project domain and registers its routes.
func (srv *HTTPServer) setupProjectDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := projectRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase
	uc := projectUC.New(repo, srv.analysisClient, srv.l)

	// 3. HTTP Handler
	h := projectHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/projects
	projectHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Project domain registered")
	return nil
}
