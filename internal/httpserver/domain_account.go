package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	accountHTTP "codeatlas-gateway/internal/account/delivery/http"
	accountUC "codeatlas-gateway/internal/account/usecase"
	"codeatlas-gateway/internal/middleware"
	userRepo "codeatlas-gateway/internal/user/repository/postgre"
)

// setupAccountDomain initializes the account domain and registers its routes.
func (srv *HTTPServer) setupAccountDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	users := userRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase
	uc := accountUC.New(users, srv.gitlabClient, srv.azureClient, srv.l)

	// 3. HTTP Handler
	h := accountHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/account
	accountHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Account domain registered")
	return nil
}
