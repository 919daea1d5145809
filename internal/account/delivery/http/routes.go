package http

import (
	"github.com/gin-gonic/gin"

	"codeatlas-gateway/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	acc := rg.Group("/account", mw.Auth())
	{
		acc.POST("/github", h.LinkGitHub)
		acc.POST("/gitlab", h.LinkGitLab)
		acc.POST("/azure", h.LinkAzure)
		acc.GET("/gitlab/repositories", h.ListGitLabRepositories)
		acc.GET("/azure/projects", h.ListAzureProjects)
		acc.GET("/azure/projects/:project_id/repositories", h.ListAzureRepositories)
		acc.GET("/azure/projects/:project_id/repositories/:repository_id/branches", h.ListAzureBranches)
	}
}
