package http

import (
	"github.com/gin-gonic/gin"

	"codeatlas-gateway/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	projects := rg.Group("/projects", mw.Auth())
	{
		projects.POST("", h.Initialize)
		projects.GET("", h.List)
		projects.DELETE("/:id", h.Delete)
		projects.POST("/:id/summary", h.GenerateSummary)
		projects.GET("/:id/diagram", h.GenerateDiagram)
		projects.POST("/collaborators", h.AddCollaborator)
		projects.DELETE("/collaborators", h.RemoveCollaborator)
		projects.GET("/:id/collaborators", h.GetCollaborators)
	}
}
