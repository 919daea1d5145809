package http

import (
	"github.com/gin-gonic/gin"

	"codeatlas-gateway/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The inbound
// webhook receiver is registered separately and unauthenticated; everything
// here requires a logged-in caller.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	codebase := rg.Group("/codebase")
	{
		codebase.POST("/upload", mw.Auth(), h.Upload)
		codebase.POST("/sync", mw.Auth(), h.Sync)
	}

	hooks := rg.Group("/webhook")
	{
		hooks.POST("/setup", mw.Auth(), h.SetupWebhook)
		hooks.POST("/setup-existing", mw.Auth(), h.SetupExistingWebhook)
	}
}
