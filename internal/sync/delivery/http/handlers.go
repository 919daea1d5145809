package http

import (
	"github.com/gin-gonic/gin"

	"codeatlas-gateway/internal/middleware"
	"codeatlas-gateway/pkg/response"
)

// Upload godoc
// @Summary     Upload a project's first codebase
// @Description Accepts a zip archive or a repository reference and relays the codebase to the analysis service.
// @Tags        Codebase
// @Accept      multipart/form-data
// @Produce     json
// @Param       project_id formData string true  "Project ID"
// @Param       file       formData file   false "Zip archive (mutually exclusive with repo_url)"
// @Param       repo_url   formData string false "Repository URL (github/gitlab) or project/repositoryId (azure)"
// @Param       branch_name formData string false "Branch to fetch"
// @Param       source     formData string false "github, gitlab, azure or manual"
// @Param       is_private formData bool   false "Repository is private (github webhook auto-setup)"
// @Success     200 {object} codebaseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/codebase/upload [POST]
func (h *handler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCodebaseReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.UploadCodebase(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UploadCodebase: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCodebaseResp(output))
}

// Sync godoc
// @Summary     Re-sync a project's codebase
// @Description Replaces the analyzed codebase with a fresh archive or repository snapshot.
// @Tags        Codebase
// @Accept      multipart/form-data
// @Produce     json
// @Param       project_id formData string true  "Project ID"
// @Param       file       formData file   false "Zip archive (mutually exclusive with repo_url)"
// @Param       repo_url   formData string false "Repository URL (github/gitlab) or project/repositoryId (azure)"
// @Param       branch_name formData string false "Branch to fetch"
// @Param       source     formData string false "github, gitlab, azure or manual"
// @Param       is_private formData bool   false "Repository is private (github webhook auto-setup)"
// @Success     200 {object} codebaseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/codebase/sync [POST]
func (h *handler) Sync(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCodebaseReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.SyncCodebase(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SyncCodebase: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCodebaseResp(output))
}

// SetupWebhook godoc
// @Summary     Register a repository webhook
// @Description Creates a push/pull_request webhook on the GitHub repository and binds it to the project.
// @Tags        Webhook
// @Accept      json
// @Produce     json
// @Param       body body setupWebhookReq true "Project and repository"
// @Success     200 {object} setupWebhookResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - webhook already registered"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/webhook/setup [POST]
func (h *handler) SetupWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetupWebhookReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.RegisterWebhook(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.RegisterWebhook: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSetupWebhookResp(output))
}

// SetupExistingWebhook godoc
// @Summary     Register a webhook for an onboarded project
// @Description Like setup, but uses the repository URL and branch already stored on the project.
// @Tags        Webhook
// @Accept      json
// @Produce     json
// @Param       body body setupExistingWebhookReq true "Project"
// @Success     200 {object} setupWebhookResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - webhook already registered"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/webhook/setup-existing [POST]
func (h *handler) SetupExistingWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetupExistingWebhookReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.RegisterWebhook(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.RegisterWebhook: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSetupWebhookResp(output))
}
