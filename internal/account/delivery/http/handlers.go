package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codeatlas-gateway/internal/account"
	"codeatlas-gateway/internal/middleware"
	"codeatlas-gateway/pkg/response"
)

// LinkGitHub godoc
// @Summary     Link a GitHub token
// @Tags        Account
// @Accept      json
// @Produce     json
// @Param       body body linkGitHubReq true "GitHub personal access token"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/account/github [POST]
func (h *handler) LinkGitHub(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLinkGitHubReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	if err := h.uc.LinkGitHub(ctx, middleware.GetScope(c), req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.LinkGitHub: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// LinkGitLab godoc
// @Summary     Link a GitLab token
// @Description Validates the token against GitLab before storing it; an invalid token clears the stored credential.
// @Tags        Account
// @Accept      json
// @Produce     json
// @Param       body body linkGitLabReq true "GitLab personal access token"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Token rejected by provider"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/account/gitlab [POST]
func (h *handler) LinkGitLab(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLinkGitLabReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	if err := h.uc.LinkGitLab(ctx, middleware.GetScope(c), req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.LinkGitLab: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// LinkAzure godoc
// @Summary     Link an Azure DevOps PAT and organization
// @Description Validates the PAT against the organization before storing both; an invalid PAT clears the stored credential.
// @Tags        Account
// @Accept      json
// @Produce     json
// @Param       body body linkAzureReq true "Azure PAT and organization"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "PAT rejected by provider"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/account/azure [POST]
func (h *handler) LinkAzure(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLinkAzureReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	if err := h.uc.LinkAzure(ctx, middleware.GetScope(c), req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.LinkAzure: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// ListGitLabRepositories godoc
// @Summary     List GitLab repositories
// @Tags        Account
// @Produce     json
// @Success     200 {object} repositoriesResp
// @Failure     400 {object} response.Resp "No GitLab credential linked"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/account/gitlab/repositories [GET]
func (h *handler) ListGitLabRepositories(c *gin.Context) {
	ctx := c.Request.Context()

	views, err := h.uc.ListGitLabRepositories(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListGitLabRepositories: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newRepositoriesResp(views))
}

// ListAzureProjects godoc
// @Summary     List Azure DevOps projects
// @Tags        Account
// @Produce     json
// @Success     200 {object} azureProjectsResp
// @Failure     400 {object} response.Resp "No Azure credential linked"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/account/azure/projects [GET]
func (h *handler) ListAzureProjects(c *gin.Context) {
	ctx := c.Request.Context()

	views, err := h.uc.ListAzureProjects(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListAzureProjects: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAzureProjectsResp(views))
}

// ListAzureRepositories godoc
// @Summary     List repositories of an Azure DevOps project
// @Tags        Account
// @Produce     json
// @Param       project_id path string true "Azure project ID"
// @Success     200 {object} repositoriesResp
// @Failure     400 {object} response.Resp "No Azure credential linked"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/account/azure/projects/{project_id}/repositories [GET]
func (h *handler) ListAzureRepositories(c *gin.Context) {
	ctx := c.Request.Context()

	projectID := c.Param("project_id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project_id is required"})
		return
	}

	views, err := h.uc.ListAzureRepositories(ctx, middleware.GetScope(c), account.ListAzureRepositoriesInput{
		ProjectID: projectID,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.ListAzureRepositories: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newRepositoriesResp(views))
}

// ListAzureBranches godoc
// @Summary     List branches of an Azure DevOps repository
// @Tags        Account
// @Produce     json
// @Param       project_id    path string true "Azure project ID"
// @Param       repository_id path string true "Azure repository ID"
// @Success     200 {object} branchesResp
// @Failure     400 {object} response.Resp "No Azure credential linked"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/account/azure/projects/{project_id}/repositories/{repository_id}/branches [GET]
func (h *handler) ListAzureBranches(c *gin.Context) {
	ctx := c.Request.Context()

	projectID := c.Param("project_id")
	repositoryID := c.Param("repository_id")
	if projectID == "" || repositoryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project_id and repository_id are required"})
		return
	}

	branches, err := h.uc.ListAzureBranches(ctx, middleware.GetScope(c), account.ListAzureBranchesInput{
		ProjectID:    projectID,
		RepositoryID: repositoryID,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.ListAzureBranches: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, branchesResp{Branches: branches})
}
