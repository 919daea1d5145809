package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codeatlas-gateway/internal/middleware"
	"codeatlas-gateway/pkg/response"
)

// Initialize godoc
// @Summary     Create a project
// @Description Creates the project in the analysis service (which assigns the id) and records it locally.
// @Tags        Project
// @Accept      json
// @Produce     json
// @Param       body body initializeReq true "Project data"
// @Success     200 {object} initializeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/projects [POST]
func (h *handler) Initialize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processInitializeReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.Initialize(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Initialize: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newInitializeResp(output))
}

// List godoc
// @Summary     List projects
// @Description Returns the caller's projects with sync state (source, latest commit, webhook presence).
// @Tags        Project
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/projects [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Delete godoc
// @Summary     Delete a project
// @Description Removes the project from the analysis service, then locally.
// @Tags        Project
// @Produce     json
// @Param       id path string true "Project ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/projects/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.Delete(ctx, middleware.GetScope(c), id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// GenerateSummary godoc
// @Summary     Trigger a project summary
// @Description Starts the downstream summary pipeline; the result is delivered out-of-band.
// @Tags        Project
// @Produce     json
// @Param       id path string true "Project ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/projects/{id}/summary [POST]
func (h *handler) GenerateSummary(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.GenerateSummary(ctx, middleware.GetScope(c), id); err != nil {
		h.l.Errorf(ctx, "uc.GenerateSummary: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// GenerateDiagram godoc
// @Summary     Get the project architecture diagram
// @Description Returns the mermaid diagram generated by the analysis service.
// @Tags        Project
// @Produce     json
// @Param       id path string true "Project ID"
// @Success     200 {object} diagramResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/projects/{id}/diagram [GET]
func (h *handler) GenerateDiagram(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.GenerateDiagram(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateDiagram: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDiagramResp(output))
}

// AddCollaborator godoc
// @Summary     Add project collaborators
// @Tags        Project
// @Accept      json
// @Produce     json
// @Param       body body addCollaboratorReq true "Collaborators by email"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/projects/collaborators [POST]
func (h *handler) AddCollaborator(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddCollaboratorReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	if err := h.uc.AddCollaborator(ctx, middleware.GetScope(c), req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.AddCollaborator: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// RemoveCollaborator godoc
// @Summary     Remove a project collaborator
// @Tags        Project
// @Accept      json
// @Produce     json
// @Param       body body removeCollaboratorReq true "Project and collaborator email"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/projects/collaborators [DELETE]
func (h *handler) RemoveCollaborator(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRemoveCollaboratorReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	if err := h.uc.RemoveCollaborator(ctx, middleware.GetScope(c), req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.RemoveCollaborator: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// GetCollaborators godoc
// @Summary     List project collaborators
// @Tags        Project
// @Produce     json
// @Param       id path string true "Project ID"
// @Success     200 {object} collaboratorsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/projects/{id}/collaborators [GET]
func (h *handler) GetCollaborators(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.GetCollaborators(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetCollaborators: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCollaboratorsResp(output))
}
