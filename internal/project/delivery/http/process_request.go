package http

import (
	"github.com/gin-gonic/gin"
)

// processInitializeReq binds and validates the project creation body.
func (h *handler) processInitializeReq(c *gin.Context) (initializeReq, error) {
	var req initializeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processAddCollaboratorReq binds and validates the collaborator add body.
func (h *handler) processAddCollaboratorReq(c *gin.Context) (addCollaboratorReq, error) {
	var req addCollaboratorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processRemoveCollaboratorReq binds and validates the collaborator remove body.
func (h *handler) processRemoveCollaboratorReq(c *gin.Context) (removeCollaboratorReq, error) {
	var req removeCollaboratorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
