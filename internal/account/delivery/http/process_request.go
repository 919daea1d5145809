package http

import (
	"github.com/gin-gonic/gin"
)

// processLinkGitHubReq binds and validates the GitHub link body.
func (h *handler) processLinkGitHubReq(c *gin.Context) (linkGitHubReq, error) {
	var req linkGitHubReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processLinkGitLabReq binds and validates the GitLab link body.
func (h *handler) processLinkGitLabReq(c *gin.Context) (linkGitLabReq, error) {
	var req linkGitLabReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processLinkAzureReq binds and validates the Azure link body.
func (h *handler) processLinkAzureReq(c *gin.Context) (linkAzureReq, error) {
	var req linkAzureReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
