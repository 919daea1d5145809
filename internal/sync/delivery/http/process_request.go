package http

import (
	"io"

	"github.com/gin-gonic/gin"
)

// processCodebaseReq binds the multipart form and reads the optional zip
// file into memory. Size enforcement belongs to the use case so the limit
// applies uniformly to every archive path.
func (h *handler) processCodebaseReq(c *gin.Context) (codebaseReq, error) {
	var req codebaseReq
	if err := c.ShouldBind(&req); err != nil {
		return req, err
	}

	if fh, err := c.FormFile("file"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			return req, err
		}
		defer f.Close()
		req.archive, err = io.ReadAll(f)
		if err != nil {
			return req, err
		}
		req.archiveName = fh.Filename
	}

	return req, req.validate()
}

// processSetupWebhookReq binds and validates the webhook setup request body.
func (h *handler) processSetupWebhookReq(c *gin.Context) (setupWebhookReq, error) {
	var req setupWebhookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSetupExistingWebhookReq binds the existing-project variant.
func (h *handler) processSetupExistingWebhookReq(c *gin.Context) (setupExistingWebhookReq, error) {
	var req setupExistingWebhookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
