package webhook

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"codeatlas-gateway/internal/model"
	"codeatlas-gateway/internal/sync"
	pkgResponse "codeatlas-gateway/pkg/response"
)

// HandleGitHubWebhook processes GitHub webhook events. Processing is
// synchronous: the provider's delivery log shows the real outcome, and a
// 500 here makes GitHub redeliver.
func (h *Handler) HandleGitHubWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "webhook.HandleGitHubWebhook: %v", err)
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	if err := h.security.CheckRateLimit("github"); err != nil {
		h.l.Warnf(ctx, "webhook.HandleGitHubWebhook: %v", err)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(body) == 0 {
		h.l.Errorf(ctx, "webhook.HandleGitHubWebhook: read body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty payload"})
		return
	}

	signature := c.GetHeader("X-Hub-Signature-256")
	webhookID := c.GetHeader("X-GitHub-Hook-ID")
	eventType := c.GetHeader("X-GitHub-Event")

	var event *model.WebhookEvent
	switch eventType {
	case "push":
		event, err = h.githubParser.ParsePushEvent(body)
	case "pull_request":
		event, err = h.githubParser.ParsePullRequestEvent(body)
	default:
		h.l.Infof(ctx, "webhook.HandleGitHubWebhook: unsupported event type %q", eventType)
		pkgResponse.OK(c, gin.H{"status": "ignored", "reason": "unsupported event type"})
		return
	}
	if err != nil {
		h.l.Errorf(ctx, "webhook.HandleGitHubWebhook: parse %s event: %v", eventType, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed payload"})
		return
	}
	event.WebhookID = webhookID

	switch eventType {
	case "push":
		h.dispatchPush(c, *event, body, signature)
	case "pull_request":
		h.dispatchPullRequest(c, *event, body, signature)
	}
}

func (h *Handler) dispatchPush(c *gin.Context, event model.WebhookEvent, body []byte, signature string) {
	ctx := c.Request.Context()

	output, err := h.syncUC.ProcessPushEvent(ctx, sync.ProcessPushInput{
		Event:     event,
		Payload:   body,
		Signature: signature,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	if output.State == sync.StateIgnored {
		pkgResponse.OK(c, gin.H{"status": "ignored"})
		return
	}
	h.l.Infof(ctx, "webhook.dispatchPush: project %s synced", output.ProjectID)
	pkgResponse.OK(c, gin.H{"status": "synced", "project_id": output.ProjectID})
}

func (h *Handler) dispatchPullRequest(c *gin.Context, event model.WebhookEvent, body []byte, signature string) {
	output, err := h.syncUC.ProcessPullRequestEvent(c.Request.Context(), sync.ProcessPullRequestInput{
		Event:     event,
		Payload:   body,
		Signature: signature,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	if output.Scheduled {
		pkgResponse.OK(c, gin.H{"status": "review scheduled"})
		return
	}
	pkgResponse.OK(c, gin.H{"status": "ignored"})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	ctx := c.Request.Context()
	switch {
	case errors.Is(err, sync.ErrMissingSignature), errors.Is(err, sync.ErrInvalidSignature):
		h.l.Warnf(ctx, "webhook.respondError: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
	default:
		h.l.Errorf(ctx, "webhook.respondError: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "webhook processing failed"})
	}
}
