package http

import (
	"encoding/json"

	"codeatlas-gateway/internal/model"
	"codeatlas-gateway/internal/sync"
)

// --- Request DTOs ---

// codebaseReq is a multipart form: either a zip file or a repository
// reference, never both.
type codebaseReq struct {
	ProjectID     string `form:"project_id"     binding:"required"`
	RepositoryURL string `form:"repo_url"`
	Branch        string `form:"branch_name"`
	Source        string `form:"source"`
	IsPrivate     bool   `form:"is_private"`

	archive     []byte
	archiveName string
}

func (r codebaseReq) validate() error {
	if len(r.archive) == 0 && r.RepositoryURL == "" {
		return sync.ErrMissingPayload
	}
	return nil
}

func (r codebaseReq) toInput() sync.CodebaseInput {
	source := model.ParseSource(r.Source)
	if len(r.archive) > 0 {
		source = model.SourceManual
	}
	return sync.CodebaseInput{
		ProjectID:           r.ProjectID,
		RepositoryURL:       r.RepositoryURL,
		Branch:              r.Branch,
		Source:              source,
		IsPrivateRepository: r.IsPrivate,
		Archive:             r.archive,
		ArchiveName:         r.archiveName,
	}
}

type setupWebhookReq struct {
	ProjectID     string `json:"project_id" binding:"required"`
	RepositoryURL string `json:"repo_url"   binding:"required"`
	Branch        string `json:"branch_name"`
}

func (r setupWebhookReq) validate() error { return nil }

func (r setupWebhookReq) toInput() sync.RegisterWebhookInput {
	return sync.RegisterWebhookInput{
		ProjectID:     r.ProjectID,
		RepositoryURL: r.RepositoryURL,
		Branch:        r.Branch,
	}
}

// setupExistingWebhookReq registers a hook for a project whose repository
// URL and branch are already stored.
type setupExistingWebhookReq struct {
	ProjectID string `json:"project_id" binding:"required"`
}

func (r setupExistingWebhookReq) validate() error { return nil }

func (r setupExistingWebhookReq) toInput() sync.RegisterWebhookInput {
	return sync.RegisterWebhookInput{ProjectID: r.ProjectID}
}

// --- Response DTOs ---

type codebaseResp struct {
	State   string          `json:"state"`
	Details json.RawMessage `json:"details,omitempty"`
}

func (h *handler) newCodebaseResp(out sync.CodebaseOutput) codebaseResp {
	return codebaseResp{
		State:   string(out.State),
		Details: out.Details,
	}
}

type setupWebhookResp struct {
	WebhookID string `json:"webhook_id"`
}

func (h *handler) newSetupWebhookResp(out sync.RegisterWebhookOutput) setupWebhookResp {
	return setupWebhookResp{WebhookID: out.WebhookID}
}
