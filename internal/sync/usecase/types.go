package usecase

import (
	"context"
	"encoding/json"

	"codeatlas-gateway/pkg/analysis"
	"codeatlas-gateway/pkg/github"
)

// GithubClient is the subset of pkg/github the orchestrator uses.
type GithubClient interface {
	DownloadRepository(ctx context.Context, repositoryURL, branch, token string) ([]byte, error)
	CreateHook(ctx context.Context, owner, repo, callbackURL, secret, token string) (*github.Hook, error)
	CreateIssueComment(ctx context.Context, owner, repo string, number int, comment, token string) error
	FetchDiff(ctx context.Context, diffURL, token string) ([]byte, error)
}

// GitlabClient is the subset of pkg/gitlab the orchestrator uses.
type GitlabClient interface {
	DownloadRepository(ctx context.Context, repositoryURL, branch, token string) ([]byte, error)
}

// AzureClient is the subset of pkg/azuredevops the orchestrator uses.
type AzureClient interface {
	DownloadRepository(ctx context.Context, pat, organization, projectID, repositoryID, branch string) ([]byte, error)
}

// Relay is the downstream analysis contract the orchestrator uses.
type Relay interface {
	UploadCodebase(ctx context.Context, input analysis.UploadInput) (json.RawMessage, error)
	ReviewDiff(ctx context.Context, email, projectID string, diff []byte) (string, error)
}
