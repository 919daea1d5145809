package account

import (
	"context"

	"codeatlas-gateway/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// LinkGitHub stores the caller's GitHub token. GitHub tokens are
	// exercised on first use, not validated up front.
	LinkGitHub(ctx context.Context, sc model.Scope, input LinkGitHubInput) error
	// LinkGitLab validates the token against the provider before storing
	// it; an invalid token also clears any previously stored one.
	LinkGitLab(ctx context.Context, sc model.Scope, input LinkGitLabInput) error
	// LinkAzure validates the PAT against the organization before storing
	// both; an invalid PAT also clears any previously stored credential.
	LinkAzure(ctx context.Context, sc model.Scope, input LinkAzureInput) error

	// ListGitLabRepositories lists repositories the linked GitLab token
	// can read.
	ListGitLabRepositories(ctx context.Context, sc model.Scope) ([]RepositoryView, error)
	// ListAzureProjects lists projects in the linked Azure organization.
	ListAzureProjects(ctx context.Context, sc model.Scope) ([]AzureProjectView, error)
	ListAzureRepositories(ctx context.Context, sc model.Scope, input ListAzureRepositoriesInput) ([]RepositoryView, error)
	ListAzureBranches(ctx context.Context, sc model.Scope, input ListAzureBranchesInput) ([]string, error)
}
