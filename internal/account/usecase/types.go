package usecase

import (
	"context"

	"codeatlas-gateway/pkg/azuredevops"
	"codeatlas-gateway/pkg/gitlab"
)

// GitlabClient is the subset of pkg/gitlab the account domain uses.
type GitlabClient interface {
	ValidateToken(ctx context.Context, token string) gitlab.ValidationResult
	ListRepositories(ctx context.Context, token string) ([]gitlab.Repository, error)
}

// AzureClient is the subset of pkg/azuredevops the account domain uses.
type AzureClient interface {
	ValidatePAT(ctx context.Context, pat, organization string) azuredevops.ValidationResult
	ListProjects(ctx context.Context, pat, organization string) ([]azuredevops.Project, error)
	ListRepositories(ctx context.Context, pat, organization, projectID string) ([]azuredevops.Repository, error)
	ListBranches(ctx context.Context, pat, organization, projectID, repositoryID string) ([]azuredevops.Branch, error)
}
