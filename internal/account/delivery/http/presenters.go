package http

import (
	"codeatlas-gateway/internal/account"
)

// --- Request DTOs ---

type linkGitHubReq struct {
	Token string `json:"token" binding:"required"`
}

func (r linkGitHubReq) validate() error { return nil }

func (r linkGitHubReq) toInput() account.LinkGitHubInput {
	return account.LinkGitHubInput{Token: r.Token}
}

type linkGitLabReq struct {
	Token string `json:"token" binding:"required"`
}

func (r linkGitLabReq) validate() error { return nil }

func (r linkGitLabReq) toInput() account.LinkGitLabInput {
	return account.LinkGitLabInput{Token: r.Token}
}

type linkAzureReq struct {
	PAT          string `json:"pat"          binding:"required"`
	Organization string `json:"organization" binding:"required"`
}

func (r linkAzureReq) validate() error { return nil }

func (r linkAzureReq) toInput() account.LinkAzureInput {
	return account.LinkAzureInput{
		PAT:          r.PAT,
		Organization: r.Organization,
	}
}

// --- Response DTOs ---

type repositoryResp struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	URL           string `json:"url,omitempty"`
	DefaultBranch string `json:"default_branch,omitempty"`
}

type repositoriesResp struct {
	Repositories []repositoryResp `json:"repositories"`
}

func (h *handler) newRepositoriesResp(views []account.RepositoryView) repositoriesResp {
	repos := make([]repositoryResp, len(views))
	for i, v := range views {
		repos[i] = repositoryResp{
			ID:            v.ID,
			Name:          v.Name,
			URL:           v.URL,
			DefaultBranch: v.DefaultBranch,
		}
	}
	return repositoriesResp{Repositories: repos}
}

type azureProjectResp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type azureProjectsResp struct {
	Projects []azureProjectResp `json:"projects"`
}

func (h *handler) newAzureProjectsResp(views []account.AzureProjectView) azureProjectsResp {
	projects := make([]azureProjectResp, len(views))
	for i, v := range views {
		projects[i] = azureProjectResp{ID: v.ID, Name: v.Name}
	}
	return azureProjectsResp{Projects: projects}
}

type branchesResp struct {
	Branches []string `json:"branches"`
}
