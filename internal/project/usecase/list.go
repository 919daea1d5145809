package usecase

import (
	"context"

	"codeatlas-gateway/internal/model"
	"codeatlas-gateway/internal/project"
)

// List returns the downstream project list enriched with local sync state.
// The analysis service is the source of truth for membership (it includes
// projects shared with the caller); local rows contribute repository,
// commit and webhook columns when present.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (project.ListOutput, error) {
	infos, err := uc.analysis.ListProjects(ctx, sc.Email)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List: downstream list: %v", err)
		return project.ListOutput{}, err
	}
	if len(infos) == 0 {
		return project.ListOutput{Projects: []project.ProjectView{}}, nil
	}

	ids := make([]string, len(infos))
	for i, info := range infos {
		ids[i] = info.ProjectID
	}
	local, err := uc.repo.ListProjectsByIDs(ctx, ids)
	if err != nil {
		return project.ListOutput{}, err
	}
	byID := make(map[string]model.Project, len(local))
	for _, p := range local {
		byID[p.ID] = p
	}

	views := make([]project.ProjectView, len(infos))
	for i, info := range infos {
		view := project.ProjectView{
			ID:                 info.ProjectID,
			ProjectName:        info.ProjectName,
			ProjectDescription: info.ProjectDescription,
			Role:               info.Role,
		}
		if p, ok := byID[info.ProjectID]; ok {
			view.Source = p.Source
			view.RepositoryURL = p.RepositoryURL
			view.BranchName = p.BranchName
			view.LatestCommitHash = p.LatestCommitHash
			view.LatestCommitMessage = p.LatestCommitMessage
			view.LatestCommitURL = commitURL(p)
			view.HasWebhook = p.HasWebhook()
		}
		views[i] = view
	}
	return project.ListOutput{Projects: views}, nil
}

// commitURL builds the provider's web link for the latest synced commit.
func commitURL(p model.Project) string {
	if p.RepositoryURL == "" || p.LatestCommitHash == "" {
		return ""
	}
	return p.RepositoryURL + "/commit/" + p.LatestCommitHash
}
