package usecase

import (
	"context"
	"strconv"

	"codeatlas-gateway/internal/account"
	"codeatlas-gateway/internal/model"
	userRepo "codeatlas-gateway/internal/user/repository"
)

func (uc *implUseCase) ListGitLabRepositories(ctx context.Context, sc model.Scope) ([]account.RepositoryView, error) {
	user, err := uc.getUser(ctx, sc)
	if err != nil {
		return nil, err
	}
	if user.GitlabToken == "" {
		return nil, account.ErrNotLinked
	}

	repos, err := uc.gitlab.ListRepositories(ctx, user.GitlabToken)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListGitLabRepositories: user %d: %v", sc.UserID, err)
		return nil, err
	}

	views := make([]account.RepositoryView, len(repos))
	for i, r := range repos {
		views[i] = account.RepositoryView{
			ID:            strconv.FormatInt(r.ID, 10),
			Name:          r.FullName,
			URL:           r.HTMLURL,
			DefaultBranch: r.DefaultBranch,
		}
	}
	return views, nil
}

func (uc *implUseCase) ListAzureProjects(ctx context.Context, sc model.Scope) ([]account.AzureProjectView, error) {
	user, err := uc.getAzureUser(ctx, sc)
	if err != nil {
		return nil, err
	}

	projects, err := uc.azure.ListProjects(ctx, user.AzureAccessToken, user.DefaultAzureOrganization)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListAzureProjects: user %d: %v", sc.UserID, err)
		return nil, err
	}

	views := make([]account.AzureProjectView, len(projects))
	for i, p := range projects {
		views[i] = account.AzureProjectView{ID: p.ID, Name: p.Name}
	}
	return views, nil
}

func (uc *implUseCase) ListAzureRepositories(ctx context.Context, sc model.Scope, input account.ListAzureRepositoriesInput) ([]account.RepositoryView, error) {
	user, err := uc.getAzureUser(ctx, sc)
	if err != nil {
		return nil, err
	}

	repos, err := uc.azure.ListRepositories(ctx, user.AzureAccessToken, user.DefaultAzureOrganization, input.ProjectID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListAzureRepositories: user %d project %s: %v", sc.UserID, input.ProjectID, err)
		return nil, err
	}

	views := make([]account.RepositoryView, len(repos))
	for i, r := range repos {
		views[i] = account.RepositoryView{
			ID:            r.ID,
			Name:          r.Name,
			URL:           r.WebURL,
			DefaultBranch: r.DefaultBranch,
		}
	}
	return views, nil
}

func (uc *implUseCase) ListAzureBranches(ctx context.Context, sc model.Scope, input account.ListAzureBranchesInput) ([]string, error) {
	user, err := uc.getAzureUser(ctx, sc)
	if err != nil {
		return nil, err
	}

	branches, err := uc.azure.ListBranches(ctx, user.AzureAccessToken, user.DefaultAzureOrganization, input.ProjectID, input.RepositoryID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListAzureBranches: user %d repo %s: %v", sc.UserID, input.RepositoryID, err)
		return nil, err
	}

	names := make([]string, len(branches))
	for i, b := range branches {
		names[i] = b.Name
	}
	return names, nil
}

func (uc *implUseCase) getUser(ctx context.Context, sc model.Scope) (model.User, error) {
	user, err := uc.users.GetOneUser(ctx, userRepo.GetOneUserOptions{ID: sc.UserID})
	if err != nil {
		return model.User{}, err
	}
	if user.ID == 0 {
		return model.User{}, account.ErrUserNotFound
	}
	return user, nil
}

func (uc *implUseCase) getAzureUser(ctx context.Context, sc model.Scope) (model.User, error) {
	user, err := uc.getUser(ctx, sc)
	if err != nil {
		return model.User{}, err
	}
	if user.AzureAccessToken == "" || user.DefaultAzureOrganization == "" {
		return model.User{}, account.ErrNotLinked
	}
	return user, nil
}
