package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"

	"codeatlas-gateway/internal/model"
	projectRepo "codeatlas-gateway/internal/project/repository"
	"codeatlas-gateway/internal/sync"
	"codeatlas-gateway/pkg/github"
)

const webhookCallbackPath = "/api/webhook/github"

// RegisterWebhook creates a push/pull_request webhook on the project's
// GitHub repository and persists the registration. The secret is generated
// here, sent to the provider, and stored with the hook id in one write — a
// project never holds a secret the provider does not know, or vice versa.
func (uc *implUseCase) RegisterWebhook(ctx context.Context, sc model.Scope, input sync.RegisterWebhookInput) (sync.RegisterWebhookOutput, error) {
	project, err := uc.projects.GetOneProject(ctx, projectRepo.GetOneProjectOptions{ID: input.ProjectID})
	if err != nil {
		return sync.RegisterWebhookOutput{}, err
	}
	if project.ID == "" {
		return sync.RegisterWebhookOutput{}, sync.ErrProjectNotFound
	}
	if project.HasWebhook() {
		return sync.RegisterWebhookOutput{}, sync.ErrWebhookExists
	}

	repositoryURL := input.RepositoryURL
	if repositoryURL == "" {
		repositoryURL = project.RepositoryURL
	}
	branch := input.Branch
	if branch == "" {
		branch = project.BranchName
	}

	user, err := uc.users.GetOneUser(ctx, userGetOptions(sc.UserID))
	if err != nil {
		return sync.RegisterWebhookOutput{}, err
	}
	if user.ID == 0 {
		return sync.RegisterWebhookOutput{}, sync.ErrUserNotFound
	}
	if user.GithubToken == "" {
		return sync.RegisterWebhookOutput{}, sync.ErrMissingCredential
	}

	owner, repo, err := github.SplitRepositoryURL(repositoryURL)
	if err != nil {
		return sync.RegisterWebhookOutput{}, err
	}

	secret, err := newWebhookSecret()
	if err != nil {
		return sync.RegisterWebhookOutput{}, err
	}

	hook, err := uc.github.CreateHook(ctx, owner, repo, uc.cfg.AppBaseURL+webhookCallbackPath, secret, user.GithubToken)
	if err != nil {
		uc.l.Errorf(ctx, "uc.RegisterWebhook: hook creation for project %s: %v", project.ID, err)
		return sync.RegisterWebhookOutput{}, err
	}
	webhookID := strconv.FormatInt(hook.ID, 10)

	if err := uc.projects.UpdateProjectWebhook(ctx, projectRepo.UpdateWebhookOptions{
		ID:            project.ID,
		WebhookID:     webhookID,
		WebhookSecret: secret,
		RepositoryURL: repositoryURL,
		BranchName:    branch,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.RegisterWebhook: persist registration for project %s (hook %s): %v", project.ID, webhookID, err)
		return sync.RegisterWebhookOutput{}, err
	}

	uc.l.Infof(ctx, "uc.RegisterWebhook: project %s registered hook %s on %s/%s", project.ID, webhookID, owner, repo)
	return sync.RegisterWebhookOutput{WebhookID: webhookID}, nil
}

func newWebhookSecret() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate webhook secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
