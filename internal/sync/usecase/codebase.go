package usecase

import (
	"context"
	"fmt"

	"codeatlas-gateway/internal/model"
	projectRepo "codeatlas-gateway/internal/project/repository"
	"codeatlas-gateway/internal/sync"
	"codeatlas-gateway/pkg/analysis"
)

// UploadCodebase relays the first codebase of a project to the analysis
// service.
func (uc *implUseCase) UploadCodebase(ctx context.Context, sc model.Scope, input sync.CodebaseInput) (sync.CodebaseOutput, error) {
	return uc.handleCodebase(ctx, sc, input, analysis.EndpointAddCodebase)
}

// SyncCodebase re-relays a project's codebase after its source changed.
func (uc *implUseCase) SyncCodebase(ctx context.Context, sc model.Scope, input sync.CodebaseInput) (sync.CodebaseOutput, error) {
	return uc.handleCodebase(ctx, sc, input, analysis.EndpointUpdateCodebase)
}

// handleCodebase is the shared interactive pipeline: validate the input,
// obtain the archive (direct upload or provider download), relay it
// downstream, then record the project's new source. All validation happens
// before any network call.
func (uc *implUseCase) handleCodebase(ctx context.Context, sc model.Scope, input sync.CodebaseInput, endpoint string) (sync.CodebaseOutput, error) {
	project, err := uc.projects.GetOneProject(ctx, projectRepo.GetOneProjectOptions{ID: input.ProjectID})
	if err != nil {
		return sync.CodebaseOutput{State: sync.StateFailed}, err
	}
	if project.ID == "" {
		return sync.CodebaseOutput{State: sync.StateFailed}, sync.ErrProjectNotFound
	}

	if input.Source == model.SourceManual {
		if err := uc.validateArchive(input.Archive); err != nil {
			return sync.CodebaseOutput{State: sync.StateRejected}, err
		}
	}

	user, err := uc.users.GetOneUser(ctx, userGetOptions(sc.UserID))
	if err != nil {
		return sync.CodebaseOutput{State: sync.StateFailed}, err
	}
	if user.ID == 0 {
		return sync.CodebaseOutput{State: sync.StateFailed}, sync.ErrUserNotFound
	}

	archive := input.Archive
	if input.Source != model.SourceManual {
		archive, err = uc.fetchArchive(ctx, user, input)
		if err != nil {
			uc.l.Errorf(ctx, "uc.handleCodebase: fetch %s archive for project %s: %v", input.Source, project.ID, err)
			return sync.CodebaseOutput{State: sync.StateFailed}, fmt.Errorf("%w: %w", sync.ErrDownloadFailed, err)
		}
	}

	details, err := uc.relay.UploadCodebase(ctx, analysis.UploadInput{
		Endpoint:  endpoint,
		Email:     user.Email,
		ProjectID: project.ID,
		CommitID:  analysis.CommitIDManual,
		Source:    string(input.Source),
		Filename:  input.ArchiveName,
		Archive:   archive,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.handleCodebase: relay for project %s: %v", project.ID, err)
		return sync.CodebaseOutput{State: sync.StateFailed}, fmt.Errorf("%w: %w", sync.ErrRelayFailed, err)
	}

	if err := uc.projects.UpdateProjectSource(ctx, projectRepo.UpdateSourceOptions{
		ID:            project.ID,
		Source:        input.Source,
		BranchName:    input.Branch,
		RepositoryURL: input.RepositoryURL,
	}); err != nil {
		return sync.CodebaseOutput{State: sync.StateFailed, Details: details}, err
	}

	// Private GitHub repositories never reach the gateway through public
	// webhook defaults; register one now so future pushes sync themselves.
	if input.Source == model.SourceGitHub && input.IsPrivateRepository && !project.HasWebhook() {
		if _, err := uc.RegisterWebhook(ctx, sc, sync.RegisterWebhookInput{
			ProjectID:     project.ID,
			RepositoryURL: input.RepositoryURL,
			Branch:        input.Branch,
		}); err != nil {
			uc.l.Errorf(ctx, "uc.handleCodebase: webhook registration for project %s: %v", project.ID, err)
		}
	}

	uc.l.Infof(ctx, "uc.handleCodebase: project %s relayed from %s", project.ID, input.Source)
	return sync.CodebaseOutput{State: sync.StateCommitted, Details: details}, nil
}

// validateArchive bounds and sniffs a manually uploaded archive before any
// byte leaves the gateway.
func (uc *implUseCase) validateArchive(archive []byte) error {
	if len(archive) == 0 {
		return sync.ErrInvalidArchive
	}
	if size := int64(len(archive)); size > uc.cfg.MaxArchiveBytes {
		return fmt.Errorf("%w: %d bytes exceeds limit of %d", sync.ErrArchiveTooLarge, size, uc.cfg.MaxArchiveBytes)
	}
	if !isZipArchive(archive) {
		return sync.ErrInvalidArchive
	}
	return nil
}

// fetchArchive downloads the repository archive from the provider named in
// the input, using the caller's stored credential.
func (uc *implUseCase) fetchArchive(ctx context.Context, user model.User, input sync.CodebaseInput) ([]byte, error) {
	switch input.Source {
	case model.SourceGitHub:
		return uc.github.DownloadRepository(ctx, input.RepositoryURL, input.Branch, user.GithubToken)
	case model.SourceGitLab:
		if user.GitlabToken == "" {
			return nil, sync.ErrMissingCredential
		}
		return uc.gitlab.DownloadRepository(ctx, input.RepositoryURL, input.Branch, user.GitlabToken)
	case model.SourceAzure:
		if user.AzureAccessToken == "" || user.DefaultAzureOrganization == "" {
			return nil, sync.ErrMissingCredential
		}
		// For azure sources RepositoryURL carries "project/repositoryId".
		azProject, repoID, err := splitAzurePath(input.RepositoryURL)
		if err != nil {
			return nil, err
		}
		return uc.azure.DownloadRepository(ctx, user.AzureAccessToken, user.DefaultAzureOrganization, azProject, repoID, input.Branch)
	default:
		return nil, fmt.Errorf("unsupported source %q", input.Source)
	}
}
