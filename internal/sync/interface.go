package sync

import (
	"context"

	"codeatlas-gateway/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// ProcessPushEvent runs one push delivery through the sync pipeline:
	// resolve project, verify signature, fetch the archive and relay it,
	// then update commit bookkeeping.
	ProcessPushEvent(ctx context.Context, input ProcessPushInput) (ProcessPushOutput, error)
	// ProcessPullRequestEvent verifies the delivery and, for opened pull
	// requests, schedules the best-effort review sub-flow.
	ProcessPullRequestEvent(ctx context.Context, input ProcessPullRequestInput) (ProcessPullRequestOutput, error)

	// UploadCodebase is the first codebase upload of a project.
	UploadCodebase(ctx context.Context, sc model.Scope, input CodebaseInput) (CodebaseOutput, error)
	// SyncCodebase re-uploads a project's codebase through the same pipeline.
	SyncCodebase(ctx context.Context, sc model.Scope, input CodebaseInput) (CodebaseOutput, error)

	// RegisterWebhook creates the provider-side webhook and persists the
	// registration on the project.
	RegisterWebhook(ctx context.Context, sc model.Scope, input RegisterWebhookInput) (RegisterWebhookOutput, error)
}
