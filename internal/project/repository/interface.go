package repository

import (
	"context"

	"codeatlas-gateway/internal/model"
)

// Repository is the composed interface for the project registry data store.
type Repository interface {
	ProjectRepository
}

// ProjectRepository defines all data access methods for the Project entity.
type ProjectRepository interface {
	CreateProject(ctx context.Context, opt CreateProjectOptions) (model.Project, error)
	// GetOneProject matches on any non-empty key (OR semantics): id,
	// webhook id, or one of the repository URL candidates. Returns a
	// zero-value Project (ID == "") when nothing matches — never an error.
	GetOneProject(ctx context.Context, opt GetOneProjectOptions) (model.Project, error)
	ListProjectsByIDs(ctx context.Context, ids []string) ([]model.Project, error)
	// UpdateProjectSource records where the project's code now comes from.
	UpdateProjectSource(ctx context.Context, opt UpdateSourceOptions) error
	// UpdateProjectCommit writes the latest-commit bookkeeping in a single
	// conditional UPDATE so racing deliveries cannot interleave reads.
	UpdateProjectCommit(ctx context.Context, opt UpdateCommitOptions) error
	// UpdateProjectWebhook persists the registrar result: webhook id,
	// secret, repository URL and branch are written together or not at all.
	UpdateProjectWebhook(ctx context.Context, opt UpdateWebhookOptions) error
	// UpdateProjectWebhookID backfills only the provider-assigned hook id
	// (first-contact deliveries for hooks registered out-of-band).
	UpdateProjectWebhookID(ctx context.Context, id, webhookID string) error
	DeleteProject(ctx context.Context, id string) error
}
