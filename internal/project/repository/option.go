package repository

import "codeatlas-gateway/internal/model"

// CreateProjectOptions holds parameters for inserting a new Project. The ID
// comes from the analysis service, never generated locally.
type CreateProjectOptions struct {
	ID          string
	CreatedBy   int64
	ProjectName string
	Source      model.Source
}

// GetOneProjectOptions holds alternative match keys for fetching a single
// Project. Non-empty fields are combined with OR: webhook deliveries carry a
// hook id and payload URLs that may or may not have a .git suffix, so the
// caller passes every candidate.
type GetOneProjectOptions struct {
	ID             string
	WebhookID      string
	RepositoryURLs []string
}

// UpdateSourceOptions records branch/source/repository bookkeeping after a
// codebase upload or sync.
type UpdateSourceOptions struct {
	ID            string
	Source        model.Source
	BranchName    string
	RepositoryURL string
}

// UpdateCommitOptions holds the latest-commit fields written after a
// successful relay.
type UpdateCommitOptions struct {
	ID            string
	CommitHash    string
	CommitMessage string
}

// UpdateWebhookOptions holds the registrar result. All four fields are
// persisted atomically; a partial write would desynchronize signature
// verification from the registered secret.
type UpdateWebhookOptions struct {
	ID            string
	WebhookID     string
	WebhookSecret string
	RepositoryURL string
	BranchName    string
}
