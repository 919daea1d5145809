package model

import "time"

// Source identifies where a project's codebase comes from.
type Source string

const (
	SourceGitHub Source = "github"
	SourceGitLab Source = "gitlab"
	SourceAzure  Source = "azure"
	SourceManual Source = "manual"
)

// ParseSource maps a request-supplied tag to a Source, defaulting to manual.
func ParseSource(s string) Source {
	switch Source(s) {
	case SourceGitHub, SourceGitLab, SourceAzure:
		return Source(s)
	default:
		return SourceManual
	}
}

// Project is the registry record for a codebase tracked by the gateway.
// The ID is assigned by the analysis service, not generated locally.
//
// Invariant: WebhookSecret is set if and only if WebhookID is set; the
// registrar writes both together with RepositoryURL and BranchName.
type Project struct {
	ID                  string
	CreatedBy           int64
	ProjectName         string
	Source              Source
	RepositoryURL       string
	BranchName          string
	WebhookID           string
	WebhookSecret       string
	LatestCommitHash    string
	LatestCommitMessage string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// HasWebhook reports whether a provider-side webhook is registered.
func (p Project) HasWebhook() bool {
	return p.WebhookID != ""
}
