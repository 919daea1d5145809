package webhook

import (
	"codeatlas-gateway/internal/sync"
	pkgLog "codeatlas-gateway/pkg/log"
)

type Handler struct {
	syncUC       sync.UseCase
	security     *SecurityValidator
	githubParser *GitHubWebhookParser
	l            pkgLog.Logger
}

func NewHandler(
	syncUC sync.UseCase,
	security *SecurityValidator,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		syncUC:       syncUC,
		security:     security,
		githubParser: NewGitHubParser(),
		l:            l,
	}
}
