package usecase

import (
	projectRepo "codeatlas-gateway/internal/project/repository"
	"codeatlas-gateway/internal/sync"
	userRepo "codeatlas-gateway/internal/user/repository"
	"codeatlas-gateway/pkg/log"
)

// Config holds the orchestrator's tunables.
type Config struct {
	// AppBaseURL is this gateway's public URL, used as the webhook
	// callback target during registration.
	AppBaseURL string
	// MaxArchiveBytes bounds manually uploaded archives. Zero means the
	// default of 150 MB.
	MaxArchiveBytes int64
}

const defaultMaxArchiveBytes = int64(150 * 1024 * 1024)

// implUseCase is the private implementation of sync.UseCase.
type implUseCase struct {
	cfg      Config
	projects projectRepo.Repository
	users    userRepo.Repository
	verifier sync.SignatureVerifier
	github   GithubClient
	gitlab   GitlabClient
	azure    AzureClient
	relay    Relay
	l        log.Logger

	// runAsync launches the best-effort PR review sub-flow. Indirected so
	// tests can run it inline.
	runAsync func(fn func())
}

// New creates a new sync UseCase implementation.
func New(
	cfg Config,
	projects projectRepo.Repository,
	users userRepo.Repository,
	verifier sync.SignatureVerifier,
	githubClient GithubClient,
	gitlabClient GitlabClient,
	azureClient AzureClient,
	relay Relay,
	l log.Logger,
) *implUseCase {
	if cfg.MaxArchiveBytes <= 0 {
		cfg.MaxArchiveBytes = defaultMaxArchiveBytes
	}
	return &implUseCase{
		cfg:      cfg,
		projects: projects,
		users:    users,
		verifier: verifier,
		github:   githubClient,
		gitlab:   gitlabClient,
		azure:    azureClient,
		relay:    relay,
		l:        l,
		runAsync: func(fn func()) { go fn() },
	}
}

// SetAsyncRunner overrides how the PR review sub-flow is launched (tests).
func (uc *implUseCase) SetAsyncRunner(run func(fn func())) {
	uc.runAsync = run
}
