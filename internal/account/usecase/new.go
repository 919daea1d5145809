package usecase

import (
	userRepo "codeatlas-gateway/internal/user/repository"
	"codeatlas-gateway/pkg/log"
)

// implUseCase is the private implementation of account.UseCase.
type implUseCase struct {
	users  userRepo.Repository
	gitlab GitlabClient
	azure  AzureClient
	l      log.Logger
}

// New creates a new account UseCase implementation.
func New(users userRepo.Repository, gitlabClient GitlabClient, azureClient AzureClient, l log.Logger) *implUseCase {
	return &implUseCase{
		users:  users,
		gitlab: gitlabClient,
		azure:  azureClient,
		l:      l,
	}
}
