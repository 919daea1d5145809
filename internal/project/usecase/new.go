package usecase

import (
	projectRepo "codeatlas-gateway/internal/project/repository"
	"codeatlas-gateway/pkg/log"
)

// implUseCase is the private implementation of project.UseCase.
type implUseCase struct {
	repo     projectRepo.Repository
	analysis AnalysisService
	l        log.Logger
}

// New creates a new project UseCase implementation.
func New(repo projectRepo.Repository, analysisService AnalysisService, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		analysis: analysisService,
		l:        l,
	}
}
