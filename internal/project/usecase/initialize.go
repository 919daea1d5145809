package usecase

import (
	"context"
	"strings"

	"codeatlas-gateway/internal/model"
	"codeatlas-gateway/internal/project"
	projectRepo "codeatlas-gateway/internal/project/repository"
)

// Initialize creates the project downstream first so the analysis service
// assigns the canonical id, then records the local registry row keyed by it.
func (uc *implUseCase) Initialize(ctx context.Context, sc model.Scope, input project.InitializeInput) (project.InitializeOutput, error) {
	name := strings.TrimSpace(input.ProjectName)
	if name == "" {
		return project.InitializeOutput{}, project.ErrNameRequired
	}

	projectID, err := uc.analysis.InitializeProject(ctx, sc.Email, name, input.ProjectDescription, input.Collaborators)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Initialize: downstream create: %v", err)
		return project.InitializeOutput{}, err
	}

	created, err := uc.repo.CreateProject(ctx, projectRepo.CreateProjectOptions{
		ID:          projectID,
		CreatedBy:   sc.UserID,
		ProjectName: name,
		Source:      model.SourceManual,
	})
	if err != nil {
		// The downstream project exists but the local row does not; the
		// next List call still shows it (merged from downstream), so log
		// and fail rather than trying to roll back.
		uc.l.Errorf(ctx, "uc.Initialize: local row for project %s: %v", projectID, err)
		return project.InitializeOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Initialize: project %s created by user %d", projectID, sc.UserID)
	return project.InitializeOutput{Project: created}, nil
}
