package usecase

import (
	"context"

	"codeatlas-gateway/internal/model"
	"codeatlas-gateway/internal/project"
)

// Collaborator state lives entirely in the analysis service; these are
// straight proxies with the caller's identity attached.

func (uc *implUseCase) AddCollaborator(ctx context.Context, sc model.Scope, input project.AddCollaboratorInput) error {
	if err := uc.analysis.AddCollaborator(ctx, sc.Email, input.ProjectID, input.Collaborators); err != nil {
		uc.l.Errorf(ctx, "uc.AddCollaborator: project %s: %v", input.ProjectID, err)
		return err
	}
	return nil
}

func (uc *implUseCase) RemoveCollaborator(ctx context.Context, sc model.Scope, input project.RemoveCollaboratorInput) error {
	if err := uc.analysis.RemoveCollaborator(ctx, input.ProjectID, input.Email); err != nil {
		uc.l.Errorf(ctx, "uc.RemoveCollaborator: project %s: %v", input.ProjectID, err)
		return err
	}
	return nil
}

func (uc *implUseCase) GetCollaborators(ctx context.Context, sc model.Scope, id string) (project.CollaboratorsOutput, error) {
	raw, err := uc.analysis.GetCollaborators(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetCollaborators: project %s: %v", id, err)
		return project.CollaboratorsOutput{}, err
	}
	return project.CollaboratorsOutput{Collaborators: raw}, nil
}
