package usecase

import (
	"context"

	"codeatlas-gateway/internal/model"
	"codeatlas-gateway/internal/project"
	projectRepo "codeatlas-gateway/internal/project/repository"
)

// Delete removes the project downstream first; the local row only goes
// when the downstream delete succeeded, so a failed call leaves both sides
// intact.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	p, err := uc.repo.GetOneProject(ctx, projectRepo.GetOneProjectOptions{ID: id})
	if err != nil {
		return err
	}
	if p.ID == "" {
		return project.ErrNotFound
	}

	if err := uc.analysis.DeleteProject(ctx, sc.Email, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete: downstream delete for project %s: %v", id, err)
		return err
	}

	if err := uc.repo.DeleteProject(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete: local row for project %s: %v", id, err)
		return err
	}

	uc.l.Infof(ctx, "uc.Delete: project %s deleted by user %d", id, sc.UserID)
	return nil
}
