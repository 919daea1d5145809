package usecase

import (
	"context"

	"codeatlas-gateway/internal/model"
	"codeatlas-gateway/internal/project"
)

// GenerateSummary triggers the downstream summary pipeline. The summary is
// delivered out-of-band, so success here only means the trigger landed.
func (uc *implUseCase) GenerateSummary(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.analysis.GenerateSummary(ctx, sc.Email, id); err != nil {
		uc.l.Errorf(ctx, "uc.GenerateSummary: project %s: %v", id, err)
		return err
	}
	return nil
}

// GenerateDiagram returns the project's mermaid architecture diagram.
func (uc *implUseCase) GenerateDiagram(ctx context.Context, sc model.Scope, id string) (project.DiagramOutput, error) {
	mermaid, err := uc.analysis.GenerateDiagram(ctx, sc.Email, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GenerateDiagram: project %s: %v", id, err)
		return project.DiagramOutput{}, err
	}
	return project.DiagramOutput{Mermaid: mermaid}, nil
}
