package project

import (
	"context"

	"codeatlas-gateway/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Initialize asks the analysis service to create the project (it
	// assigns the id), then records the project locally.
	Initialize(ctx context.Context, sc model.Scope, input InitializeInput) (InitializeOutput, error)
	// List merges the analysis service's project list with local sync
	// state (source, commit, webhook presence).
	List(ctx context.Context, sc model.Scope) (ListOutput, error)
	// Delete removes the project downstream first, then locally.
	Delete(ctx context.Context, sc model.Scope, id string) error

	// GenerateSummary triggers the downstream summary pipeline; delivery
	// is out-of-band.
	GenerateSummary(ctx context.Context, sc model.Scope, id string) error
	// GenerateDiagram returns the project's mermaid architecture diagram.
	GenerateDiagram(ctx context.Context, sc model.Scope, id string) (DiagramOutput, error)

	AddCollaborator(ctx context.Context, sc model.Scope, input AddCollaboratorInput) error
	RemoveCollaborator(ctx context.Context, sc model.Scope, input RemoveCollaboratorInput) error
	GetCollaborators(ctx context.Context, sc model.Scope, id string) (CollaboratorsOutput, error)
}
