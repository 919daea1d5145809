package usecase

import (
	"context"
	"encoding/json"

	"codeatlas-gateway/pkg/analysis"
)

// AnalysisService is the subset of pkg/analysis the project domain uses.
type AnalysisService interface {
	InitializeProject(ctx context.Context, ownerEmail, projectName, projectDescription string, collaborators map[string]string) (string, error)
	ListProjects(ctx context.Context, email string) ([]analysis.ProjectInfo, error)
	DeleteProject(ctx context.Context, email, projectID string) error
	GenerateSummary(ctx context.Context, email, projectID string) error
	GenerateDiagram(ctx context.Context, email, projectID string) (string, error)
	AddCollaborator(ctx context.Context, ownerEmail, projectID string, collaborators map[string]string) error
	RemoveCollaborator(ctx context.Context, projectID, email string) error
	GetCollaborators(ctx context.Context, projectID string) (json.RawMessage, error)
}
