package project

import (
	"encoding/json"

	"codeatlas-gateway/internal/model"
)

// --- UseCase Inputs ---

type InitializeInput struct {
	ProjectName        string
	ProjectDescription string
	// Collaborators maps email to role, forwarded to the analysis service
	// at creation time.
	Collaborators map[string]string
}

type AddCollaboratorInput struct {
	ProjectID     string
	Collaborators map[string]string
}

type RemoveCollaboratorInput struct {
	ProjectID string
	Email     string
}

// --- UseCase Outputs ---

type InitializeOutput struct {
	Project model.Project
}

// ProjectView merges the analysis service's listing with the gateway's
// local sync state for one project.
type ProjectView struct {
	ID                  string
	ProjectName         string
	ProjectDescription  string
	Role                string
	Source              model.Source
	RepositoryURL       string
	BranchName          string
	LatestCommitHash    string
	LatestCommitMessage string
	LatestCommitURL     string
	HasWebhook          bool
}

type ListOutput struct {
	Projects []ProjectView
}

type DiagramOutput struct {
	Mermaid string
}

type CollaboratorsOutput struct {
	Collaborators json.RawMessage
}
