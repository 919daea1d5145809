package http

import (
	"encoding/json"

	"codeatlas-gateway/internal/model"
	"codeatlas-gateway/internal/project"
)

// --- Request DTOs ---

type initializeReq struct {
	ProjectName        string            `json:"project_name" binding:"required,min=1,max=255"`
	ProjectDescription string            `json:"project_description" binding:"max=2000"`
	Collaborators      map[string]string `json:"collaborators"`
}

func (r initializeReq) validate() error { return nil }

func (r initializeReq) toInput() project.InitializeInput {
	return project.InitializeInput{
		ProjectName:        r.ProjectName,
		ProjectDescription: r.ProjectDescription,
		Collaborators:      r.Collaborators,
	}
}

type addCollaboratorReq struct {
	ProjectID     string            `json:"project_id"    binding:"required"`
	Collaborators map[string]string `json:"collaborators" binding:"required"`
}

func (r addCollaboratorReq) validate() error { return nil }

func (r addCollaboratorReq) toInput() project.AddCollaboratorInput {
	return project.AddCollaboratorInput{
		ProjectID:     r.ProjectID,
		Collaborators: r.Collaborators,
	}
}

type removeCollaboratorReq struct {
	ProjectID string `json:"project_id" binding:"required"`
	Email     string `json:"email"      binding:"required,email"`
}

func (r removeCollaboratorReq) validate() error { return nil }

func (r removeCollaboratorReq) toInput() project.RemoveCollaboratorInput {
	return project.RemoveCollaboratorInput{
		ProjectID: r.ProjectID,
		Email:     r.Email,
	}
}

// --- Response DTOs ---

type projectResp struct {
	ID                  string       `json:"id"`
	ProjectName         string       `json:"project_name"`
	ProjectDescription  string       `json:"project_description,omitempty"`
	Role                string       `json:"role,omitempty"`
	Source              model.Source `json:"source,omitempty"`
	RepositoryURL       string       `json:"repository_url,omitempty"`
	BranchName          string       `json:"branch_name,omitempty"`
	LatestCommitHash    string       `json:"latest_commit_hash,omitempty"`
	LatestCommitMessage string       `json:"latest_commit_message,omitempty"`
	LatestCommitURL     string       `json:"latest_commit_url,omitempty"`
	HasWebhook          bool         `json:"has_webhook"`
}

type initializeResp struct {
	Project projectResp `json:"project"`
}

func (h *handler) newInitializeResp(out project.InitializeOutput) initializeResp {
	return initializeResp{Project: projectResp{
		ID:          out.Project.ID,
		ProjectName: out.Project.ProjectName,
		Source:      out.Project.Source,
	}}
}

type listResp struct {
	Projects []projectResp `json:"projects"`
}

func (h *handler) newListResp(out project.ListOutput) listResp {
	projects := make([]projectResp, len(out.Projects))
	for i, v := range out.Projects {
		projects[i] = projectResp{
			ID:                  v.ID,
			ProjectName:         v.ProjectName,
			ProjectDescription:  v.ProjectDescription,
			Role:                v.Role,
			Source:              v.Source,
			RepositoryURL:       v.RepositoryURL,
			BranchName:          v.BranchName,
			LatestCommitHash:    v.LatestCommitHash,
			LatestCommitMessage: v.LatestCommitMessage,
			LatestCommitURL:     v.LatestCommitURL,
			HasWebhook:          v.HasWebhook,
		}
	}
	return listResp{Projects: projects}
}

type diagramResp struct {
	Mermaid string `json:"mermaid"`
}

func (h *handler) newDiagramResp(out project.DiagramOutput) diagramResp {
	return diagramResp{Mermaid: out.Mermaid}
}

type collaboratorsResp struct {
	Collaborators json.RawMessage `json:"collaborators"`
}

func (h *handler) newCollaboratorsResp(out project.CollaboratorsOutput) collaboratorsResp {
	return collaboratorsResp{Collaborators: out.Collaborators}
}
