package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"codeatlas-gateway/internal/model"
	"codeatlas-gateway/internal/project"
	projectRepo "codeatlas-gateway/internal/project/repository"
	"codeatlas-gateway/pkg/analysis"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}

type fakeRepo struct {
	createFunc    func(opt projectRepo.CreateProjectOptions) (model.Project, error)
	getOneFunc    func(opt projectRepo.GetOneProjectOptions) (model.Project, error)
	listByIDsFunc func(ids []string) ([]model.Project, error)
	deleteFunc    func(id string) error
	deleteCalls   []string
}

func (f *fakeRepo) CreateProject(ctx context.Context, opt projectRepo.CreateProjectOptions) (model.Project, error) {
	if f.createFunc != nil {
		return f.createFunc(opt)
	}
	return model.Project{ID: opt.ID, CreatedBy: opt.CreatedBy, ProjectName: opt.ProjectName, Source: opt.Source}, nil
}

func (f *fakeRepo) GetOneProject(ctx context.Context, opt projectRepo.GetOneProjectOptions) (model.Project, error) {
	if f.getOneFunc != nil {
		return f.getOneFunc(opt)
	}
	return model.Project{}, nil
}

func (f *fakeRepo) ListProjectsByIDs(ctx context.Context, ids []string) ([]model.Project, error) {
	if f.listByIDsFunc != nil {
		return f.listByIDsFunc(ids)
	}
	return nil, nil
}

func (f *fakeRepo) UpdateProjectSource(ctx context.Context, opt projectRepo.UpdateSourceOptions) error {
	return nil
}

func (f *fakeRepo) UpdateProjectCommit(ctx context.Context, opt projectRepo.UpdateCommitOptions) error {
	return nil
}

func (f *fakeRepo) UpdateProjectWebhook(ctx context.Context, opt projectRepo.UpdateWebhookOptions) error {
	return nil
}

func (f *fakeRepo) UpdateProjectWebhookID(ctx context.Context, id, webhookID string) error {
	return nil
}

func (f *fakeRepo) DeleteProject(ctx context.Context, id string) error {
	f.deleteCalls = append(f.deleteCalls, id)
	if f.deleteFunc != nil {
		return f.deleteFunc(id)
	}
	return nil
}

type fakeAnalysis struct {
	initializeFunc  func(ownerEmail, projectName, projectDescription string, collaborators map[string]string) (string, error)
	listFunc        func(email string) ([]analysis.ProjectInfo, error)
	deleteFunc      func(email, projectID string) error
	summaryFunc     func(email, projectID string) error
	diagramFunc     func(email, projectID string) (string, error)
	addCollabFunc   func(ownerEmail, projectID string, collaborators map[string]string) error
	removeFunc      func(projectID, email string) error
	getCollabFunc   func(projectID string) (json.RawMessage, error)
	initializeCalls int
	deleteCalls     []string
}

func (f *fakeAnalysis) InitializeProject(ctx context.Context, ownerEmail, projectName, projectDescription string, collaborators map[string]string) (string, error) {
	f.initializeCalls++
	if f.initializeFunc != nil {
		return f.initializeFunc(ownerEmail, projectName, projectDescription, collaborators)
	}
	return "proj-new", nil
}

func (f *fakeAnalysis) ListProjects(ctx context.Context, email string) ([]analysis.ProjectInfo, error) {
	if f.listFunc != nil {
		return f.listFunc(email)
	}
	return nil, nil
}

func (f *fakeAnalysis) DeleteProject(ctx context.Context, email, projectID string) error {
	f.deleteCalls = append(f.deleteCalls, projectID)
	if f.deleteFunc != nil {
		return f.deleteFunc(email, projectID)
	}
	return nil
}

func (f *fakeAnalysis) GenerateSummary(ctx context.Context, email, projectID string) error {
	if f.summaryFunc != nil {
		return f.summaryFunc(email, projectID)
	}
	return nil
}

func (f *fakeAnalysis) GenerateDiagram(ctx context.Context, email, projectID string) (string, error) {
	if f.diagramFunc != nil {
		return f.diagramFunc(email, projectID)
	}
	return "", nil
}

func (f *fakeAnalysis) AddCollaborator(ctx context.Context, ownerEmail, projectID string, collaborators map[string]string) error {
	if f.addCollabFunc != nil {
		return f.addCollabFunc(ownerEmail, projectID, collaborators)
	}
	return nil
}

func (f *fakeAnalysis) RemoveCollaborator(ctx context.Context, projectID, email string) error {
	if f.removeFunc != nil {
		return f.removeFunc(projectID, email)
	}
	return nil
}

func (f *fakeAnalysis) GetCollaborators(ctx context.Context, projectID string) (json.RawMessage, error) {
	if f.getCollabFunc != nil {
		return f.getCollabFunc(projectID)
	}
	return json.RawMessage(`{}`), nil
}

func testScope() model.Scope {
	return model.Scope{UserID: 7, Email: "owner@acme.dev"}
}

func TestInitialize(t *testing.T) {
	t.Run("Downstream ID Keys The Local Row", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := &fakeAnalysis{
			initializeFunc: func(ownerEmail, projectName, _ string, _ map[string]string) (string, error) {
				if ownerEmail != "owner@acme.dev" || projectName != "widgets" {
					t.Errorf("unexpected downstream args %q %q", ownerEmail, projectName)
				}
				return "proj-assigned", nil
			},
		}
		var gotCreate projectRepo.CreateProjectOptions
		repo.createFunc = func(opt projectRepo.CreateProjectOptions) (model.Project, error) {
			gotCreate = opt
			return model.Project{ID: opt.ID}, nil
		}

		uc := New(repo, svc, &mockLogger{})
		out, err := uc.Initialize(context.Background(), testScope(), project.InitializeInput{ProjectName: "  widgets  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Project.ID != "proj-assigned" {
			t.Errorf("unexpected project id %q", out.Project.ID)
		}
		if gotCreate.ID != "proj-assigned" || gotCreate.CreatedBy != 7 {
			t.Errorf("unexpected create options %+v", gotCreate)
		}
		if gotCreate.ProjectName != "widgets" {
			t.Errorf("expected trimmed name, got %q", gotCreate.ProjectName)
		}
		if gotCreate.Source != model.SourceManual {
			t.Errorf("expected manual source, got %q", gotCreate.Source)
		}
	})

	t.Run("Blank Name Never Hits Downstream", func(t *testing.T) {
		svc := &fakeAnalysis{}
		uc := New(&fakeRepo{}, svc, &mockLogger{})

		_, err := uc.Initialize(context.Background(), testScope(), project.InitializeInput{ProjectName: "   "})
		if !errors.Is(err, project.ErrNameRequired) {
			t.Fatalf("expected ErrNameRequired, got %v", err)
		}
		if svc.initializeCalls != 0 {
			t.Error("downstream create must not run for a blank name")
		}
	})

	t.Run("Downstream Failure Skips Local Row", func(t *testing.T) {
		repo := &fakeRepo{
			createFunc: func(opt projectRepo.CreateProjectOptions) (model.Project, error) {
				t.Error("local row must not be created when downstream fails")
				return model.Project{}, nil
			},
		}
		svc := &fakeAnalysis{
			initializeFunc: func(_, _, _ string, _ map[string]string) (string, error) {
				return "", errors.New("downstream down")
			},
		}

		uc := New(repo, svc, &mockLogger{})
		if _, err := uc.Initialize(context.Background(), testScope(), project.InitializeInput{ProjectName: "widgets"}); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestList(t *testing.T) {
	t.Run("Merges Local Sync State Into Downstream Listing", func(t *testing.T) {
		svc := &fakeAnalysis{
			listFunc: func(email string) ([]analysis.ProjectInfo, error) {
				return []analysis.ProjectInfo{
					{ProjectID: "proj-1", ProjectName: "widgets", Role: "owner"},
					{ProjectID: "proj-2", ProjectName: "shared", Role: "viewer"},
				}, nil
			},
		}
		repo := &fakeRepo{
			listByIDsFunc: func(ids []string) ([]model.Project, error) {
				if len(ids) != 2 || ids[0] != "proj-1" || ids[1] != "proj-2" {
					t.Errorf("unexpected id filter %v", ids)
				}
				return []model.Project{{
					ID:                  "proj-1",
					Source:              model.SourceGitHub,
					RepositoryURL:       "https://github.com/acme/widgets",
					BranchName:          "main",
					WebhookID:           "12345",
					LatestCommitHash:    "abc123",
					LatestCommitMessage: "fix parser",
				}}, nil
			},
		}

		uc := New(repo, svc, &mockLogger{})
		out, err := uc.List(context.Background(), testScope())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Projects) != 2 {
			t.Fatalf("expected 2 projects, got %d", len(out.Projects))
		}

		synced := out.Projects[0]
		if synced.Source != model.SourceGitHub || !synced.HasWebhook {
			t.Errorf("expected local state merged, got %+v", synced)
		}
		if synced.LatestCommitURL != "https://github.com/acme/widgets/commit/abc123" {
			t.Errorf("unexpected commit url %q", synced.LatestCommitURL)
		}

		shared := out.Projects[1]
		if shared.ID != "proj-2" || shared.Role != "viewer" {
			t.Errorf("unexpected shared project %+v", shared)
		}
		if shared.RepositoryURL != "" || shared.HasWebhook {
			t.Errorf("project without a local row must stay bare, got %+v", shared)
		}
	})

	t.Run("Empty Downstream Listing Skips Registry", func(t *testing.T) {
		repo := &fakeRepo{
			listByIDsFunc: func(ids []string) ([]model.Project, error) {
				t.Error("registry must not be queried for an empty listing")
				return nil, nil
			},
		}
		uc := New(repo, &fakeAnalysis{}, &mockLogger{})

		out, err := uc.List(context.Background(), testScope())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Projects == nil || len(out.Projects) != 0 {
			t.Errorf("expected empty non-nil slice, got %+v", out.Projects)
		}
	})
}

func TestDelete(t *testing.T) {
	t.Run("Downstream Delete Precedes Local Delete", func(t *testing.T) {
		repo := &fakeRepo{
			getOneFunc: func(opt projectRepo.GetOneProjectOptions) (model.Project, error) {
				return model.Project{ID: "proj-1"}, nil
			},
		}
		svc := &fakeAnalysis{}

		uc := New(repo, svc, &mockLogger{})
		if err := uc.Delete(context.Background(), testScope(), "proj-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(svc.deleteCalls) != 1 || svc.deleteCalls[0] != "proj-1" {
			t.Errorf("unexpected downstream deletes %v", svc.deleteCalls)
		}
		if len(repo.deleteCalls) != 1 || repo.deleteCalls[0] != "proj-1" {
			t.Errorf("unexpected local deletes %v", repo.deleteCalls)
		}
	})

	t.Run("Unknown Project", func(t *testing.T) {
		uc := New(&fakeRepo{}, &fakeAnalysis{}, &mockLogger{})
		if err := uc.Delete(context.Background(), testScope(), "ghost"); !errors.Is(err, project.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Downstream Failure Keeps The Local Row", func(t *testing.T) {
		repo := &fakeRepo{
			getOneFunc: func(opt projectRepo.GetOneProjectOptions) (model.Project, error) {
				return model.Project{ID: "proj-1"}, nil
			},
		}
		svc := &fakeAnalysis{
			deleteFunc: func(email, projectID string) error { return errors.New("downstream down") },
		}

		uc := New(repo, svc, &mockLogger{})
		if err := uc.Delete(context.Background(), testScope(), "proj-1"); err == nil {
			t.Fatal("expected error")
		}
		if len(repo.deleteCalls) != 0 {
			t.Error("local row must survive a failed downstream delete")
		}
	})
}

func TestGenerateDiagram(t *testing.T) {
	svc := &fakeAnalysis{
		diagramFunc: func(email, projectID string) (string, error) {
			if email != "owner@acme.dev" || projectID != "proj-1" {
				t.Errorf("unexpected args %q %q", email, projectID)
			}
			return "graph TD; A-->B", nil
		},
	}
	uc := New(&fakeRepo{}, svc, &mockLogger{})

	out, err := uc.GenerateDiagram(context.Background(), testScope(), "proj-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Mermaid != "graph TD; A-->B" {
		t.Errorf("unexpected diagram %q", out.Mermaid)
	}
}

func TestCollaborators(t *testing.T) {
	t.Run("Add Attaches Caller Email", func(t *testing.T) {
		var gotOwner string
		svc := &fakeAnalysis{
			addCollabFunc: func(ownerEmail, projectID string, collaborators map[string]string) error {
				gotOwner = ownerEmail
				if collaborators["dev@acme.dev"] != "editor" {
					t.Errorf("unexpected collaborators %+v", collaborators)
				}
				return nil
			},
		}
		uc := New(&fakeRepo{}, svc, &mockLogger{})

		err := uc.AddCollaborator(context.Background(), testScope(), project.AddCollaboratorInput{
			ProjectID:     "proj-1",
			Collaborators: map[string]string{"dev@acme.dev": "editor"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotOwner != "owner@acme.dev" {
			t.Errorf("unexpected owner email %q", gotOwner)
		}
	})

	t.Run("Get Returns Raw Downstream Payload", func(t *testing.T) {
		svc := &fakeAnalysis{
			getCollabFunc: func(projectID string) (json.RawMessage, error) {
				return json.RawMessage(`{"users":["dev@acme.dev"]}`), nil
			},
		}
		uc := New(&fakeRepo{}, svc, &mockLogger{})

		out, err := uc.GetCollaborators(context.Background(), testScope(), "proj-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(out.Collaborators) != `{"users":["dev@acme.dev"]}` {
			t.Errorf("unexpected payload %s", out.Collaborators)
		}
	})
}
