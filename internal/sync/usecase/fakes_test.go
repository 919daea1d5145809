package usecase

import (
	"context"
	"encoding/json"

	"codeatlas-gateway/internal/model"
	projectRepo "codeatlas-gateway/internal/project/repository"
	userRepo "codeatlas-gateway/internal/user/repository"
	"codeatlas-gateway/pkg/analysis"
	"codeatlas-gateway/pkg/github"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any) {}

// fakeProjects implements projectRepo.Repository with function fields.
type fakeProjects struct {
	createFunc          func(opt projectRepo.CreateProjectOptions) (model.Project, error)
	getOneFunc          func(opt projectRepo.GetOneProjectOptions) (model.Project, error)
	listByIDsFunc       func(ids []string) ([]model.Project, error)
	updateSourceFunc    func(opt projectRepo.UpdateSourceOptions) error
	updateCommitFunc    func(opt projectRepo.UpdateCommitOptions) error
	updateWebhookFunc   func(opt projectRepo.UpdateWebhookOptions) error
	updateWebhookIDFunc func(id, webhookID string) error
	deleteFunc          func(id string) error
}

func (f *fakeProjects) CreateProject(ctx context.Context, opt projectRepo.CreateProjectOptions) (model.Project, error) {
	if f.createFunc != nil {
		return f.createFunc(opt)
	}
	return model.Project{}, nil
}

func (f *fakeProjects) GetOneProject(ctx context.Context, opt projectRepo.GetOneProjectOptions) (model.Project, error) {
	if f.getOneFunc != nil {
		return f.getOneFunc(opt)
	}
	return model.Project{}, nil
}

func (f *fakeProjects) ListProjectsByIDs(ctx context.Context, ids []string) ([]model.Project, error) {
	if f.listByIDsFunc != nil {
		return f.listByIDsFunc(ids)
	}
	return nil, nil
}

func (f *fakeProjects) UpdateProjectSource(ctx context.Context, opt projectRepo.UpdateSourceOptions) error {
	if f.updateSourceFunc != nil {
		return f.updateSourceFunc(opt)
	}
	return nil
}

func (f *fakeProjects) UpdateProjectCommit(ctx context.Context, opt projectRepo.UpdateCommitOptions) error {
	if f.updateCommitFunc != nil {
		return f.updateCommitFunc(opt)
	}
	return nil
}

func (f *fakeProjects) UpdateProjectWebhook(ctx context.Context, opt projectRepo.UpdateWebhookOptions) error {
	if f.updateWebhookFunc != nil {
		return f.updateWebhookFunc(opt)
	}
	return nil
}

func (f *fakeProjects) UpdateProjectWebhookID(ctx context.Context, id, webhookID string) error {
	if f.updateWebhookIDFunc != nil {
		return f.updateWebhookIDFunc(id, webhookID)
	}
	return nil
}

func (f *fakeProjects) DeleteProject(ctx context.Context, id string) error {
	if f.deleteFunc != nil {
		return f.deleteFunc(id)
	}
	return nil
}

// fakeUsers implements userRepo.Repository.
type fakeUsers struct {
	getOneFunc     func(opt userRepo.GetOneUserOptions) (model.User, error)
	updateCredFunc func(opt userRepo.UpdateCredentialOptions) error
}

func (f *fakeUsers) GetOneUser(ctx context.Context, opt userRepo.GetOneUserOptions) (model.User, error) {
	if f.getOneFunc != nil {
		return f.getOneFunc(opt)
	}
	return model.User{}, nil
}

func (f *fakeUsers) UpdateProviderCredential(ctx context.Context, opt userRepo.UpdateCredentialOptions) error {
	if f.updateCredFunc != nil {
		return f.updateCredFunc(opt)
	}
	return nil
}

// fakeVerifier implements sync.SignatureVerifier.
type fakeVerifier struct {
	verifyFunc func(payload []byte, signature, secret string) error
}

func (f *fakeVerifier) Verify(payload []byte, signature, secret string) error {
	if f.verifyFunc != nil {
		return f.verifyFunc(payload, signature, secret)
	}
	return nil
}

// fakeGithub implements GithubClient.
type fakeGithub struct {
	downloadFunc  func(repositoryURL, branch, token string) ([]byte, error)
	createHook    func(owner, repo, callbackURL, secret, token string) (*github.Hook, error)
	commentFunc   func(owner, repo string, number int, comment, token string) error
	fetchDiffFunc func(diffURL, token string) ([]byte, error)

	downloadCalls int
}

func (f *fakeGithub) DownloadRepository(ctx context.Context, repositoryURL, branch, token string) ([]byte, error) {
	f.downloadCalls++
	if f.downloadFunc != nil {
		return f.downloadFunc(repositoryURL, branch, token)
	}
	return []byte("PK\x03\x04archive"), nil
}

func (f *fakeGithub) CreateHook(ctx context.Context, owner, repo, callbackURL, secret, token string) (*github.Hook, error) {
	if f.createHook != nil {
		return f.createHook(owner, repo, callbackURL, secret, token)
	}
	return &github.Hook{ID: 1}, nil
}

func (f *fakeGithub) CreateIssueComment(ctx context.Context, owner, repo string, number int, comment, token string) error {
	if f.commentFunc != nil {
		return f.commentFunc(owner, repo, number, comment, token)
	}
	return nil
}

func (f *fakeGithub) FetchDiff(ctx context.Context, diffURL, token string) ([]byte, error) {
	if f.fetchDiffFunc != nil {
		return f.fetchDiffFunc(diffURL, token)
	}
	return []byte("diff"), nil
}

// fakeGitlab implements GitlabClient.
type fakeGitlab struct {
	downloadFunc func(repositoryURL, branch, token string) ([]byte, error)
}

func (f *fakeGitlab) DownloadRepository(ctx context.Context, repositoryURL, branch, token string) ([]byte, error) {
	if f.downloadFunc != nil {
		return f.downloadFunc(repositoryURL, branch, token)
	}
	return []byte("PK\x03\x04archive"), nil
}

// fakeAzure implements AzureClient.
type fakeAzure struct {
	downloadFunc func(pat, organization, projectID, repositoryID, branch string) ([]byte, error)
}

func (f *fakeAzure) DownloadRepository(ctx context.Context, pat, organization, projectID, repositoryID, branch string) ([]byte, error) {
	if f.downloadFunc != nil {
		return f.downloadFunc(pat, organization, projectID, repositoryID, branch)
	}
	return []byte("PK\x03\x04archive"), nil
}

// fakeRelay implements Relay.
type fakeRelay struct {
	uploadFunc func(input analysis.UploadInput) (json.RawMessage, error)
	reviewFunc func(email, projectID string, diff []byte) (string, error)

	uploadCalls []analysis.UploadInput
}

func (f *fakeRelay) UploadCodebase(ctx context.Context, input analysis.UploadInput) (json.RawMessage, error) {
	f.uploadCalls = append(f.uploadCalls, input)
	if f.uploadFunc != nil {
		return f.uploadFunc(input)
	}
	return json.RawMessage(`{"ok":true}`), nil
}

func (f *fakeRelay) ReviewDiff(ctx context.Context, email, projectID string, diff []byte) (string, error) {
	if f.reviewFunc != nil {
		return f.reviewFunc(email, projectID, diff)
	}
	return "looks good", nil
}

// deps bundles one fake of everything with sane defaults.
type deps struct {
	projects *fakeProjects
	users    *fakeUsers
	verifier *fakeVerifier
	github   *fakeGithub
	gitlab   *fakeGitlab
	azure    *fakeAzure
	relay    *fakeRelay
}

func newDeps() *deps {
	return &deps{
		projects: &fakeProjects{},
		users:    &fakeUsers{},
		verifier: &fakeVerifier{},
		github:   &fakeGithub{},
		gitlab:   &fakeGitlab{},
		azure:    &fakeAzure{},
		relay:    &fakeRelay{},
	}
}

func (d *deps) build(cfg Config) *implUseCase {
	uc := New(cfg, d.projects, d.users, d.verifier, d.github, d.gitlab, d.azure, d.relay, &mockLogger{})
	// Run the detached sub-flow inline so tests can assert on it.
	uc.SetAsyncRunner(func(fn func()) { fn() })
	return uc
}
