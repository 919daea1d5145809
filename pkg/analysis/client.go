package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Codebase relay endpoints. addcodebase is the first upload of a project,
// updatecodebase every subsequent sync (manual or webhook-driven).
const (
	EndpointAddCodebase    = "addcodebase"
	EndpointUpdateCodebase = "updatecodebase"
)

// CommitIDManual marks relays that did not originate from a provider event.
const CommitIDManual = "manual"

// StatusError preserves a non-2xx downstream response verbatim so
// interactive callers can propagate the analysis service's own status and
// error detail.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("analysis service error %d: %s", e.StatusCode, string(e.Body))
}

// Client talks to the analysis service over its documented HTTP contract.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an analysis client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// UploadInput is one codebase relay.
type UploadInput struct {
	Endpoint  string // EndpointAddCodebase or EndpointUpdateCodebase
	Email     string
	ProjectID string
	CommitID  string
	Source    string // github|gitlab|azure|manual
	Filename  string // defaults to codebase.zip
	Archive   []byte
}

// UploadCodebase relays a zip archive as multipart field "file" with
// identifying query parameters. The raw response body is returned so
// interactive callers can surface downstream detail.
func (c *Client) UploadCodebase(ctx context.Context, input UploadInput) (json.RawMessage, error) {
	filename := input.Filename
	if filename == "" {
		filename = "codebase.zip"
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := part.Write(input.Archive); err != nil {
		return nil, fmt.Errorf("failed to write archive: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	q := url.Values{}
	q.Set("email", input.Email)
	q.Set("project_id", input.ProjectID)
	q.Set("commit_id", input.CommitID)
	q.Set("file_source", input.Source)

	uploadURL := fmt.Sprintf("%s/%s?%s", c.baseURL, input.Endpoint, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.do(req)
}

// InitializeProject asks the analysis service to create a project and
// returns the id it assigned.
func (c *Client) InitializeProject(ctx context.Context, ownerEmail, projectName, projectDescription string, collaborators map[string]string) (string, error) {
	if collaborators == nil {
		collaborators = map[string]string{}
	}
	body, err := json.Marshal(collaborators)
	if err != nil {
		return "", fmt.Errorf("failed to marshal collaborators: %w", err)
	}

	q := url.Values{}
	q.Set("owner_email", ownerEmail)
	q.Set("project_name", projectName)
	q.Set("project_description", projectDescription)

	initURL := fmt.Sprintf("%s/initialize_project?%s", c.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, initURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	raw, err := c.do(req)
	if err != nil {
		return "", err
	}

	var out struct {
		ProjectID string `json:"project_id"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("failed to decode initialize response: %w", err)
	}
	if out.ProjectID == "" {
		return "", fmt.Errorf("analysis service returned no project id")
	}
	return out.ProjectID, nil
}

// ProjectInfo is the analysis service's view of a project.
type ProjectInfo struct {
	ProjectID          string `json:"project_id"`
	ProjectName        string `json:"project_name"`
	ProjectDescription string `json:"project_description"`
	Role               string `json:"role"`
}

// ListProjects returns the projects visible to an account.
func (c *Client) ListProjects(ctx context.Context, email string) ([]ProjectInfo, error) {
	listURL := fmt.Sprintf("%s/projects?email=%s", c.baseURL, url.QueryEscape(email))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	raw, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var out struct {
		Projects []ProjectInfo `json:"projects"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode projects response: %w", err)
	}
	return out.Projects, nil
}

// GenerateSummary triggers the summary pipeline for a project. The summary
// itself is delivered out-of-band (email), so only the trigger outcome
// matters here.
func (c *Client) GenerateSummary(ctx context.Context, email, projectID string) error {
	_, err := c.postForm(ctx, "generate-summary", map[string]string{
		"email":      email,
		"project_id": projectID,
	})
	return err
}

// GenerateDiagram asks for a mermaid diagram of the project and returns the
// diagram text.
func (c *Client) GenerateDiagram(ctx context.Context, email, projectID string) (string, error) {
	raw, err := c.postForm(ctx, "generate-mermaid", map[string]string{
		"user_question": "Give me an overall summary",
		"email":         email,
		"project_id":    projectID,
	})
	if err != nil {
		return "", err
	}

	var out struct {
		Result string `json:"result"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("failed to decode diagram response: %w", err)
	}
	return out.Result, nil
}

// ReviewDiff submits a pull request diff and returns the generated review.
func (c *Client) ReviewDiff(ctx context.Context, email, projectID string, diff []byte) (string, error) {
	raw, err := c.postForm(ctx, "review", map[string]string{
		"email":      email,
		"project_id": projectID,
		"diff":       string(diff),
	})
	if err != nil {
		return "", err
	}

	var out struct {
		Review string `json:"review"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("failed to decode review response: %w", err)
	}
	return out.Review, nil
}

// DeleteProject removes a project on the analysis side.
func (c *Client) DeleteProject(ctx context.Context, email, projectID string) error {
	body, err := json.Marshal(map[string]string{
		"project_id": projectID,
		"email":      email,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal delete payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/delete-project", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	_, err = c.do(req)
	return err
}

// AddCollaborator grants project access to the given email/role pairs.
func (c *Client) AddCollaborator(ctx context.Context, ownerEmail, projectID string, collaborators map[string]string) error {
	body, err := json.Marshal(collaborators)
	if err != nil {
		return fmt.Errorf("failed to marshal collaborators: %w", err)
	}

	q := url.Values{}
	q.Set("owner_email", ownerEmail)
	q.Set("project_id", projectID)

	addURL := fmt.Sprintf("%s/add_collabrator?%s", c.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, addURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	_, err = c.do(req)
	return err
}

// RemoveCollaborator revokes a collaborator's project access.
func (c *Client) RemoveCollaborator(ctx context.Context, projectID, email string) error {
	q := url.Values{}
	q.Set("project_id", projectID)
	q.Set("email", email)

	removeURL := fmt.Sprintf("%s/delete_user_from_project?%s", c.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, removeURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	_, err = c.do(req)
	return err
}

// GetCollaborators returns the project's collaborator list as reported by
// the analysis service.
func (c *Client) GetCollaborators(ctx context.Context, projectID string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("project_id", projectID)

	getURL := fmt.Sprintf("%s/get_users_for_project?%s", c.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, getURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	return c.do(req)
}

// postForm sends simple key/value fields as multipart form data, which is
// what the analysis service expects for its generation endpoints.
func (c *Client) postForm(ctx context.Context, endpoint string, fields map[string]string) (json.RawMessage, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("failed to build multipart body: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.do(req)
}

// do executes the request and normalizes non-2xx responses to StatusError.
func (c *Client) do(req *http.Request) (json.RawMessage, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call analysis service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: body}
	}
	return body, nil
}
