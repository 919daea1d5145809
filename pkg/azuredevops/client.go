package azuredevops

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrEmptyArchive is returned when a download responds 2xx with no body.
var ErrEmptyArchive = errors.New("received empty or invalid zip data")

// Client talks to the Azure DevOps REST API (6.0 for listings, 7.2-preview
// for items-as-zip downloads).
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an Azure DevOps client against dev.azure.com.
func NewClient() *Client {
	return &Client{
		baseURL:    "https://dev.azure.com",
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// SetBaseURL overrides the API endpoint (tests).
func (c *Client) SetBaseURL(u string) { c.baseURL = strings.TrimSuffix(u, "/") }

// basicAuth builds the PAT authorization header. Azure expects the PAT as
// the password part of basic auth with an empty username.
func basicAuth(pat string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(":"+pat))
}

// ValidationResult reports whether a PAT is usable for an organization.
type ValidationResult struct {
	IsValid bool
	Reason  string
}

// ValidatePAT probes the organization's project list with the PAT.
func (c *Client) ValidatePAT(ctx context.Context, pat, organization string) ValidationResult {
	if pat == "" || organization == "" {
		return ValidationResult{IsValid: false, Reason: "pat and organization are required"}
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	probeURL := fmt.Sprintf("%s/%s/_apis/projects?api-version=7.2-preview.4", c.baseURL, url.PathEscape(organization))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, probeURL, nil)
	if err != nil {
		return ValidationResult{IsValid: false, Reason: err.Error()}
	}
	req.Header.Set("Authorization", basicAuth(pat))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ValidationResult{IsValid: false, Reason: "cannot connect to azure devops"}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return ValidationResult{IsValid: true}
	}
	return ValidationResult{IsValid: false, Reason: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
}

// Project is a team project within an organization.
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListProjects returns the organization's team projects.
func (c *Client) ListProjects(ctx context.Context, pat, organization string) ([]Project, error) {
	listURL := fmt.Sprintf("%s/%s/_apis/projects?api-version=6.0", c.baseURL, url.PathEscape(organization))

	var out struct {
		Value []Project `json:"value"`
	}
	if err := c.getJSON(ctx, listURL, pat, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}
	return out.Value, nil
}

// Repository is a git repository within a team project.
type Repository struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	WebURL        string `json:"webUrl"`
	DefaultBranch string `json:"defaultBranch"`
}

// ListRepositories returns the git repositories of a team project.
func (c *Client) ListRepositories(ctx context.Context, pat, organization, projectID string) ([]Repository, error) {
	listURL := fmt.Sprintf("%s/%s/%s/_apis/git/repositories?api-version=6.0",
		c.baseURL, url.PathEscape(organization), url.PathEscape(projectID))

	var out struct {
		Value []Repository `json:"value"`
	}
	if err := c.getJSON(ctx, listURL, pat, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch repositories: %w", err)
	}
	return out.Value, nil
}

// Branch is a repository branch, name stripped of the refs/heads/ prefix.
type Branch struct {
	Name     string `json:"name"`
	ObjectID string `json:"objectId"`
}

// ListBranches returns the heads of a repository.
func (c *Client) ListBranches(ctx context.Context, pat, organization, projectID, repositoryID string) ([]Branch, error) {
	listURL := fmt.Sprintf("%s/%s/%s/_apis/git/repositories/%s/refs?api-version=6.0&filter=heads/",
		c.baseURL, url.PathEscape(organization), url.PathEscape(projectID), url.PathEscape(repositoryID))

	var out struct {
		Value []Branch `json:"value"`
	}
	if err := c.getJSON(ctx, listURL, pat, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch branches: %w", err)
	}
	for i := range out.Value {
		out.Value[i].Name = strings.TrimPrefix(out.Value[i].Name, "refs/heads/")
	}
	return out.Value, nil
}

// DownloadRepository fetches the working tree of a branch as a zip archive
// via the items endpoint.
func (c *Client) DownloadRepository(ctx context.Context, pat, organization, projectID, repositoryID, branch string) ([]byte, error) {
	if branch == "" {
		branch = "main"
	}

	q := url.Values{}
	q.Set("api-version", "7.2-preview.1")
	q.Set("scopePath", "/")
	q.Set("download", "true")
	q.Set("$format", "zip")
	q.Set("recursionLevel", "full")
	q.Set("includeContentMetadata", "true")
	q.Set("versionDescriptor.version", branch)
	q.Set("versionDescriptor.versionType", "branch")

	downloadURL := fmt.Sprintf("%s/%s/%s/_apis/git/repositories/%s/items?%s",
		c.baseURL, url.PathEscape(organization), url.PathEscape(projectID), url.PathEscape(repositoryID), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", basicAuth(pat))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download repository: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("repository not found: verify repository id %q and project id %q", repositoryID, projectID)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("azure download error %d: %s", resp.StatusCode, string(raw))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive body: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyArchive
	}
	return data, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL, pat string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", basicAuth(pat))
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(raw))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
