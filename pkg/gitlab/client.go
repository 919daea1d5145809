package gitlab

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrProjectIDResolve indicates the path→numeric id lookup failed. This is a
// URL/permission problem, not a content problem, so it is kept distinct from
// download failures.
var ErrProjectIDResolve = errors.New("could not resolve gitlab project id for repository URL")

// ErrEmptyArchive is returned when a download responds 2xx with no body.
var ErrEmptyArchive = errors.New("received empty or invalid zip data")

// Client talks to the GitLab v4 REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a GitLab client against gitlab.com.
func NewClient() *Client {
	return &Client{
		baseURL:    "https://gitlab.com",
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// SetBaseURL overrides the API endpoint (tests, self-hosted instances).
func (c *Client) SetBaseURL(u string) { c.baseURL = strings.TrimSuffix(u, "/") }

// LookupProjectID resolves a repository URL to GitLab's numeric project id.
func (c *Client) LookupProjectID(ctx context.Context, repositoryURL, token string) (int64, error) {
	clean := strings.TrimSuffix(strings.TrimSuffix(repositoryURL, "/"), ".git")
	clean = strings.TrimSuffix(clean, "/")
	parts := strings.Split(clean, "/")
	if len(parts) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrProjectIDResolve, repositoryURL)
	}
	path := strings.Join(parts[len(parts)-2:], "/")

	lookupURL := fmt.Sprintf("%s/api/v4/projects/%s", c.baseURL, url.PathEscape(path))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrProjectIDResolve, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: lookup returned %d", ErrProjectIDResolve, resp.StatusCode)
	}

	var project struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&project); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrProjectIDResolve, err)
	}
	if project.ID == 0 {
		return 0, fmt.Errorf("%w: empty id in response", ErrProjectIDResolve)
	}
	return project.ID, nil
}

// DownloadRepository fetches the zip archive of a branch. The repository URL
// is first resolved to a numeric project id via LookupProjectID.
func (c *Client) DownloadRepository(ctx context.Context, repositoryURL, branch, token string) ([]byte, error) {
	projectID, err := c.LookupProjectID(ctx, repositoryURL, token)
	if err != nil {
		return nil, err
	}

	if branch == "" {
		branch = "main"
	}
	downloadURL := fmt.Sprintf("%s/api/v4/projects/%d/repository/archive.zip?ref=%s",
		c.baseURL, projectID, url.QueryEscape(branch))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/zip")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download repository: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("gitlab download error %d: %s", resp.StatusCode, string(raw))
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

// ValidationResult reports whether a token is usable.
type ValidationResult struct {
	IsValid bool
	Reason  string
}

// ValidateToken checks a token against /user. Network and auth failures are
// reported through the result, never as an error.
func (c *Client) ValidateToken(ctx context.Context, token string) ValidationResult {
	if token == "" {
		return ValidationResult{IsValid: false, Reason: "token is required"}
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v4/user", nil)
	if err != nil {
		return ValidationResult{IsValid: false, Reason: err.Error()}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ValidationResult{IsValid: false, Reason: "cannot connect to gitlab"}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return ValidationResult{IsValid: true}
	case http.StatusUnauthorized:
		return ValidationResult{IsValid: false, Reason: "invalid or expired token"}
	case http.StatusForbidden:
		return ValidationResult{IsValid: false, Reason: "insufficient permissions"}
	default:
		return ValidationResult{IsValid: false, Reason: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}
}

// Repository is a normalized listing entry for account-linking flows.
type Repository struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	HTMLURL       string `json:"html_url"`
	Private       bool   `json:"private"`
	DefaultBranch string `json:"default_branch"`
	Description   string `json:"description"`
}

// ListRepositories returns projects the token holder is a member of.
func (c *Client) ListRepositories(ctx context.Context, token string) ([]Repository, error) {
	listURL := c.baseURL + "/api/v4/projects?membership=true&per_page=100&order_by=name&sort=asc"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call gitlab API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("gitlab projects error %d: %s", resp.StatusCode, string(raw))
	}

	var projects []struct {
		ID                int64  `json:"id"`
		Name              string `json:"name"`
		PathWithNamespace string `json:"path_with_namespace"`
		WebURL            string `json:"web_url"`
		Visibility        string `json:"visibility"`
		DefaultBranch     string `json:"default_branch"`
		Description       string `json:"description"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&projects); err != nil {
		return nil, fmt.Errorf("failed to decode projects response: %w", err)
	}

	repos := make([]Repository, 0, len(projects))
	for _, p := range projects {
		repos = append(repos, Repository{
			ID:            p.ID,
			Name:          p.Name,
			FullName:      p.PathWithNamespace,
			HTMLURL:       p.WebURL,
			Private:       p.Visibility == "private",
			DefaultBranch: p.DefaultBranch,
			Description:   p.Description,
		})
	}
	return repos, nil
}
