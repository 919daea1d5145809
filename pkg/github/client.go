package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrEmptyArchive is returned when a download responds 2xx with no body.
var ErrEmptyArchive = errors.New("received empty or invalid zip data")

// Client talks to the GitHub REST v3 API and the codeload archive host.
type Client struct {
	apiURL      string
	codeloadURL string
	httpClient  *http.Client
}

// NewClient creates a GitHub client with production endpoints.
func NewClient() *Client {
	return &Client{
		apiURL:      "https://api.github.com",
		codeloadURL: "https://codeload.github.com",
		httpClient:  &http.Client{Timeout: 60 * time.Second},
	}
}

// SetAPIURL overrides the REST endpoint (tests).
func (c *Client) SetAPIURL(u string) { c.apiURL = strings.TrimSuffix(u, "/") }

// SetCodeloadURL overrides the archive endpoint (tests).
func (c *Client) SetCodeloadURL(u string) { c.codeloadURL = strings.TrimSuffix(u, "/") }

// SplitRepositoryURL extracts owner and repo name from a repository URL,
// tolerating a trailing slash and a .git suffix.
func SplitRepositoryURL(repositoryURL string) (owner, repo string, err error) {
	clean := strings.TrimSuffix(strings.TrimSuffix(repositoryURL, "/"), ".git")
	clean = strings.TrimSuffix(clean, "/")
	parts := strings.Split(clean, "/")
	if len(parts) < 2 {
		return "", "", fmt.Errorf("cannot extract owner/repo from %q", repositoryURL)
	}
	owner, repo = parts[len(parts)-2], parts[len(parts)-1]
	if owner == "" || repo == "" {
		return "", "", fmt.Errorf("cannot extract owner/repo from %q", repositoryURL)
	}
	return owner, repo, nil
}

// DownloadRepository fetches the zip archive of a branch via codeload.
// The token is optional for public repositories.
func (c *Client) DownloadRepository(ctx context.Context, repositoryURL, branch, token string) ([]byte, error) {
	owner, repo, err := SplitRepositoryURL(repositoryURL)
	if err != nil {
		return nil, err
	}

	downloadURL := fmt.Sprintf("%s/%s/%s/zip/refs/heads/%s", c.codeloadURL, owner, repo, branch)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
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
		return nil, fmt.Errorf("github download error %d: %s", resp.StatusCode, string(raw))
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

// Hook is the provider-side webhook registration result.
type Hook struct {
	ID int64 `json:"id"`
}

// CreateHook registers a push+pull_request webhook on the repository,
// pointed at callbackURL and signed with secret.
func (c *Client) CreateHook(ctx context.Context, owner, repo, callbackURL, secret, token string) (*Hook, error) {
	payload := map[string]any{
		"name":   "web",
		"active": true,
		"events": []string{"push", "pull_request"},
		"config": map[string]string{
			"url":          callbackURL,
			"content_type": "json",
			"secret":       secret,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal hook payload: %w", err)
	}

	url := fmt.Sprintf("%s/repos/%s/%s/hooks", c.apiURL, owner, repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call github API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("github hook creation error %d: %s", resp.StatusCode, string(raw))
	}

	var hook Hook
	if err := json.NewDecoder(resp.Body).Decode(&hook); err != nil {
		return nil, fmt.Errorf("failed to decode hook response: %w", err)
	}
	return &hook, nil
}

// CreateIssueComment posts a comment on an issue or pull request.
func (c *Client) CreateIssueComment(ctx context.Context, owner, repo string, number int, comment, token string) error {
	body, err := json.Marshal(map[string]string{"body": comment})
	if err != nil {
		return fmt.Errorf("failed to marshal comment: %w", err)
	}

	url := fmt.Sprintf("%s/repos/%s/%s/issues/%d/comments", c.apiURL, owner, repo, number)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call github API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("github comment error %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}

// FetchDiff downloads a pull request diff from its diff_url.
func (c *Client) FetchDiff(ctx context.Context, diffURL, token string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, diffURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch diff: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("github diff error %d: %s", resp.StatusCode, string(raw))
	}
	return io.ReadAll(resp.Body)
}
